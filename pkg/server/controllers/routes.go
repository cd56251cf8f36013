/* Copyright 2025 AINotes Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controllers

import (
	"net/http"

	"github.com/ainotes/ainotes/pkg/server/app"
	mw "github.com/ainotes/ainotes/pkg/server/middleware"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Route represents a single route
type Route struct {
	Method    string
	Pattern   string
	Handler   http.HandlerFunc
	RateLimit bool
}

// RouteConfig is the configuration for routes
type RouteConfig struct {
	Controllers *Controllers
	APIRoutes   []Route
}

// NewAPIRoutes returns a new api routes
func NewAPIRoutes(a *app.App, c *Controllers) []Route {
	ret := []Route{
		// auth
		{"POST", "/v1/auth/login", c.Users.Login, true},
		{"POST", "/v1/auth/login-form", c.Users.LoginForm, true},
		{"POST", "/v1/auth/forgot-password", c.Users.ForgotPassword, true},
		{"POST", "/v1/auth/reset-password", c.Users.ResetPassword, true},
		{"POST", "/v1/auth/forgot-password/verify", c.Users.ResetPassword, true},

		// users
		{"GET", "/v1/users/me", mw.Auth(a, c.Users.Me), true},
		{"PATCH", "/v1/users/me", mw.Auth(a, c.Users.ProfileUpdate), true},
		{"PUT", "/v1/users/me", mw.Auth(a, c.Users.ProfileUpdate), true},
		{"PUT", "/v1/users/me/password", mw.Auth(a, c.Users.PasswordUpdate), true},
		{"GET", "/v1/users/me/settings", mw.Auth(a, c.Users.GetSetting), true},
		{"PATCH", "/v1/users/me/settings", mw.Auth(a, c.Users.UpdateSetting), true},
		{"PUT", "/v1/users/me/settings", mw.Auth(a, c.Users.UpdateSetting), true},

		// notes
		{"POST", "/v1/notes", mw.Auth(a, c.Notes.Create), false},
		{"GET", "/v1/notes", mw.Auth(a, c.Notes.Index), false},
		{"GET", "/v1/notes/{noteID}", mw.Auth(a, c.Notes.Show), false},
		{"PATCH", "/v1/notes/{noteID}", mw.Auth(a, c.Notes.Update), false},
		{"PUT", "/v1/notes/{noteID}", mw.Auth(a, c.Notes.Update), false},
		{"DELETE", "/v1/notes/{noteID}", mw.Auth(a, c.Notes.Delete), false},

		// tasks
		{"POST", "/v1/notes/{noteID}/tasks", mw.Auth(a, c.Tasks.Create), false},
		{"GET", "/v1/notes/{noteID}/tasks", mw.Auth(a, c.Tasks.Index), false},
		{"PATCH", "/v1/notes/{noteID}/tasks/{taskID}", mw.Auth(a, c.Tasks.Update), false},
		{"PUT", "/v1/notes/{noteID}/tasks/{taskID}", mw.Auth(a, c.Tasks.Update), false},
		{"DELETE", "/v1/notes/{noteID}/tasks/{taskID}", mw.Auth(a, c.Tasks.Delete), false},

		// labels
		{"POST", "/v1/labels", mw.Auth(a, c.Labels.Create), false},
		{"GET", "/v1/labels", mw.Auth(a, c.Labels.Index), false},
		{"GET", "/v1/labels/{labelID}", mw.Auth(a, c.Labels.Show), false},
		{"PATCH", "/v1/labels/{labelID}", mw.Auth(a, c.Labels.Update), false},
		{"PUT", "/v1/labels/{labelID}", mw.Auth(a, c.Labels.Update), false},
		{"DELETE", "/v1/labels/{labelID}", mw.Auth(a, c.Labels.Delete), false},

		// schedulers
		{"POST", "/v1/scheduler", mw.Auth(a, c.Schedulers.Create), false},
		{"GET", "/v1/scheduler", mw.Auth(a, c.Schedulers.Index), false},
		{"GET", "/v1/scheduler/{schedulerID}", mw.Auth(a, c.Schedulers.Show), false},
		{"PATCH", "/v1/scheduler/{schedulerID}", mw.Auth(a, c.Schedulers.Update), false},
		{"PUT", "/v1/scheduler/{schedulerID}", mw.Auth(a, c.Schedulers.Update), false},
		{"DELETE", "/v1/scheduler/{schedulerID}", mw.Auth(a, c.Schedulers.Delete), false},

		// AI transformations
		{"POST", "/v1/notes/{noteID}/{action:format|cleanup|refine|polish|continue|summarize}", mw.Auth(a, c.AI.Execute), true},
		{"POST", "/v1/ai/{noteID}/{action:format|cleanup|refine|polish|continue|summarize}", mw.Auth(a, c.AI.Execute), true},

		{"GET", "/health", c.Health.Index, true},
	}

	if !a.Config.DisableRegistration {
		ret = append(ret, Route{"POST", "/v1/auth/signup", c.Users.Register, true})
		ret = append(ret, Route{"POST", "/v1/auth/signup/verify", c.Users.VerifySignup, true})
	}

	return ret
}

func registerRoutes(router *mux.Router, wrapper mw.Middleware, app *app.App, routes []Route) {
	for _, route := range routes {
		wrappedHandler := wrapper(route.Handler, app, route.RateLimit)

		router.
			Handle(route.Pattern, wrappedHandler).
			Methods(route.Method)
	}
}

// NewRouter creates and returns a new router
func NewRouter(app *app.App, rc RouteConfig) (http.Handler, error) {
	if err := app.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating the app parameters")
	}

	router := mux.NewRouter().StrictSlash(true)

	apiRouter := router.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, mw.APIMw, app, rc.APIRoutes)

	// catch-all
	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondDetail(w, http.StatusNotFound, "Not Found")
	})

	return mw.Global(router), nil
}
