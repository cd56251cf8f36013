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
	"github.com/ainotes/ainotes/pkg/server/context"
	"github.com/ainotes/ainotes/pkg/server/presenters"
)

// NewUsers creates a new Users controller.
func NewUsers(app *app.App) *Users {
	return &Users{
		app: app,
	}
}

// Users is a user controller.
type Users struct {
	app *app.App
}

// RegistrationPayload is the payload for registering
type RegistrationPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles signup. It sends a verification code to the given
// email. No account exists until the code is verified.
func (u *Users) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegistrationPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if err := u.app.RegisterUser(r.Context(), payload.FullName, payload.Email, payload.Password); err != nil {
		handleJSONError(w, err, "registering user")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Verification code sent"})
}

// VerifySignupPayload is the payload for verifying a signup code
type VerifySignupPayload struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifySignup handles signup verification. On success the account is
// created and signed in.
func (u *Users) VerifySignup(w http.ResponseWriter, r *http.Request) {
	var payload VerifySignupPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, err := u.app.VerifySignup(r.Context(), payload.Email, payload.OTP)
	if err != nil {
		handleJSONError(w, err, "verifying signup")
		return
	}

	accessToken, err := u.app.TokenMaker.Create(user.ID)
	if err != nil {
		handleJSONError(w, err, "issuing token")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentSession(accessToken))
}

// LoginPayload is the payload for logging in
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles login with a JSON payload
func (u *Users) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	accessToken, err := u.app.SignIn(payload.Email, payload.Password)
	if err != nil {
		handleJSONError(w, err, "logging in user")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentSession(accessToken))
}

// LoginFormPayload is the form data for logging in. The username field
// carries the email.
type LoginFormPayload struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
}

// LoginForm handles login with a form-encoded payload
func (u *Users) LoginForm(w http.ResponseWriter, r *http.Request) {
	var form LoginFormPayload
	if err := parseForm(r, &form); err != nil {
		handleJSONError(w, err, "parsing form")
		return
	}

	accessToken, err := u.app.SignIn(form.Username, form.Password)
	if err != nil {
		handleJSONError(w, err, "logging in user")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentSession(accessToken))
}

type forgotPasswordPayload struct {
	Email string `json:"email"`
}

// ForgotPassword sends a password reset code to the given email
func (u *Users) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload forgotPasswordPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if err := u.app.ForgotPassword(r.Context(), payload.Email); err != nil {
		handleJSONError(w, err, "sending reset code")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset code sent"})
}

type resetPasswordPayload struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

// ResetPassword sets a new password after verifying the reset code
func (u *Users) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload resetPasswordPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if err := u.app.ResetPassword(r.Context(), payload.Email, payload.OTP, payload.NewPassword); err != nil {
		handleJSONError(w, err, "resetting password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password has been reset"})
}

// Me returns the authenticated user
func (u *Users) Me(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	respondJSON(w, http.StatusOK, presenters.PresentUser(*user))
}

type updateProfilePayload struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// ProfileUpdate patches the authenticated user's profile
func (u *Users) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload updateProfilePayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	updated, err := u.app.UpdateUser(*user, app.UpdateUserParams{
		FullName:  payload.FullName,
		AvatarURL: payload.AvatarURL,
	})
	if err != nil {
		handleJSONError(w, err, "updating profile")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentUser(updated))
}

type updatePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PasswordUpdate changes the authenticated user's password
func (u *Users) PasswordUpdate(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload updatePasswordPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if err := u.app.UpdateUserPassword(*user, payload.CurrentPassword, payload.NewPassword); err != nil {
		handleJSONError(w, err, "updating password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

// GetSetting returns the authenticated user's settings
func (u *Users) GetSetting(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	setting, err := u.app.GetSetting(*user)
	if err != nil {
		handleJSONError(w, err, "getting settings")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentSetting(setting))
}

type updateSettingPayload struct {
	TextSize           *int  `json:"text_size"`
	Theme              *int  `json:"theme"`
	EmailNotifications *bool `json:"email_notifications"`
	PushNotifications  *bool `json:"push_notifications"`
}

// UpdateSetting patches the authenticated user's settings
func (u *Users) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload updateSettingPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	setting, err := u.app.UpdateSetting(*user, app.UpdateSettingParams{
		TextSize:           payload.TextSize,
		Theme:              payload.Theme,
		EmailNotifications: payload.EmailNotifications,
		PushNotifications:  payload.PushNotifications,
	})
	if err != nil {
		handleJSONError(w, err, "updating settings")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentSetting(setting))
}
