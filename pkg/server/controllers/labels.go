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

// NewLabels creates a new Labels controller.
func NewLabels(app *app.App) *Labels {
	return &Labels{
		app: app,
	}
}

// Labels is a label controller.
type Labels struct {
	app *app.App
}

type createLabelPayload struct {
	Name  string `json:"name"`
	Color int    `json:"color"`
}

// Create handles POST /v1/labels
func (c *Labels) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload createLabelPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	label, err := c.app.CreateLabel(*user, payload.Name, payload.Color)
	if err != nil {
		handleJSONError(w, err, "creating label")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentLabel(label))
}

// Index handles GET /v1/labels
func (c *Labels) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	labels, err := c.app.GetLabels(*user)
	if err != nil {
		handleJSONError(w, err, "getting labels")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentLabels(labels))
}

// Show handles GET /v1/labels/{labelID}
func (c *Labels) Show(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	labelID, err := getIntParam(r, "labelID")
	if err != nil {
		handleJSONError(w, err, "parsing label id")
		return
	}

	label, err := c.app.GetLabel(*user, labelID)
	if err != nil {
		handleJSONError(w, err, "getting label")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentLabel(label))
}

type updateLabelPayload struct {
	Name  *string `json:"name"`
	Color *int    `json:"color"`
}

// Update handles PATCH /v1/labels/{labelID}
func (c *Labels) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	labelID, err := getIntParam(r, "labelID")
	if err != nil {
		handleJSONError(w, err, "parsing label id")
		return
	}

	var payload updateLabelPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	label, err := c.app.UpdateLabel(*user, labelID, app.UpdateLabelParams{
		Name:  payload.Name,
		Color: payload.Color,
	})
	if err != nil {
		handleJSONError(w, err, "updating label")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentLabel(label))
}

// Delete handles DELETE /v1/labels/{labelID}
func (c *Labels) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	labelID, err := getIntParam(r, "labelID")
	if err != nil {
		handleJSONError(w, err, "parsing label id")
		return
	}

	if err := c.app.DeleteLabel(*user, labelID); err != nil {
		handleJSONError(w, err, "deleting label")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
