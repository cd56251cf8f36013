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
	"io"
	"net/http"

	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/context"
	"github.com/ainotes/ainotes/pkg/server/presenters"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// NewAI creates a new AI controller.
func NewAI(app *app.App) *AI {
	return &AI{
		app: app,
	}
}

// AI is a controller for AI transformations on notes.
type AI struct {
	app *app.App
}

type aiActionPayload struct {
	Style     string `json:"style"`
	MaxTokens int    `json:"max_tokens"`
	MaxLength int    `json:"max_length"`
}

func parseAIAction(r *http.Request) (app.AIAction, error) {
	vars := mux.Vars(r)

	action := app.AIAction(vars["action"])
	switch action {
	case app.AIActionFormat,
		app.AIActionCleanup,
		app.AIActionRefine,
		app.AIActionPolish,
		app.AIActionContinue,
		app.AIActionSummarize:
		return action, nil
	}

	return "", app.ErrInvalidAIAction
}

// Execute handles POST /v1/notes/{noteID}/{action}. The request body is
// optional; absence means default options.
func (c *AI) Execute(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}

	action, err := parseAIAction(r)
	if err != nil {
		handleJSONError(w, err, "parsing action")
		return
	}

	// an empty body means default options
	var payload aiActionPayload
	if err := parseRequestData(r, &payload); err != nil && !errors.Is(errors.Cause(err), io.EOF) {
		handleJSONError(w, err, "parsing payload")
		return
	}

	note, err := c.app.ExecuteAIAction(r.Context(), *user, noteID, action, app.AIActionOptions{
		Style:     payload.Style,
		MaxTokens: payload.MaxTokens,
		MaxLength: payload.MaxLength,
	})
	if err != nil {
		handleJSONError(w, err, "executing AI action")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentNote(note))
}
