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
	"strconv"

	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/context"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/presenters"
)

// NewNotes creates a new Notes controller.
func NewNotes(app *app.App) *Notes {
	return &Notes{
		app: app,
	}
}

// Notes is a note controller.
type Notes struct {
	app *app.App
}

type createNotePayload struct {
	Title      string   `json:"title"`
	Type       int      `json:"type"`
	Content    *string  `json:"content"`
	Labels     []string `json:"labels"`
	IsPinned   bool     `json:"is_pinned"`
	IsFinished bool     `json:"is_finished"`
	IsArchived bool     `json:"is_archived"`
}

// Create handles POST /v1/notes
func (n *Notes) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload createNotePayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	note, err := n.app.CreateNote(*user, app.CreateNoteParams{
		Title:      payload.Title,
		Type:       database.NoteType(payload.Type),
		Content:    payload.Content,
		Labels:     payload.Labels,
		IsPinned:   payload.IsPinned,
		IsFinished: payload.IsFinished,
		IsArchived: payload.IsArchived,
	})
	if err != nil {
		handleJSONError(w, err, "creating note")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentNote(note))
}

// parseNoteQuery reads the note list filters from the query string
func parseNoteQuery(r *http.Request) app.NoteQuery {
	q := r.URL.Query()
	ret := app.NoteQuery{
		Search:  q.Get("search"),
		SortAsc: q.Get("sort") == "asc",
	}

	if val := q.Get("type"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			t := database.NoteType(parsed)
			ret.Type = &t
		}
	}

	for param, field := range map[string]**bool{
		"is_pinned":   &ret.IsPinned,
		"is_finished": &ret.IsFinished,
		"is_archived": &ret.IsArchived,
	} {
		if val := r.URL.Query().Get(param); val != "" {
			if parsed, err := strconv.ParseBool(val); err == nil {
				*field = &parsed
			}
		}
	}

	return ret
}

// Index handles GET /v1/notes
func (n *Notes) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	notes, err := n.app.GetNotes(*user, parseNoteQuery(r))
	if err != nil {
		handleJSONError(w, err, "getting notes")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentNotes(notes))
}

// Show handles GET /v1/notes/{noteID}
func (n *Notes) Show(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}

	note, err := n.app.GetNote(*user, noteID)
	if err != nil {
		handleJSONError(w, err, "getting note")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentNote(note))
}

type updateNotePayload struct {
	Title      *string  `json:"title"`
	Type       *int     `json:"type"`
	Content    *string  `json:"content"`
	Labels     []string `json:"labels"`
	IsPinned   *bool    `json:"is_pinned"`
	IsFinished *bool    `json:"is_finished"`
	IsArchived *bool    `json:"is_archived"`
}

// Update handles PATCH /v1/notes/{noteID}
func (n *Notes) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}

	var payload updateNotePayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	params := app.UpdateNoteParams{
		Title:      payload.Title,
		Content:    payload.Content,
		Labels:     payload.Labels,
		IsPinned:   payload.IsPinned,
		IsFinished: payload.IsFinished,
		IsArchived: payload.IsArchived,
	}
	if payload.Type != nil {
		t := database.NoteType(*payload.Type)
		params.Type = &t
	}

	note, err := n.app.UpdateNote(*user, noteID, params)
	if err != nil {
		handleJSONError(w, err, "updating note")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentNote(note))
}

// Delete handles DELETE /v1/notes/{noteID}
func (n *Notes) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}

	if err := n.app.DeleteNote(*user, noteID); err != nil {
		handleJSONError(w, err, "deleting note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
