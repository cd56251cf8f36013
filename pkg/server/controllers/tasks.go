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

// NewTasks creates a new Tasks controller.
func NewTasks(app *app.App) *Tasks {
	return &Tasks{
		app: app,
	}
}

// Tasks is a task controller.
type Tasks struct {
	app *app.App
}

type createTaskPayload struct {
	Title      string  `json:"title"`
	Content    *string `json:"content"`
	IsFinished bool    `json:"is_finished"`
	ParentID   *int    `json:"parent_id"`
}

// Create handles POST /v1/notes/{noteID}/tasks
func (c *Tasks) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}

	var payload createTaskPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	task, err := c.app.CreateTask(*user, noteID, app.CreateTaskParams{
		Title:      payload.Title,
		Content:    payload.Content,
		IsFinished: payload.IsFinished,
		ParentID:   payload.ParentID,
	})
	if err != nil {
		handleJSONError(w, err, "creating task")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentTask(task))
}

// Index handles GET /v1/notes/{noteID}/tasks
func (c *Tasks) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}

	tasks, err := c.app.GetTasks(*user, noteID)
	if err != nil {
		handleJSONError(w, err, "getting tasks")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentTasks(tasks))
}

type updateTaskPayload struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	IsFinished *bool   `json:"is_finished"`
	ParentID   *int    `json:"parent_id"`
}

// Update handles PATCH /v1/notes/{noteID}/tasks/{taskID}
func (c *Tasks) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}
	taskID, err := getIntParam(r, "taskID")
	if err != nil {
		handleJSONError(w, err, "parsing task id")
		return
	}

	var payload updateTaskPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	task, err := c.app.UpdateTask(*user, noteID, taskID, app.UpdateTaskParams{
		Title:      payload.Title,
		Content:    payload.Content,
		IsFinished: payload.IsFinished,
		ParentID:   payload.ParentID,
	})
	if err != nil {
		handleJSONError(w, err, "updating task")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentTask(task))
}

// Delete handles DELETE /v1/notes/{noteID}/tasks/{taskID}
func (c *Tasks) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	noteID, err := getIntParam(r, "noteID")
	if err != nil {
		handleJSONError(w, err, "parsing note id")
		return
	}
	taskID, err := getIntParam(r, "taskID")
	if err != nil {
		handleJSONError(w, err, "parsing task id")
		return
	}

	if err := c.app.DeleteTask(*user, noteID, taskID); err != nil {
		handleJSONError(w, err, "deleting task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
