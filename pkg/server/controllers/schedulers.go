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
	"time"

	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/context"
	"github.com/ainotes/ainotes/pkg/server/presenters"
)

// NewSchedulers creates a new Schedulers controller.
func NewSchedulers(app *app.App) *Schedulers {
	return &Schedulers{
		app: app,
	}
}

// Schedulers is a scheduler controller.
type Schedulers struct {
	app *app.App
}

type createSchedulerPayload struct {
	NoteID        int       `json:"note_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
}

// Create handles POST /v1/scheduler
func (c *Schedulers) Create(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload createSchedulerPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	scheduler, err := c.app.CreateScheduler(*user, payload.NoteID, payload.ScheduledTime)
	if err != nil {
		handleJSONError(w, err, "creating scheduler")
		return
	}

	respondJSON(w, http.StatusCreated, presenters.PresentScheduler(scheduler))
}

// Index handles GET /v1/scheduler
func (c *Schedulers) Index(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	schedulers, err := c.app.GetSchedulers(*user)
	if err != nil {
		handleJSONError(w, err, "getting schedulers")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentSchedulers(schedulers))
}

// Show handles GET /v1/scheduler/{schedulerID}
func (c *Schedulers) Show(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	schedulerID, err := getIntParam(r, "schedulerID")
	if err != nil {
		handleJSONError(w, err, "parsing scheduler id")
		return
	}

	scheduler, err := c.app.GetScheduler(*user, schedulerID)
	if err != nil {
		handleJSONError(w, err, "getting scheduler")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentScheduler(scheduler))
}

type updateSchedulerPayload struct {
	NoteID        *int       `json:"note_id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	IsSent        *bool      `json:"is_sent"`
}

// Update handles PATCH /v1/scheduler/{schedulerID}
func (c *Schedulers) Update(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	schedulerID, err := getIntParam(r, "schedulerID")
	if err != nil {
		handleJSONError(w, err, "parsing scheduler id")
		return
	}

	var payload updateSchedulerPayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	scheduler, err := c.app.UpdateScheduler(*user, schedulerID, app.UpdateSchedulerParams{
		NoteID:        payload.NoteID,
		ScheduledTime: payload.ScheduledTime,
		IsSent:        payload.IsSent,
	})
	if err != nil {
		handleJSONError(w, err, "updating scheduler")
		return
	}

	respondJSON(w, http.StatusOK, presenters.PresentScheduler(scheduler))
}

// Delete handles DELETE /v1/scheduler/{schedulerID}
func (c *Schedulers) Delete(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	schedulerID, err := getIntParam(r, "schedulerID")
	if err != nil {
		handleJSONError(w, err, "parsing scheduler id")
		return
	}

	if err := c.app.DeleteScheduler(*user, schedulerID); err != nil {
		handleJSONError(w, err, "deleting scheduler")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
