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
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/testutils"
)

func TestSchedulersHTTP(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	note, err := a.CreateNote(user, app.CreateNoteParams{Title: "remind me", Type: database.NoteTypeContent})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	at := time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC)

	// create
	req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/scheduler",
		testutils.MustMarshalJSON(t, map[string]interface{}{
			"note_id":        note.ID,
			"scheduled_time": at,
		}))
	res := testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusCreated, "status mismatch")

	var scheduler struct {
		ID     int  `json:"id"`
		NoteID int  `json:"note_id"`
		IsSent bool `json:"is_sent"`
	}
	mustDecodeJSON(t, res, &scheduler)
	assert.Equal(t, scheduler.NoteID, note.ID, "note id mismatch")
	assert.Equal(t, scheduler.IsSent, false, "is_sent mismatch")

	// list
	req = testutils.MakeReq(server.URL, "GET", "/api/v1/scheduler", "")
	res = testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var schedulers []struct {
		ID int `json:"id"`
	}
	mustDecodeJSON(t, res, &schedulers)
	assert.Equal(t, len(schedulers), 1, "scheduler count mismatch")

	// update
	later := at.Add(time.Hour)
	req = testutils.MakeJSONReq(server.URL, "PATCH", fmt.Sprintf("/api/v1/scheduler/%d", scheduler.ID),
		testutils.MustMarshalJSON(t, map[string]interface{}{"scheduled_time": later}))
	res = testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var record database.Scheduler
	testutils.MustExec(t, db.Where("id = ?", scheduler.ID).First(&record), "finding scheduler")
	assert.Equal(t, record.ScheduledTime.UTC().Equal(later), true, "scheduled time mismatch")

	// delete
	req = testutils.MakeReq(server.URL, "DELETE", fmt.Sprintf("/api/v1/scheduler/%d", scheduler.ID), "")
	res = testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusNoContent, "status mismatch")

	var count int64
	testutils.MustExec(t, db.Model(&database.Scheduler{}).Count(&count), "counting schedulers")
	assert.Equal(t, count, int64(0), "scheduler count mismatch")
}

func TestSchedulersHTTPOwnership(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	anotherUser := testutils.SetupUserData(db, "bob@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	note, err := a.CreateNote(user, app.CreateNoteParams{Title: "mine", Type: database.NoteTypeContent})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	// scheduling on someone else's note is a not-found
	req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/scheduler",
		testutils.MustMarshalJSON(t, map[string]interface{}{
			"note_id":        note.ID,
			"scheduled_time": time.Now().Add(time.Hour),
		}))
	res := testutils.HTTPAuthDo(t, req, anotherUser)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "status mismatch")
}
