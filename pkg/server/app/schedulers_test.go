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

package app

import (
	"testing"
	"time"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/testutils"
)

func TestSchedulerCRUD(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := NewTest(db)

	note, err := a.CreateNote(user, CreateNoteParams{Title: "remind me", Type: database.NoteTypeContent})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	at := time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC)
	scheduler, err := a.CreateScheduler(user, note.ID, at)
	if err != nil {
		t.Fatal(err, "creating scheduler")
	}
	assert.Equal(t, scheduler.NoteID, note.ID, "note id mismatch")
	assert.Equal(t, scheduler.IsSent, false, "is_sent mismatch")

	later := at.Add(time.Hour)
	updated, err := a.UpdateScheduler(user, scheduler.ID, UpdateSchedulerParams{ScheduledTime: &later})
	if err != nil {
		t.Fatal(err, "updating scheduler")
	}
	assert.Equal(t, updated.ScheduledTime.Equal(later), true, "scheduled time mismatch")

	schedulers, err := a.GetSchedulers(user)
	if err != nil {
		t.Fatal(err, "getting schedulers")
	}
	assert.Equal(t, len(schedulers), 1, "scheduler count mismatch")

	if err := a.DeleteScheduler(user, scheduler.ID); err != nil {
		t.Fatal(err, "deleting scheduler")
	}

	schedulers, err = a.GetSchedulers(user)
	if err != nil {
		t.Fatal(err, "getting schedulers after delete")
	}
	assert.Equal(t, len(schedulers), 0, "scheduler count mismatch")
}

func TestSchedulerOwnership(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	anotherUser := testutils.SetupUserData(db, "bob@example.com", "password123")
	a := NewTest(db)

	note, err := a.CreateNote(user, CreateNoteParams{Title: "mine", Type: database.NoteTypeContent})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	// cannot schedule on someone else's note
	_, err = a.CreateScheduler(anotherUser, note.ID, time.Now())
	assert.Equal(t, err, ErrNotFound, "error mismatch")

	scheduler, err := a.CreateScheduler(user, note.ID, time.Now())
	if err != nil {
		t.Fatal(err, "creating scheduler")
	}

	_, err = a.GetScheduler(anotherUser, scheduler.ID)
	assert.Equal(t, err, ErrNotFound, "another user should not see the scheduler")

	err = a.DeleteScheduler(anotherUser, scheduler.ID)
	assert.Equal(t, err, ErrNotFound, "another user should not delete the scheduler")

	// nor retarget their own scheduler onto someone else's note
	otherNote, err := a.CreateNote(anotherUser, CreateNoteParams{Title: "theirs", Type: database.NoteTypeContent})
	if err != nil {
		t.Fatal(err, "creating other note")
	}
	_, err = a.UpdateScheduler(user, scheduler.ID, UpdateSchedulerParams{NoteID: &otherNote.ID})
	assert.Equal(t, err, ErrNotFound, "error mismatch")
}
