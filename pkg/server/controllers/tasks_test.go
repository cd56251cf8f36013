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

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/testutils"
)

func TestTasksHTTP(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	note, err := a.CreateNote(user, app.CreateNoteParams{Title: "packing", Type: database.NoteTypeNestedTaskList})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	// create a parent task
	req := testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/tasks", note.ID),
		`{"title": "clothes"}`)
	res := testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusCreated, "status mismatch")

	var parent struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	mustDecodeJSON(t, res, &parent)
	assert.Equal(t, parent.Title, "clothes", "title mismatch")

	// create a sub-task
	req = testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/tasks", note.ID),
		testutils.MustMarshalJSON(t, map[string]interface{}{"title": "socks", "parent_id": parent.ID}))
	res = testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusCreated, "status mismatch")

	// list comes back as a tree
	req = testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/api/v1/notes/%d/tasks", note.ID), "")
	res = testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var tree []struct {
		Title string `json:"title"`
		Tasks []struct {
			Title string `json:"title"`
		} `json:"tasks"`
	}
	mustDecodeJSON(t, res, &tree)
	assert.Equal(t, len(tree), 1, "top-level task count mismatch")
	assert.Equal(t, tree[0].Title, "clothes", "parent title mismatch")
	assert.Equal(t, len(tree[0].Tasks), 1, "sub task count mismatch")
	assert.Equal(t, tree[0].Tasks[0].Title, "socks", "sub task title mismatch")
}

func TestTaskUpdateHTTP(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	note, err := a.CreateNote(user, app.CreateNoteParams{Title: "chores", Type: database.NoteTypeTaskList})
	if err != nil {
		t.Fatal(err, "creating note")
	}
	task, err := a.CreateTask(user, note.ID, app.CreateTaskParams{Title: "dishes"})
	if err != nil {
		t.Fatal(err, "creating task")
	}

	req := testutils.MakeJSONReq(server.URL, "PATCH",
		fmt.Sprintf("/api/v1/notes/%d/tasks/%d", note.ID, task.ID), `{"is_finished": true}`)
	res := testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var record database.Task
	testutils.MustExec(t, db.Where("id = ?", task.ID).First(&record), "finding task")
	assert.Equal(t, record.IsFinished, true, "finished mismatch")
	assert.Equal(t, record.Title, "dishes", "title should be untouched")
}

func TestTaskDeleteHTTP(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	note, err := a.CreateNote(user, app.CreateNoteParams{Title: "chores", Type: database.NoteTypeTaskList})
	if err != nil {
		t.Fatal(err, "creating note")
	}
	task, err := a.CreateTask(user, note.ID, app.CreateTaskParams{Title: "dishes"})
	if err != nil {
		t.Fatal(err, "creating task")
	}

	req := testutils.MakeReq(server.URL, "DELETE",
		fmt.Sprintf("/api/v1/notes/%d/tasks/%d", note.ID, task.ID), "")
	res := testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusNoContent, "status mismatch")

	var count int64
	testutils.MustExec(t, db.Model(&database.Task{}).Count(&count), "counting tasks")
	assert.Equal(t, count, int64(0), "task count mismatch")
}
