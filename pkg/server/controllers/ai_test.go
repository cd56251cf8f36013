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
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/ai"
	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/testutils"
)

// fixedClient is an AI client that always returns the same response
type fixedClient struct {
	response string
	err      error
}

func (c *fixedClient) GenerateText(ctx context.Context, prompt string, opts ai.GenerateOptions) (string, error) {
	if c.err != nil {
		return "", c.err
	}

	return c.response, nil
}

func TestAIActionHTTP(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	a.AI = ai.NewService(&fixedClient{response: "Tidy content."})
	server := MustNewServer(t, &a)
	defer server.Close()

	content := "messy   content"
	note, err := a.CreateNote(user, app.CreateNoteParams{
		Title:   "draft",
		Type:    database.NoteTypeContent,
		Content: &content,
	})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	req := testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/format", note.ID), "{}")
	res := testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var got struct {
		Content *string `json:"content"`
	}
	mustDecodeJSON(t, res, &got)
	assert.Equal(t, *got.Content, "Tidy content.", "content mismatch")

	var record database.Note
	testutils.MustExec(t, db.Where("id = ?", note.ID).First(&record), "finding note")
	assert.Equal(t, record.Content.String, "Tidy content.", "persisted content mismatch")

	// the /ai prefix serves the same action
	req = testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/ai/%d/format", note.ID), "{}")
	res = testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "ai path status mismatch")
}

func TestAIActionHTTPEmptyBody(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	a.AI = ai.NewService(&fixedClient{response: "And then some more."})
	server := MustNewServer(t, &a)
	defer server.Close()

	content := "Once upon a time."
	note, err := a.CreateNote(user, app.CreateNoteParams{
		Title:   "story",
		Type:    database.NoteTypeContent,
		Content: &content,
	})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	// no body at all still works with default options
	req := testutils.MakeReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/continue", note.ID), "")
	res := testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var record database.Note
	testutils.MustExec(t, db.Where("id = ?", note.ID).First(&record), "finding note")
	assert.Equal(t, record.Content.String, "Once upon a time.\n\nAnd then some more.", "content mismatch")
}

func TestAIActionHTTPUnknownAction(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	note, err := a.CreateNote(user, app.CreateNoteParams{Title: "draft", Type: database.NoteTypeContent})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	req := testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/translate", note.ID), "{}")
	res := testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "status mismatch")
}

func TestAIActionHTTPUpstreamFailure(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	a.AI = ai.NewService(&fixedClient{err: ai.ErrEmptyResponse})
	server := MustNewServer(t, &a)
	defer server.Close()

	content := "important words"
	note, err := a.CreateNote(user, app.CreateNoteParams{
		Title:   "draft",
		Type:    database.NoteTypeContent,
		Content: &content,
	})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	req := testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/summarize", note.ID), "{}")
	res := testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusBadGateway, "status mismatch")

	// failed summarize leaves the note untouched
	var record database.Note
	testutils.MustExec(t, db.Where("id = ?", note.ID).First(&record), "finding note")
	assert.Equal(t, record.Content.String, "important words", "content should be untouched")
}

func TestAIActionHTTPBlocked(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	a.AI = ai.NewService(&fixedClient{err: ai.ErrBlocked})
	server := MustNewServer(t, &a)
	defer server.Close()

	content := "questionable words"
	note, err := a.CreateNote(user, app.CreateNoteParams{
		Title:   "draft",
		Type:    database.NoteTypeContent,
		Content: &content,
	})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	req := testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/format", note.ID), "{}")
	res := testutils.HTTPAuthDo(t, req, user)

	// a safety refusal is a client error, not an upstream outage
	assert.StatusCodeEquals(t, res, http.StatusBadRequest, "status mismatch")

	var body map[string]string
	mustDecodeJSON(t, res, &body)
	assert.Equal(t, strings.Contains(body["detail"], "safety filter"), true, "detail should mention the filter")

	var record database.Note
	testutils.MustExec(t, db.Where("id = ?", note.ID).First(&record), "finding note")
	assert.Equal(t, record.Content.String, "questionable words", "content should be untouched")
}

func TestAIActionHTTPOwnership(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	anotherUser := testutils.SetupUserData(db, "bob@example.com", "password123")
	a := app.NewTest(db)
	a.AI = ai.NewService(&fixedClient{response: "rewritten"})
	server := MustNewServer(t, &a)
	defer server.Close()

	content := "private thoughts"
	note, err := a.CreateNote(user, app.CreateNoteParams{
		Title:   "diary",
		Type:    database.NoteTypeContent,
		Content: &content,
	})
	if err != nil {
		t.Fatal(err, "creating note")
	}

	req := testutils.MakeJSONReq(server.URL, "POST", fmt.Sprintf("/api/v1/notes/%d/cleanup", note.ID), "{}")
	res := testutils.HTTPAuthDo(t, req, anotherUser)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "status mismatch")
}
