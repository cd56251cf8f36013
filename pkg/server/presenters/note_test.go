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

package presenters

import (
	"testing"
	"time"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/google/go-cmp/cmp"
)

func TestPresentNote(t *testing.T) {
	noteID := 1
	ts := time.Date(2025, time.March, 1, 12, 0, 0, 500, time.UTC)

	note := database.Note{
		Model:   database.Model{ID: noteID, CreatedAt: ts, UpdatedAt: ts},
		Title:   "packing",
		Type:    database.NoteTypeNestedTaskList,
		Content: database.NullString{},
		Tasks: []database.Task{
			{
				Model:  database.Model{ID: 2},
				Title:  "clothes",
				NoteID: &noteID,
				Tasks: []database.Task{
					{Model: database.Model{ID: 3}, Title: "socks"},
				},
			},
		},
	}

	got := PresentNote(note)

	assert.Equal(t, got.Title, "packing", "title mismatch")
	assert.Equal(t, got.Content, (*string)(nil), "null content should present as nil")
	assert.Equal(t, len(got.Labels), 0, "labels should present as an empty list")
	assert.Equal(t, len(got.Tasks), 1, "task count mismatch")
	assert.Equal(t, got.Tasks[0].Title, "clothes", "task title mismatch")
	assert.Equal(t, len(got.Tasks[0].Tasks), 1, "sub task count mismatch")
	assert.Equal(t, got.Tasks[0].Tasks[0].Title, "socks", "sub task title mismatch")

	// timestamps are normalized to UTC microseconds
	if diff := cmp.Diff(got.CreatedAt, ts.Round(time.Microsecond)); diff != "" {
		t.Errorf("created_at mismatch (-got +want):\n%s", diff)
	}
}

func TestPresentNotesEmpty(t *testing.T) {
	got := PresentNotes(nil)

	// an empty result serializes as [] rather than null
	if got == nil {
		t.Fatal("result should not be nil")
	}
	assert.Equal(t, len(got), 0, "result should be empty")
}
