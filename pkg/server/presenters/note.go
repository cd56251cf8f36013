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
	"time"

	"github.com/ainotes/ainotes/pkg/server/database"
)

// Note is a result of PresentNote
type Note struct {
	ID         int               `json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Title      string            `json:"title"`
	Type       database.NoteType `json:"type"`
	Content    *string           `json:"content"`
	Labels     []string          `json:"labels"`
	IsPinned   bool              `json:"is_pinned"`
	IsFinished bool              `json:"is_finished"`
	IsArchived bool              `json:"is_archived"`
	Tasks      []Task            `json:"tasks"`
}

// PresentNote presents a note along with its task tree
func PresentNote(note database.Note) Note {
	labels := []string(note.Labels)
	if labels == nil {
		labels = []string{}
	}

	return Note{
		ID:         note.ID,
		CreatedAt:  FormatTS(note.CreatedAt),
		UpdatedAt:  FormatTS(note.UpdatedAt),
		Title:      note.Title,
		Type:       note.Type,
		Content:    nullableString(note.Content),
		Labels:     labels,
		IsPinned:   note.IsPinned,
		IsFinished: note.IsFinished,
		IsArchived: note.IsArchived,
		Tasks:      PresentTasks(note.Tasks),
	}
}

// PresentNotes presents notes
func PresentNotes(notes []database.Note) []Note {
	ret := []Note{}

	for _, note := range notes {
		p := PresentNote(note)
		ret = append(ret, p)
	}

	return ret
}
