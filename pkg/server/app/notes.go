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
	"errors"
	"fmt"
	"strings"

	"github.com/ainotes/ainotes/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateNoteParams is the parameters for creating a note
type CreateNoteParams struct {
	Title      string
	Type       database.NoteType
	Content    *string
	Labels     []string
	IsPinned   bool
	IsFinished bool
	IsArchived bool
}

// CreateNote creates a note owned by the user
func (a *App) CreateNote(user database.User, p CreateNoteParams) (database.Note, error) {
	if p.Title == "" {
		return database.Note{}, ErrTitleRequired
	}
	if !p.Type.Valid() {
		return database.Note{}, ErrInvalidNoteType
	}

	note := database.Note{
		Title:      p.Title,
		Type:       p.Type,
		Labels:     p.Labels,
		IsPinned:   p.IsPinned,
		IsFinished: p.IsFinished,
		IsArchived: p.IsArchived,
		UserID:     user.ID,
	}
	if p.Content != nil {
		note.Content = database.ToNullString(*p.Content)
	}

	if err := a.DB.Create(&note).Error; err != nil {
		return note, pkgErrors.Wrap(err, "inserting note")
	}

	return note, nil
}

// GetNote returns the note with the given id if it belongs to the user,
// with its tasks and sub-tasks preloaded
func (a *App) GetNote(user database.User, noteID int) (database.Note, error) {
	var note database.Note
	conn := database.PreloadNote(a.DB).Where("id = ? AND user_id = ?", noteID, user.ID).First(&note)
	if errors.Is(conn.Error, gorm.ErrRecordNotFound) {
		return note, ErrNotFound
	}
	if conn.Error != nil {
		return note, pkgErrors.Wrap(conn.Error, "finding note")
	}

	return note, nil
}

// NoteQuery is the filters for listing notes
type NoteQuery struct {
	Type       *database.NoteType
	IsPinned   *bool
	IsFinished *bool
	IsArchived *bool
	Search     string
	SortAsc    bool
}

// GetNotes lists the user's notes matching the query. A note matches a
// search phrase iff every word of the phrase is a case-insensitive
// substring of its title or content.
func (a *App) GetNotes(user database.User, q NoteQuery) ([]database.Note, error) {
	conn := database.PreloadNote(a.DB).Where("user_id = ?", user.ID)

	if q.Type != nil {
		conn = conn.Where("type = ?", *q.Type)
	}
	if q.IsPinned != nil {
		conn = conn.Where("is_pinned = ?", *q.IsPinned)
	}
	if q.IsFinished != nil {
		conn = conn.Where("is_finished = ?", *q.IsFinished)
	}
	if q.IsArchived != nil {
		conn = conn.Where("is_archived = ?", *q.IsArchived)
	}

	for _, word := range strings.Fields(q.Search) {
		pattern := fmt.Sprintf("%%%s%%", strings.ToLower(word))
		conn = conn.Where("LOWER(title) LIKE ? OR LOWER(COALESCE(content, '')) LIKE ?", pattern, pattern)
	}

	// id breaks ties between rows updated within the same instant
	order := "updated_at DESC, id DESC"
	if q.SortAsc {
		order = "updated_at ASC, id ASC"
	}

	var notes []database.Note
	if err := conn.Order(order).Find(&notes).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding notes")
	}

	return notes, nil
}

// UpdateNoteParams is the parameters for updating a note. Nil fields are
// left untouched.
type UpdateNoteParams struct {
	Title      *string
	Type       *database.NoteType
	Content    *string
	Labels     []string
	IsPinned   *bool
	IsFinished *bool
	IsArchived *bool
}

// UpdateNote patches the note with the given id if it belongs to the user
func (a *App) UpdateNote(user database.User, noteID int, p UpdateNoteParams) (database.Note, error) {
	note, err := a.GetNote(user, noteID)
	if err != nil {
		return note, err
	}

	if p.Title != nil {
		if *p.Title == "" {
			return note, ErrTitleRequired
		}
		note.Title = *p.Title
	}
	if p.Type != nil {
		if !p.Type.Valid() {
			return note, ErrInvalidNoteType
		}
		note.Type = *p.Type
	}
	if p.Content != nil {
		note.Content = database.ToNullString(*p.Content)
	}
	if p.Labels != nil {
		note.Labels = p.Labels
	}
	if p.IsPinned != nil {
		note.IsPinned = *p.IsPinned
	}
	if p.IsFinished != nil {
		note.IsFinished = *p.IsFinished
	}
	if p.IsArchived != nil {
		note.IsArchived = *p.IsArchived
	}

	if err := a.DB.Save(&note).Error; err != nil {
		return note, pkgErrors.Wrap(err, "saving note")
	}

	return note, nil
}

// DeleteNote deletes the note with the given id if it belongs to the user.
// Its tasks and sub-tasks go with it.
func (a *App) DeleteNote(user database.User, noteID int) error {
	note, err := a.GetNote(user, noteID)
	if err != nil {
		return err
	}

	tx := a.DB.Begin()
	// Constraint-level cascades do not fire on sqlite without foreign_keys
	// pragma, so remove the task tree explicitly.
	if err := tx.Where("parent_id IN (?)", tx.Session(&gorm.Session{NewDB: true}).Model(&database.Task{}).Select("id").Where("note_id = ?", note.ID)).Delete(&database.Task{}).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting sub-tasks")
	}
	if err := tx.Where("note_id = ?", note.ID).Delete(&database.Task{}).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting tasks")
	}
	if err := tx.Where("note_id = ?", note.ID).Delete(&database.Scheduler{}).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting schedulers")
	}
	if err := tx.Delete(&note).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting note")
	}
	tx.Commit()

	return nil
}
