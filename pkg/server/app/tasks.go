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

	"github.com/ainotes/ainotes/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateTaskParams is the parameters for creating a task
type CreateTaskParams struct {
	Title      string
	Content    *string
	IsFinished bool
	ParentID   *int
}

// getNoteTask returns the task with the given id if it belongs to the
// note, either directly or through its parent task
func (a *App) getNoteTask(note database.Note, taskID int) (database.Task, error) {
	var task database.Task
	conn := a.DB.Where("id = ?", taskID).First(&task)
	if errors.Is(conn.Error, gorm.ErrRecordNotFound) {
		return task, ErrNotFound
	}
	if conn.Error != nil {
		return task, pkgErrors.Wrap(conn.Error, "finding task")
	}

	if task.NoteID != nil && *task.NoteID == note.ID {
		return task, nil
	}
	if task.ParentID != nil {
		var parent database.Task
		conn := a.DB.Where("id = ?", *task.ParentID).First(&parent)
		if conn.Error != nil {
			return task, pkgErrors.Wrap(conn.Error, "finding parent task")
		}
		if parent.NoteID != nil && *parent.NoteID == note.ID {
			return task, nil
		}
	}

	return task, ErrNotFound
}

// CreateTask creates a task on the note. With ParentID set the task becomes
// a sub-task of that parent and carries no note id of its own.
func (a *App) CreateTask(user database.User, noteID int, p CreateTaskParams) (database.Task, error) {
	note, err := a.GetNote(user, noteID)
	if err != nil {
		return database.Task{}, err
	}
	if p.Title == "" {
		return database.Task{}, ErrTitleRequired
	}

	task := database.Task{
		Title:      p.Title,
		IsFinished: p.IsFinished,
	}
	if p.Content != nil {
		task.Content = database.ToNullString(*p.Content)
	}

	if p.ParentID != nil {
		parent, err := a.getNoteTask(note, *p.ParentID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return task, ErrInvalidParentTask
			}
			return task, err
		}
		if parent.NoteID == nil || *parent.NoteID != note.ID {
			// only top-level tasks can parent sub-tasks
			return task, ErrInvalidParentTask
		}
		task.ParentID = &parent.ID
	} else {
		noteID := note.ID
		task.NoteID = &noteID
	}

	if err := a.DB.Create(&task).Error; err != nil {
		return task, pkgErrors.Wrap(err, "inserting task")
	}

	return task, nil
}

// GetTasks lists the note's top-level tasks with their sub-tasks preloaded
func (a *App) GetTasks(user database.User, noteID int) ([]database.Task, error) {
	note, err := a.GetNote(user, noteID)
	if err != nil {
		return nil, err
	}

	return note.Tasks, nil
}

// UpdateTaskParams is the parameters for updating a task. Nil fields are
// left untouched.
type UpdateTaskParams struct {
	Title      *string
	Content    *string
	IsFinished *bool
	ParentID   *int
}

// UpdateTask patches the task with the given id if it belongs to the
// user's note
func (a *App) UpdateTask(user database.User, noteID, taskID int, p UpdateTaskParams) (database.Task, error) {
	note, err := a.GetNote(user, noteID)
	if err != nil {
		return database.Task{}, err
	}

	task, err := a.getNoteTask(note, taskID)
	if err != nil {
		return task, err
	}

	if p.Title != nil {
		if *p.Title == "" {
			return task, ErrTitleRequired
		}
		task.Title = *p.Title
	}
	if p.Content != nil {
		task.Content = database.ToNullString(*p.Content)
	}
	if p.IsFinished != nil {
		task.IsFinished = *p.IsFinished
	}
	if p.ParentID != nil {
		if *p.ParentID == task.ID {
			return task, ErrInvalidParentTask
		}
		// a task with sub-tasks cannot become a sub-task itself
		var children int64
		if err := a.DB.Model(&database.Task{}).Where("parent_id = ?", task.ID).Count(&children).Error; err != nil {
			return task, pkgErrors.Wrap(err, "counting sub-tasks")
		}
		if children > 0 {
			return task, ErrInvalidParentTask
		}

		parent, err := a.getNoteTask(note, *p.ParentID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return task, ErrInvalidParentTask
			}
			return task, err
		}
		if parent.NoteID == nil || *parent.NoteID != note.ID {
			return task, ErrInvalidParentTask
		}

		task.ParentID = &parent.ID
		task.NoteID = nil
	}

	if err := a.DB.Save(&task).Error; err != nil {
		return task, pkgErrors.Wrap(err, "saving task")
	}

	return task, nil
}

// DeleteTask deletes the task with the given id if it belongs to the
// user's note, along with its sub-tasks
func (a *App) DeleteTask(user database.User, noteID, taskID int) error {
	note, err := a.GetNote(user, noteID)
	if err != nil {
		return err
	}

	task, err := a.getNoteTask(note, taskID)
	if err != nil {
		return err
	}

	tx := a.DB.Begin()
	if err := tx.Where("parent_id = ?", task.ID).Delete(&database.Task{}).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting sub-tasks")
	}
	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return pkgErrors.Wrap(err, "deleting task")
	}
	tx.Commit()

	return nil
}
