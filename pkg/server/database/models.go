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

package database

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model definition
type Model struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// User is a model for a user
type User struct {
	Model
	FullName  string     `json:"full_name"`
	Email     string     `json:"email" gorm:"uniqueIndex"`
	Password  string     `json:"-"`
	AvatarURL NullString `json:"avatar_url"`
	Setting   *Setting   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Notes     []Note     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Labels    []Label    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Setting is a model for per-user preferences. Exactly one row exists
// per user; it is materialized on first read.
type Setting struct {
	Model
	UserID             int  `json:"user_id" gorm:"uniqueIndex"`
	TextSize           int  `json:"text_size" gorm:"default:2"`
	Theme              int  `json:"theme" gorm:"default:0"`
	EmailNotifications bool `json:"email_notifications" gorm:"default:true"`
	PushNotifications  bool `json:"push_notifications" gorm:"default:true"`
}

// Label is a model for a label
type Label struct {
	Model
	Name   string `json:"name" gorm:"index"`
	Color  int    `json:"color"`
	UserID int    `json:"user_id" gorm:"index"`
}

// Note is a model for a note
type Note struct {
	Model
	Title      string      `json:"title"`
	Type       NoteType    `json:"type" gorm:"index"`
	Content    NullString  `json:"content"`
	Labels     StringSlice `json:"labels" gorm:"type:text"`
	IsPinned   bool        `json:"is_pinned" gorm:"default:false"`
	IsFinished bool        `json:"is_finished" gorm:"default:false"`
	IsArchived bool        `json:"is_archived" gorm:"default:false"`
	UserID     int         `json:"user_id" gorm:"index"`
	Tasks      []Task      `json:"tasks" gorm:"constraint:OnDelete:CASCADE"`
}

// Task is a model for a task. A task belongs either directly to a note
// (top-level, NoteID set) or to a parent task (sub-task, ParentID set),
// never to both.
type Task struct {
	Model
	Title      string     `json:"title"`
	Content    NullString `json:"content"`
	IsFinished bool       `json:"is_finished" gorm:"default:false"`
	NoteID     *int       `json:"note_id" gorm:"index"`
	ParentID   *int       `json:"parent_id" gorm:"index"`
	Tasks      []Task     `json:"tasks" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// Scheduler is a model for a scheduled reminder on a note
type Scheduler struct {
	Model
	NoteID        int       `json:"note_id" gorm:"index"`
	ScheduledTime time.Time `json:"scheduled_time" gorm:"index"`
	IsSent        bool      `json:"is_sent" gorm:"default:false;index"`
}

// PreloadNote preloads a note's tasks along with their sub-tasks
func PreloadNote(conn *gorm.DB) *gorm.DB {
	return conn.Preload("Tasks", func(db *gorm.DB) *gorm.DB {
		return db.Where("parent_id IS NULL").Order("tasks.id ASC")
	}).Preload("Tasks.Tasks", func(db *gorm.DB) *gorm.DB {
		return db.Order("tasks.id ASC")
	})
}
