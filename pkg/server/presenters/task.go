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

// Task is a result of PresentTask
type Task struct {
	ID         int       `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `json:"title"`
	Content    *string   `json:"content"`
	IsFinished bool      `json:"is_finished"`
	NoteID     *int      `json:"note_id"`
	ParentID   *int      `json:"parent_id"`
	Tasks      []Task    `json:"tasks"`
}

// PresentTask presents a task along with its sub-tasks
func PresentTask(task database.Task) Task {
	return Task{
		ID:         task.ID,
		CreatedAt:  FormatTS(task.CreatedAt),
		UpdatedAt:  FormatTS(task.UpdatedAt),
		Title:      task.Title,
		Content:    nullableString(task.Content),
		IsFinished: task.IsFinished,
		NoteID:     task.NoteID,
		ParentID:   task.ParentID,
		Tasks:      PresentTasks(task.Tasks),
	}
}

// PresentTasks presents tasks
func PresentTasks(tasks []database.Task) []Task {
	ret := []Task{}

	for _, task := range tasks {
		p := PresentTask(task)
		ret = append(ret, p)
	}

	return ret
}
