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

// NoteType distinguishes content-bearing notes from task-bearing notes.
// The wire values are fixed; clients depend on them.
type NoteType int

const (
	// NoteTypeContent is a plain free-text note
	NoteTypeContent NoteType = 1
	// NoteTypeTaskList is a flat list of tasks directly under the note
	NoteTypeTaskList NoteType = 2
	// NoteTypeNestedTaskList is a two-level list of parent tasks and sub-tasks
	NoteTypeNestedTaskList NoteType = 3
	// NoteTypeContentVariant is a content-bearing variant of a plain note
	NoteTypeContentVariant NoteType = 4
)

// ContentBearing reports whether AI actions operate on the note's content
func (t NoteType) ContentBearing() bool {
	return t == NoteTypeContent || t == NoteTypeContentVariant
}

// TaskBearing reports whether AI actions operate on the note's task tree
func (t NoteType) TaskBearing() bool {
	return t == NoteTypeTaskList || t == NoteTypeNestedTaskList
}

// Valid reports whether t is one of the known note types
func (t NoteType) Valid() bool {
	switch t {
	case NoteTypeContent, NoteTypeTaskList, NoteTypeNestedTaskList, NoteTypeContentVariant:
		return true
	}

	return false
}
