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
	"context"
	"strings"

	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/log"
	"github.com/pkg/errors"
)

// AIAction is a transformation kind applied to a note
type AIAction string

// The supported transformation kinds
const (
	AIActionFormat    AIAction = "format"
	AIActionCleanup   AIAction = "cleanup"
	AIActionRefine    AIAction = "refine"
	AIActionPolish    AIAction = "polish"
	AIActionContinue  AIAction = "continue"
	AIActionSummarize AIAction = "summarize"
)

// ErrInvalidAIAction is an error for an unknown transformation kind
var ErrInvalidAIAction = errors.New("Invalid AI action")

// AIActionOptions is the optional per-action parameters
type AIActionOptions struct {
	Style     string
	MaxTokens int
	MaxLength int
}

// summaryContentSeparator sits between the original content and an
// appended summary
const summaryContentSeparator = "\n\n---\nSummary:\n"

// ExecuteAIAction applies the transformation to the note and returns the
// note reloaded after all mutations. Content-bearing notes are transformed
// as a whole; task-bearing notes are transformed per task title, with
// generative fallbacks when there is nothing to transform yet.
func (a *App) ExecuteAIAction(ctx context.Context, user database.User, noteID int, action AIAction, opts AIActionOptions) (database.Note, error) {
	note, err := a.GetNote(user, noteID)
	if err != nil {
		return database.Note{}, err
	}

	switch note.Type {
	case database.NoteTypeContent, database.NoteTypeContentVariant:
		err = a.runContentAction(ctx, note, action, opts)
	case database.NoteTypeTaskList:
		err = a.runTaskAction(ctx, note, action, opts, false)
	case database.NoteTypeNestedTaskList:
		err = a.runTaskAction(ctx, note, action, opts, true)
	default:
		err = ErrInvalidNoteType
	}
	if err != nil {
		return database.Note{}, err
	}

	return a.GetNote(user, noteID)
}

func (a *App) runContentAction(ctx context.Context, note database.Note, action AIAction, opts AIActionOptions) error {
	var content string
	if note.Content.Valid {
		content = note.Content.String
	}

	switch action {
	case AIActionFormat, AIActionCleanup, AIActionRefine, AIActionPolish:
		if content == "" {
			log.WithFields(log.Fields{"note_id": note.ID, "action": action}).Info("note has no content, skipping")
			return nil
		}

		modified, err := a.rewriteContent(ctx, content, note.Title, action, opts)
		if err != nil {
			return err
		}
		if modified == content {
			return nil
		}

		return a.saveNoteContent(note, modified)

	case AIActionContinue:
		// Continuation works from an empty note too, seeded by the title
		generated, err := a.AI.ContinueWriting(ctx, content, note.Title, opts.MaxTokens)
		if err != nil {
			return errors.Wrap(err, "continuing content")
		}
		if generated == "" {
			return nil
		}

		separator := ""
		if content != "" {
			separator = "\n\n"
		}

		return a.saveNoteContent(note, content+separator+generated)

	case AIActionSummarize:
		if content == "" {
			log.WithFields(log.Fields{"note_id": note.ID}).Info("note has no content to summarize")
			return nil
		}

		summary, err := a.AI.SummarizeContent(ctx, content, note.Title, opts.MaxLength)
		if err != nil {
			return errors.Wrap(err, "summarizing content")
		}
		if summary == "" {
			return nil
		}

		return a.saveNoteContent(note, content+summaryContentSeparator+summary)
	}

	return ErrInvalidAIAction
}

func (a *App) rewriteContent(ctx context.Context, content, title string, action AIAction, opts AIActionOptions) (string, error) {
	switch action {
	case AIActionFormat:
		return a.AI.FormatContent(ctx, content, title)
	case AIActionCleanup:
		return a.AI.CleanupContent(ctx, content, title)
	case AIActionRefine:
		return a.AI.RefineContent(ctx, content, title, opts.Style)
	case AIActionPolish:
		return a.AI.PolishContent(ctx, content, title)
	}

	return "", ErrInvalidAIAction
}

func (a *App) saveNoteContent(note database.Note, content string) error {
	if err := a.DB.Model(&database.Note{}).Where("id = ?", note.ID).Update("content", content).Error; err != nil {
		return errors.Wrap(err, "updating note content")
	}

	return nil
}

func (a *App) runTaskAction(ctx context.Context, note database.Note, action AIAction, opts AIActionOptions, nested bool) error {
	switch action {
	case AIActionFormat:
		// Formatting applies to prose, not task titles
		log.WithFields(log.Fields{"note_id": note.ID}).Info("format requested for a task note, skipping")
		return nil

	case AIActionCleanup, AIActionRefine, AIActionPolish:
		if len(note.Tasks) == 0 {
			return a.generateInitialTasks(ctx, note)
		}

		transform := func(ctx context.Context, title, contextTitle string) (string, error) {
			return a.rewriteTaskTitle(ctx, title, contextTitle, action, opts)
		}
		a.applyToTasks(ctx, collectTaskItems(note, nested), transform)

		return nil

	case AIActionContinue:
		return a.generateMoreTasks(ctx, note)

	case AIActionSummarize:
		return a.summarizeTasks(ctx, note, nested)
	}

	return ErrInvalidAIAction
}

func (a *App) rewriteTaskTitle(ctx context.Context, title, contextTitle string, action AIAction, opts AIActionOptions) (string, error) {
	switch action {
	case AIActionCleanup:
		return a.AI.CleanupContent(ctx, title, contextTitle)
	case AIActionRefine:
		return a.AI.RefineContent(ctx, title, contextTitle, opts.Style)
	case AIActionPolish:
		return a.AI.PolishContent(ctx, title, contextTitle)
	}

	return "", ErrInvalidAIAction
}

func (a *App) generateInitialTasks(ctx context.Context, note database.Note) error {
	titles, err := a.AI.GenerateTasks(ctx, note.Title)
	if err != nil {
		return errors.Wrap(err, "generating tasks")
	}
	if len(titles) == 0 {
		log.WithFields(log.Fields{"note_id": note.ID}).Info("no tasks were generated")
		return nil
	}

	noteID := note.ID
	for _, title := range titles {
		task := database.Task{Title: title, NoteID: &noteID}
		if err := a.DB.Create(&task).Error; err != nil {
			return errors.Wrap(err, "inserting generated task")
		}
	}

	log.WithFields(log.Fields{"note_id": note.ID, "count": len(titles)}).Info("created generated tasks")

	return nil
}

func (a *App) generateMoreTasks(ctx context.Context, note database.Note) error {
	existing := make([]string, 0, len(note.Tasks))
	seen := map[string]bool{}
	for _, task := range note.Tasks {
		existing = append(existing, task.Title)
		seen[strings.ToLower(task.Title)] = true
	}

	titles, err := a.AI.GenerateMoreTasks(ctx, note.Title, existing)
	if err != nil {
		return errors.Wrap(err, "generating more tasks")
	}

	noteID := note.ID
	created := 0
	for _, title := range titles {
		if seen[strings.ToLower(title)] {
			continue
		}
		seen[strings.ToLower(title)] = true

		task := database.Task{Title: title, NoteID: &noteID}
		if err := a.DB.Create(&task).Error; err != nil {
			return errors.Wrap(err, "inserting generated task")
		}
		created++
	}

	log.WithFields(log.Fields{"note_id": note.ID, "count": created}).Info("added generated tasks")

	return nil
}

func (a *App) summarizeTasks(ctx context.Context, note database.Note, nested bool) error {
	var titles []string
	if nested {
		for _, parent := range note.Tasks {
			for _, sub := range parent.Tasks {
				if sub.Title != "" {
					titles = append(titles, parent.Title+": "+sub.Title)
				}
			}
		}
	} else {
		for _, task := range note.Tasks {
			if task.Title != "" {
				titles = append(titles, task.Title)
			}
		}
	}

	if len(titles) == 0 {
		log.WithFields(log.Fields{"note_id": note.ID}).Info("note has no tasks to summarize")
		return nil
	}

	summary, err := a.AI.SummarizeTaskList(ctx, titles, note.Title)
	if err != nil {
		return errors.Wrap(err, "summarizing task list")
	}
	if summary == "" || strings.HasPrefix(strings.ToLower(summary), "summary: no tasks") {
		return nil
	}

	noteID := note.ID
	task := database.Task{Title: summary, IsFinished: true, NoteID: &noteID}
	if err := a.DB.Create(&task).Error; err != nil {
		return errors.Wrap(err, "inserting summary task")
	}

	return nil
}
