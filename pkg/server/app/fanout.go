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
	"sync"

	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/log"
	pkgErrors "github.com/pkg/errors"
)

// taskItem is one unit of fan-out work: a task plus the title that grounds
// its transformation (the note title, or the parent task title for
// sub-tasks).
type taskItem struct {
	task    database.Task
	context string
}

// FanoutFailure describes one task whose transformation or persistence
// failed during a fan-out.
type FanoutFailure struct {
	TaskID int
	Reason string
}

// FanoutReport aggregates the outcome of a fan-out over a task tree.
type FanoutReport struct {
	Succeeded int
	Failed    []FanoutFailure
}

// titleTransform rewrites a task title using its grounding context.
type titleTransform func(ctx context.Context, title, contextTitle string) (string, error)

// collectTaskItems flattens the note's task tree into fan-out items. In
// nested mode the items are the sub-tasks grounded by their parent titles;
// in flat mode they are the top-level tasks grounded by the note title.
func collectTaskItems(note database.Note, nested bool) []taskItem {
	var items []taskItem

	if nested {
		for _, parent := range note.Tasks {
			for _, sub := range parent.Tasks {
				items = append(items, taskItem{task: sub, context: parent.Title})
			}
		}

		return items
	}

	for _, task := range note.Tasks {
		items = append(items, taskItem{task: task, context: note.Title})
	}

	return items
}

// applyToTasks runs the transform over every item concurrently, persisting
// changed titles as they come back. Failures are isolated per item: one
// task's error never aborts its siblings. The note itself is not refreshed
// here; callers reload it once after the fan-out settles.
func (a *App) applyToTasks(ctx context.Context, items []taskItem, transform titleTransform) FanoutReport {
	if len(items) == 0 {
		return FanoutReport{}
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		report FanoutReport
	)

	for _, item := range items {
		wg.Add(1)

		go func(item taskItem) {
			defer wg.Done()

			err := a.transformTask(ctx, item, transform)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed = append(report.Failed, FanoutFailure{TaskID: item.task.ID, Reason: err.Error()})
			} else {
				report.Succeeded++
			}
		}(item)
	}

	wg.Wait()

	if len(report.Failed) > 0 {
		log.WithFields(log.Fields{
			"succeeded": report.Succeeded,
			"failed":    len(report.Failed),
		}).Warn("task fan-out finished with failures")
		for _, failure := range report.Failed {
			log.WithFields(log.Fields{
				"task_id": failure.TaskID,
				"reason":  failure.Reason,
			}).Warn("task transformation failed")
		}
	}

	return report
}

func (a *App) transformTask(ctx context.Context, item taskItem, transform titleTransform) error {
	newTitle, err := transform(ctx, item.task.Title, item.context)
	if err != nil {
		return pkgErrors.Wrap(err, "transforming title")
	}
	if newTitle == "" || newTitle == item.task.Title {
		return nil
	}

	if err := a.DB.Model(&database.Task{}).Where("id = ?", item.task.ID).Update("title", newTitle).Error; err != nil {
		return pkgErrors.Wrap(err, "persisting title")
	}

	return nil
}
