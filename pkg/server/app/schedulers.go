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
	"time"

	"github.com/ainotes/ainotes/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateScheduler schedules a reminder on one of the user's notes
func (a *App) CreateScheduler(user database.User, noteID int, scheduledTime time.Time) (database.Scheduler, error) {
	if _, err := a.GetNote(user, noteID); err != nil {
		return database.Scheduler{}, err
	}

	scheduler := database.Scheduler{
		NoteID:        noteID,
		ScheduledTime: scheduledTime,
	}
	if err := a.DB.Create(&scheduler).Error; err != nil {
		return scheduler, pkgErrors.Wrap(err, "inserting scheduler")
	}

	return scheduler, nil
}

// GetScheduler returns the scheduler with the given id if its note belongs
// to the user
func (a *App) GetScheduler(user database.User, schedulerID int) (database.Scheduler, error) {
	var scheduler database.Scheduler
	conn := a.DB.
		Joins("JOIN notes ON notes.id = schedulers.note_id").
		Where("schedulers.id = ? AND notes.user_id = ?", schedulerID, user.ID).
		First(&scheduler)
	if errors.Is(conn.Error, gorm.ErrRecordNotFound) {
		return scheduler, ErrNotFound
	}
	if conn.Error != nil {
		return scheduler, pkgErrors.Wrap(conn.Error, "finding scheduler")
	}

	return scheduler, nil
}

// GetSchedulers lists the schedulers on the user's notes
func (a *App) GetSchedulers(user database.User) ([]database.Scheduler, error) {
	var schedulers []database.Scheduler
	err := a.DB.
		Joins("JOIN notes ON notes.id = schedulers.note_id").
		Where("notes.user_id = ?", user.ID).
		Order("schedulers.id ASC").
		Find(&schedulers).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding schedulers")
	}

	return schedulers, nil
}

// UpdateSchedulerParams is the parameters for updating a scheduler
type UpdateSchedulerParams struct {
	NoteID        *int
	ScheduledTime *time.Time
	IsSent        *bool
}

// UpdateScheduler patches the scheduler with the given id if its note
// belongs to the user
func (a *App) UpdateScheduler(user database.User, schedulerID int, p UpdateSchedulerParams) (database.Scheduler, error) {
	scheduler, err := a.GetScheduler(user, schedulerID)
	if err != nil {
		return scheduler, err
	}

	if p.NoteID != nil {
		// the new target must belong to the caller too
		if _, err := a.GetNote(user, *p.NoteID); err != nil {
			return scheduler, err
		}
		scheduler.NoteID = *p.NoteID
	}
	if p.ScheduledTime != nil {
		scheduler.ScheduledTime = *p.ScheduledTime
	}
	if p.IsSent != nil {
		scheduler.IsSent = *p.IsSent
	}

	if err := a.DB.Save(&scheduler).Error; err != nil {
		return scheduler, pkgErrors.Wrap(err, "saving scheduler")
	}

	return scheduler, nil
}

// DeleteScheduler deletes the scheduler with the given id if its note
// belongs to the user
func (a *App) DeleteScheduler(user database.User, schedulerID int) error {
	scheduler, err := a.GetScheduler(user, schedulerID)
	if err != nil {
		return err
	}

	if err := a.DB.Delete(&scheduler).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting scheduler")
	}

	return nil
}
