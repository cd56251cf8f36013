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

// Scheduler is a result of PresentScheduler
type Scheduler struct {
	ID            int       `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	NoteID        int       `json:"note_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	IsSent        bool      `json:"is_sent"`
}

// PresentScheduler presents a scheduler
func PresentScheduler(scheduler database.Scheduler) Scheduler {
	return Scheduler{
		ID:            scheduler.ID,
		CreatedAt:     FormatTS(scheduler.CreatedAt),
		UpdatedAt:     FormatTS(scheduler.UpdatedAt),
		NoteID:        scheduler.NoteID,
		ScheduledTime: FormatTS(scheduler.ScheduledTime),
		IsSent:        scheduler.IsSent,
	}
}

// PresentSchedulers presents schedulers
func PresentSchedulers(schedulers []database.Scheduler) []Scheduler {
	ret := []Scheduler{}

	for _, scheduler := range schedulers {
		p := PresentScheduler(scheduler)
		ret = append(ret, p)
	}

	return ret
}
