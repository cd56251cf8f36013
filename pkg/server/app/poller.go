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
	"sync"

	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/log"
	pkgErrors "github.com/pkg/errors"
	"github.com/robfig/cron"
)

// pollerSpec is how often due schedulers are checked
const pollerSpec = "@every 30s"

// Poller periodically delivers due scheduler reminders. Cycles are
// serialized by a mutex so two never overlap.
type Poller struct {
	app  *App
	cron *cron.Cron
	mu   sync.Mutex
}

// NewPoller creates a poller for the app
func NewPoller(app *App) *Poller {
	return &Poller{
		app:  app,
		cron: cron.New(),
	}
}

// Start begins polling in the background
func (p *Poller) Start() error {
	if err := p.cron.AddFunc(pollerSpec, p.RunCycle); err != nil {
		return pkgErrors.Wrap(err, "scheduling poller")
	}
	p.cron.Start()

	log.Info("scheduler poller started")

	return nil
}

// Stop stops polling. A cycle in flight finishes first.
func (p *Poller) Stop() {
	p.cron.Stop()
	p.mu.Lock()
	defer p.mu.Unlock()

	log.Info("scheduler poller stopped")
}

// RunCycle processes every due scheduler once. Errors are logged and never
// propagate; a bad row must not kill the loop.
func (p *Poller) RunCycle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	var due []database.Scheduler
	err := p.app.DB.
		Where("is_sent = ? AND scheduled_time <= ?", false, p.app.Clock.Now()).
		Find(&due).Error
	if err != nil {
		log.ErrorWrap(err, "finding due schedulers")
		return
	}

	for _, scheduler := range due {
		if err := p.deliver(scheduler); err != nil {
			log.WithFields(log.Fields{
				"scheduler_id": scheduler.ID,
			}).ErrorWrap(err, "delivering reminder")
		}
	}
}

func (p *Poller) deliver(scheduler database.Scheduler) error {
	var note database.Note
	if err := p.app.DB.Where("id = ?", scheduler.NoteID).First(&note).Error; err != nil {
		return pkgErrors.Wrap(err, "finding note")
	}

	var user database.User
	if err := p.app.DB.Where("id = ?", note.UserID).First(&user).Error; err != nil {
		return pkgErrors.Wrap(err, "finding user")
	}

	// Delivery channel is a log line for now. Sent is permanent either way.
	log.WithFields(log.Fields{
		"scheduler_id": scheduler.ID,
		"note_id":      note.ID,
		"user_id":      user.ID,
		"note_title":   note.Title,
	}).Info("scheduler reminder due")

	if err := p.app.DB.Model(&scheduler).Update("is_sent", true).Error; err != nil {
		return pkgErrors.Wrap(err, "marking scheduler sent")
	}

	return nil
}
