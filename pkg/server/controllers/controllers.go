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

// Package controllers provides the HTTP handlers for the API
package controllers

import (
	"github.com/ainotes/ainotes/pkg/server/app"
)

// Controllers is a group of controllers
type Controllers struct {
	Users      *Users
	Notes      *Notes
	Tasks      *Tasks
	Labels     *Labels
	Schedulers *Schedulers
	AI         *AI
	Health     *Health
}

// New returns a new group of controllers
func New(app *app.App) *Controllers {
	c := Controllers{}

	c.Users = NewUsers(app)
	c.Notes = NewNotes(app)
	c.Tasks = NewTasks(app)
	c.Labels = NewLabels(app)
	c.Schedulers = NewSchedulers(app)
	c.AI = NewAI(app)
	c.Health = NewHealth(app)

	return &c
}
