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

// Package app provides the application services
package app

import (
	"github.com/ainotes/ainotes/pkg/clock"
	"github.com/ainotes/ainotes/pkg/server/ai"
	"github.com/ainotes/ainotes/pkg/server/config"
	"github.com/ainotes/ainotes/pkg/server/mailer"
	"github.com/ainotes/ainotes/pkg/server/otp"
	"github.com/ainotes/ainotes/pkg/server/token"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrEmptyDB is an error for missing database connection in the app configuration
	ErrEmptyDB = errors.New("No database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
	// ErrEmptyEmailBackend is an error for missing EmailBackend in the app configuration
	ErrEmptyEmailBackend = errors.New("No EmailBackend was provided")
	// ErrEmptyOTPStore is an error for missing OTP store in the app configuration
	ErrEmptyOTPStore = errors.New("No OTP store was provided")
	// ErrEmptyTokenMaker is an error for missing token maker in the app configuration
	ErrEmptyTokenMaker = errors.New("No token maker was provided")
	// ErrEmptyAI is an error for missing AI service in the app configuration
	ErrEmptyAI = errors.New("No AI service was provided")
)

// App is an application context
type App struct {
	DB           *gorm.DB
	Clock        clock.Clock
	Config       config.Config
	EmailBackend mailer.Backend
	OTPStore     *otp.Store
	TokenMaker   *token.Maker
	AI           *ai.Service
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}
	if a.EmailBackend == nil {
		return ErrEmptyEmailBackend
	}
	if a.OTPStore == nil {
		return ErrEmptyOTPStore
	}
	if a.TokenMaker == nil {
		return ErrEmptyTokenMaker
	}
	if a.AI == nil {
		return ErrEmptyAI
	}

	return nil
}
