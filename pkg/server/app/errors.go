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

import "github.com/pkg/errors"

var (
	// ErrNotFound is an error for a missing resource
	ErrNotFound = errors.New("not found")
	// ErrEmailRequired is an error for an empty email
	ErrEmailRequired = errors.New("Email is required")
	// ErrPasswordRequired is an error for an empty password
	ErrPasswordRequired = errors.New("Password is required")
	// ErrPasswordTooShort is an error for a password that is too short
	ErrPasswordTooShort = errors.New("Password should be longer than 8 characters")
	// ErrDuplicateEmail is an error for an email that already exists
	ErrDuplicateEmail = errors.New("Email already registered")
	// ErrLoginInvalid is an error for invalid credentials
	ErrLoginInvalid = errors.New("Incorrect email or password")
	// ErrInvalidOTP is an error for a wrong, expired, or missing one-time passcode
	ErrInvalidOTP = errors.New("Invalid or expired verification code")
	// ErrInvalidPassword is an error for a wrong current password
	ErrInvalidPassword = errors.New("Incorrect current password")
	// ErrRegistrationDisabled is an error for registration attempts when
	// registration is turned off
	ErrRegistrationDisabled = errors.New("Registration is disabled")
	// ErrTitleRequired is an error for an empty title
	ErrTitleRequired = errors.New("Title is required")
	// ErrInvalidNoteType is an error for an unknown note type
	ErrInvalidNoteType = errors.New("Invalid note type")
	// ErrInvalidParentTask is an error for a parent task that does not
	// belong to the same note
	ErrInvalidParentTask = errors.New("Parent task does not belong to the note")
	// ErrUpstreamAI is an error for a failed AI provider call
	ErrUpstreamAI = errors.New("AI service communication error")
)
