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

// Package otp stores short-lived one-time passcodes for signup and
// password reset flows
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

const (
	// Expiry is how long an issued passcode remains valid
	Expiry = 5 * time.Minute

	signupKeyPrefix = "signup:"
	forgotKeyPrefix = "forgot:"
)

// PendingUser holds the signup fields cached until the passcode is
// verified. The password is stored as a bcrypt hash, never plaintext.
type PendingUser struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

type signupRecord struct {
	OTP  string      `json:"otp"`
	User PendingUser `json:"user"`
}

type forgotRecord struct {
	OTP string `json:"otp"`
}

// Generate returns a random six digit passcode
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.Wrap(err, "reading random bits")
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Store keeps pending signup and password reset records in a TTL cache
type Store struct {
	cache Cache
}

// NewStore creates a Store on top of the given cache
func NewStore(cache Cache) *Store {
	return &Store{cache: cache}
}

// SaveSignup caches the passcode and the pending user fields under the
// candidate email
func (s *Store) SaveSignup(ctx context.Context, email, passcode string, user PendingUser) error {
	record := signupRecord{OTP: passcode, User: user}
	if err := s.cache.Set(ctx, signupKeyPrefix+email, record, Expiry); err != nil {
		return errors.Wrap(err, "caching signup record")
	}

	return nil
}

// GetSignup returns the cached passcode and pending user fields for the
// email. It returns ErrCacheMiss if no record exists or it has expired.
func (s *Store) GetSignup(ctx context.Context, email string) (string, PendingUser, error) {
	var record signupRecord
	if err := s.cache.Get(ctx, signupKeyPrefix+email, &record); err != nil {
		return "", PendingUser{}, err
	}

	return record.OTP, record.User, nil
}

// DeleteSignup removes the cached signup record for the email
func (s *Store) DeleteSignup(ctx context.Context, email string) error {
	return s.cache.Delete(ctx, signupKeyPrefix+email)
}

// SaveForgot caches the passcode for a password reset
func (s *Store) SaveForgot(ctx context.Context, email, passcode string) error {
	if err := s.cache.Set(ctx, forgotKeyPrefix+email, forgotRecord{OTP: passcode}, Expiry); err != nil {
		return errors.Wrap(err, "caching forgot record")
	}

	return nil
}

// GetForgot returns the cached password reset passcode for the email
func (s *Store) GetForgot(ctx context.Context, email string) (string, error) {
	var record forgotRecord
	if err := s.cache.Get(ctx, forgotKeyPrefix+email, &record); err != nil {
		return "", err
	}

	return record.OTP, nil
}

// DeleteForgot removes the cached password reset record for the email
func (s *Store) DeleteForgot(ctx context.Context, email string) error {
	return s.cache.Delete(ctx, forgotKeyPrefix+email)
}
