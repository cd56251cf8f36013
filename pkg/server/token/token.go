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

// Package token issues and validates bearer access tokens
package token

import (
	"strconv"
	"time"

	"github.com/ainotes/ainotes/pkg/clock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalid is an error for a token that is malformed, expired, or
// signed with a different key
var ErrInvalid = errors.New("invalid token")

// Maker creates and parses access tokens
type Maker struct {
	secretKey []byte
	expiry    time.Duration
	clock     clock.Clock
}

// NewMaker returns a new token maker. Tokens expire after expiryDays.
func NewMaker(secretKey string, expiryDays int, c clock.Clock) *Maker {
	return &Maker{
		secretKey: []byte(secretKey),
		expiry:    time.Duration(expiryDays) * 24 * time.Hour,
		clock:     c,
	}
}

// Create issues a signed token for the given user id
func (m *Maker) Create(userID int) (string, error) {
	now := m.clock.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString(m.secretKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}

	return signed, nil
}

// Parse validates the given token and returns the user id it was issued for
func (m *Maker) Parse(tokenValue string) (int, error) {
	parsed, err := jwt.ParseWithClaims(tokenValue, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil || !parsed.Valid {
		return 0, ErrInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, ErrInvalid
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalid
	}

	return userID, nil
}
