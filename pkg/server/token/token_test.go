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

package token

import (
	"testing"
	"time"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/clock"
)

func TestCreateParse(t *testing.T) {
	mockClock := clock.NewMock()
	mockClock.SetNow(time.Date(2017, time.March, 14, 21, 15, 0, 0, time.UTC))

	m := NewMaker("test-secret", 30, mockClock)

	tokenValue, err := m.Create(42)
	if err != nil {
		t.Fatal(err)
	}

	userID, err := m.Parse(tokenValue)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, userID, 42, "user id mismatch")
}

func TestParse_Expired(t *testing.T) {
	mockClock := clock.NewMock()
	issuedAt := time.Date(2017, time.March, 14, 21, 15, 0, 0, time.UTC)
	mockClock.SetNow(issuedAt)

	m := NewMaker("test-secret", 30, mockClock)

	tokenValue, err := m.Create(42)
	if err != nil {
		t.Fatal(err)
	}

	// Valid one day before expiry
	mockClock.SetNow(issuedAt.Add(29 * 24 * time.Hour))
	if _, err := m.Parse(tokenValue); err != nil {
		t.Fatal(err)
	}

	// Invalid one day after expiry
	mockClock.SetNow(issuedAt.Add(31 * 24 * time.Hour))
	_, err = m.Parse(tokenValue)
	assert.Equal(t, err, ErrInvalid, "error mismatch")
}

func TestParse_WrongKey(t *testing.T) {
	mockClock := clock.NewMock()
	mockClock.SetNow(time.Date(2017, time.March, 14, 21, 15, 0, 0, time.UTC))

	tokenValue, err := NewMaker("test-secret", 30, mockClock).Create(42)
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewMaker("another-secret", 30, mockClock).Parse(tokenValue)
	assert.Equal(t, err, ErrInvalid, "error mismatch")
}

func TestParse_Malformed(t *testing.T) {
	m := NewMaker("test-secret", 30, clock.NewMock())

	_, err := m.Parse("not-a-token")
	assert.Equal(t, err, ErrInvalid, "error mismatch")
}
