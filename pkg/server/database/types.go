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

package database

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// NullString wraps sql.NullString so that it serializes to JSON as a
// plain string, with null for the invalid state.
type NullString struct {
	sql.NullString
}

// ToNullString creates a valid NullString from the given string
func ToNullString(s string) NullString {
	return NullString{sql.NullString{String: s, Valid: true}}
}

// MarshalJSON implements json.Marshaler
func (s NullString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(s.String)
}

// UnmarshalJSON implements json.Unmarshaler
func (s *NullString) UnmarshalJSON(data []byte) error {
	var val *string
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}

	if val == nil {
		s.Valid = false
		s.String = ""
		return nil
	}

	s.Valid = true
	s.String = *val
	return nil
}

// StringSlice is a list of strings stored in a single text column as JSON.
// It backs the denormalized label list embedded in a note.
type StringSlice []string

// Value implements driver.Valuer
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	serialized, err := json.Marshal([]string(s))
	if err != nil {
		return nil, errors.Wrap(err, "serializing string slice")
	}

	return string(serialized), nil
}

// Scan implements sql.Scanner
func (s *StringSlice) Scan(src interface{}) error {
	if src == nil {
		*s = StringSlice{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported type %T for string slice", src)
	}

	if len(data) == 0 {
		*s = StringSlice{}
		return nil
	}

	var ret []string
	if err := json.Unmarshal(data, &ret); err != nil {
		return errors.Wrap(err, "deserializing string slice")
	}

	*s = ret
	return nil
}
