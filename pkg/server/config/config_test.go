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

package config

import (
	"testing"

	"github.com/ainotes/ainotes/pkg/assert"
)

func TestNew(t *testing.T) {
	c, err := New(Params{
		DatabaseURL: "postgres://localhost/ainotes_test",
		SecretKey:   "test-secret",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, c.Port, "8000", "default port mismatch")
	assert.Equal(t, c.TokenExpiryDays, DefaultTokenExpiryDays, "default token expiry mismatch")
	assert.Equal(t, c.GeminiModelName, DefaultGeminiModelName, "default model name mismatch")
	assert.Equal(t, c.LogLevel, "info", "default log level mismatch")
	assert.Equal(t, c.IsProd(), true, "default env should be production")
}

func TestNew_MissingDatabaseURL(t *testing.T) {
	_, err := New(Params{SecretKey: "test-secret"})

	assert.Equal(t, err, ErrDBMissingURL, "error mismatch")
}

func TestNew_MissingSecretKey(t *testing.T) {
	_, err := New(Params{DatabaseURL: "postgres://localhost/ainotes_test"})

	assert.Equal(t, err, ErrSecretKeyMissing, "error mismatch")
}

func TestNew_Override(t *testing.T) {
	c, err := New(Params{
		AppEnv:          "DEVELOPMENT",
		Port:            "9000",
		DatabaseURL:     "postgres://localhost/ainotes_test",
		SecretKey:       "test-secret",
		TokenExpiryDays: 7,
		LogLevel:        "debug",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, c.Port, "9000", "port mismatch")
	assert.Equal(t, c.TokenExpiryDays, 7, "token expiry mismatch")
	assert.Equal(t, c.LogLevel, "debug", "log level mismatch")
	assert.Equal(t, c.IsProd(), false, "env should not be production")
}
