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
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// AppEnvProduction represents an app environment for production.
	AppEnvProduction string = "PRODUCTION"
	// DefaultTokenExpiryDays is the default validity of an access token
	DefaultTokenExpiryDays = 30
	// DefaultGeminiModelName is the default generative model
	DefaultGeminiModelName = "gemini-1.5-flash"
)

var (
	// ErrDBMissingURL is an error for an incomplete configuration missing the database URL
	ErrDBMissingURL = errors.New("DATABASE_URL is empty")
	// ErrSecretKeyMissing is an error for an incomplete configuration missing the token secret
	ErrSecretKeyMissing = errors.New("SECRET_KEY is empty")
	// ErrPortInvalid is an error for an incomplete configuration with invalid port
	ErrPortInvalid = errors.New("Invalid Port")
)

func readBoolEnv(name string) bool {
	return os.Getenv(name) == "true"
}

// getOrEnv returns value if non-empty, otherwise env var, otherwise default
func getOrEnv(value, envKey, defaultVal string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

func getIntOrEnv(value int, envKey string, defaultVal int) int {
	if value != 0 {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
	}
	return defaultVal
}

// Config is an application configuration
type Config struct {
	AppEnv              string
	Port                string
	DatabaseURL         string
	SecretKey           string
	TokenExpiryDays     int
	RedisURL            string
	GeminiAPIKey        string
	GeminiModelName     string
	EmailFrom           string
	DisableRegistration bool
	LogLevel            string
}

// Params are the configuration parameters for creating a new Config
type Params struct {
	AppEnv              string
	Port                string
	DatabaseURL         string
	SecretKey           string
	TokenExpiryDays     int
	RedisURL            string
	GeminiAPIKey        string
	GeminiModelName     string
	EmailFrom           string
	DisableRegistration bool
	LogLevel            string
}

// New constructs and returns a new validated config.
// Empty string params will fall back to environment variables and defaults.
func New(p Params) (Config, error) {
	c := Config{
		AppEnv:              getOrEnv(p.AppEnv, "APP_ENV", AppEnvProduction),
		Port:                getOrEnv(p.Port, "PORT", "8000"),
		DatabaseURL:         getOrEnv(p.DatabaseURL, "DATABASE_URL", ""),
		SecretKey:           getOrEnv(p.SecretKey, "SECRET_KEY", ""),
		TokenExpiryDays:     getIntOrEnv(p.TokenExpiryDays, "TOKEN_EXPIRY_DAYS", DefaultTokenExpiryDays),
		RedisURL:            getOrEnv(p.RedisURL, "REDIS_URL", "redis://localhost:6379/0"),
		GeminiAPIKey:        getOrEnv(p.GeminiAPIKey, "GEMINI_API_KEY", ""),
		GeminiModelName:     getOrEnv(p.GeminiModelName, "GEMINI_MODEL_NAME", DefaultGeminiModelName),
		EmailFrom:           getOrEnv(p.EmailFrom, "EMAIL_FROM", "noreply@ainotes.app"),
		DisableRegistration: p.DisableRegistration || readBoolEnv("DisableRegistration"),
		LogLevel:            getOrEnv(p.LogLevel, "LOG_LEVEL", "info"),
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// IsProd checks if the app environment is configured to be production.
func (c Config) IsProd() bool {
	return c.AppEnv == AppEnvProduction
}

func validate(c Config) error {
	if c.Port == "" {
		return ErrPortInvalid
	}
	if c.DatabaseURL == "" {
		return ErrDBMissingURL
	}
	if c.SecretKey == "" {
		return ErrSecretKeyMissing
	}

	return nil
}
