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

package cmd

import (
	"os"

	"github.com/ainotes/ainotes/pkg/clock"
	"github.com/ainotes/ainotes/pkg/server/ai"
	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/config"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/log"
	"github.com/ainotes/ainotes/pkg/server/mailer"
	"github.com/ainotes/ainotes/pkg/server/otp"
	"github.com/ainotes/ainotes/pkg/server/token"
	"gorm.io/gorm"
)

func initDB(databaseURL string) *gorm.DB {
	db := database.Open(databaseURL)
	database.InitSchema(db)
	database.Migrate(db)

	return db
}

func getEmailBackend() mailer.Backend {
	if os.Getenv("SmtpHost") == "" {
		log.Debug("SMTP not configured, using StdoutBackend for emails")
		return mailer.NewStdoutBackend()
	}

	log.Debug("Email backend configured")
	return mailer.NewDefaultBackend()
}

// getOTPCache prefers redis and falls back to an in-memory cache. The
// fallback loses pending signups on restart.
func getOTPCache(redisURL string, c clock.Clock) otp.Cache {
	cache, err := otp.NewRedisCache(redisURL)
	if err != nil {
		log.ErrorWrap(err, "connecting to redis, falling back to in-memory OTP cache")
		return otp.NewMemoryCache(c)
	}

	return cache
}

func initApp(cfg config.Config) app.App {
	db := initDB(cfg.DatabaseURL)
	c := clock.New()

	return app.App{
		DB:           db,
		Clock:        c,
		Config:       cfg,
		EmailBackend: getEmailBackend(),
		OTPStore:     otp.NewStore(getOTPCache(cfg.RedisURL, c)),
		TokenMaker:   token.NewMaker(cfg.SecretKey, cfg.TokenExpiryDays, c),
		AI:           ai.NewService(ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModelName)),
	}
}

func closeDB(a *app.App) {
	sqlDB, err := a.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}
