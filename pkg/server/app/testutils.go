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

import (
	"context"

	"github.com/ainotes/ainotes/pkg/clock"
	"github.com/ainotes/ainotes/pkg/server/ai"
	"github.com/ainotes/ainotes/pkg/server/config"
	"github.com/ainotes/ainotes/pkg/server/otp"
	"github.com/ainotes/ainotes/pkg/server/testutils"
	"github.com/ainotes/ainotes/pkg/server/token"
	"gorm.io/gorm"
)

// NewTest returns an app for a testing environment
func NewTest(db *gorm.DB) App {
	c := clock.NewMock()

	return App{
		DB:    db,
		Clock: c,
		Config: config.Config{
			AppEnv:    "TEST",
			EmailFrom: "noreply@example.com",
		},
		EmailBackend: &testutils.MockEmailbackendImplementation{},
		OTPStore:     otp.NewStore(otp.NewMemoryCache(c)),
		TokenMaker:   token.NewMaker(testutils.TokenSecret, 30, c),
		AI:           ai.NewService(&noopAIClient{}),
	}
}

// noopAIClient is the default test client. Tests that exercise AI behavior
// swap in their own scripted client.
type noopAIClient struct{}

func (c *noopAIClient) GenerateText(ctx context.Context, prompt string, opts ai.GenerateOptions) (string, error) {
	return "", ai.ErrEmptyResponse
}
