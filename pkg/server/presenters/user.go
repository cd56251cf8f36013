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

package presenters

import (
	"time"

	"github.com/ainotes/ainotes/pkg/server/database"
)

// User is a result of PresentUser
type User struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url"`
}

// PresentUser presents a user
func PresentUser(user database.User) User {
	return User{
		ID:        user.ID,
		CreatedAt: FormatTS(user.CreatedAt),
		UpdatedAt: FormatTS(user.UpdatedAt),
		FullName:  user.FullName,
		Email:     user.Email,
		AvatarURL: nullableString(user.AvatarURL),
	}
}

// Session is an issued access token response
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PresentSession presents an access token
func PresentSession(accessToken string) Session {
	return Session{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}
}
