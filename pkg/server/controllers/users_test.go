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

package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/mailer"
	"github.com/ainotes/ainotes/pkg/server/testutils"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func mustDecodeJSON(t *testing.T, res *http.Response, dst interface{}) {
	t.Helper()

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		t.Fatal(errors.Wrap(err, "decoding response"))
	}
}

func TestSignupFlow(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest(db)
	emailBackend := a.EmailBackend.(*testutils.MockEmailbackendImplementation)
	server := MustNewServer(t, &a)
	defer server.Close()

	// request a verification code
	req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/signup",
		`{"full_name": "Alice", "email": "alice@example.com", "password": "password123"}`)
	res := testutils.HTTPDo(t, req)
	assert.StatusCodeEquals(t, res, http.StatusOK, "signup status mismatch")

	// no account yet
	var userCount int64
	testutils.MustExec(t, db.Model(&database.User{}).Count(&userCount), "counting users")
	assert.Equal(t, userCount, int64(0), "no account should exist before verification")

	assert.Equal(t, len(emailBackend.Emails), 1, "email count mismatch")
	otpData := emailBackend.Emails[0].Data.(mailer.OTPTmplData)

	// verify the code
	req = testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/signup/verify",
		testutils.MustMarshalJSON(t, map[string]string{"email": "alice@example.com", "otp": otpData.OTP}))
	res = testutils.HTTPDo(t, req)
	assert.StatusCodeEquals(t, res, http.StatusCreated, "verify status mismatch")

	var session struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	mustDecodeJSON(t, res, &session)
	assert.Equal(t, session.TokenType, "bearer", "token type mismatch")
	assert.NotEqual(t, session.AccessToken, "", "access token should be issued")

	var user database.User
	testutils.MustExec(t, db.Where("email = ?", "alice@example.com").First(&user), "finding user")
	passwordErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123"))
	assert.Equal(t, passwordErr, nil, "password mismatch")

	// the issued token authenticates
	req = testutils.MakeReq(server.URL, "GET", "/api/v1/users/me", "")
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	res = testutils.HTTPDo(t, req)
	assert.StatusCodeEquals(t, res, http.StatusOK, "me status mismatch")
}

func TestPasswordResetFlow(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	emailBackend := a.EmailBackend.(*testutils.MockEmailbackendImplementation)
	server := MustNewServer(t, &a)
	defer server.Close()

	// request a reset code
	req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/forgot-password",
		`{"email": "alice@example.com"}`)
	res := testutils.HTTPDo(t, req)
	assert.StatusCodeEquals(t, res, http.StatusOK, "forgot-password status mismatch")

	assert.Equal(t, len(emailBackend.Emails), 1, "email count mismatch")
	otpData := emailBackend.Emails[0].Data.(mailer.OTPTmplData)

	// verify the code on the forgot-password path
	req = testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/forgot-password/verify",
		testutils.MustMarshalJSON(t, map[string]string{
			"email":        "alice@example.com",
			"otp":          otpData.OTP,
			"new_password": "newpassword123",
		}))
	res = testutils.HTTPDo(t, req)
	assert.StatusCodeEquals(t, res, http.StatusOK, "verify status mismatch")

	var record database.User
	testutils.MustExec(t, db.Where("id = ?", user.ID).First(&record), "finding user")
	passwordErr := bcrypt.CompareHashAndPassword([]byte(record.Password), []byte("newpassword123"))
	assert.Equal(t, passwordErr, nil, "new password mismatch")
}

func TestSignupDisabled(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest(db)
	a.Config.DisableRegistration = true
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/signup",
		`{"full_name": "Alice", "email": "alice@example.com", "password": "password123"}`)
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "signup route should not be registered")
}

func TestLogin(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	t.Run("valid credentials", func(t *testing.T) {
		req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/login",
			`{"email": "alice@example.com", "password": "password123"}`)
		res := testutils.HTTPDo(t, req)

		assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

		var session struct {
			AccessToken string `json:"access_token"`
		}
		mustDecodeJSON(t, res, &session)

		userID, err := a.TokenMaker.Parse(session.AccessToken)
		if err != nil {
			t.Fatal(errors.Wrap(err, "parsing token"))
		}
		assert.Equal(t, userID, user.ID, "user id mismatch")
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/login",
			`{"email": "alice@example.com", "password": "wrongpassword"}`)
		res := testutils.HTTPDo(t, req)

		assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "status mismatch")
	})

	t.Run("unknown email", func(t *testing.T) {
		req := testutils.MakeJSONReq(server.URL, "POST", "/api/v1/auth/login",
			`{"email": "nobody@example.com", "password": "password123"}`)
		res := testutils.HTTPDo(t, req)

		assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "status mismatch")
	})
}

func TestLoginForm(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	dat := url.Values{}
	dat.Set("username", "alice@example.com")
	dat.Set("password", "password123")

	req := testutils.MakeReq(server.URL, "POST", "/api/v1/auth/login-form", dat.Encode())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")
}

func TestMe(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	t.Run("authenticated", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", "/api/v1/users/me", "")
		res := testutils.HTTPAuthDo(t, req, user)

		assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

		var got struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		}
		mustDecodeJSON(t, res, &got)
		assert.Equal(t, got.ID, user.ID, "id mismatch")
		assert.Equal(t, got.Email, "alice@example.com", "email mismatch")
	})

	t.Run("guest", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", "/api/v1/users/me", "")
		res := testutils.HTTPDo(t, req)

		assert.StatusCodeEquals(t, res, http.StatusUnauthorized, "status mismatch")
	})
}

func TestProfileUpdate(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeJSONReq(server.URL, "PATCH", "/api/v1/users/me",
		`{"full_name": "Alice Liddell", "avatar_url": "https://example.com/alice.png"}`)
	res := testutils.HTTPAuthDo(t, req, user)

	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var record database.User
	testutils.MustExec(t, db.Where("id = ?", user.ID).First(&record), "finding user")
	assert.Equal(t, record.FullName, "Alice Liddell", "full name mismatch")
	assert.Equal(t, record.AvatarURL.String, "https://example.com/alice.png", "avatar mismatch")
}

func TestPasswordUpdate(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	t.Run("wrong current password", func(t *testing.T) {
		req := testutils.MakeJSONReq(server.URL, "PUT", "/api/v1/users/me/password",
			`{"current_password": "wrongpassword", "new_password": "newpassword123"}`)
		res := testutils.HTTPAuthDo(t, req, user)

		assert.StatusCodeEquals(t, res, http.StatusBadRequest, "status mismatch")
	})

	t.Run("correct current password", func(t *testing.T) {
		req := testutils.MakeJSONReq(server.URL, "PUT", "/api/v1/users/me/password",
			`{"current_password": "password123", "new_password": "newpassword123"}`)
		res := testutils.HTTPAuthDo(t, req, user)

		assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

		var record database.User
		testutils.MustExec(t, db.Where("id = ?", user.ID).First(&record), "finding user")
		passwordErr := bcrypt.CompareHashAndPassword([]byte(record.Password), []byte("newpassword123"))
		assert.Equal(t, passwordErr, nil, "password should be updated")
	})
}

func TestSettings(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/api/v1/users/me/settings", "")
	res := testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var setting struct {
		TextSize int `json:"text_size"`
		Theme    int `json:"theme"`
	}
	mustDecodeJSON(t, res, &setting)
	assert.Equal(t, setting.TextSize, 2, "default text size mismatch")
	assert.Equal(t, setting.Theme, 0, "default theme mismatch")

	req = testutils.MakeJSONReq(server.URL, "PATCH", "/api/v1/users/me/settings", `{"theme": 1}`)
	res = testutils.HTTPAuthDo(t, req, user)
	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	mustDecodeJSON(t, res, &setting)
	assert.Equal(t, setting.Theme, 1, "theme mismatch")
	assert.Equal(t, setting.TextSize, 2, "text size should be untouched")
}
