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
	"errors"

	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/ainotes/ainotes/pkg/server/log"
	"github.com/ainotes/ainotes/pkg/server/mailer"
	"github.com/ainotes/ainotes/pkg/server/otp"
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (a *App) emailExists(email string) (bool, error) {
	var count int64
	if err := a.DB.Model(&database.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(err, "counting user")
	}

	return count > 0, nil
}

// RegisterUser validates the signup fields, caches a pending signup record
// and emails a one-time passcode. No user row is created until the passcode
// is verified.
func (a *App) RegisterUser(ctx context.Context, fullName, email, password string) error {
	if a.Config.DisableRegistration {
		return ErrRegistrationDisabled
	}
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	exists, err := a.emailExists(email)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return pkgErrors.Wrap(err, "hashing password")
	}

	passcode, err := otp.Generate()
	if err != nil {
		return pkgErrors.Wrap(err, "generating passcode")
	}

	pending := otp.PendingUser{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := a.OTPStore.SaveSignup(ctx, email, passcode, pending); err != nil {
		return pkgErrors.Wrap(err, "caching signup")
	}

	if err := a.EmailBackend.SendEmail(mailer.EmailTypeOTP, a.Config.EmailFrom, []string{email}, mailer.OTPTmplData{OTP: passcode}); err != nil {
		return pkgErrors.Wrap(err, "sending passcode email")
	}

	return nil
}

// VerifySignup checks the passcode against the cached signup record and, on
// match, creates the user together with its default settings row.
func (a *App) VerifySignup(ctx context.Context, email, passcode string) (database.User, error) {
	storedPasscode, pending, err := a.OTPStore.GetSignup(ctx, email)
	if errors.Is(err, otp.ErrCacheMiss) {
		return database.User{}, ErrInvalidOTP
	}
	if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "getting signup record")
	}
	if passcode == "" || storedPasscode != passcode {
		return database.User{}, ErrInvalidOTP
	}

	// The email could have been taken while the passcode was in flight
	exists, err := a.emailExists(email)
	if err != nil {
		return database.User{}, err
	}
	if exists {
		return database.User{}, ErrDuplicateEmail
	}

	user := database.User{
		FullName: pending.FullName,
		Email:    pending.Email,
		Password: pending.PasswordHash,
	}

	tx := a.DB.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "saving user")
	}
	setting := database.Setting{
		UserID: user.ID,
	}
	if err := tx.Create(&setting).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "saving setting")
	}
	tx.Commit()

	if err := a.OTPStore.DeleteSignup(ctx, email); err != nil {
		log.ErrorWrap(err, "deleting signup record")
	}

	if err := a.EmailBackend.SendEmail(mailer.EmailTypeWelcome, a.Config.EmailFrom, []string{email}, mailer.WelcomeTmplData{AccountEmail: email}); err != nil {
		// The account is already created. Do not fail the signup over a
		// welcome email.
		log.ErrorWrap(err, "sending welcome email")
	}

	return user, nil
}

// Authenticate verifies the email and password and returns the user.
// It returns ErrLoginInvalid for an unknown email or a wrong password.
func (a *App) Authenticate(email, password string) (database.User, error) {
	if email == "" || password == "" {
		return database.User{}, ErrLoginInvalid
	}

	var user database.User
	conn := a.DB.Where("email = ?", email).First(&user)
	if errors.Is(conn.Error, gorm.ErrRecordNotFound) {
		return database.User{}, ErrLoginInvalid
	}
	if conn.Error != nil {
		return database.User{}, pkgErrors.Wrap(conn.Error, "finding user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return database.User{}, ErrLoginInvalid
	}

	return user, nil
}

// SignIn authenticates the user and issues an access token
func (a *App) SignIn(email, password string) (string, error) {
	user, err := a.Authenticate(email, password)
	if err != nil {
		return "", err
	}

	accessToken, err := a.TokenMaker.Create(user.ID)
	if err != nil {
		return "", pkgErrors.Wrap(err, "creating access token")
	}

	return accessToken, nil
}

// ForgotPassword caches a password reset passcode for the email and sends
// it. An unknown email is reported as ErrNotFound.
func (a *App) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmailRequired
	}

	exists, err := a.emailExists(email)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	passcode, err := otp.Generate()
	if err != nil {
		return pkgErrors.Wrap(err, "generating passcode")
	}

	if err := a.OTPStore.SaveForgot(ctx, email, passcode); err != nil {
		return pkgErrors.Wrap(err, "caching forgot record")
	}

	if err := a.EmailBackend.SendEmail(mailer.EmailTypeOTP, a.Config.EmailFrom, []string{email}, mailer.OTPTmplData{OTP: passcode}); err != nil {
		return pkgErrors.Wrap(err, "sending passcode email")
	}

	return nil
}

// ResetPassword checks the password reset passcode and replaces the user's
// password on match.
func (a *App) ResetPassword(ctx context.Context, email, passcode, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	storedPasscode, err := a.OTPStore.GetForgot(ctx, email)
	if errors.Is(err, otp.ErrCacheMiss) {
		return ErrInvalidOTP
	}
	if err != nil {
		return pkgErrors.Wrap(err, "getting forgot record")
	}
	if passcode == "" || storedPasscode != passcode {
		return ErrInvalidOTP
	}

	var user database.User
	conn := a.DB.Where("email = ?", email).First(&user)
	if errors.Is(conn.Error, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if conn.Error != nil {
		return pkgErrors.Wrap(conn.Error, "finding user")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkgErrors.Wrap(err, "hashing password")
	}

	if err := a.DB.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return pkgErrors.Wrap(err, "updating password")
	}

	if err := a.OTPStore.DeleteForgot(ctx, email); err != nil {
		log.ErrorWrap(err, "deleting forgot record")
	}

	if err := a.EmailBackend.SendEmail(mailer.EmailTypePasswordResetAlert, a.Config.EmailFrom, []string{email}, mailer.PasswordResetAlertTmplData{AccountEmail: email}); err != nil {
		log.ErrorWrap(err, "sending password reset alert email")
	}

	return nil
}

// UpdateUserParams is the parameters for updating a user profile
type UpdateUserParams struct {
	FullName  *string
	AvatarURL *string
}

// UpdateUser patches the user's profile fields
func (a *App) UpdateUser(user database.User, p UpdateUserParams) (database.User, error) {
	if p.FullName != nil {
		user.FullName = *p.FullName
	}
	if p.AvatarURL != nil {
		user.AvatarURL = database.ToNullString(*p.AvatarURL)
	}

	if err := a.DB.Save(&user).Error; err != nil {
		return user, pkgErrors.Wrap(err, "saving user")
	}

	return user, nil
}

// UpdateUserPassword verifies the current password and replaces it with
// the new one
func (a *App) UpdateUserPassword(user database.User, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return pkgErrors.Wrap(err, "hashing password")
	}

	if err := a.DB.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return pkgErrors.Wrap(err, "updating password")
	}

	return nil
}
