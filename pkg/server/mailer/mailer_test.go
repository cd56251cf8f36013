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

package mailer

import (
	"strings"
	"testing"

	"github.com/ainotes/ainotes/pkg/assert"
)

func TestExecuteOTP(t *testing.T) {
	T := NewTemplates()

	subject, body, err := T.Execute(EmailTypeOTP, EmailKindText, OTPTmplData{OTP: "123456"})
	if err != nil {
		t.Fatal(err, "executing otp template")
	}

	assert.Equal(t, subject, "Your AINotes verification code", "subject mismatch")
	assert.Equal(t, strings.Contains(body, "123456"), true, "body should contain the passcode")
}

func TestExecuteWelcome(t *testing.T) {
	T := NewTemplates()

	subject, body, err := T.Execute(EmailTypeWelcome, EmailKindText, WelcomeTmplData{AccountEmail: "alice@example.com"})
	if err != nil {
		t.Fatal(err, "executing welcome template")
	}

	assert.Equal(t, subject, "Welcome to AINotes!", "subject mismatch")
	assert.Equal(t, strings.Contains(body, "alice@example.com"), true, "body should contain the account email")
}

func TestExecuteUnsupported(t *testing.T) {
	T := NewTemplates()

	_, _, err := T.Execute("no_such_template", EmailKindText, nil)
	assert.NotEqual(t, err, nil, "expected an error for an unsupported template")
}
