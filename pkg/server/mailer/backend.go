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
	"os"
	"strconv"

	"github.com/ainotes/ainotes/pkg/server/log"
	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"
)

// ErrSMTPNotConfigured is an error indicating that SMTP is not configured
var ErrSMTPNotConfigured = errors.New("SMTP is not configured")

// Backend is an interface for sending emails.
type Backend interface {
	SendEmail(templateType, from string, to []string, data interface{}) error
}

// DefaultBackend is an implementation of the Backend that sends an email
// over SMTP.
type DefaultBackend struct {
	Templates Templates
}

// NewDefaultBackend returns a backend that renders the embedded templates
// and delivers them over SMTP.
func NewDefaultBackend() *DefaultBackend {
	return &DefaultBackend{
		Templates: NewTemplates(),
	}
}

func getSMTPParams() (host string, port int, username, password string, err error) {
	portEnv := os.Getenv("SmtpPort")
	hostEnv := os.Getenv("SmtpHost")
	usernameEnv := os.Getenv("SmtpUsername")
	passwordEnv := os.Getenv("SmtpPassword")

	if portEnv == "" || hostEnv == "" || usernameEnv == "" || passwordEnv == "" {
		return "", 0, "", "", ErrSMTPNotConfigured
	}

	port, err = strconv.Atoi(portEnv)
	if err != nil {
		return "", 0, "", "", errors.Wrap(err, "parsing SMTP port")
	}

	return hostEnv, port, usernameEnv, passwordEnv, nil
}

// SendEmail renders the given template and sends the result over SMTP.
func (b *DefaultBackend) SendEmail(templateType, from string, to []string, data interface{}) error {
	subject, body, err := b.Templates.Execute(templateType, EmailKindText, data)
	if err != nil {
		return errors.Wrap(err, "executing template")
	}

	host, port, username, password, err := getSMTPParams()
	if err != nil {
		return errors.Wrap(err, "getting smtp params")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody(EmailKindText, body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return errors.Wrap(err, "dialing and sending email")
	}

	return nil
}

// StdoutBackend is an implementation of the Backend that prints
// the email to the standard output. Used for development.
type StdoutBackend struct {
	Templates Templates
}

// NewStdoutBackend returns a backend that logs emails instead of sending them.
func NewStdoutBackend() *StdoutBackend {
	return &StdoutBackend{
		Templates: NewTemplates(),
	}
}

// SendEmail renders the given template and logs the result.
func (b *StdoutBackend) SendEmail(templateType, from string, to []string, data interface{}) error {
	subject, body, err := b.Templates.Execute(templateType, EmailKindText, data)
	if err != nil {
		return errors.Wrap(err, "executing template")
	}

	log.WithFields(log.Fields{
		"from":    from,
		"to":      to,
		"subject": subject,
	}).Info("sending email")
	log.Info(body)

	return nil
}
