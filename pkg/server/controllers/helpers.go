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
	"strconv"
	"strings"

	"github.com/ainotes/ainotes/pkg/server/ai"
	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/pkg/errors"
)

// ErrInvalidID is an error for a resource id that is not an integer
var ErrInvalidID = errors.New("Invalid id")

var formDecoder = schema.NewDecoder()

func init() {
	formDecoder.IgnoreUnknownKeys(true)
}

// parseRequestData decodes a JSON request body into the given destination
func parseRequestData(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decoding payload")
	}

	return nil
}

// parseForm decodes a form-encoded request body into the given destination
func parseForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return errors.Wrap(err, "parsing form")
	}

	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		return errors.Wrap(err, "decoding form")
	}

	return nil
}

// getIntParam reads an integer path variable from the request
func getIntParam(r *http.Request, name string) (int, error) {
	vars := mux.Vars(r)

	val, err := strconv.Atoi(vars[name])
	if err != nil {
		return 0, ErrInvalidID
	}

	return val, nil
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ErrorWrap(err, "encoding response")
	}
}

func respondDetail(w http.ResponseWriter, statusCode int, detail string) {
	respondJSON(w, statusCode, map[string]string{"detail": detail})
}

// statusCodeForError maps application errors to HTTP status codes
func statusCodeForError(err error) int {
	cause := errors.Cause(err)

	switch cause {
	case app.ErrNotFound, ErrInvalidID:
		return http.StatusNotFound
	case app.ErrLoginInvalid:
		return http.StatusUnauthorized
	case app.ErrRegistrationDisabled:
		return http.StatusForbidden
	case app.ErrDuplicateEmail:
		return http.StatusConflict
	case app.ErrUpstreamAI, ai.ErrEmptyResponse:
		return http.StatusBadGateway
	case ai.ErrBlocked,
		app.ErrEmailRequired,
		app.ErrPasswordRequired,
		app.ErrPasswordTooShort,
		app.ErrInvalidOTP,
		app.ErrInvalidPassword,
		app.ErrTitleRequired,
		app.ErrInvalidNoteType,
		app.ErrInvalidParentTask,
		app.ErrInvalidAIAction:
		return http.StatusBadRequest
	}

	if strings.Contains(err.Error(), "decoding payload") || strings.Contains(err.Error(), "decoding form") {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// handleJSONError logs the error and responds with the appropriate status
// code and a JSON body describing the error
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	statusCode := statusCodeForError(err)

	if statusCode >= 500 {
		log.ErrorWrap(err, msg)
		respondDetail(w, statusCode, http.StatusText(statusCode))
		return
	}

	log.WithFields(log.Fields{
		"statusCode": statusCode,
	}).Info(errors.Wrap(err, msg).Error())

	respondDetail(w, statusCode, errors.Cause(err).Error())
}
