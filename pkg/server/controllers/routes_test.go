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
	"net/http"
	"testing"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/testutils"
)

func TestNewRouterValidatesApp(t *testing.T) {
	emptyApp := app.App{}

	_, err := NewRouter(&emptyApp, RouteConfig{})
	assert.NotEqual(t, err, nil, "an incomplete app should not produce a router")
}

func TestHealthEndpoint(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/api/health", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusOK, "status mismatch")

	var got struct {
		Status string `json:"status"`
	}
	mustDecodeJSON(t, res, &got)
	assert.Equal(t, got.Status, "ok", "status body mismatch")
}

func TestCatchAll(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	a := app.NewTest(db)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/api/v1/nonexistent", "")
	res := testutils.HTTPDo(t, req)

	assert.StatusCodeEquals(t, res, http.StatusNotFound, "status mismatch")
}
