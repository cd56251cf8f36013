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
	"testing"

	"github.com/ainotes/ainotes/pkg/assert"
	"github.com/ainotes/ainotes/pkg/server/testutils"
)

func TestLabelCRUD(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	a := NewTest(db)

	label, err := a.CreateLabel(user, "work", 3)
	if err != nil {
		t.Fatal(err, "creating label")
	}
	assert.Equal(t, label.Name, "work", "name mismatch")
	assert.Equal(t, label.Color, 3, "color mismatch")

	name := "projects"
	updated, err := a.UpdateLabel(user, label.ID, UpdateLabelParams{Name: &name})
	if err != nil {
		t.Fatal(err, "updating label")
	}
	assert.Equal(t, updated.Name, "projects", "name mismatch")
	assert.Equal(t, updated.Color, 3, "color should be untouched")

	labels, err := a.GetLabels(user)
	if err != nil {
		t.Fatal(err, "getting labels")
	}
	assert.Equal(t, len(labels), 1, "label count mismatch")

	if err := a.DeleteLabel(user, label.ID); err != nil {
		t.Fatal(err, "deleting label")
	}

	labels, err = a.GetLabels(user)
	if err != nil {
		t.Fatal(err, "getting labels after delete")
	}
	assert.Equal(t, len(labels), 0, "label count mismatch")
}

func TestLabelOwnership(t *testing.T) {
	db := testutils.InitMemoryDB(t)
	user := testutils.SetupUserData(db, "alice@example.com", "password123")
	anotherUser := testutils.SetupUserData(db, "bob@example.com", "password123")
	a := NewTest(db)

	label, err := a.CreateLabel(user, "work", 3)
	if err != nil {
		t.Fatal(err, "creating label")
	}

	_, err = a.GetLabel(anotherUser, label.ID)
	assert.Equal(t, err, ErrNotFound, "another user should not see the label")

	err = a.DeleteLabel(anotherUser, label.ID)
	assert.Equal(t, err, ErrNotFound, "another user should not delete the label")

	labels, err := a.GetLabels(anotherUser)
	if err != nil {
		t.Fatal(err, "getting labels")
	}
	assert.Equal(t, len(labels), 0, "labels should be owner-scoped")
}
