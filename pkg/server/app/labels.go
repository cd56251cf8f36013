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
	"errors"

	"github.com/ainotes/ainotes/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateLabel creates a label owned by the user
func (a *App) CreateLabel(user database.User, name string, color int) (database.Label, error) {
	if name == "" {
		return database.Label{}, ErrTitleRequired
	}

	label := database.Label{
		Name:   name,
		Color:  color,
		UserID: user.ID,
	}
	if err := a.DB.Create(&label).Error; err != nil {
		return label, pkgErrors.Wrap(err, "inserting label")
	}

	return label, nil
}

// GetLabel returns the label with the given id if it belongs to the user
func (a *App) GetLabel(user database.User, labelID int) (database.Label, error) {
	var label database.Label
	conn := a.DB.Where("id = ? AND user_id = ?", labelID, user.ID).First(&label)
	if errors.Is(conn.Error, gorm.ErrRecordNotFound) {
		return label, ErrNotFound
	}
	if conn.Error != nil {
		return label, pkgErrors.Wrap(conn.Error, "finding label")
	}

	return label, nil
}

// GetLabels lists the user's labels
func (a *App) GetLabels(user database.User) ([]database.Label, error) {
	var labels []database.Label
	if err := a.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&labels).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "finding labels")
	}

	return labels, nil
}

// UpdateLabelParams is the parameters for updating a label
type UpdateLabelParams struct {
	Name  *string
	Color *int
}

// UpdateLabel patches the label with the given id if it belongs to the user
func (a *App) UpdateLabel(user database.User, labelID int, p UpdateLabelParams) (database.Label, error) {
	label, err := a.GetLabel(user, labelID)
	if err != nil {
		return label, err
	}

	if p.Name != nil {
		if *p.Name == "" {
			return label, ErrTitleRequired
		}
		label.Name = *p.Name
	}
	if p.Color != nil {
		label.Color = *p.Color
	}

	if err := a.DB.Save(&label).Error; err != nil {
		return label, pkgErrors.Wrap(err, "saving label")
	}

	return label, nil
}

// DeleteLabel deletes the label with the given id if it belongs to the user
func (a *App) DeleteLabel(user database.User, labelID int) error {
	label, err := a.GetLabel(user, labelID)
	if err != nil {
		return err
	}

	if err := a.DB.Delete(&label).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting label")
	}

	return nil
}
