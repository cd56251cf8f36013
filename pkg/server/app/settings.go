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

// GetSetting returns the user's settings row, materializing it with
// defaults on first read.
func (a *App) GetSetting(user database.User) (database.Setting, error) {
	var setting database.Setting
	conn := a.DB.Where("user_id = ?", user.ID).First(&setting)
	if errors.Is(conn.Error, gorm.ErrRecordNotFound) {
		setting = database.Setting{
			UserID:             user.ID,
			TextSize:           2,
			Theme:              0,
			EmailNotifications: true,
			PushNotifications:  true,
		}
		if err := a.DB.Create(&setting).Error; err != nil {
			return setting, pkgErrors.Wrap(err, "creating setting")
		}

		return setting, nil
	}
	if conn.Error != nil {
		return setting, pkgErrors.Wrap(conn.Error, "finding setting")
	}

	return setting, nil
}

// UpdateSettingParams is the parameters for updating a user's settings
type UpdateSettingParams struct {
	TextSize           *int
	Theme              *int
	EmailNotifications *bool
	PushNotifications  *bool
}

// UpdateSetting patches the user's settings row, materializing it first
// if it does not exist yet.
func (a *App) UpdateSetting(user database.User, p UpdateSettingParams) (database.Setting, error) {
	setting, err := a.GetSetting(user)
	if err != nil {
		return setting, err
	}

	if p.TextSize != nil {
		setting.TextSize = *p.TextSize
	}
	if p.Theme != nil {
		setting.Theme = *p.Theme
	}
	if p.EmailNotifications != nil {
		setting.EmailNotifications = *p.EmailNotifications
	}
	if p.PushNotifications != nil {
		setting.PushNotifications = *p.PushNotifications
	}

	if err := a.DB.Save(&setting).Error; err != nil {
		return setting, pkgErrors.Wrap(err, "saving setting")
	}

	return setting, nil
}
