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
	"github.com/ainotes/ainotes/pkg/server/database"
)

// Setting is a result of PresentSetting
type Setting struct {
	ID                 int  `json:"id"`
	UserID             int  `json:"user_id"`
	TextSize           int  `json:"text_size"`
	Theme              int  `json:"theme"`
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
}

// PresentSetting presents a setting
func PresentSetting(setting database.Setting) Setting {
	return Setting{
		ID:                 setting.ID,
		UserID:             setting.UserID,
		TextSize:           setting.TextSize,
		Theme:              setting.Theme,
		EmailNotifications: setting.EmailNotifications,
		PushNotifications:  setting.PushNotifications,
	}
}
