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
	"time"

	"github.com/ainotes/ainotes/pkg/server/database"
)

// Label is a result of PresentLabel
type Label struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Color     int       `json:"color"`
}

// PresentLabel presents a label
func PresentLabel(label database.Label) Label {
	return Label{
		ID:        label.ID,
		CreatedAt: FormatTS(label.CreatedAt),
		UpdatedAt: FormatTS(label.UpdatedAt),
		Name:      label.Name,
		Color:     label.Color,
	}
}

// PresentLabels presents labels
func PresentLabels(labels []database.Label) []Label {
	ret := []Label{}

	for _, label := range labels {
		p := PresentLabel(label)
		ret = append(ret, p)
	}

	return ret
}
