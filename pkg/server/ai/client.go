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

// Package ai provides text generation for note and task actions
package ai

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrBlocked is an error for a prompt rejected by the model's safety filter
	ErrBlocked = errors.New("content was blocked by the safety filter")
	// ErrEmptyResponse is an error for a model response with no text
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// GenerateOptions is the per-request generation parameters
type GenerateOptions struct {
	Temperature     float64
	MaxOutputTokens int
}

// Client generates text from a prompt
type Client interface {
	GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
