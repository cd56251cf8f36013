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

package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Default limits applied when a request omits them.
const (
	DefaultContinueMaxTokens  = 150
	DefaultSummarizeMaxLength = 100
)

// Service exposes the note and task text operations on top of a Client.
type Service struct {
	client Client
}

// NewService returns a service backed by the given client
func NewService(client Client) *Service {
	return &Service{client: client}
}

func titleContext(title string) string {
	if title == "" {
		return ""
	}

	return fmt.Sprintf("Note Title: %s\n\n", title)
}

const promptConstraints = `**Constraints:**
- Do *not* change the core meaning of the text.
- Respond *only* in the *same language* as the input text.
- Output *only* the resulting text, without any preamble or explanation.
- **Strictly avoid** Markdown formatting (like ##, **, _, ` + "```" + `).`

// FormatContent reformats the content for plain-text readability.
func (s *Service) FormatContent(ctx context.Context, content, title string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to reformat the following text for better readability and structure suitable for a *plain text editor*. Use the note title below for context if helpful. Use standard punctuation, symbols, and layout techniques like:
- Hyphens (-) or asterisks (*) for list items.
- Indentation (using spaces) to show structure or hierarchy.
- Blank lines to separate paragraphs or sections.
- Consistent use of punctuation (periods, commas, etc.).

%s

%s**Input Text:**
---
%s
---

**Formatted Output:**`, promptConstraints, titleContext(title), content)

	return s.generate(ctx, prompt, GenerateOptions{Temperature: 0.3})
}

// CleanupContent corrects grammar and spelling and removes redundancy.
func (s *Service) CleanupContent(ctx context.Context, content, title string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to clean up the following text. Use the note title for context.
- Correct spelling and grammar errors.
- Remove redundant words or phrases.
- Improve clarity and conciseness.
- Ensure sentences flow well.

%s

%s**Input Text:**
---
%s
---

**Cleaned Up Output:**`, promptConstraints, titleContext(title), content)

	return s.generate(ctx, prompt, GenerateOptions{Temperature: 0.5})
}

// RefineContent refines the writing style. An empty style asks for a more
// expressive and fluent result.
func (s *Service) RefineContent(ctx context.Context, content, title, style string) (string, error) {
	styleInstruction := "making it more expressive and fluent"
	if style != "" {
		styleInstruction = fmt.Sprintf("aiming for a '%s' style (e.g., professional, casual, formal, engaging)", style)
	}

	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to refine the writing style of the following text, %s, using the note title for overall context.
- Improve word choice.
- Enhance sentence structure and flow.
- Make the language more engaging or appropriate for the desired style and topic (indicated by the title).

%s

%s**Input Text:**
---
%s
---

**Refined Output:**`, styleInstruction, promptConstraints, titleContext(title), content)

	return s.generate(ctx, prompt, GenerateOptions{Temperature: 0.7})
}

// PolishContent makes subtle improvements without rewriting.
func (s *Service) PolishContent(ctx context.Context, content, title string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to review and gently polish the following text, using the title for context.
- Improve the flow and readability.
- Enhance clarity without changing meaning.
- Correct any subtle grammar or punctuation issues.
- Ensure a smooth and consistent tone relevant to the topic.
- Make only necessary, subtle improvements. Do *not* rewrite significantly.

%s

%s**Input Text:**
---
%s
---

**Polished Output:**`, promptConstraints, titleContext(title), content)

	return s.generate(ctx, prompt, GenerateOptions{Temperature: 0.4})
}

// ContinueWriting continues the content. maxTokens is treated as an
// approximate word budget and the output cap is sized above it to leave
// room for the model's tokenization.
func (s *Service) ContinueWriting(ctx context.Context, content, title string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = DefaultContinueMaxTokens
	}
	estimatedMaxTokens := int(float64(maxTokens) / 0.7)

	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to continue writing the text below naturally and coherently, staying on the topic indicated by the title and existing content. Maintain the existing tone and style.

**Constraints:**
- Generate approximately %d words (or fill the token limit).
- Start the continuation directly, *without* repeating the input text.
- Respond *only* in the *same language* as the input text.
- Output *only* the continued text.
- **Strictly avoid** Markdown formatting (like ##, **, _, `+"```"+`).

%s**Input Text (Continue from here):**
---
%s
---

**Continuation:**`, maxTokens, titleContext(title), content)

	return s.generate(ctx, prompt, GenerateOptions{Temperature: 0.7, MaxOutputTokens: estimatedMaxTokens})
}

// SummarizeContent summarizes the content in roughly maxLength words.
func (s *Service) SummarizeContent(ctx context.Context, content, title string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = DefaultSummarizeMaxLength
	}
	estimatedMaxTokens := int(float64(maxLength) * 1.8)

	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to summarize the main points of the following text, considering the note title for the main topic. Aim for a concise summary, ideally around %d words.

**Constraints:**
- Capture the essential information accurately, focusing on the topic indicated by the title.
- Respond *only* in the *same language* as the input text.
- Output *only* the summary text itself, without any preamble like "Here is a summary:".
- **Strictly avoid** Markdown formatting (like ##, **, _, `+"```"+`).

%s**Input Text:**
---
%s
---

**Summary:**`, maxLength, titleContext(title), content)

	return s.generate(ctx, prompt, GenerateOptions{Temperature: 0.5, MaxOutputTokens: estimatedMaxTokens})
}

// GenerateTasks produces a list of task titles for a note with the given title.
func (s *Service) GenerateTasks(ctx context.Context, title string) ([]string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to break the goal below into a short list of concrete, actionable tasks.

**Constraints:**
- Output between 3 and 8 tasks.
- Output one task per line, with no numbering, bullets, or other decoration.
- Keep each task short enough to serve as a checklist item.
- Respond *only* in the *same language* as the goal.
- Output *only* the task list, without any preamble or explanation.
- **Strictly avoid** Markdown formatting (like ##, **, _, `+"```"+`).

**Goal:**
---
%s
---

**Tasks:**`, title)

	text, err := s.generate(ctx, prompt, GenerateOptions{Temperature: 0.7})
	if err != nil {
		return nil, err
	}

	return ParseTaskList(text), nil
}

// GenerateMoreTasks produces additional task titles that complement the
// existing ones.
func (s *Service) GenerateMoreTasks(ctx context.Context, title string, existing []string) ([]string, error) {
	existingList := "(none yet)"
	if len(existing) > 0 {
		existingList = strings.Join(existing, "\n")
	}

	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to suggest additional concrete, actionable tasks for the goal below. The list of existing tasks is given; suggest tasks that complement them without repeating them.

**Constraints:**
- Output between 1 and 5 new tasks.
- Output one task per line, with no numbering, bullets, or other decoration.
- Do *not* repeat or rephrase any existing task.
- Respond *only* in the *same language* as the goal.
- Output *only* the task list, without any preamble or explanation.
- **Strictly avoid** Markdown formatting (like ##, **, _, `+"```"+`).

**Goal:**
---
%s
---

**Existing Tasks:**
---
%s
---

**New Tasks:**`, title, existingList)

	text, err := s.generate(ctx, prompt, GenerateOptions{Temperature: 0.7})
	if err != nil {
		return nil, err
	}

	return ParseTaskList(text), nil
}

// SummarizeTaskList produces a one-line summary of the task titles, suitable
// for use as a task title itself.
func (s *Service) SummarizeTaskList(ctx context.Context, titles []string, noteTitle string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant. Your task is to write a single short sentence summarizing the task list below, considering the note title for the main topic.

**Constraints:**
- Output exactly one line.
- If the list has no meaningful tasks, output exactly "Summary: no tasks".
- Respond *only* in the *same language* as the tasks.
- Output *only* the summary line, without any preamble or explanation.
- **Strictly avoid** Markdown formatting (like ##, **, _, `+"```"+`).

%s**Tasks:**
---
%s
---

**Summary:**`, titleContext(noteTitle), strings.Join(titles, "\n"))

	text, err := s.generate(ctx, prompt, GenerateOptions{Temperature: 0.5})
	if err != nil {
		return "", err
	}

	// The model occasionally returns multiple lines despite the constraint.
	if idx := strings.IndexByte(text, '\n'); idx != -1 {
		text = text[:idx]
	}

	return strings.TrimSpace(text), nil
}

func (s *Service) generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	text, err := s.client.GenerateText(ctx, prompt, opts)
	if err != nil {
		return "", errors.Wrap(err, "generating text")
	}

	return strings.TrimSpace(text), nil
}

// ParseTaskList splits model output into task titles, one per line,
// stripping bullets and numbering the model sometimes adds anyway.
func ParseTaskList(text string) []string {
	var titles []string

	for _, line := range strings.Split(text, "\n") {
		title := strings.TrimSpace(line)
		title = strings.TrimLeft(title, "-*• \t")

		// strip leading "1." or "1)" numbering
		i := 0
		for i < len(title) && title[i] >= '0' && title[i] <= '9' {
			i++
		}
		if i > 0 && i < len(title) && (title[i] == '.' || title[i] == ')') {
			title = title[i+1:]
		}

		title = strings.TrimSpace(title)
		if title != "" {
			titles = append(titles, title)
		}
	}

	return titles
}
