// Copyright (c) 2025, The RecipeHub Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"fmt"
	"strings"
	"unicode/utf8"

	rherrors "github.com/recipehub/recipehub/pkg/errors"
)

// Submission length limits.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMinLen = 20
	DescriptionMaxLen = 500
)

// Submission is a user-contributed recipe awaiting review.
type Submission struct {
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Category    string       `json:"category" yaml:"category"`
	Cuisine     string       `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Difficulty  Difficulty   `json:"difficulty" yaml:"difficulty"`
	DietaryTags []string     `json:"dietaryTags,omitempty" yaml:"dietaryTags,omitempty"`
	PrepTime    int          `json:"prepTime" yaml:"prepTime"`
	CookTime    int          `json:"cookTime" yaml:"cookTime"`
	Servings    int          `json:"servings" yaml:"servings"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Steps       []Step       `json:"steps" yaml:"steps"`
}

// Validate checks the submission and reports the first failing field as an
// INVALID_REQUEST error whose context names the field.
func (s Submission) Validate() error {
	title := strings.TrimSpace(s.Title)
	desc := strings.TrimSpace(s.Description)

	switch n := utf8.RuneCountInString(title); {
	case n < TitleMinLen:
		return fieldError("title", fmt.Sprintf("title must be at least %d characters", TitleMinLen))
	case n > TitleMaxLen:
		return fieldError("title", fmt.Sprintf("title must be at most %d characters", TitleMaxLen))
	}

	switch n := utf8.RuneCountInString(desc); {
	case n < DescriptionMinLen:
		return fieldError("description", fmt.Sprintf("description must be at least %d characters", DescriptionMinLen))
	case n > DescriptionMaxLen:
		return fieldError("description", fmt.Sprintf("description must be at most %d characters", DescriptionMaxLen))
	}

	if !IsKnownCategory(s.Category) {
		return fieldError("category", fmt.Sprintf("category must be one of %s", strings.Join(CategoryNames, ", ")))
	}
	if !s.Difficulty.IsValid() {
		return fieldError("difficulty", "difficulty must be Beginner, Intermediate or Advanced")
	}
	if s.PrepTime < 0 || s.CookTime < 0 {
		return fieldError("time", "prep and cook time must not be negative")
	}

	if !hasNonBlank(len(s.Ingredients), func(i int) string { return s.Ingredients[i].Name }) {
		return fieldError("ingredients", "add at least one ingredient")
	}
	if !hasNonBlank(len(s.Steps), func(i int) string { return s.Steps[i].Text }) {
		return fieldError("steps", "add at least one step")
	}
	return nil
}

func hasNonBlank(n int, at func(int) string) bool {
	for i := 0; i < n; i++ {
		if strings.TrimSpace(at(i)) != "" {
			return true
		}
	}
	return false
}

func fieldError(field, msg string) error {
	return rherrors.NewWithContext(rherrors.ErrCodeInvalidRequest, msg, map[string]any{"field": field})
}
