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

package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/recipehub/recipehub/pkg/recipe"
)

// Filter returns the recipes matching every criterion in s, in collection
// order. Sort and paging fields are ignored.
func Filter(recipes []recipe.Recipe, s State) []recipe.Recipe {
	m := newMatcher(s)
	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

type matcher struct {
	state  State
	folder cases.Caser
	needle string
}

func newMatcher(s State) *matcher {
	// A Caser is stateful, so each matcher gets its own.
	m := &matcher{state: s, folder: cases.Fold()}
	if s.Query != "" {
		m.needle = m.folder.String(s.Query)
	}
	return m
}

func (m *matcher) match(r recipe.Recipe) bool {
	s := m.state
	if m.needle != "" && !m.matchText(r) {
		return false
	}
	if s.Category != "" && r.Category != s.Category {
		return false
	}
	if s.Cuisine != "" && r.Cuisine != s.Cuisine {
		return false
	}
	if s.Difficulty != "" && string(r.Difficulty) != s.Difficulty {
		return false
	}
	if s.Diet != "" && !r.HasTag(s.Diet) {
		return false
	}
	if s.MaxTime > 0 && r.TotalTime() > s.MaxTime {
		return false
	}
	return true
}

func (m *matcher) matchText(r recipe.Recipe) bool {
	for _, field := range []string{r.Title, r.Description, r.Cuisine} {
		if strings.Contains(m.folder.String(field), m.needle) {
			return true
		}
	}
	return false
}
