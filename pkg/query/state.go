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

	"github.com/recipehub/recipehub/pkg/defaults"
)

// Filter keys, used by ActiveFilters and Without.
const (
	KeyCategory   = "category"
	KeyCuisine    = "cuisine"
	KeyDifficulty = "difficulty"
	KeyDiet       = "diet"
	KeyMaxTime    = "maxTime"
	KeyQuery      = "q"
)

// State is an immutable query. Methods return modified copies.
type State struct {
	Query      string  `json:"q,omitempty" yaml:"q,omitempty"`
	Category   string  `json:"category,omitempty" yaml:"category,omitempty"`
	Cuisine    string  `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Difficulty string  `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Diet       string  `json:"diet,omitempty" yaml:"diet,omitempty"`
	MaxTime    int     `json:"maxTime,omitempty" yaml:"maxTime,omitempty"`
	Sort       SortKey `json:"sort" yaml:"sort"`
	Page       int     `json:"page" yaml:"page"`
	PerPage    int     `json:"perPage" yaml:"perPage"`
}

// NewState returns the default query: everything matches, newest first,
// first page of defaults.PageSize.
func NewState() State {
	return State{
		Sort:    SortNewest,
		Page:    1,
		PerPage: defaults.PageSize,
	}
}

// WithQuery sets the free-text term and resets the page.
func (s State) WithQuery(q string) State {
	s.Query = strings.TrimSpace(q)
	s.Page = 1
	return s
}

// WithCategory sets the category filter and resets the page.
func (s State) WithCategory(c string) State {
	s.Category = c
	s.Page = 1
	return s
}

// WithCuisine sets the cuisine filter and resets the page.
func (s State) WithCuisine(c string) State {
	s.Cuisine = c
	s.Page = 1
	return s
}

// WithDifficulty sets the difficulty filter and resets the page.
func (s State) WithDifficulty(d string) State {
	s.Difficulty = d
	s.Page = 1
	return s
}

// WithDiet sets the dietary-tag filter and resets the page.
func (s State) WithDiet(d string) State {
	s.Diet = d
	s.Page = 1
	return s
}

// WithMaxTime sets the inclusive total-time bound in minutes and resets the
// page. Zero or less removes the bound.
func (s State) WithMaxTime(minutes int) State {
	s.MaxTime = max(0, minutes)
	s.Page = 1
	return s
}

// WithSort sets the ordering and resets the page.
func (s State) WithSort(k SortKey) State {
	s.Sort = k
	s.Page = 1
	return s
}

// WithPage changes only the page.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// WithPerPage sets the page size and resets the page.
func (s State) WithPerPage(n int) State {
	s.PerPage = n
	s.Page = 1
	return s
}

// Cleared returns the default query, keeping the page size.
func (s State) Cleared() State {
	c := NewState()
	if s.PerPage > 0 {
		c.PerPage = s.PerPage
	}
	return c
}

// Without clears the filter named by key and resets the page.
// Unknown keys leave the state unchanged.
func (s State) Without(key string) State {
	switch key {
	case KeyCategory:
		return s.WithCategory("")
	case KeyCuisine:
		return s.WithCuisine("")
	case KeyDifficulty:
		return s.WithDifficulty("")
	case KeyDiet:
		return s.WithDiet("")
	case KeyMaxTime:
		return s.WithMaxTime(0)
	case KeyQuery:
		return s.WithQuery("")
	default:
		return s
	}
}

// Normalize replaces a non-positive page size with the default and an
// undefined sort key with SortNewest. The page is left alone.
func (s State) Normalize() State {
	if s.PerPage <= 0 {
		s.PerPage = defaults.PageSize
	}
	if !s.Sort.IsValid() {
		s.Sort = SortNewest
	}
	return s
}

// IsFiltered reports whether any filter or text term is set.
func (s State) IsFiltered() bool {
	return s.Query != "" || s.Category != "" || s.Cuisine != "" ||
		s.Difficulty != "" || s.Diet != "" || s.MaxTime > 0
}
