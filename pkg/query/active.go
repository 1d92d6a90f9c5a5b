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
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ActiveFilter is a removable tag describing one applied filter.
type ActiveFilter struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// ActiveFilters lists the filters set in s in display order: category,
// cuisine, difficulty, diet, then the time bound. The text term is not
// included. Remove one with State.Without(f.Key).
func ActiveFilters(s State) []ActiveFilter {
	title := cases.Title(language.English)
	var out []ActiveFilter
	add := func(key, value string) {
		if value != "" {
			out = append(out, ActiveFilter{Key: key, Value: value, Label: title.String(value)})
		}
	}
	add(KeyCategory, s.Category)
	add(KeyCuisine, s.Cuisine)
	add(KeyDifficulty, s.Difficulty)
	add(KeyDiet, s.Diet)
	if s.MaxTime > 0 {
		out = append(out, ActiveFilter{
			Key:   KeyMaxTime,
			Value: fmt.Sprint(s.MaxTime),
			Label: fmt.Sprintf("Under %d min", s.MaxTime),
		})
	}
	return out
}
