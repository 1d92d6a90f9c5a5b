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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveFilters(t *testing.T) {
	assert.Empty(t, ActiveFilters(NewState().WithQuery("momo")))

	s := NewState().WithMaxTime(45).WithDiet("Vegetarian").WithCuisine("nepali").WithCategory("Dinner").WithDifficulty("Beginner")
	got := ActiveFilters(s)

	assert.Equal(t, []ActiveFilter{
		{Key: KeyCategory, Value: "Dinner", Label: "Dinner"},
		{Key: KeyCuisine, Value: "nepali", Label: "Nepali"},
		{Key: KeyDifficulty, Value: "Beginner", Label: "Beginner"},
		{Key: KeyDiet, Value: "Vegetarian", Label: "Vegetarian"},
		{Key: KeyMaxTime, Value: "45", Label: "Under 45 min"},
	}, got)

	for _, f := range got {
		assert.Len(t, ActiveFilters(s.Without(f.Key)), len(got)-1, f.Key)
	}
}
