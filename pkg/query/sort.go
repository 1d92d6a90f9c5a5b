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
	"cmp"
	"slices"

	"github.com/recipehub/recipehub/pkg/recipe"
)

// Sort returns a stably sorted copy of recipes.
func Sort(recipes []recipe.Recipe, key SortKey) []recipe.Recipe {
	out := slices.Clone(recipes)
	slices.SortStableFunc(out, comparator(key))
	return out
}

func comparator(key SortKey) func(a, b recipe.Recipe) int {
	switch key {
	case SortOldest:
		return func(a, b recipe.Recipe) int { return cmp.Compare(a.ID, b.ID) }
	case SortHighestRated:
		return func(a, b recipe.Recipe) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortQuickest:
		return func(a, b recipe.Recipe) int { return cmp.Compare(a.TotalTime(), b.TotalTime()) }
	case SortMostReviewed:
		return func(a, b recipe.Recipe) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	default:
		return func(a, b recipe.Recipe) int { return cmp.Compare(b.ID, a.ID) }
	}
}
