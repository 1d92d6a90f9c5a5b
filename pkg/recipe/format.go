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
	"math"

	"github.com/recipehub/recipehub/pkg/defaults"
)

// FormatDuration renders minutes as "45m", "1h 30m" or "2h".
// Zero and negative durations render as an em dash.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "—"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// ClampServings limits n to the adjustable servings range.
func ClampServings(n int) int {
	return max(MinServings, min(MaxServings, n))
}

// Servings bounds for ScaleIngredients.
const (
	MinServings = defaults.MinServings
	MaxServings = defaults.MaxServings
)

// ScaleIngredients returns the recipe's ingredients with quantities scaled
// from the recipe's own servings to the requested number, which is first
// clamped to MinServings..MaxServings. Quantities are rounded to two
// decimals. The clamped servings value is returned alongside.
func ScaleIngredients(r Recipe, servings int) (int, []Ingredient) {
	servings = ClampServings(servings)
	base := r.Servings
	if base <= 0 {
		base = 1
	}
	factor := float64(servings) / float64(base)

	out := make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ing.Quantity = math.Round(ing.Quantity*factor*100) / 100
		out[i] = ing
	}
	return servings, out
}
