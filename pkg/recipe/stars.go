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

import "math"

// MaxRating is the top of the rating scale.
const MaxRating = 5

// Star is one glyph of a star rating.
type Star string

const (
	StarFull  Star = "full"
	StarHalf  Star = "half"
	StarEmpty Star = "empty"
)

// Stars renders rating as MaxRating stars. Star i (1-based) is full when
// i <= floor(rating), half when i-0.5 <= rating, and empty otherwise, so
// 4.5 gives four full and one half star while 4.49 gives four full and one
// empty. Ratings outside 0..MaxRating are clamped.
func Stars(rating float64) []Star {
	rating = math.Max(0, math.Min(MaxRating, rating))
	whole := math.Floor(rating)

	stars := make([]Star, MaxRating)
	for i := 1; i <= MaxRating; i++ {
		fi := float64(i)
		switch {
		case fi <= whole:
			stars[i-1] = StarFull
		case fi-0.5 <= rating:
			stars[i-1] = StarHalf
		default:
			stars[i-1] = StarEmpty
		}
	}
	return stars
}
