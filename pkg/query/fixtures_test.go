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

	"github.com/recipehub/recipehub/pkg/recipe"
)

var (
	fixtureCategories   = []string{"Breakfast", "Lunch", "Dessert", "Drinks"}
	fixtureCuisines     = []string{"Nepali", "Italian", "Thai", "American", "French"}
	fixtureDifficulties = []recipe.Difficulty{recipe.DifficultyBeginner, recipe.DifficultyIntermediate, recipe.DifficultyAdvanced}
	fixtureRatings      = []float64{4.5, 3.9, 4.8, 4.5, 4.1, 5.0, 3.2}
)

// fixtureRecipes returns 20 recipes with ids 1..20. Every fourth recipe is a
// Dinner, so exactly five are.
func fixtureRecipes() []recipe.Recipe {
	out := make([]recipe.Recipe, 0, 20)
	for id := 1; id <= 20; id++ {
		category := fixtureCategories[id%len(fixtureCategories)]
		if id%4 == 0 {
			category = "Dinner"
		}
		var tags []string
		if id%2 == 1 {
			tags = append(tags, "Vegetarian")
		}
		if id%3 == 0 {
			tags = append(tags, "Gluten-Free")
		}
		out = append(out, recipe.Recipe{
			ID:          id,
			Title:       fmt.Sprintf("Recipe %02d", id),
			Description: fmt.Sprintf("Fixture dish number %d", id),
			Category:    category,
			Cuisine:     fixtureCuisines[id%len(fixtureCuisines)],
			Difficulty:  fixtureDifficulties[id%len(fixtureDifficulties)],
			DietaryTags: tags,
			PrepTime:    5 * (id % 7),
			CookTime:    10 * (id % 5),
			Rating:      fixtureRatings[id%len(fixtureRatings)],
			ReviewCount: (id * 37) % 50,
		})
	}
	return out
}

func idsOf(rs []recipe.Recipe) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

// sampleStates covers every filter alone, common combinations, each sort
// key and several page sizes.
func sampleStates() []State {
	base := NewState()
	var out []State
	for _, k := range SortKeys() {
		for _, per := range []int{1, 3, 9, 20, 60} {
			s := base.WithSort(k).WithPerPage(per)
			out = append(out,
				s,
				s.WithCategory("Dinner"),
				s.WithCuisine("Nepali"),
				s.WithDifficulty("Beginner"),
				s.WithDiet("Vegetarian"),
				s.WithMaxTime(30),
				s.WithQuery("recipe 1"),
				s.WithDiet("Gluten-Free").WithMaxTime(45),
				s.WithCategory("Lunch").WithCuisine("Thai"),
				s.WithCategory("Nope"),
			)
		}
	}
	return out
}
