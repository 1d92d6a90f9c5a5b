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
	"slices"
	"strconv"
)

// Difficulty is the skill level a recipe requires.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Difficulties lists the known difficulty levels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// IsValid reports whether d is a known difficulty.
func (d Difficulty) IsValid() bool {
	return slices.Contains(Difficulties(), d)
}

// CategoryNames is the fixed set of recipe categories.
var CategoryNames = []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Vegan", "Drinks"}

// IsKnownCategory reports whether name is one of CategoryNames.
func IsKnownCategory(name string) bool {
	return slices.Contains(CategoryNames, name)
}

// Author identifies who published a recipe.
type Author struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Initials string `json:"initials" yaml:"initials"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Section  string  `json:"section,omitempty" yaml:"section,omitempty"`
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Step is one numbered instruction.
type Step struct {
	Number int    `json:"number" yaml:"number"`
	Text   string `json:"text" yaml:"text"`
}

// Nutrition is the per-serving nutrition panel. Macronutrients are display
// strings such as "18g".
type Nutrition struct {
	Calories int    `json:"calories" yaml:"calories"`
	Protein  string `json:"protein,omitempty" yaml:"protein,omitempty"`
	Fat      string `json:"fat,omitempty" yaml:"fat,omitempty"`
	Carbs    string `json:"carbs,omitempty" yaml:"carbs,omitempty"`
	Fiber    string `json:"fiber,omitempty" yaml:"fiber,omitempty"`
}

// Recipe is a single catalog entry. Higher IDs are newer.
type Recipe struct {
	ID          int          `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Slug        string       `json:"slug,omitempty" yaml:"slug,omitempty"`
	Description string       `json:"description" yaml:"description"`
	Category    string       `json:"category" yaml:"category"`
	Cuisine     string       `json:"cuisine" yaml:"cuisine"`
	Difficulty  Difficulty   `json:"difficulty" yaml:"difficulty"`
	DietaryTags []string     `json:"dietaryTags" yaml:"dietaryTags"`
	PrepTime    int          `json:"prepTime" yaml:"prepTime"`
	CookTime    int          `json:"cookTime" yaml:"cookTime"`
	Servings    int          `json:"servings" yaml:"servings"`
	Calories    int          `json:"calories" yaml:"calories"`
	Rating      float64      `json:"rating" yaml:"rating"`
	ReviewCount int          `json:"reviewCount" yaml:"reviewCount"`
	Emoji       string       `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Author      Author       `json:"author" yaml:"author"`
	Featured    bool         `json:"featured" yaml:"featured"`
	Ingredients []Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Steps       []Step       `json:"steps,omitempty" yaml:"steps,omitempty"`
	Nutrition   Nutrition    `json:"nutrition" yaml:"nutrition"`
}

// TotalTime is preparation plus cooking time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasTag reports whether tag is one of the recipe's dietary tags.
func (r Recipe) HasTag(tag string) bool {
	return slices.Contains(r.DietaryTags, tag)
}

// Category is a browsable recipe category. Count is the advertised number
// of recipes and is not derived from the catalog.
type Category struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Count int    `json:"count" yaml:"count"`
}

// List is a slice of recipes that renders as a table.
type List []Recipe

// TableHeader implements serializer.Tabular.
func (l List) TableHeader() []string {
	return []string{"ID", "TITLE", "CATEGORY", "CUISINE", "DIFFICULTY", "TIME", "RATING"}
}

// TableRows implements serializer.Tabular.
func (l List) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Title,
			r.Category,
			r.Cuisine,
			string(r.Difficulty),
			FormatDuration(r.TotalTime()),
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
		})
	}
	return rows
}

// Categories is a slice of categories that renders as a table.
type Categories []Category

// TableHeader implements serializer.Tabular.
func (c Categories) TableHeader() []string {
	return []string{"ID", "NAME", "ICON", "COUNT"}
}

// TableRows implements serializer.Tabular.
func (c Categories) TableRows() [][]string {
	rows := make([][]string, 0, len(c))
	for _, cat := range c {
		rows = append(rows, []string{strconv.Itoa(cat.ID), cat.Name, cat.Icon, strconv.Itoa(cat.Count)})
	}
	return rows
}
