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

	"github.com/recipehub/recipehub/pkg/defaults"
	rherrors "github.com/recipehub/recipehub/pkg/errors"
)

// All returns a copy of every recipe in catalog order.
func (c *Catalog) All() List {
	return slices.Clone(c.Recipes)
}

// Get returns the recipe with the given id.
func (c *Catalog) Get(id int) (Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return Recipe{}, rherrors.NewWithContext(rherrors.ErrCodeNotFound, "recipe not found",
			map[string]any{"id": id})
	}
	return c.Recipes[i], nil
}

// Featured returns the recipes flagged for the home page.
func (c *Catalog) Featured() List {
	return c.where(func(r Recipe) bool { return r.Featured })
}

// ByCategory returns recipes in the named category. A recipe whose dietary
// tags include the name also matches, so "Vegan" covers vegan dishes filed
// under Lunch or Dinner.
func (c *Catalog) ByCategory(name string) List {
	return c.where(func(r Recipe) bool { return r.Category == name || r.HasTag(name) })
}

// Related returns up to limit other recipes from the same category.
// A limit of zero or less uses defaults.RelatedLimit.
func (c *Catalog) Related(id int, limit int) (List, error) {
	r, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaults.RelatedLimit
	}

	out := make(List, 0, limit)
	for _, other := range c.Recipes {
		if len(out) == limit {
			break
		}
		if other.ID != id && other.Category == r.Category {
			out = append(out, other)
		}
	}
	return out, nil
}

// CategoryByName returns the category with the given name.
func (c *Catalog) CategoryByName(name string) (Category, bool) {
	i := slices.IndexFunc(c.Categories, func(cat Category) bool { return cat.Name == name })
	if i < 0 {
		return Category{}, false
	}
	return c.Categories[i], true
}

func (c *Catalog) where(keep func(Recipe) bool) List {
	out := List{}
	for _, r := range c.Recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// CategorySummary pairs a category with the number of catalog recipes that
// ByCategory returns for it.
type CategorySummary struct {
	Category `json:",inline" yaml:",inline"`
	Recipes  int `json:"recipes" yaml:"recipes"`
}

// CategorySummaries renders as a table.
type CategorySummaries []CategorySummary

// TableHeader implements serializer.Tabular.
func (s CategorySummaries) TableHeader() []string {
	return []string{"ID", "NAME", "ICON", "RECIPES", "ADVERTISED"}
}

// TableRows implements serializer.Tabular.
func (s CategorySummaries) TableRows() [][]string {
	rows := make([][]string, 0, len(s))
	for _, cs := range s {
		rows = append(rows, []string{
			strconv.Itoa(cs.ID), cs.Name, cs.Icon, strconv.Itoa(cs.Recipes), strconv.Itoa(cs.Count),
		})
	}
	return rows
}

// Summaries returns every category with its live recipe count.
func (c *Catalog) Summaries() CategorySummaries {
	out := make(CategorySummaries, 0, len(c.Categories))
	for _, cat := range c.Categories {
		out = append(out, CategorySummary{Category: cat, Recipes: len(c.ByCategory(cat.Name))})
	}
	return out
}
