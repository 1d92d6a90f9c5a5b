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
	"github.com/recipehub/recipehub/pkg/defaults"
	"github.com/recipehub/recipehub/pkg/recipe"
)

// Page is one slice of an ordered result.
type Page struct {
	Items   recipe.List `json:"items" yaml:"items"`
	Total   int         `json:"total" yaml:"total"`
	Pages   int         `json:"pages" yaml:"pages"`
	Page    int         `json:"page" yaml:"page"`
	PerPage int         `json:"perPage" yaml:"perPage"`
}

// PageCount is ceil(total/perPage), never less than 1.
func PageCount(total, perPage int) int {
	if perPage <= 0 {
		perPage = defaults.PageSize
	}
	return max(1, (total+perPage-1)/perPage)
}

// Paginate returns the page-th slice of perPage recipes. Pages outside
// 1..Pages produce an empty slice; the page number is not clamped.
func Paginate(recipes []recipe.Recipe, page, perPage int) Page {
	if perPage <= 0 {
		perPage = defaults.PageSize
	}
	p := Page{
		Items:   recipe.List{},
		Total:   len(recipes),
		Pages:   PageCount(len(recipes), perPage),
		Page:    page,
		PerPage: perPage,
	}
	if page < 1 || page > p.Pages {
		return p
	}
	start := (page - 1) * perPage
	if start >= len(recipes) {
		return p
	}
	end := min(start+perPage, len(recipes))
	p.Items = append(recipe.List{}, recipes[start:end]...)
	return p
}
