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

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/recipehub/recipehub/pkg/defaults"
	rherrors "github.com/recipehub/recipehub/pkg/errors"
	"github.com/recipehub/recipehub/pkg/header"
	"github.com/recipehub/recipehub/pkg/query"
	"github.com/recipehub/recipehub/pkg/recipe"
	"github.com/recipehub/recipehub/pkg/serializer"
)

// QueryResponse is one page of search results plus what a results view
// needs to render pagination and removable filter chips.
type QueryResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	query.Result  `json:",inline" yaml:",inline"`
	Pagination    query.Pagination     `json:"pagination" yaml:"pagination"`
	ActiveFilters []query.ActiveFilter `json:"activeFilters" yaml:"activeFilters"`
	Links         QueryLinks           `json:"links" yaml:"links"`
}

// QueryLinks are request paths for the current page and its neighbours.
type QueryLinks struct {
	Self string `json:"self" yaml:"self"`
	Prev string `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
}

const recipesPath = "/v1/recipes"

func recipesHref(s query.State) string {
	if v := s.Values(); len(v) > 0 {
		return recipesPath + "?" + v.Encode()
	}
	return recipesPath
}

func queryLinks(res query.Result) QueryLinks {
	links := QueryLinks{Self: recipesHref(res.State)}
	if res.Page > 1 && res.Page <= res.Pages {
		links.Prev = recipesHref(res.State.WithPage(res.Page - 1))
	}
	if res.Page >= 1 && res.Page < res.Pages {
		links.Next = recipesHref(res.State.WithPage(res.Page + 1))
	}
	return links
}

// RecipeDetail is a recipe with presentation fields derived from it.
type RecipeDetail struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipe      recipe.Recipe       `json:"recipe" yaml:"recipe"`
	Stars       []recipe.Star       `json:"stars" yaml:"stars"`
	PrepTime    string              `json:"prepTime" yaml:"prepTime"`
	CookTime    string              `json:"cookTime" yaml:"cookTime"`
	TotalTime   string              `json:"totalTime" yaml:"totalTime"`
	Servings    int                 `json:"servings" yaml:"servings"`
	Ingredients []recipe.Ingredient `json:"ingredients" yaml:"ingredients"`
	Related     recipe.List         `json:"related" yaml:"related"`
	Bookmarked  *bool               `json:"bookmarked,omitempty" yaml:"bookmarked,omitempty"`
}

// RecipeList is a plain list of recipes.
type RecipeList struct {
	Items recipe.List `json:"items" yaml:"items"`
	Total int         `json:"total" yaml:"total"`
}

func newRecipeList(items recipe.List) RecipeList {
	if items == nil {
		items = recipe.List{}
	}
	return RecipeList{Items: items, Total: len(items)}
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	state, err := query.ParseState(r.URL.Query())
	if err != nil {
		writeErr(w, r, err)
		return
	}

	res := h.engine.Run(r.Context(), state)
	resp := QueryResponse{
		Result:        res,
		Pagination:    query.PageLinks(res.Page, res.Pages),
		ActiveFilters: query.ActiveFilters(res.State),
		Links:         queryLinks(res),
	}
	resp.Init(header.KindQueryResult, header.APIVersion, version)

	cacheable(w)
	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	rec, err := h.recipeFromPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	servings := rec.Servings
	if raw := r.URL.Query().Get("servings"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErr(w, r, rherrors.WrapWithContext(rherrors.ErrCodeInvalidRequest,
				"invalid integer parameter", err, map[string]any{"param": "servings", "value": raw}))
			return
		}
		servings = n
	}
	servings, ingredients := recipe.ScaleIngredients(rec, servings)

	related, err := h.catalog.Related(rec.ID, defaults.RelatedLimit)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	detail := RecipeDetail{
		Recipe:      rec,
		Stars:       recipe.Stars(rec.Rating),
		PrepTime:    recipe.FormatDuration(rec.PrepTime),
		CookTime:    recipe.FormatDuration(rec.CookTime),
		TotalTime:   recipe.FormatDuration(rec.TotalTime()),
		Servings:    servings,
		Ingredients: ingredients,
		Related:     related,
	}
	detail.Init(header.KindRecipe, header.APIVersion, version)

	// Bookmark state is best effort: anonymous callers simply don't get it.
	if user, err := userID(r); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), defaults.StoreHandlerTimeout)
		defer cancel()
		on, err := h.store.Has(ctx, user, rec.ID)
		if err != nil {
			writeErr(w, r, err)
			return
		}
		detail.Bookmarked = &on
	} else {
		cacheable(w)
	}

	serializer.RespondJSON(w, http.StatusOK, detail)
}

func (h *Handler) relatedRecipes(w http.ResponseWriter, r *http.Request) {
	rec, err := h.recipeFromPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	limit := defaults.RelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeErr(w, r, rherrors.NewWithContext(rherrors.ErrCodeInvalidRequest,
				"limit must be a positive integer", map[string]any{"param": "limit", "value": raw}))
			return
		}
		limit = n
	}

	related, err := h.catalog.Related(rec.ID, limit)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	cacheable(w)
	serializer.RespondJSON(w, http.StatusOK, newRecipeList(related))
}

func (h *Handler) featuredRecipes(w http.ResponseWriter, _ *http.Request) {
	cacheable(w)
	serializer.RespondJSON(w, http.StatusOK, newRecipeList(h.catalog.Featured()))
}

func (h *Handler) listCategories(w http.ResponseWriter, _ *http.Request) {
	cacheable(w)
	serializer.RespondJSON(w, http.StatusOK, struct {
		Categories recipe.CategorySummaries `json:"categories"`
	}{
		Categories: h.catalog.Summaries(),
	})
}
