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
	"log/slog"
	"net/http"

	"github.com/recipehub/recipehub/pkg/defaults"
	"github.com/recipehub/recipehub/pkg/header"
	"github.com/recipehub/recipehub/pkg/recipe"
	"github.com/recipehub/recipehub/pkg/serializer"
)

// BookmarkList is the caller's saved recipes in id order.
type BookmarkList struct {
	header.Header `json:",inline" yaml:",inline"`

	Items recipe.List `json:"items" yaml:"items"`
	Total int         `json:"total" yaml:"total"`
}

// BookmarkState reports a bookmark after a toggle.
type BookmarkState struct {
	RecipeID   int  `json:"recipeId" yaml:"recipeId"`
	Bookmarked bool `json:"bookmarked" yaml:"bookmarked"`
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.StoreHandlerTimeout)
	defer cancel()

	ids, err := h.store.List(ctx, user)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	items := make(recipe.List, 0, len(ids))
	for _, id := range ids {
		rec, err := h.catalog.Get(id)
		if err != nil {
			// Bookmarks may outlive a catalog swap.
			slog.Debug("skipping bookmark for unknown recipe", "user", user, "id", id)
			continue
		}
		items = append(items, rec)
	}

	resp := BookmarkList{Items: items, Total: len(items)}
	resp.Init(header.KindBookmarkList, header.APIVersion, version)
	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) toggleBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	rec, err := h.recipeFromPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.StoreHandlerTimeout)
	defer cancel()

	on, err := h.store.Toggle(ctx, user, rec.ID)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, BookmarkState{RecipeID: rec.ID, Bookmarked: on})
}
