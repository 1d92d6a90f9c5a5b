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

	"github.com/recipehub/recipehub/pkg/defaults"
	"github.com/recipehub/recipehub/pkg/header"
	"github.com/recipehub/recipehub/pkg/serializer"
	"github.com/recipehub/recipehub/pkg/store"
)

// ReviewList holds a recipe's reviews, newest first.
type ReviewList struct {
	header.Header `json:",inline" yaml:",inline"`

	RecipeID int            `json:"recipeId" yaml:"recipeId"`
	Items    []store.Review `json:"items" yaml:"items"`
	Total    int            `json:"total" yaml:"total"`
}

// ReviewRequest is the body of a new review.
type ReviewRequest struct {
	Author string `json:"author" yaml:"author"`
	Rating int    `json:"rating" yaml:"rating"`
	Text   string `json:"text" yaml:"text"`
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	rec, err := h.recipeFromPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.StoreHandlerTimeout)
	defer cancel()

	reviews, err := h.store.ListReviews(ctx, rec.ID)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	resp := ReviewList{RecipeID: rec.ID, Items: reviews, Total: len(reviews)}
	resp.Init(header.KindReviewList, header.APIVersion, version)
	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	rec, err := h.recipeFromPath(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	var req ReviewRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeErr(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.StoreHandlerTimeout)
	defer cancel()

	saved, err := h.store.AddReview(ctx, rec.ID, store.Review{
		Author: req.Author,
		Rating: req.Rating,
		Text:   req.Text,
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusCreated, saved)
}
