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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/recipehub/recipehub/pkg/defaults"
	rherrors "github.com/recipehub/recipehub/pkg/errors"
	"github.com/recipehub/recipehub/pkg/query"
	"github.com/recipehub/recipehub/pkg/recipe"
	"github.com/recipehub/recipehub/pkg/serializer"
	"github.com/recipehub/recipehub/pkg/server"
	"github.com/recipehub/recipehub/pkg/store"
)

// HeaderUserID identifies the caller for bookmark requests.
const HeaderUserID = "X-User-Id"

// maxBodyBytes caps review and submission payloads.
const maxBodyBytes = 1 << 20

// Handler serves the RecipeHub API over a catalog and a store.
type Handler struct {
	catalog *recipe.Catalog
	engine  *query.Engine
	store   store.Store
}

// NewHandler creates a Handler. The catalog must not change afterwards.
func NewHandler(cat *recipe.Catalog, st store.Store) *Handler {
	return &Handler{
		catalog: cat,
		engine:  query.NewEngine(cat.All()),
		store:   st,
	}
}

// Routes returns the handlers keyed by ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/recipes":               h.listRecipes,
		"GET /v1/recipes/{id}":          h.getRecipe,
		"GET /v1/recipes/{id}/related":  h.relatedRecipes,
		"GET /v1/recipes/{id}/reviews":  h.listReviews,
		"POST /v1/recipes/{id}/reviews": h.addReview,
		"GET /v1/categories":            h.listCategories,
		"GET /v1/featured":              h.featuredRecipes,
		"GET /v1/bookmarks":             h.listBookmarks,
		"POST /v1/bookmarks/{id}":       h.toggleBookmark,
		"POST /v1/submissions":          h.submitRecipe,
	}
}

// cacheable marks catalog reads as cacheable by clients and proxies.
func cacheable(w http.ResponseWriter) {
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
}

// recipeFromPath resolves the {id} path value to a catalog recipe.
func (h *Handler) recipeFromPath(r *http.Request) (recipe.Recipe, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return recipe.Recipe{}, rherrors.WrapWithContext(rherrors.ErrCodeInvalidRequest,
			"recipe id must be an integer", err, map[string]any{"id": raw})
	}
	return h.catalog.Get(id)
}

func userID(r *http.Request) (string, error) {
	user := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if user == "" {
		return "", rherrors.NewWithContext(rherrors.ErrCodeUnauthorized,
			"missing user id", map[string]any{"header": HeaderUserID})
	}
	return user, nil
}

// decodeBody reads a JSON or YAML request body, chosen by Content-Type.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	reader, err := serializer.NewReader(serializer.FormatFromContentType(r.Header.Get("Content-Type")), body)
	if err != nil {
		return rherrors.Wrap(rherrors.ErrCodeInvalidRequest, "unsupported request body format", err)
	}
	defer reader.Close()

	if err := reader.Deserialize(v); err != nil {
		return rherrors.Wrap(rherrors.ErrCodeInvalidRequest, "invalid request body", err)
	}
	return nil
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	server.WriteErrorFromErr(w, r, err, "request failed", nil)
}
