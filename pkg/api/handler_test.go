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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/recipehub/pkg/query"
	"github.com/recipehub/recipehub/pkg/recipe"
	"github.com/recipehub/recipehub/pkg/server"
	"github.com/recipehub/recipehub/pkg/store"
)

func newTestAPI(t *testing.T, st store.Store) http.Handler {
	t.Helper()
	cat, err := recipe.LoadCatalog(context.Background())
	require.NoError(t, err)
	if st == nil {
		st = store.NewMemoryStore()
	}
	return server.New(server.WithHandler(NewHandler(cat, st).Routes())).Handler()
}

type call struct {
	method      string
	path        string
	body        string
	contentType string
	user        string
}

func do(t *testing.T, h http.Handler, c call) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}
	req := httptest.NewRequest(c.method, c.path, body)
	if c.contentType != "" {
		req.Header.Set("Content-Type", c.contentType)
	}
	if c.user != "" {
		req.Header.Set(HeaderUserID, c.user)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func itemIDs(l recipe.List) []int {
	out := make([]int, len(l))
	for i, r := range l {
		out[i] = r.ID
	}
	return out
}

func TestNewHandlerOwnsRecipes(t *testing.T) {
	cat, err := recipe.NewCatalog(nil, []recipe.Recipe{
		{ID: 1, Title: "Tea", Category: "Drinks", Difficulty: recipe.DifficultyBeginner},
		{ID: 2, Title: "Toast", Category: "Breakfast", Difficulty: recipe.DifficultyBeginner},
	})
	require.NoError(t, err)

	h := NewHandler(cat, store.NewMemoryStore())
	assert.Equal(t, 2, h.engine.Size())

	cat.Recipes[0].Title = "Coffee"
	res := h.engine.Run(context.Background(), query.NewState().WithQuery("tea"))
	assert.Equal(t, 1, res.Total)
}

func TestListRecipes(t *testing.T) {
	h := newTestAPI(t, nil)

	t.Run("default query", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=600")

		resp := decode[QueryResponse](t, rec)
		assert.Equal(t, "QueryResult", string(resp.Kind))
		assert.Equal(t, 8, resp.Total)
		assert.Equal(t, 1, resp.Pages)
		assert.False(t, resp.ShowPagination)
		assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1}, itemIDs(resp.Items))
		assert.Empty(t, resp.ActiveFilters)
		assert.Empty(t, resp.Pagination.Links)
		assert.Equal(t, QueryLinks{Self: "/v1/recipes"}, resp.Links)
	})

	t.Run("category filter", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes?category=Dinner"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decode[QueryResponse](t, rec)
		assert.Equal(t, 4, resp.Total)
		assert.Equal(t, []int{8, 4, 2, 1}, itemIDs(resp.Items))
		require.Len(t, resp.ActiveFilters, 1)
		assert.Equal(t, "category", resp.ActiveFilters[0].Key)
	})

	t.Run("text search and sort", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes?q=MOMO&sort=rating"})
		resp := decode[QueryResponse](t, rec)
		assert.Equal(t, []int{4}, itemIDs(resp.Items))
	})

	t.Run("max time", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes?maxTime=30&sort=quickest"})
		resp := decode[QueryResponse](t, rec)
		assert.Equal(t, []int{7, 6, 5}, itemIDs(resp.Items))
	})

	t.Run("paged", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes?perPage=3&page=2"})
		resp := decode[QueryResponse](t, rec)
		assert.Equal(t, []int{5, 4, 3}, itemIDs(resp.Items))
		assert.Equal(t, 3, resp.Pages)
		assert.True(t, resp.Pagination.HasPrev)
		assert.True(t, resp.Pagination.HasNext)
		assert.Equal(t, QueryLinks{
			Self: "/v1/recipes?page=2&perPage=3",
			Prev: "/v1/recipes?perPage=3",
			Next: "/v1/recipes?page=3&perPage=3",
		}, resp.Links)
	})

	t.Run("links keep filters", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes?category=Dinner&perPage=2&sort=quickest"})
		resp := decode[QueryResponse](t, rec)
		assert.Equal(t, 2, resp.Pages)
		assert.Empty(t, resp.Links.Prev)
		assert.Equal(t, "/v1/recipes?category=Dinner&page=2&perPage=2&sort=quickest", resp.Links.Next)
	})

	t.Run("links past the last page", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes?page=9"})
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[QueryResponse](t, rec)
		assert.Empty(t, resp.Items)
		assert.Equal(t, "/v1/recipes?page=9", resp.Links.Self)
		assert.Empty(t, resp.Links.Prev)
		assert.Empty(t, resp.Links.Next)
	})

	t.Run("bad integer", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes?page=two"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode[server.ErrorResponse](t, rec)
		assert.Equal(t, "INVALID_REQUEST", resp.Code)
		assert.Equal(t, "page", resp.Details["param"])
	})
}

func TestGetRecipe(t *testing.T) {
	h := newTestAPI(t, nil)

	t.Run("detail", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes/1"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Cache-Control"))

		d := decode[RecipeDetail](t, rec)
		assert.Equal(t, "Recipe", string(d.Kind))
		assert.Equal(t, "Dal Bhat Tarkari", d.Recipe.Title)
		assert.Len(t, d.Stars, 5)
		assert.Equal(t, "20m", d.PrepTime)
		assert.Equal(t, "1h", d.TotalTime)
		assert.Equal(t, 4, d.Servings)
		assert.Equal(t, []int{2, 4, 8}, itemIDs(d.Related))
		assert.Nil(t, d.Bookmarked)
	})

	t.Run("scaled servings", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes/1?servings=8"})
		d := decode[RecipeDetail](t, rec)
		assert.Equal(t, 8, d.Servings)
		require.NotEmpty(t, d.Ingredients)
		assert.InDelta(t, 400, d.Ingredients[0].Quantity, 0.001)
	})

	t.Run("bookmark state for known user", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes/1", user: "u1"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Cache-Control"))
		d := decode[RecipeDetail](t, rec)
		require.NotNil(t, d.Bookmarked)
		assert.False(t, *d.Bookmarked)
	})

	tests := []struct {
		path string
		want int
	}{
		{"/v1/recipes/99", http.StatusNotFound},
		{"/v1/recipes/abc", http.StatusBadRequest},
		{"/v1/recipes/1?servings=lots", http.StatusBadRequest},
		{"/v1/recipes/99/related", http.StatusNotFound},
		{"/v1/recipes/1/related?limit=0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, do(t, h, call{method: http.MethodGet, path: tt.path}).Code)
		})
	}
}

func TestCatalogListings(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes/1/related?limit=2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{2, 4}, itemIDs(decode[RecipeList](t, rec).Items))

	rec = do(t, h, call{method: http.MethodGet, path: "/v1/featured"})
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decode[RecipeList](t, rec)
	assert.Equal(t, 4, featured.Total)

	rec = do(t, h, call{method: http.MethodGet, path: "/v1/categories"})
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decode[struct {
		Categories []recipe.CategorySummary `json:"categories"`
	}](t, rec)
	require.Len(t, cats.Categories, 6)
	assert.Equal(t, "Breakfast", cats.Categories[0].Name)
}

func TestReviews(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := do(t, h, call{method: http.MethodGet, path: "/v1/recipes/2/reviews"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[ReviewList](t, rec).Total)

	rec = do(t, h, call{
		method: http.MethodPost, path: "/v1/recipes/2/reviews",
		body: `{"author":"Lena Park","rating":5,"text":"Silky sauce, no cream needed."}`,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	saved := decode[store.Review](t, rec)
	assert.Equal(t, "LP", saved.Initials)

	rec = do(t, h, call{
		method: http.MethodPost, path: "/v1/recipes/2/reviews", contentType: "application/yaml",
		body: "author: Ravi Kumar\nrating: 4\ntext: Great with extra pepper.\n",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, call{method: http.MethodGet, path: "/v1/recipes/2/reviews"})
	list := decode[ReviewList](t, rec)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Ravi Kumar", list.Items[0].Author)
	assert.Equal(t, "ReviewList", string(list.Kind))

	t.Run("validation", func(t *testing.T) {
		rec := do(t, h, call{
			method: http.MethodPost, path: "/v1/recipes/2/reviews",
			body: `{"rating":5,"text":"short"}`,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "text", decode[server.ErrorResponse](t, rec).Details["field"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(t, h, call{method: http.MethodPost, path: "/v1/recipes/2/reviews", body: `{"rating":`})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		rec := do(t, h, call{
			method: http.MethodPost, path: "/v1/recipes/42/reviews",
			body: `{"rating":5,"text":"long enough text"}`,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBookmarks(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := do(t, h, call{method: http.MethodGet, path: "/v1/bookmarks"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode[server.ErrorResponse](t, rec).Code)

	for _, id := range []string{"7", "3"} {
		rec = do(t, h, call{method: http.MethodPost, path: "/v1/bookmarks/" + id, user: "u1"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[BookmarkState](t, rec).Bookmarked)
	}

	rec = do(t, h, call{method: http.MethodGet, path: "/v1/bookmarks", user: "u1"})
	list := decode[BookmarkList](t, rec)
	assert.Equal(t, []int{3, 7}, itemIDs(list.Items))

	rec = do(t, h, call{method: http.MethodPost, path: "/v1/bookmarks/7", user: "u1"})
	assert.False(t, decode[BookmarkState](t, rec).Bookmarked)

	rec = do(t, h, call{method: http.MethodGet, path: "/v1/recipes/3", user: "u1"})
	d := decode[RecipeDetail](t, rec)
	require.NotNil(t, d.Bookmarked)
	assert.True(t, *d.Bookmarked)

	rec = do(t, h, call{method: http.MethodPost, path: "/v1/bookmarks/99", user: "u1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, call{method: http.MethodGet, path: "/v1/bookmarks", user: "u2"})
	assert.Empty(t, decode[BookmarkList](t, rec).Items)
}

func TestBookmarksWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	st, err := store.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	h := newTestAPI(t, st)
	rec := do(t, h, call{method: http.MethodPost, path: "/v1/bookmarks/5", user: "chef"})
	require.Equal(t, http.StatusOK, rec.Code)

	members, err := mr.Members("recipehub:bookmarks:chef")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, members)

	mr.Close()
	rec = do(t, h, call{method: http.MethodGet, path: "/v1/bookmarks", user: "chef"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.True(t, decode[server.ErrorResponse](t, rec).Retryable)
}

const validSubmission = `{
  "title": "Garlic Butter Noodles",
  "description": "Quick weeknight noodles tossed in browned garlic butter.",
  "category": "Dinner",
  "difficulty": "Beginner",
  "prepTime": 5,
  "cookTime": 10,
  "servings": 2,
  "ingredients": [{"name": "Egg noodles", "quantity": 200, "unit": "g"}],
  "steps": [{"number": 1, "text": "Boil the noodles and toss with garlic butter."}]
}`

func TestSubmissions(t *testing.T) {
	h := newTestAPI(t, nil)

	rec := do(t, h, call{method: http.MethodPost, path: "/v1/submissions", body: validSubmission})
	require.Equal(t, http.StatusAccepted, rec.Code)
	receipt := decode[SubmissionReceipt](t, rec)
	assert.Equal(t, "pending", receipt.Status)
	assert.Equal(t, "Garlic Butter Noodles", receipt.Submission.Title)

	bad := strings.Replace(validSubmission, `"Dinner"`, `"Snacks"`, 1)
	rec = do(t, h, call{method: http.MethodPost, path: "/v1/submissions", body: bad})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "category", decode[server.ErrorResponse](t, rec).Details["field"])

	// Submissions never reach the catalog.
	rec = do(t, h, call{method: http.MethodGet, path: "/v1/recipes?q=garlic+butter"})
	assert.Equal(t, 0, decode[QueryResponse](t, rec).Total)
}

func TestMethodMismatch(t *testing.T) {
	h := newTestAPI(t, nil)
	rec := do(t, h, call{method: http.MethodDelete, path: "/v1/recipes/1"})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
