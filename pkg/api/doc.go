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

// Package api serves the RecipeHub catalog over HTTP.
//
// It loads the catalog, opens the bookmark/review store, registers the
// handlers below with pkg/server and runs until shutdown. pkg/server owns
// middleware, probes, metrics and graceful shutdown.
//
// # Endpoints
//
//   - GET  /v1/recipes                - query: q, category, cuisine, difficulty, diet, maxTime, sort, page, perPage
//   - GET  /v1/recipes/{id}           - detail with stars, formatted times, related; ?servings=N scales ingredients
//   - GET  /v1/recipes/{id}/related   - related recipes; ?limit=N
//   - GET  /v1/recipes/{id}/reviews   - reviews, newest first
//   - POST /v1/recipes/{id}/reviews   - add a review (JSON or YAML body)
//   - GET  /v1/categories             - categories with live recipe counts
//   - GET  /v1/featured               - featured recipes
//   - GET  /v1/bookmarks              - caller's bookmarks (X-User-Id required)
//   - POST /v1/bookmarks/{id}         - toggle a bookmark (X-User-Id required)
//   - POST /v1/submissions            - validate a recipe submission, 202 on success
//
// Catalog reads carry Cache-Control: public, max-age=600.
//
// Example:
//
//	curl "http://localhost:8080/v1/recipes?category=Dinner&sort=quickest&perPage=6"
//
// # Configuration
//
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - RECIPEHUB_DATA: catalog file or URL (default: embedded sample catalog)
//   - REDIS_URL: Redis store (default: in-memory store with sample reviews)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/recipehub/recipehub/pkg/api.version=1.0.0'"
package api
