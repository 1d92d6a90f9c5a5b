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

// Package server provides the HTTP server shared by RecipeHub services.
//
// The package knows nothing about recipes. Callers register handlers by
// ServeMux pattern and the server wraps each one in a middleware chain:
//
//   - metrics: request count, latency and in-flight gauge per route pattern
//   - version: negotiates the API version from the Accept header
//   - request id: accepts a UUID X-Request-Id or generates one
//   - panic recovery: converts panics into a 500 error response
//   - rate limit: token bucket (golang.org/x/time/rate), 429 with Retry-After
//   - logging: debug-level request start/finish records
//
// # Usage
//
//	s := server.New(
//	    server.WithName("recipehubd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/recipes": h.listRecipes,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT/SIGTERM or context cancellation, then drains
// in-flight requests within Config.ShutdownTimeout.
//
// # System Endpoints
//
// GET /health always returns 200. GET /ready returns 503 until the server
// is listening, and while an optional readiness check fails. GET /metrics
// serves Prometheus metrics. None of them go through the middleware chain.
// GET / lists the registered routes.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and
// RATE_LIMIT_BURST from the environment; invalid values keep the default.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "invalid integer parameter",
//	  "details": {"param": "page", "value": "two"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives status, code and details from a
// pkg/errors.StructuredError; any other error becomes a retryable 500.
package server
