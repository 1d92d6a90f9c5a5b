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

// Package cli implements the recipehub command-line tool.
//
// The CLI runs the same catalog queries as the API server, locally, and
// prints the result as a table, JSON or YAML. It can also start the server.
//
// # Commands
//
// search - Filter, sort and paginate recipes:
//
//	recipehub search --q curry --category Dinner --sort highest-rated --per-page 6
//
// Flags mirror the API query parameters (q, category, cuisine, difficulty,
// diet, max-time, sort, page, per-page) and follow the same clamping rules.
//
// show - Print one recipe, optionally scaled:
//
//	recipehub show --id 4 --servings 12 --format yaml
//
// categories - List categories with live recipe counts:
//
//	recipehub categories
//
// related - List recipes from the same category:
//
//	recipehub related --id 1 --limit 2
//
// serve - Run the API server:
//
//	recipehub serve --port 8080 --redis-url redis://localhost:6379/0
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//	--data         Catalog file or http(s) URL (env: RECIPEHUB_DATA)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Output flags accepted by the listing commands:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: table, json, yaml (default: table)
package cli
