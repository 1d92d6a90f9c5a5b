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

package defaults

// Query defaults shared by the engine, the HTTP API and the CLI.
const (
	// PageSize is the number of recipes per page when none is requested.
	PageSize = 9

	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 60

	// MaxTimeAny is the slider ceiling in minutes. A time bound at or above
	// it means no bound.
	MaxTimeAny = 180

	// RelatedLimit is the number of related recipes shown on a detail page.
	RelatedLimit = 4

	// MinServings and MaxServings bound ingredient scaling.
	MinServings = 1
	MaxServings = 20

	// MaxPageLinks is the page count above which page links are elided.
	MaxPageLinks = 7
)
