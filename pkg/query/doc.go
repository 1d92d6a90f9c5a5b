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

// Package query implements the recipe query engine.
//
// A query is a State value: free text, four single-select filters, an
// inclusive total-time bound, a sort key and a page. Running a State over a
// recipe collection filters, sorts and paginates it:
//
//	res := query.Run(cat.Recipes, query.NewState().
//		WithCategory("Dinner").
//		WithSort(query.SortHighestRated))
//
// Run is a pure function. It never mutates its input, never fails, and
// gives the same Result for the same State and collection. Changing any
// filter, the text or the sort through a With method resets the page to 1;
// WithPage changes only the page.
//
// Filters are conjunctive. Text matching is a case-insensitive substring
// test over the title, description and cuisine. A zero MaxTime means no time
// bound. Sorting is stable, so recipes with equal keys keep collection order.
//
// ParseState reads a State from URL parameters and is the only function in
// the package that returns an error. Engine wraps Run with metrics.
package query
