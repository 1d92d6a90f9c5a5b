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

// Package recipe holds the RecipeHub data model and the recipe catalog.
//
// A Catalog is loaded once from the embedded data/catalog.yaml, or from an
// external file or URL, validated, and then treated as read-only. It is safe
// to share between goroutines.
//
//	cat, err := recipe.LoadCatalog(ctx)
//	if err != nil {
//		return err
//	}
//	r, err := cat.Get(4)
//	related := cat.Related(r.ID, defaults.RelatedLimit)
//
// The package also carries the presentation rules shared by the API and the
// CLI: star ratings, human-readable durations, ingredient scaling and the
// validation of new recipe submissions.
package recipe
