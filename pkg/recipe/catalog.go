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

package recipe

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	rherrors "github.com/recipehub/recipehub/pkg/errors"
	"github.com/recipehub/recipehub/pkg/header"
	"github.com/recipehub/recipehub/pkg/serializer"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// MetadataSource is the catalog metadata key recording where it was loaded
// from: SourceEmbedded, SourceInline or the file path or URL.
const MetadataSource = "source"

// Values of MetadataSource for catalogs not read from a file.
const (
	SourceEmbedded = "embedded"
	SourceInline   = "inline"
)

var (
	catalogOnce   sync.Once
	cachedCatalog *Catalog
	cachedErr     error
)

// Catalog is the validated set of categories and recipes.
// It must not be modified after loading.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	Categories Categories `json:"categories" yaml:"categories"`
	Recipes    List       `json:"recipes" yaml:"recipes"`

	byID map[int]int
}

// LoadCatalog returns the embedded catalog, parsing and validating it on
// first use. Later calls return the cached result.
func LoadCatalog(_ context.Context) (*Catalog, error) {
	hit := true
	catalogOnce.Do(func() {
		hit = false
		catalogCacheMisses.Inc()

		cat, err := serializer.FromBytes[Catalog](serializer.FormatYAML, embeddedCatalog)
		if err != nil {
			cachedErr = rherrors.Wrap(rherrors.ErrCodeInternal, "failed to parse embedded catalog", err)
			return
		}
		if err := cat.init(); err != nil {
			cachedErr = err
			return
		}
		cat.Apply(header.WithMetadata(MetadataSource, SourceEmbedded))
		cachedCatalog = cat
	})
	if hit {
		catalogCacheHits.Inc()
	}
	return cachedCatalog, cachedErr
}

// LoadCatalogFromFile loads and validates a catalog from a local path or an
// http(s) URL. Nothing is cached.
func LoadCatalogFromFile(ctx context.Context, path string) (*Catalog, error) {
	cat, err := serializer.FromFileWithContext[Catalog](ctx, path)
	if err != nil {
		return nil, rherrors.WrapWithContext(rherrors.ErrCodeInvalidRequest, "failed to load catalog", err,
			map[string]any{"path": path})
	}
	if err := cat.init(); err != nil {
		return nil, err
	}
	cat.Apply(header.WithMetadata(MetadataSource, path))
	return cat, nil
}

// OpenCatalog returns the catalog at path, or the embedded catalog when
// path is empty.
func OpenCatalog(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		return LoadCatalog(ctx)
	}
	return LoadCatalogFromFile(ctx, path)
}

// NewCatalog builds a validated catalog from in-memory data.
func NewCatalog(categories []Category, recipes []Recipe) (*Catalog, error) {
	cat := &Catalog{
		Categories: categories,
		Recipes:    recipes,
	}
	cat.Init(header.KindRecipeCatalog, header.APIVersion, "")
	cat.Apply(header.WithMetadata(MetadataSource, SourceInline))
	if err := cat.init(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) init() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.byID = make(map[int]int, len(c.Recipes))
	for i, r := range c.Recipes {
		c.byID[r.ID] = i
	}
	catalogRecipes.Set(float64(len(c.Recipes)))
	return nil
}

// Validate checks the header and every category and recipe.
func (c *Catalog) Validate() error {
	if err := c.Expect(header.KindRecipeCatalog); err != nil {
		return rherrors.Wrap(rherrors.ErrCodeInvalidRequest, "invalid catalog header", err)
	}

	seenCat := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if !IsKnownCategory(cat.Name) {
			return invalid("unknown category", fmt.Errorf("category %q", cat.Name), map[string]any{"category": cat.Name})
		}
		if seenCat[cat.Name] {
			return invalid("duplicate category", fmt.Errorf("category %q", cat.Name), map[string]any{"category": cat.Name})
		}
		seenCat[cat.Name] = true
	}

	seen := make(map[int]bool, len(c.Recipes))
	for _, r := range c.Recipes {
		if err := validateRecipe(r); err != nil {
			return invalid("invalid recipe", err, map[string]any{"id": r.ID})
		}
		if seen[r.ID] {
			return invalid("duplicate recipe id", fmt.Errorf("id %d", r.ID), map[string]any{"id": r.ID})
		}
		seen[r.ID] = true
	}
	return nil
}

func invalid(msg string, cause error, ctx map[string]any) error {
	return rherrors.WrapWithContext(rherrors.ErrCodeInvalidRequest, "catalog validation failed: "+msg, cause, ctx)
}

func validateRecipe(r Recipe) error {
	switch {
	case r.ID <= 0:
		return fmt.Errorf("id must be positive, got %d", r.ID)
	case r.Title == "":
		return fmt.Errorf("title is required")
	case !IsKnownCategory(r.Category):
		return fmt.Errorf("unknown category %q", r.Category)
	case !r.Difficulty.IsValid():
		return fmt.Errorf("unknown difficulty %q", r.Difficulty)
	case r.PrepTime < 0 || r.CookTime < 0:
		return fmt.Errorf("times must not be negative (prep %d, cook %d)", r.PrepTime, r.CookTime)
	case r.Rating < 0 || r.Rating > MaxRating:
		return fmt.Errorf("rating %.2f outside 0-%d", r.Rating, MaxRating)
	case r.ReviewCount < 0:
		return fmt.Errorf("review count must not be negative")
	case r.Servings < 0:
		return fmt.Errorf("servings must not be negative")
	}
	return nil
}
