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

package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/recipehub/recipehub/pkg/recipe"
)

// Result is one page of a query plus the derived counts.
type Result struct {
	State          State       `json:"state" yaml:"state"`
	Items          recipe.List `json:"items" yaml:"items"`
	Total          int         `json:"total" yaml:"total"`
	Showing        int         `json:"showing" yaml:"showing"`
	Page           int         `json:"page" yaml:"page"`
	Pages          int         `json:"pages" yaml:"pages"`
	PerPage        int         `json:"perPage" yaml:"perPage"`
	ShowPagination bool        `json:"showPagination" yaml:"showPagination"`
}

// TableHeader implements serializer.Tabular.
func (r Result) TableHeader() []string {
	return r.Items.TableHeader()
}

// TableRows implements serializer.Tabular.
func (r Result) TableRows() [][]string {
	return r.Items.TableRows()
}

// Run filters, sorts and paginates recipes according to s.
// The state is normalized first and echoed in the result.
func Run(recipes []recipe.Recipe, s State) Result {
	s = s.Normalize()
	p := Paginate(Sort(Filter(recipes, s), s.Sort), s.Page, s.PerPage)
	return Result{
		State:          s,
		Items:          p.Items,
		Total:          p.Total,
		Showing:        len(p.Items),
		Page:           p.Page,
		Pages:          p.Pages,
		PerPage:        p.PerPage,
		ShowPagination: p.Pages > 1,
	}
}

// Engine runs queries over a fixed collection and records metrics.
type Engine struct {
	recipes []recipe.Recipe
}

// NewEngine creates an Engine over recipes. The slice must not be modified
// afterwards.
func NewEngine(recipes []recipe.Recipe) *Engine {
	return &Engine{recipes: recipes}
}

// Run executes s. ctx is used for logging only; queries are not cancellable.
func (e *Engine) Run(ctx context.Context, s State) Result {
	start := time.Now()
	res := Run(e.recipes, s)

	queryDuration.WithLabelValues(res.State.Sort.String()).Observe(time.Since(start).Seconds())
	queryResults.Observe(float64(res.Total))
	if res.State.IsFiltered() {
		queriesFiltered.Inc()
	}

	slog.DebugContext(ctx, "query executed",
		"q", res.State.Query,
		"category", res.State.Category,
		"sort", res.State.Sort.String(),
		"page", res.Page,
		"total", res.Total,
		"showing", res.Showing,
	)
	return res
}

// Size returns the number of recipes the engine searches.
func (e *Engine) Size() int {
	return len(e.recipes)
}
