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

package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/recipehub/recipehub/pkg/query"
	"github.com/recipehub/recipehub/pkg/recipe"
)

func sortNames() string {
	names := make([]string, 0, len(query.SortKeys()))
	for _, k := range query.SortKeys() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Filter, sort and paginate recipes",
		Description: `Runs a catalog query the same way the API does and prints one page of
results. Text search matches title, description and cuisine, ignoring case.
All other filters match exactly.

  recipehub search --category Dinner --sort quickest --per-page 6`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "q", Aliases: []string{"query"}, Usage: "Free-text search"},
			&cli.StringFlag{Name: "category", Usage: fmt.Sprintf("Category (one of %s)", strings.Join(recipe.CategoryNames, ", "))},
			&cli.StringFlag{Name: "cuisine", Usage: "Cuisine (e.g., Nepali)"},
			&cli.StringFlag{Name: "difficulty", Usage: "Beginner, Intermediate or Advanced"},
			&cli.StringFlag{Name: "diet", Usage: "Dietary tag (e.g., Vegan)"},
			&cli.IntFlag{Name: "max-time", Usage: "Maximum total minutes (0 = any)"},
			&cli.StringFlag{Name: "sort", Value: query.SortNewest.String(), Usage: fmt.Sprintf("Sort order (one of %s)", sortNames())},
			&cli.IntFlag{Name: "page", Value: 1, Usage: "Page number"},
			&cli.IntFlag{Name: "per-page", Usage: "Results per page (default 9, max 60)"},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			state, err := stateFromCmd(cmd)
			if err != nil {
				return err
			}

			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			if state.Category != "" {
				if _, ok := cat.CategoryByName(state.Category); !ok {
					names := make([]string, 0, len(cat.Categories))
					for _, c := range cat.Categories {
						names = append(names, c.Name)
					}
					return fmt.Errorf("unknown category %q, supported values: %s", state.Category, strings.Join(names, ", "))
				}
			}

			res := query.NewEngine(cat.All()).Run(ctx, state)
			return write(ctx, cmd, res)
		},
	}
}

// stateFromCmd maps flags onto query parameters so the CLI shares the
// API's parsing and clamping rules.
func stateFromCmd(cmd *cli.Command) (query.State, error) {
	v := url.Values{}
	for flag, param := range map[string]string{
		"q":          query.ParamQuery,
		"category":   query.ParamCategory,
		"cuisine":    query.ParamCuisine,
		"difficulty": query.ParamDifficulty,
		"diet":       query.ParamDiet,
		"sort":       query.ParamSort,
	} {
		if s := cmd.String(flag); s != "" {
			v.Set(param, s)
		}
	}
	for flag, param := range map[string]string{
		"max-time": query.ParamMaxTime,
		"page":     query.ParamPage,
		"per-page": query.ParamPerPage,
	} {
		if cmd.IsSet(flag) {
			v.Set(param, strconv.Itoa(cmd.Int(flag)))
		}
	}

	if sort := cmd.String("sort"); sort != "" && !knownSort(sort) {
		return query.State{}, fmt.Errorf("unknown sort %q, supported values: %s", sort, sortNames())
	}

	s, err := query.ParseState(v)
	if err != nil {
		return query.State{}, fmt.Errorf("invalid search parameters: %w", err)
	}
	return s, nil
}

func knownSort(name string) bool {
	k := query.ParseSortKey(name)
	return k != query.SortNewest || strings.EqualFold(strings.TrimSpace(name), query.SortNewest.String())
}
