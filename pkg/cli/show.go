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

	"github.com/urfave/cli/v3"

	"github.com/recipehub/recipehub/pkg/recipe"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show a single recipe",
		Flags: []cli.Flag{
			idFlag(),
			&cli.IntFlag{
				Name:  "servings",
				Usage: "Scale ingredient quantities to this many servings",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			r, err := cat.Get(cmd.Int("id"))
			if err != nil {
				return err
			}
			if cmd.IsSet("servings") {
				r.Servings, r.Ingredients = recipe.ScaleIngredients(r, cmd.Int("servings"))
			}
			return write(ctx, cmd, r)
		},
	}
}

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List categories with the number of recipes in each",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			return write(ctx, cmd, cat.Summaries())
		},
	}
}

func relatedCmd() *cli.Command {
	return &cli.Command{
		Name:  "related",
		Usage: "List recipes related to a recipe",
		Flags: []cli.Flag{
			idFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of related recipes (default 4)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}

			related, err := cat.Related(cmd.Int("id"), cmd.Int("limit"))
			if err != nil {
				return err
			}
			return write(ctx, cmd, related)
		},
	}
}
