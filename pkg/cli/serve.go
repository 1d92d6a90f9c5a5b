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

	"github.com/recipehub/recipehub/pkg/api"
	"github.com/recipehub/recipehub/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the RecipeHub API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "HTTP port",
				Sources: cli.EnvVars(server.EnvPort),
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Usage:   "Redis URL for bookmarks and reviews (default: in-memory)",
				Sources: cli.EnvVars(api.EnvRedisURL),
			},
			&cli.BoolFlag{
				Name:  "seed-reviews",
				Usage: "Add sample reviews to recipes without any (default: on for the in-memory store)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := serveConfig(cmd)
			return api.Serve(ctx, cfg)
		},
	}
}

func serveConfig(cmd *cli.Command) api.Config {
	cfg := api.Config{
		Port:     cmd.Int("port"),
		DataPath: cmd.String("data"),
		RedisURL: cmd.String("redis-url"),
		LogLevel: cmd.String("log-level"),
	}
	cfg.SeedReviews = cfg.RedisURL == ""
	if cmd.IsSet("seed-reviews") {
		cfg.SeedReviews = cmd.Bool("seed-reviews")
	}
	return cfg
}
