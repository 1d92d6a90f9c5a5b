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

package api

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/recipehub/recipehub/pkg/logging"
	"github.com/recipehub/recipehub/pkg/recipe"
	"github.com/recipehub/recipehub/pkg/server"
	"github.com/recipehub/recipehub/pkg/store"
)

const (
	name           = "recipehubd"
	versionDefault = "dev"

	// EnvRedisURL selects the Redis store when set.
	EnvRedisURL = "REDIS_URL"
	// EnvDataPath points at an external catalog file or URL.
	EnvDataPath = "RECIPEHUB_DATA"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/recipehub/recipehub/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config selects the catalog and store backing the API.
type Config struct {
	// Port overrides the server port when positive.
	Port int
	// DataPath is a catalog file or URL; empty uses the embedded catalog.
	DataPath string
	// RedisURL selects the Redis store; empty uses the in-memory store.
	RedisURL string
	// SeedReviews adds sample reviews to recipes that have none.
	SeedReviews bool
	// LogLevel overrides LOG_LEVEL when set.
	LogLevel string
}

// ConfigFromEnv reads RECIPEHUB_DATA and REDIS_URL. Sample reviews are
// seeded only for the in-memory store.
func ConfigFromEnv() Config {
	cfg := Config{
		DataPath: os.Getenv(EnvDataPath),
		RedisURL: os.Getenv(EnvRedisURL),
	}
	cfg.SeedReviews = cfg.RedisURL == ""
	return cfg
}

// Serve starts the API server and blocks until shutdown.
func Serve(ctx context.Context, cfg Config) error {
	if cfg.LogLevel != "" {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	} else {
		logging.SetDefaultStructuredLogger(name, version)
	}
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cat, err := recipe.OpenCatalog(ctx, cfg.DataPath)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}()

	if cfg.SeedReviews {
		ids := make([]int, 0, len(cat.Recipes))
		for _, r := range cat.Recipes {
			ids = append(ids, r.ID)
		}
		if err := store.Seed(ctx, st, ids, time.Now()); err != nil {
			return err
		}
	}

	h := NewHandler(cat, st)
	slog.Info("catalog loaded",
		"source", cat.Metadata[recipe.MetadataSource],
		"recipes", h.engine.Size(),
		"categories", len(cat.Categories),
	)
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithPort(cfg.Port),
		server.WithHandler(h.Routes()),
		server.WithReadinessCheck(st.Ping),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
