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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "recipehubd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults to memory store with seeded reviews", func(t *testing.T) {
		t.Setenv(EnvRedisURL, "")
		t.Setenv(EnvDataPath, "")
		cfg := ConfigFromEnv()
		assert.Empty(t, cfg.RedisURL)
		assert.Empty(t, cfg.DataPath)
		assert.True(t, cfg.SeedReviews)
	})

	t.Run("redis disables seeding", func(t *testing.T) {
		t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
		t.Setenv(EnvDataPath, "https://example.com/catalog.yaml")
		cfg := ConfigFromEnv()
		assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
		assert.Equal(t, "https://example.com/catalog.yaml", cfg.DataPath)
		assert.False(t, cfg.SeedReviews)
	})
}
