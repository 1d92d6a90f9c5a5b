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

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recipehub/recipehub/pkg/defaults"
	rherrors "github.com/recipehub/recipehub/pkg/errors"
)

// KeyPrefix namespaces every key RedisStore writes.
const KeyPrefix = "recipehub"

// RedisStore keeps bookmarks as a set per user and reviews as a list per
// recipe, newest at the head.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore connects lazily to the Redis server at url
// (redis://[user:pass@]host:port/db).
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, rherrors.Wrap(rherrors.ErrCodeInvalidRequest, "invalid redis url", err)
	}
	opts.DialTimeout = defaults.StoreDialTimeout
	opts.ReadTimeout = defaults.StoreOpTimeout
	opts.WriteTimeout = defaults.StoreOpTimeout

	return &RedisStore{client: redis.NewClient(opts), now: time.Now}, nil
}

// Addr returns the server address.
func (s *RedisStore) Addr() string {
	return s.client.Options().Addr
}

func bookmarkKey(user string) string {
	return fmt.Sprintf("%s:bookmarks:%s", KeyPrefix, user)
}

func reviewKey(recipeID int) string {
	return fmt.Sprintf("%s:reviews:%d", KeyPrefix, recipeID)
}

func unavailable(op string, err error) error {
	return rherrors.WrapWithContext(rherrors.ErrCodeUnavailable, "store operation failed", err,
		map[string]any{"op": op})
}

// Toggle implements Bookmarks.
func (s *RedisStore) Toggle(ctx context.Context, user string, recipeID int) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaults.StoreOpTimeout)
	defer cancel()

	key := bookmarkKey(user)
	added, err := s.client.SAdd(ctx, key, recipeID).Result()
	if err != nil {
		return false, unavailable("sadd", err)
	}
	if added == 1 {
		return true, nil
	}
	if err := s.client.SRem(ctx, key, recipeID).Err(); err != nil {
		return false, unavailable("srem", err)
	}
	return false, nil
}

// List implements Bookmarks.
func (s *RedisStore) List(ctx context.Context, user string) ([]int, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaults.StoreOpTimeout)
	defer cancel()

	members, err := s.client.SMembers(ctx, bookmarkKey(user)).Result()
	if err != nil {
		return nil, unavailable("smembers", err)
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			return nil, rherrors.WrapWithContext(rherrors.ErrCodeInternal, "corrupt bookmark entry", err,
				map[string]any{"value": m})
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Has implements Bookmarks.
func (s *RedisStore) Has(ctx context.Context, user string, recipeID int) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaults.StoreOpTimeout)
	defer cancel()

	on, err := s.client.SIsMember(ctx, bookmarkKey(user), recipeID).Result()
	if err != nil {
		return false, unavailable("sismember", err)
	}
	return on, nil
}

// AddReview implements Reviews.
func (s *RedisStore) AddReview(ctx context.Context, recipeID int, r Review) (Review, error) {
	r, err := r.prepare(s.now())
	if err != nil {
		return Review{}, err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return Review{}, rherrors.Wrap(rherrors.ErrCodeInternal, "failed to encode review", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.StoreOpTimeout)
	defer cancel()
	if err := s.client.LPush(ctx, reviewKey(recipeID), data).Err(); err != nil {
		return Review{}, unavailable("lpush", err)
	}
	return r, nil
}

// ListReviews implements Reviews.
func (s *RedisStore) ListReviews(ctx context.Context, recipeID int) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.StoreOpTimeout)
	defer cancel()

	raw, err := s.client.LRange(ctx, reviewKey(recipeID), 0, -1).Result()
	if err != nil {
		return nil, unavailable("lrange", err)
	}
	out := make([]Review, 0, len(raw))
	for _, item := range raw {
		var r Review
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, rherrors.Wrap(rherrors.ErrCodeInternal, "corrupt review entry", err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.StoreOpTimeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
