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
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rherrors "github.com/recipehub/recipehub/pkg/errors"
)

func newTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	st, err := NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, mr
}

func TestRedisStore(t *testing.T) {
	storeContract(t, func(t *testing.T) Store {
		st, _ := newTestRedis(t)
		return st
	})
}

func TestRedisStoreKeys(t *testing.T) {
	st, mr := newTestRedis(t)
	ctx := context.Background()

	_, err := st.Toggle(ctx, "u9", 4)
	require.NoError(t, err)
	ok, err := mr.SIsMember("recipehub:bookmarks:u9", "4")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = st.AddReview(ctx, 4, Review{Author: "Key Check", Rating: 5, Text: "Stored in a list."})
	require.NoError(t, err)
	items, err := mr.List("recipehub:reviews:4")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], `"author":"Key Check"`)
}

func TestRedisStoreCorruptEntry(t *testing.T) {
	st, mr := newTestRedis(t)
	_, err := mr.SAdd("recipehub:bookmarks:u1", "abc")
	require.NoError(t, err)

	_, err = st.List(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, rherrors.ErrCodeInternal, rherrors.CodeOf(err))
}

func TestRedisStoreUnavailable(t *testing.T) {
	st, mr := newTestRedis(t)
	mr.Close()

	err := st.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, rherrors.ErrCodeUnavailable, rherrors.CodeOf(err))

	_, err = Open(context.Background(), "redis://"+mr.Addr())
	assert.Equal(t, rherrors.ErrCodeUnavailable, rherrors.CodeOf(err))
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	st, err := Open(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer st.Close()
	_, ok := st.(*RedisStore)
	assert.True(t, ok)
}
