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
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps bookmarks and reviews in process memory.
type MemoryStore struct {
	mu        sync.RWMutex
	bookmarks map[string]map[int]struct{}
	reviews   map[int][]Review
	now       func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookmarks: make(map[string]map[int]struct{}),
		reviews:   make(map[int][]Review),
		now:       time.Now,
	}
}

// Toggle implements Bookmarks.
func (m *MemoryStore) Toggle(_ context.Context, user string, recipeID int) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.bookmarks[user]
	if !ok {
		set = make(map[int]struct{})
		m.bookmarks[user] = set
	}
	if _, on := set[recipeID]; on {
		delete(set, recipeID)
		return false, nil
	}
	set[recipeID] = struct{}{}
	return true, nil
}

// List implements Bookmarks.
func (m *MemoryStore) List(_ context.Context, user string) ([]int, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int, 0, len(m.bookmarks[user]))
	for id := range m.bookmarks[user] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Has implements Bookmarks.
func (m *MemoryStore) Has(_ context.Context, user string, recipeID int) (bool, error) {
	if err := requireUser(user); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.bookmarks[user][recipeID]
	return ok, nil
}

// AddReview implements Reviews.
func (m *MemoryStore) AddReview(_ context.Context, recipeID int, r Review) (Review, error) {
	r, err := r.prepare(m.now())
	if err != nil {
		return Review{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews[recipeID] = append(m.reviews[recipeID], r)
	return r, nil
}

// ListReviews implements Reviews.
func (m *MemoryStore) ListReviews(_ context.Context, recipeID int) ([]Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.reviews[recipeID]
	out := make([]Review, len(stored))
	for i, r := range stored {
		out[len(stored)-1-i] = r
	}
	return out, nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
