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
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	rherrors "github.com/recipehub/recipehub/pkg/errors"
)

// MinReviewText is the shortest accepted review, in characters after trimming.
const MinReviewText = 10

// Bookmarks records which recipes a user has saved.
type Bookmarks interface {
	// Toggle flips the bookmark and reports whether it is now set.
	Toggle(ctx context.Context, user string, recipeID int) (bool, error)
	// List returns the user's bookmarked recipe ids in ascending order.
	List(ctx context.Context, user string) ([]int, error)
	// Has reports whether the recipe is bookmarked.
	Has(ctx context.Context, user string, recipeID int) (bool, error)
}

// Reviews records recipe reviews.
type Reviews interface {
	// AddReview stores a validated review.
	AddReview(ctx context.Context, recipeID int, r Review) (Review, error)
	// ListReviews returns reviews for a recipe, newest first.
	ListReviews(ctx context.Context, recipeID int) ([]Review, error)
}

// Store is the full persistence surface used by the API.
type Store interface {
	Bookmarks
	Reviews
	Ping(ctx context.Context) error
	Close() error
}

// Review is one user review of a recipe.
type Review struct {
	Author    string    `json:"author" yaml:"author"`
	Initials  string    `json:"initials" yaml:"initials"`
	Rating    int       `json:"rating" yaml:"rating"`
	Text      string    `json:"text" yaml:"text"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate requires a rating of 1 to 5 and at least MinReviewText
// characters of text.
func (r Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return rherrors.NewWithContext(rherrors.ErrCodeInvalidRequest, "please select a star rating from 1 to 5",
			map[string]any{"field": "rating", "rating": r.Rating})
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Text)) < MinReviewText {
		return rherrors.NewWithContext(rherrors.ErrCodeInvalidRequest, "please write at least 10 characters",
			map[string]any{"field": "text"})
	}
	return nil
}

// prepare validates r and fills in derived fields.
func (r Review) prepare(now time.Time) (Review, error) {
	if err := r.Validate(); err != nil {
		return Review{}, err
	}
	r.Text = strings.TrimSpace(r.Text)
	r.Author = strings.TrimSpace(r.Author)
	if r.Author == "" {
		r.Author = "Anonymous"
	}
	if r.Initials == "" {
		r.Initials = Initials(r.Author)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now.UTC()
	}
	return r, nil
}

// Initials returns the upper-cased first letters of the first two words
// of name.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

func requireUser(user string) error {
	if strings.TrimSpace(user) == "" {
		return rherrors.New(rherrors.ErrCodeUnauthorized, "user id is required")
	}
	return nil
}

// Open returns a RedisStore for a non-empty url, and a MemoryStore otherwise.
// The Redis connection is checked before returning.
func Open(ctx context.Context, url string) (Store, error) {
	if strings.TrimSpace(url) == "" {
		slog.Info("using in-memory store")
		return NewMemoryStore(), nil
	}

	rs, err := NewRedisStore(url)
	if err != nil {
		return nil, err
	}
	if err := rs.Ping(ctx); err != nil {
		_ = rs.Close()
		return nil, err
	}
	slog.Info("using redis store", "addr", rs.Addr())
	return rs, nil
}

// SampleReviews returns the reviews shown on a recipe before anyone has
// written one, oldest first.
func SampleReviews(now time.Time) []Review {
	day := 24 * time.Hour
	return []Review{
		{Author: "Suman Shrestha", Initials: "SS", Rating: 5, CreatedAt: now.Add(-14 * day),
			Text: "This is now my go-to recipe. Simple ingredients, clear steps, and the result is incredible."},
		{Author: "Bikash Tamang", Initials: "BT", Rating: 4, CreatedAt: now.Add(-7 * day),
			Text: "Really good recipe. I adjusted the chili a bit for my kids but otherwise followed it exactly. Will make again!"},
		{Author: "Anita Gurung", Initials: "AG", Rating: 5, CreatedAt: now.Add(-2 * day),
			Text: "Absolutely delicious! Made this for a family dinner and everyone loved it. The spices were perfectly balanced."},
	}
}

// Seed adds SampleReviews to every recipe that has no reviews yet.
func Seed(ctx context.Context, s Reviews, recipeIDs []int, now time.Time) error {
	for _, id := range recipeIDs {
		existing, err := s.ListReviews(ctx, id)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		for _, r := range SampleReviews(now) {
			if _, err := s.AddReview(ctx, id, r); err != nil {
				return err
			}
		}
	}
	return nil
}
