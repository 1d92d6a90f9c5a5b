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

import "strings"

// SortKey selects the result ordering.
type SortKey int

const (
	// SortNewest orders by ID, highest first. It is the zero value.
	SortNewest SortKey = iota
	// SortOldest orders by ID, lowest first.
	SortOldest
	// SortHighestRated orders by rating, highest first.
	SortHighestRated
	// SortQuickest orders by total time, shortest first.
	SortQuickest
	// SortMostReviewed orders by review count, highest first.
	SortMostReviewed
)

var sortNames = map[SortKey]string{
	SortNewest:       "newest",
	SortOldest:       "oldest",
	SortHighestRated: "highest-rated",
	SortQuickest:     "quickest",
	SortMostReviewed: "most-reviewed",
}

var sortAliases = map[string]SortKey{
	"newest":        SortNewest,
	"oldest":        SortOldest,
	"highest-rated": SortHighestRated,
	"rating":        SortHighestRated,
	"quickest":      SortQuickest,
	"most-reviewed": SortMostReviewed,
	"popular":       SortMostReviewed,
}

// SortKeys returns every sort key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortNewest, SortOldest, SortHighestRated, SortQuickest, SortMostReviewed}
}

// String returns the wire name of the key.
func (k SortKey) String() string {
	if name, ok := sortNames[k]; ok {
		return name
	}
	return sortNames[SortNewest]
}

// IsValid reports whether k is a defined key.
func (k SortKey) IsValid() bool {
	_, ok := sortNames[k]
	return ok
}

// ParseSortKey maps a wire name or legacy alias to a SortKey.
// Unknown and empty names yield SortNewest.
func ParseSortKey(name string) SortKey {
	if k, ok := sortAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return SortNewest
}

// MarshalText encodes the key as its wire name.
func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a wire name or alias.
func (k *SortKey) UnmarshalText(b []byte) error {
	*k = ParseSortKey(string(b))
	return nil
}
