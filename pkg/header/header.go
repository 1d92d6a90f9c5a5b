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

package header

import (
	"fmt"
	"time"
)

// APIVersion is the schema version of every document this module emits.
const APIVersion = "recipehub.dev/v1alpha1"

// Kind represents the type of a RecipeHub document.
type Kind string

// Valid Kind constants.
const (
	KindRecipeCatalog Kind = "RecipeCatalog"
	KindQueryResult   Kind = "QueryResult"
	KindRecipe        Kind = "Recipe"
	KindReviewList    Kind = "ReviewList"
	KindBookmarkList  Kind = "BookmarkList"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindRecipeCatalog, KindQueryResult, KindRecipe, KindReviewList, KindBookmarkList:
		return true
	default:
		return false
	}
}

// Option modifies a Header in place.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// Header is the envelope shared by all RecipeHub documents.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets kind and apiVersion and resets metadata to a fresh timestamp
// plus the producing binary's version.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Apply runs opts against h, keeping whatever metadata is already set.
func (h *Header) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(h)
	}
}

// Expect returns an error unless the header carries the given kind and the
// supported API version.
func (h *Header) Expect(kind Kind) error {
	if !h.Kind.IsValid() {
		return fmt.Errorf("unknown kind %q", h.Kind)
	}
	if h.Kind != kind {
		return fmt.Errorf("unexpected kind %q, want %q", h.Kind, kind)
	}
	if h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion)
	}
	return nil
}
