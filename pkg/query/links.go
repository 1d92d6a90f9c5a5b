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

import "github.com/recipehub/recipehub/pkg/defaults"

// PageLink is one entry of a pagination control: either a page number or
// an ellipsis standing in for a run of hidden pages.
type PageLink struct {
	Page     int  `json:"page,omitempty" yaml:"page,omitempty"`
	Current  bool `json:"current,omitempty" yaml:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty"`
}

// Pagination describes the controls for moving between pages.
// A zero Pagination means no controls are shown.
type Pagination struct {
	Prev    int        `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next    int        `json:"next,omitempty" yaml:"next,omitempty"`
	HasPrev bool       `json:"hasPrev" yaml:"hasPrev"`
	HasNext bool       `json:"hasNext" yaml:"hasNext"`
	Links   []PageLink `json:"links,omitempty" yaml:"links,omitempty"`
}

// PageLinks builds the pagination control for current of pages. Nothing is
// shown for a single page. Above defaults.MaxPageLinks pages, only the first
// two, the last two and the neighbours of current are listed, with one
// ellipsis per hidden run.
func PageLinks(current, pages int) Pagination {
	if pages <= 1 {
		return Pagination{}
	}

	p := Pagination{
		HasPrev: current > 1,
		HasNext: current < pages,
	}
	if p.HasPrev {
		p.Prev = min(current-1, pages)
	}
	if p.HasNext {
		p.Next = max(current+1, 1)
	}

	elide := pages > defaults.MaxPageLinks
	for i := 1; i <= pages; i++ {
		if elide && i > 2 && i < pages-1 && abs(i-current) > 1 {
			if (i == 3 || i == pages-2) && !lastIsEllipsis(p.Links) {
				p.Links = append(p.Links, PageLink{Ellipsis: true})
			}
			continue
		}
		p.Links = append(p.Links, PageLink{Page: i, Current: i == current})
	}
	return p
}

func lastIsEllipsis(links []PageLink) bool {
	return len(links) > 0 && links[len(links)-1].Ellipsis
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
