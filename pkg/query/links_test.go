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

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// render turns links into a compact form: page numbers, "*" marks the
// current page and "…" an ellipsis.
func render(links []PageLink) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		switch {
		case l.Ellipsis:
			out = append(out, "…")
		case l.Current:
			out = append(out, "*"+strconv.Itoa(l.Page))
		default:
			out = append(out, strconv.Itoa(l.Page))
		}
	}
	return out
}

func TestPageLinks_Hidden(t *testing.T) {
	assert.Equal(t, Pagination{}, PageLinks(1, 1))
	assert.Equal(t, Pagination{}, PageLinks(1, 0))
}

func TestPageLinks_Small(t *testing.T) {
	p := PageLinks(1, 3)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 2, p.Next)
	assert.Equal(t, []string{"*1", "2", "3"}, render(p.Links))

	p = PageLinks(7, 7)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 6, p.Prev)
	assert.False(t, p.HasNext)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "*7"}, render(p.Links))
}

func TestPageLinks_Elided(t *testing.T) {
	tests := []struct {
		current, pages int
		want           []string
	}{
		{5, 10, []string{"1", "2", "…", "4", "*5", "6", "…", "9", "10"}},
		{1, 10, []string{"*1", "2", "…", "9", "10"}},
		{10, 10, []string{"1", "2", "…", "9", "*10"}},
		{3, 10, []string{"1", "2", "*3", "4", "…", "9", "10"}},
		{4, 8, []string{"1", "2", "3", "*4", "5", "…", "7", "8"}},
		{1, 8, []string{"*1", "2", "…", "7", "8"}},
		{8, 8, []string{"1", "2", "…", "7", "*8"}},
		{8, 12, []string{"1", "2", "…", "7", "*8", "9", "…", "11", "12"}},
	}

	for _, tt := range tests {
		p := PageLinks(tt.current, tt.pages)
		assert.Equal(t, tt.want, render(p.Links), "page %d of %d", tt.current, tt.pages)
	}
}

func TestPageLinks_OutOfRangeCurrent(t *testing.T) {
	p := PageLinks(15, 3)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 3, p.Prev)
	assert.False(t, p.HasNext)

	p = PageLinks(-2, 3)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 1, p.Next)
}
