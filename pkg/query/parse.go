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
	"net/url"
	"strconv"
	"strings"

	"github.com/recipehub/recipehub/pkg/defaults"
	rherrors "github.com/recipehub/recipehub/pkg/errors"
)

// URL parameter names read by ParseState.
const (
	ParamQuery      = "q"
	ParamCategory   = "category"
	ParamCuisine    = "cuisine"
	ParamDifficulty = "difficulty"
	ParamDiet       = "diet"
	ParamMaxTime    = "maxTime"
	ParamSort       = "sort"
	ParamPage       = "page"
	ParamPerPage    = "perPage"
)

// ParseState builds a State from URL parameters. Missing parameters take
// their defaults. A maxTime at or above defaults.MaxTimeAny means no bound,
// and perPage is capped at defaults.MaxPageSize. Unknown sort names fall
// back to newest. A numeric parameter that does not parse is an
// INVALID_REQUEST error.
func ParseState(v url.Values) (State, error) {
	s := NewState().
		WithQuery(v.Get(ParamQuery)).
		WithCategory(strings.TrimSpace(v.Get(ParamCategory))).
		WithCuisine(strings.TrimSpace(v.Get(ParamCuisine))).
		WithDifficulty(strings.TrimSpace(v.Get(ParamDifficulty))).
		WithDiet(strings.TrimSpace(v.Get(ParamDiet))).
		WithSort(ParseSortKey(v.Get(ParamSort)))

	maxTime, err := intParam(v, ParamMaxTime, 0)
	if err != nil {
		return State{}, err
	}
	if maxTime >= defaults.MaxTimeAny {
		maxTime = 0
	}
	s = s.WithMaxTime(maxTime)

	perPage, err := intParam(v, ParamPerPage, defaults.PageSize)
	if err != nil {
		return State{}, err
	}
	switch {
	case perPage <= 0:
		perPage = defaults.PageSize
	case perPage > defaults.MaxPageSize:
		perPage = defaults.MaxPageSize
	}
	s = s.WithPerPage(perPage)

	// page last: the builders above reset it
	page, err := intParam(v, ParamPage, 1)
	if err != nil {
		return State{}, err
	}
	return s.WithPage(page), nil
}

func intParam(v url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(v.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, rherrors.WrapWithContext(rherrors.ErrCodeInvalidRequest,
			"invalid "+name+" parameter", err,
			map[string]any{"param": name, "value": raw})
	}
	return n, nil
}

// Values encodes s as URL parameters, omitting defaults. ParseState of the
// result yields s again for any state ParseState can produce.
func (s State) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set(ParamQuery, s.Query)
	set(ParamCategory, s.Category)
	set(ParamCuisine, s.Cuisine)
	set(ParamDifficulty, s.Difficulty)
	set(ParamDiet, s.Diet)
	if s.MaxTime > 0 {
		v.Set(ParamMaxTime, strconv.Itoa(s.MaxTime))
	}
	if s.Sort != SortNewest {
		v.Set(ParamSort, s.Sort.String())
	}
	if s.Page != 1 {
		v.Set(ParamPage, strconv.Itoa(s.Page))
	}
	if s.PerPage != defaults.PageSize && s.PerPage > 0 {
		v.Set(ParamPerPage, strconv.Itoa(s.PerPage))
	}
	return v
}
