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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipehub_query_duration_seconds",
			Help:    "Duration of recipe queries in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"sort"},
	)
	queryResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipehub_query_results",
			Help:    "Number of recipes matching a query before pagination",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
		},
	)
	queriesFiltered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipehub_queries_filtered_total",
			Help: "Total number of queries with at least one filter or search term",
		},
	)
)
