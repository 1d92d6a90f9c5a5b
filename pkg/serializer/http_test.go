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

package serializer

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusAccepted, http.StatusNotFound} {
		w := httptest.NewRecorder()
		RespondJSON(w, status, dish{Title: "Vegan Buddha Bowl", Minutes: 40})

		assert.Equal(t, status, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var got dish
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Vegan Buddha Bowl", got.Title)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestHttpReader_ReadWithContext(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("payload"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	r := NewHttpReader()
	data, err := r.ReadWithContext(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, HttpReaderUserAgent, agent)

	_, err = r.ReadWithContext(context.Background(), srv.URL+"/fail")
	assert.ErrorContains(t, err, "500")

	_, err = r.ReadWithContext(context.Background(), "")
	assert.Error(t, err)
}

func TestHttpReader_Options(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	r := NewHttpReader(WithClient(custom), WithUserAgent("test-agent"), WithTotalTimeout(2*time.Second))

	assert.Same(t, custom, r.Client)
	assert.Equal(t, "test-agent", r.UserAgent)
	assert.Equal(t, 2*time.Second, r.Client.Timeout)
}

func TestHttpReader_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHttpReader().ReadWithContext(ctx, srv.URL)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "canceled"))
}
