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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(
		WithName("recipehubd-test"),
		WithVersion("v9.9.9"),
		WithPort(9191),
		WithHandler(map[string]http.HandlerFunc{"GET /v1/ping": okHandler}),
	)

	require.NotNil(t, s.httpServer)
	require.NotNil(t, s.rateLimiter)
	assert.Equal(t, "recipehubd-test", s.config.Name)
	assert.Equal(t, "v9.9.9", s.config.Version)
	assert.Equal(t, ":9191", s.httpServer.Addr)
	assert.Contains(t, s.config.Handlers, "GET /v1/ping")
	assert.Contains(t, s.config.Handlers, RootPattern)
}

func TestWithConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Port = 9999
	cfg.Name = "custom"

	s := New(WithConfig(cfg))
	assert.Same(t, cfg, s.config)
	assert.Equal(t, ":9999", s.httpServer.Addr)

	s = New(WithConfig(nil))
	assert.Equal(t, 8080, s.config.Port)
}

func TestRoutesThroughHandler(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"GET /v1/recipes/{id}": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.PathValue("id")))
		},
	}))
	h := s.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recipes/42", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/recipes/42", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := New()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		ready bool
		check func(context.Context) error
		want  int
	}{
		{"ready", true, nil, http.StatusOK},
		{"not ready", false, nil, http.StatusServiceUnavailable},
		{"dependency down", true, func(context.Context) error { return errors.New("redis down") }, http.StatusServiceUnavailable},
		{"dependency up", true, func(context.Context) error { return nil }, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)
			s.readiness = tt.check

			rec := httptest.NewRecorder()
			s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"GET /v1/ping": okHandler}))
	h := s.Handler()

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recipehub_http_requests_total{method="GET",path="GET /v1/ping",status="200"}`)
}

func TestRootHandlerListsRoutes(t *testing.T) {
	s := New(
		WithName("recipehubd"),
		WithHandler(map[string]http.HandlerFunc{"GET /v1/categories": okHandler}),
	)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Name   string   `json:"name"`
		Routes []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "recipehubd", body.Name)
	assert.Contains(t, body.Routes, "GET /v1/categories")
	assert.Contains(t, body.Routes, "GET /health")
	assert.NotContains(t, body.Routes, RootPattern)
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		RootPattern: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("custom"))
		},
	}))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "custom", rec.Body.String())
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = freePort(t)
	cfg.ShutdownTimeout = 100 * time.Millisecond

	s := New(WithConfig(cfg))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() { errChan <- s.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Addr() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown timed out")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.False(t, s.ready)
}

func TestStartFailsOnBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	err = New(WithConfig(cfg)).Start(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to listen"))
}
