// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown"},
		{name: "unknown root", method: http.MethodGet, path: "/"},
		{name: "login with GET", method: http.MethodGet, path: "/api/login"},
		{name: "ip with POST", method: http.MethodPost, path: "/api/ip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestHandlerEnv(t, testConfig(), nil)

			rec := env.do(tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Rota não encontrada"}`, rec.Body.String())
		})
	}
}

func TestRoutes_TraceIDOnEveryResponse(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)

	rec := env.do(http.MethodGet, "/api/unknown", "", map[string]string{"X-Trace-ID": "trace-42"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_JSONContentType(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)

	rec := env.do(http.MethodGet, "/api/ip", "", nil)

	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
