// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS_Preflight(t *testing.T) {
	cfg := testConfig()
	cfg.App.CORSOrigin = "https://portal.example.com"
	env := newTestHandlerEnv(t, cfg, nil)

	rec := env.do(http.MethodOptions, "/api/login", "", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestWithCORS_HeadersOnRegularResponse(t *testing.T) {
	env := newTestHandlerEnv(t, testConfig(), nil)

	rec := env.do(http.MethodGet, "/api/ip", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
