// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/mock"
	"github.com/MKhiriev/access-gate/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHandlerEnv struct {
	handler  *Handler
	router   http.Handler
	gate     *mock.MockAccessGate
	sessions *mock.MockSessionManager
	window   *mock.MockAccessWindowEvaluator
}

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck(context.Context) error {
	return s.err
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			AllowedIPs:         []string{"10.0.0.1"},
			CORSOrigin:         "*",
			WindowStartHour:    8,
			WindowEndHour:      18,
			LoginRatePerMinute: -1,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

func newTestHandlerEnv(t *testing.T, cfg config.StructuredConfig, health HealthChecker) *testHandlerEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testHandlerEnv{
		gate:     mock.NewMockAccessGate(ctrl),
		sessions: mock.NewMockSessionManager(ctrl),
		window:   mock.NewMockAccessWindowEvaluator(ctrl),
	}

	env.handler = NewHandler(Dependencies{
		Services: &service.Services{
			AccessGate:     env.gate,
			SessionManager: env.sessions,
			AccessWindow:   env.window,
		},
		Health: health,
	}, cfg, logger.Nop())
	env.router = env.handler.Init()

	return env
}

func (env *testHandlerEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:51000"
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&body))
	return body
}

func gateFailure(step string, err error) error {
	return &service.GateFailure{Step: step, Err: err}
}

var errBoom = errors.New("boom")
