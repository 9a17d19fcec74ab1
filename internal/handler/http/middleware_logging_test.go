// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type statusCounter struct {
	metrics.Nop
	statuses []int
}

func (s *statusCounter) RecordHTTPStatus(status int) {
	s.statuses = append(s.statuses, status)
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		handlerStatus   int
		handlerResponse string
		wantContains    []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/ip",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			wantContains:    []string{`"method":"GET"`, `"uri":"/api/ip"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:          "POST 401 without body",
			method:        http.MethodPost,
			path:          "/api/login",
			handlerStatus: http.StatusUnauthorized,
			wantContains:  []string{`"method":"POST"`, `"status":401`, `"size":0`},
		},
		{
			name:            "query string is kept in uri",
			method:          http.MethodGet,
			path:            "/api/check-ip-access?x=1",
			handlerStatus:   http.StatusForbidden,
			handlerResponse: "{}",
			wantContains:    []string{`"uri":"/api/check-ip-access?x=1"`, `"status":403`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			counter := &statusCounter{}
			h := &Handler{logger: logger.Nop(), metrics: counter}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rr := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rr, req)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.Equal(t, []int{tt.handlerStatus}, counter.statuses)
		})
	}
}

func TestWithLogging_DefaultStatusIsOK(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop(), metrics: metrics.Nop{}}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}
