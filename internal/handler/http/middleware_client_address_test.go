// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestWithClientAddress(t *testing.T) {
	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		wantAddress  string
	}{
		{name: "remote address", remoteAddr: "192.168.1.20:40000", wantAddress: "192.168.1.20"},
		{name: "forwarded header wins", remoteAddr: "10.0.0.9:40000", forwardedFor: "203.0.113.7, 10.0.0.9", wantAddress: "203.0.113.7"},
		{name: "mapped ipv4 is unwrapped", remoteAddr: "[::ffff:172.16.0.4]:40000", wantAddress: "172.16.0.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utils.GetClientAddressFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/ip", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set("X-Forwarded-For", tt.forwardedFor)
			}

			newBareHandler().withClientAddress(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantAddress, got)
		})
	}
}
