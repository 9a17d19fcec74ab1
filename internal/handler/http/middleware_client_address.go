// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/access-gate/internal/utils"
)

// withClientAddress resolves the originating address once per request.
func (h *Handler) withClientAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := utils.ResolveClientAddress(r.Header, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(utils.WithClientAddress(r.Context(), address)))
	})
}
