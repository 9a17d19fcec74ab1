// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/access-gate/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withCORS, h.withClientAddress)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/ip", h.clientIP)
		r.Get("/business-hours", h.businessHours)
		r.Get("/check-ip-access", h.checkIPAccess)

		r.With(h.withLoginRateLimit).Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Post("/verify-session", h.verifySession)
	})

	router.Get("/health", h.healthCheck)
	router.Method("GET", "/metrics", metrics.Handler(h.gatherer))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
