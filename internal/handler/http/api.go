// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/utils"
	"github.com/MKhiriev/access-gate/models"
)

// healthCheckTimeout bounds the store ping of GET /health.
const healthCheckTimeout = 2 * time.Second

// isoMillis matches JavaScript's Date.prototype.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func (h *Handler) clientIP(w http.ResponseWriter, r *http.Request) {
	address, _ := utils.GetClientAddressFromContext(r.Context())
	utils.WriteJSON(w, models.IPResponse{IP: address}, http.StatusOK)
}

func (h *Handler) checkIPAccess(w http.ResponseWriter, r *http.Request) {
	address, _ := utils.GetClientAddressFromContext(r.Context())
	authorized := h.services.AccessGate.IsAddressAllowed(address)

	logger.FromRequest(r).Info().Str("ip", address).Bool("authorized", authorized).Msg("ip access check")

	utils.WriteJSON(w, models.IPAccessResponse{
		Authorized: authorized,
		IP:         address,
		RequiredIP: strings.Join(h.services.AccessGate.AllowedAddresses(), ","),
	}, http.StatusOK)
}

func (h *Handler) businessHours(w http.ResponseWriter, r *http.Request) {
	status := h.services.AccessWindow.Now()

	utils.WriteJSON(w, models.BusinessHoursResponse{
		IsBusinessHours: status.Within,
		CurrentTime:     status.CurrentTime,
		Day:             status.Weekday,
		Hour:            status.Hour,
	}, http.StatusOK)
}

// healthCheck always answers 200. The database field reports the store ping.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(isoMillis),
		Store:     "not configured",
		Database:  "not configured",
	}

	if h.health != nil {
		response.Store = "configured"
		response.Database = "ok"

		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.health.HealthCheck(ctx); err != nil {
			logger.FromRequest(r).Err(err).Msg("store health check failed")
			response.Database = "unavailable"
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
