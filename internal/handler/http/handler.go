// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
	"github.com/MKhiriev/access-gate/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// HealthChecker pings the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies groups what the handler needs besides configuration.
type Dependencies struct {
	Services *service.Services

	// Health is nil when no store is configured.
	Health HealthChecker

	Metrics  metrics.MetricsCollector
	Gatherer prometheus.Gatherer
}

type Handler struct {
	services *service.Services
	health   HealthChecker

	metrics  metrics.MetricsCollector
	gatherer prometheus.Gatherer

	limiter        *loginRateLimiter
	corsOrigin     string
	requestTimeout time.Duration

	// windowStartHour and windowEndHour are quoted in access window messages.
	windowStartHour int
	windowEndHour   int

	now    func() time.Time
	logger *logger.Logger
}

func NewHandler(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	collector := deps.Metrics
	if collector == nil {
		collector = metrics.Nop{}
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.NewRegistry()
	}

	return &Handler{
		services:        deps.Services,
		health:          deps.Health,
		metrics:         collector,
		gatherer:        gatherer,
		limiter:         newLoginRateLimiter(cfg.App.LoginRatePerMinute, cfg.App.LoginRateBurst, time.Now),
		corsOrigin:      cfg.App.CORSOrigin,
		requestTimeout:  cfg.Server.RequestTimeout,
		windowStartHour: cfg.App.WindowStartHour,
		windowEndHour:   cfg.App.WindowEndHour,
		now:             time.Now,
		logger:          logger,
	}
}
