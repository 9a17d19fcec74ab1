// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/access-gate/internal/config"
	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
	"github.com/MKhiriev/access-gate/internal/store"
)

// Services groups the components used by the transport layer and workers.
type Services struct {
	AccessGate     AccessGate
	SessionManager SessionManager
	AccessWindow   AccessWindowEvaluator

	// AttemptQueue must be closed on shutdown after the HTTP server stops.
	AttemptQueue *AttemptQueue
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, metrics metrics.MetricsCollector, logger *logger.Logger) (*Services, error) {
	policy, err := ParseDevicePolicy(cfg.App.DevicePolicy)
	if err != nil {
		return nil, err
	}

	clock := time.Now
	window := NewAccessWindowEvaluator(cfg.App, clock, logger)
	sessions := NewSessionManager(repositories.SessionRepository, window, cfg.App.SessionTTL, clock, logger)
	attempts := NewAttemptQueue(cfg.Workers.AuditQueueSize, metrics, logger)

	gate := NewAccessGate(GateDependencies{
		Credentials: NewCredentialVerifier(repositories.UserRepository, cfg.App, logger),
		Window:      window,
		Devices:     NewDeviceAuthorizer(repositories.DeviceRepository, policy, clock, logger),
		Sessions:    sessions,
		Attempts:    attempts,
		Metrics:     metrics,
		Clock:       clock,
	}, cfg.App, logger)

	return &Services{
		AccessGate:     gate,
		SessionManager: sessions,
		AccessWindow:   window,
		AttemptQueue:   attempts,
	}, nil
}
