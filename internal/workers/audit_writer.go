// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
)

// AuditWriter persists queued login attempts until the source is closed.
// A failed write is logged and counted, never retried.
type AuditWriter struct {
	source  AttemptSource
	saver   AttemptSaver
	metrics metrics.MetricsCollector
	logger  *logger.Logger
}

func NewAuditWriter(source AttemptSource, saver AttemptSaver, metrics metrics.MetricsCollector, logger *logger.Logger) *AuditWriter {
	return &AuditWriter{
		source:  source,
		saver:   saver,
		metrics: metrics,
		logger:  logger,
	}
}

// Run drains the source. It keeps writing after ctx is cancelled so that
// attempts queued before shutdown are not lost; it returns once the source
// channel is closed.
func (w *AuditWriter) Run(ctx context.Context) {
	writeCtx := context.WithoutCancel(w.logger.WithContext(ctx))
	w.logger.Info().Msg("audit writer started")

	for attempt := range w.source.Records() {
		if err := w.saver.SaveLoginAttempt(writeCtx, attempt); err != nil {
			w.logger.Err(err).
				Str("username", attempt.Username).
				Bool("success", attempt.Success).
				Msg("failed to save login attempt")
			w.metrics.RecordAuditWriteFailure()
		}
	}

	w.logger.Info().Msg("audit writer stopped")
}
