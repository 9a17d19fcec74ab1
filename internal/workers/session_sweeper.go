// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
)

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// SessionSweeperWorker periodically deactivates expired sessions.
type SessionSweeperWorker struct {
	sweeper   SessionSweeper
	newTicker func() Ticker
	metrics   metrics.MetricsCollector
	logger    *logger.Logger
}

func NewSessionSweeperWorker(sweeper SessionSweeper, interval time.Duration, metrics metrics.MetricsCollector, logger *logger.Logger) *SessionSweeperWorker {
	return &SessionSweeperWorker{
		sweeper:   sweeper,
		newTicker: func() Ticker { return timeTicker{time.NewTicker(interval)} },
		metrics:   metrics,
		logger:    logger,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (w *SessionSweeperWorker) Run(ctx context.Context) {
	ticker := w.newTicker()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C():
			w.sweep(ctx)
		}
	}
}

func (w *SessionSweeperWorker) sweep(ctx context.Context) {
	swept, err := w.sweeper.SweepExpired(w.logger.WithContext(ctx))
	if err != nil {
		w.logger.Err(err).Msg("failed to sweep expired sessions")
		return
	}

	w.metrics.RecordSessionsSwept(swept)
	if swept > 0 {
		w.logger.Info().Int64("sessions", swept).Msg("expired sessions deactivated")
	}
}
