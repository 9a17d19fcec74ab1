// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/internal/metrics"
	"github.com/MKhiriev/access-gate/models"
)

// AttemptQueue is an AttemptLogger backed by a bounded channel. A worker
// drains Records and persists them. When the queue is full the record is
// dropped and counted.
type AttemptQueue struct {
	mu      sync.RWMutex
	closed  bool
	records chan models.LoginAttempt

	metrics metrics.MetricsCollector
	logger  *logger.Logger
}

func NewAttemptQueue(size int, metrics metrics.MetricsCollector, logger *logger.Logger) *AttemptQueue {
	return &AttemptQueue{
		records: make(chan models.LoginAttempt, size),
		metrics: metrics,
		logger:  logger,
	}
}

// Log enqueues attempt without blocking.
func (q *AttemptQueue) Log(ctx context.Context, attempt models.LoginAttempt) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		logger.FromContext(ctx).Warn().Str("username", attempt.Username).Msg("login attempt after audit queue was closed")
		q.metrics.RecordAuditDropped()
		return
	}

	select {
	case q.records <- attempt:
	default:
		logger.FromContext(ctx).Error().
			Str("username", attempt.Username).
			Str("ip", attempt.IPAddress).
			Bool("success", attempt.Success).
			Msg("audit queue is full, login attempt dropped")
		q.metrics.RecordAuditDropped()
	}
}

// Records is drained by the audit writer until Close.
func (q *AttemptQueue) Records() <-chan models.LoginAttempt {
	return q.records
}

// Close stops accepting records. It is safe to call more than once.
func (q *AttemptQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.records)
}
