// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/access-gate/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run blocks until the worker has nothing left to do, which is usually when
// ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// AttemptSource yields queued login attempts. The channel is closed when no
// more attempts will arrive.
type AttemptSource interface {
	Records() <-chan models.LoginAttempt
}

// AttemptSaver persists a login attempt.
type AttemptSaver interface {
	SaveLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error
}

// SessionSweeper deactivates expired sessions.
type SessionSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Ticker abstracts time.Ticker for tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}
