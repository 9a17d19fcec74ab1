// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/access-gate/models"
)

// UserRepository reads user accounts. Users are managed outside the gate.
type UserRepository interface {
	// FindUsersByUsername returns up to two users whose lowercased username
	// equals username, which must already be normalized.
	FindUsersByUsername(ctx context.Context, username string) ([]models.User, error)
}

// DeviceRepository persists the single device binding of each user.
type DeviceRepository interface {
	FindDeviceByUserID(ctx context.Context, userID int64) (models.AuthorizedDevice, error)
	// InsertDevice fails with [ErrDeviceAlreadyBound] if the user already has
	// a binding.
	InsertDevice(ctx context.Context, device models.AuthorizedDevice) error
	// TouchDevice refreshes last access, address and labels of the binding
	// matching both user and token.
	TouchDevice(ctx context.Context, device models.AuthorizedDevice) error
	// UpsertDevice replaces the user's binding in place.
	UpsertDevice(ctx context.Context, device models.AuthorizedDevice) error
}

// SessionRepository persists sessions.
type SessionRepository interface {
	// IssueOrRefresh atomically refreshes the active session of the
	// (user, device) pair, or deactivates the pair's sessions and inserts
	// a new one. The stored session is returned.
	IssueOrRefresh(ctx context.Context, session models.Session) (models.Session, error)
	// FindSessionByToken returns the session in any state with its owner.
	FindSessionByToken(ctx context.Context, token string) (models.SessionWithUser, error)
	// DeactivateSession clears the active flag without setting logout time.
	DeactivateSession(ctx context.Context, token string) error
	// InvalidateSession ends an active session by logout. It reports whether
	// a row changed.
	InvalidateSession(ctx context.Context, token string, logoutAt time.Time) (bool, error)
	TouchSession(ctx context.Context, token string, at time.Time) error
	// DeactivateExpiredSessions deactivates every active session expired at
	// now and returns how many were changed.
	DeactivateExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// LoginAttemptRepository appends audit records.
type LoginAttemptRepository interface {
	SaveLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error
}
