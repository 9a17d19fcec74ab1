// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/access-gate/models"
)

// AccessWindowEvaluator decides whether a moment falls inside business hours.
type AccessWindowEvaluator interface {
	Evaluate(now time.Time) models.AccessWindowStatus
	// Now evaluates the current moment of the injected clock.
	Now() models.AccessWindowStatus
}

// AttemptLogger records login attempts. Log never blocks and never fails
// from the caller's point of view.
type AttemptLogger interface {
	Log(ctx context.Context, attempt models.LoginAttempt)
}

// CredentialVerifier authenticates a username and password pair.
type CredentialVerifier interface {
	// Verify runs FindUser then CheckPassword.
	Verify(ctx context.Context, username, password string) (models.User, error)
	// FindUser returns the single active user whose username matches
	// case-insensitively.
	FindUser(ctx context.Context, username string) (models.User, error)
	CheckPassword(user models.User, password string) error
}

// DeviceAuthorizer enforces the device binding policy for a user.
type DeviceAuthorizer interface {
	Authorize(ctx context.Context, userID int64, request models.LoginRequest) (models.AuthorizedDevice, error)
}

// SessionManager owns the session lifecycle.
type SessionManager interface {
	IssueOrRefresh(ctx context.Context, user models.User, deviceToken, address string) (models.Session, error)
	Validate(ctx context.Context, sessionToken string) (models.SessionIdentity, error)
	Invalidate(ctx context.Context, sessionToken string) error
	// SweepExpired deactivates every expired active session.
	SweepExpired(ctx context.Context) (int64, error)
}

// AccessGate runs the ordered login checks.
type AccessGate interface {
	Login(ctx context.Context, request models.LoginRequest) (models.SessionDescriptor, error)
	// IsAddressAllowed reports whether address may attempt a login.
	IsAddressAllowed(address string) bool
	// AllowedAddresses returns the configured allowed addresses.
	AllowedAddresses() []string
}
