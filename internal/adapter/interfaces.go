// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the access gate HTTP API.
//
// [GateAdapter] decouples the command line client from the transport. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can branch with [errors.Is] (e.g. [ErrForbidden]
// for 403, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/access-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gate_adapter_mock.go -package=mock

// GateAdapter talks to a running access gate.
type GateAdapter interface {
	// ClientIP returns the address the gate sees for this client.
	ClientIP(ctx context.Context) (models.IPResponse, error)

	// BusinessHours returns the gate's view of the access window.
	BusinessHours(ctx context.Context) (models.BusinessHoursResponse, error)

	// CheckIPAccess reports whether this client's address may log in.
	CheckIPAccess(ctx context.Context) (models.IPAccessResponse, error)

	// Login runs the gate for the given credentials. When request.DeviceToken
	// is empty the adapter's configured device token is sent.
	Login(ctx context.Context, request models.LoginRequest) (models.SessionDescriptor, error)

	// VerifySession checks a session token. Rejections are returned with the
	// decoded reason and a mapped error.
	VerifySession(ctx context.Context, sessionToken string) (models.VerifySessionResponse, error)

	// Logout ends a session. Unknown tokens succeed.
	Logout(ctx context.Context, sessionToken string) error

	// Health returns the gate's liveness report, including the store ping.
	Health(ctx context.Context) (models.HealthResponse, error)
}
