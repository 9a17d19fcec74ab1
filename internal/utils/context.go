// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the access
// gate: context keys, client address resolution, random tokens, JSON
// response writing and the HTTP client used by the adapter.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey is the key of the request trace identifier.
	TraceIDCtxKey = contextKey("traceID")

	// ClientAddressCtxKey is the key of the resolved client address.
	ClientAddressCtxKey = contextKey("clientAddress")
)

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace identifier from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// WithClientAddress returns a copy of ctx carrying the resolved client address.
func WithClientAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ClientAddressCtxKey, address)
}

// GetClientAddressFromContext retrieves the resolved client address.
func GetClientAddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(ClientAddressCtxKey).(string)
	return address, ok
}
