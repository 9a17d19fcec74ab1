// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below unwraps to exactly one kind, so callers
// can branch with errors.Is(err, ErrKindStore) without listing sentinels.
var (
	ErrKindInput          = errors.New("invalid input")
	ErrKindAccessDenied   = errors.New("access denied")
	ErrKindAuthFailed     = errors.New("authentication failed")
	ErrKindSessionInvalid = errors.New("session invalid")
	ErrKindStore          = errors.New("store failure")
)

// kindError is a sentinel error bound to its kind.
type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// Input errors.
var (
	ErrMissingFields       = newKindError(ErrKindInput, "missing_fields")
	ErrSessionTokenMissing = newKindError(ErrKindInput, "token_missing")
)

// Access denied errors.
var (
	ErrIPNotAuthorized     = newKindError(ErrKindAccessDenied, "ip_not_authorized")
	ErrOutsideAccessWindow = newKindError(ErrKindAccessDenied, "outside_business_hours")
	ErrDeviceMismatch      = newKindError(ErrKindAccessDenied, "device_mismatch")
)

// Authentication errors. The transport answers all of them with one message.
var (
	ErrUserNotFound   = newKindError(ErrKindAuthFailed, "user_not_found")
	ErrBadCredentials = newKindError(ErrKindAuthFailed, "bad_credentials")
	ErrUserInactive   = newKindError(ErrKindAuthFailed, "user_inactive")
)

// Session errors. Messages are the reason codes sent to clients.
var (
	ErrSessionNotFound     = newKindError(ErrKindSessionInvalid, "session_not_found")
	ErrSessionUserInactive = newKindError(ErrKindSessionInvalid, "user_inactive")
	ErrSessionExpired      = newKindError(ErrKindSessionInvalid, "session_expired")
)

// Store errors wrap the underlying store failure with %w.
var (
	ErrCredentialStore = newKindError(ErrKindStore, "credential store failure")
	ErrDeviceStore     = newKindError(ErrKindStore, "device store failure")
	ErrSessionStore    = newKindError(ErrKindStore, "session store failure")
)

// wrapStore joins a store sentinel with the cause.
func wrapStore(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// GateFailure describes the step at which a login was rejected.
type GateFailure struct {
	// Step is the name of the failed check, e.g. "check_password".
	Step string

	// Reason is the audit text recorded for the attempt.
	Reason string

	Err error
}

func (f *GateFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Step, f.Err)
}

func (f *GateFailure) Unwrap() error {
	return f.Err
}
