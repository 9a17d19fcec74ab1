// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginAttempt is an immutable audit record of a single login request.
type LoginAttempt struct {
	// Username is stored exactly as supplied by the client, not normalized.
	Username    string
	IPAddress   string
	DeviceToken string
	Success     bool

	// FailureReason is nil for successful attempts.
	FailureReason *string

	Timestamp time.Time
}

// TableName returns the name of the database table
// associated with the LoginAttempt model.
func (a LoginAttempt) TableName() string {
	return "login_attempts"
}
