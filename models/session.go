// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is one authenticated device's login.
//
// At most one active session exists per (UserID, DeviceToken) pair; storage
// enforces this with a partial unique index.
type Session struct {
	SessionID   int64
	UserID      int64
	DeviceToken string
	IPAddress   string

	// SessionToken is the opaque bearer credential. Unique across all
	// sessions ever issued.
	SessionToken string

	CreatedAt    time.Time
	LastActivity time.Time
	ExpiresAt    time.Time
	IsActive     bool

	// LogoutAt is set by an explicit logout only.
	LogoutAt *time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "active_sessions"
}

// IsExpired reports whether the session is expired at now.
// A session is expired from the exact expiry instant on.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionWithUser is a session joined with the flags of its owning user.
type SessionWithUser struct {
	Session Session
	User    User
}

// SessionIdentity holds the public identity fields returned by a successful
// session verification.
type SessionIdentity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}

// SessionDescriptor is returned to the client after a successful login.
type SessionDescriptor struct {
	UserID       int64     `json:"userId"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	IsAdmin      bool      `json:"isAdmin"`
	SessionToken string    `json:"sessionToken"`
	DeviceToken  string    `json:"deviceToken"`
	IP           string    `json:"ip"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
