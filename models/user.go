// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity record the gate authenticates against.
// Rows are owned by the external store; the service only reads them.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"userId"`

	// Username is unique case-insensitively.
	Username string `json:"username"`

	// Password is an opaque comparison value. With the default "plain"
	// scheme it is compared byte-for-byte against the supplied password.
	Password string `json:"-"`

	// Name is the display name shown to clients.
	Name string `json:"name"`

	// IsAdmin users bypass the access window.
	IsAdmin bool `json:"isAdmin"`

	// IsActive is false for deactivated accounts.
	IsActive bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the public identity fields of the user.
func (u User) Identity() SessionIdentity {
	return SessionIdentity{
		UserID:   u.UserID,
		Username: u.Username,
		Name:     u.Name,
		IsAdmin:  u.IsAdmin,
	}
}
