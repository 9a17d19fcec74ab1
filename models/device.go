// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeviceLabelMaxLength bounds DeviceName and UserAgent to fit the storage column.
const DeviceLabelMaxLength = 95

// AuthorizedDevice binds a user to a client-supplied device token.
// Storage keeps at most one row per user.
type AuthorizedDevice struct {
	DeviceID int64
	UserID   int64

	// DeviceToken is the opaque identifier supplied by the client.
	DeviceToken string

	// Fingerprint is DeviceToken plus the issuance timestamp. It is an audit
	// aid only and never used for authorization decisions.
	Fingerprint string

	DeviceName string
	UserAgent  string
	IPAddress  string
	IsActive   bool

	LastAccess time.Time
	CreatedAt  time.Time
}

// TableName returns the name of the database table
// associated with the AuthorizedDevice model.
func (d AuthorizedDevice) TableName() string {
	return "authorized_devices"
}
