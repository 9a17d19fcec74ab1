// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/access-gate/internal/logger"

// Repositories groups every repository built over one [DB].
type Repositories struct {
	UserRepository         UserRepository
	DeviceRepository       DeviceRepository
	SessionRepository      SessionRepository
	LoginAttemptRepository LoginAttemptRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, log),
		DeviceRepository:       NewDeviceRepository(db, log),
		SessionRepository:      NewSessionRepository(db, log),
		LoginAttemptRepository: NewLoginAttemptRepository(db, log),
	}
}
