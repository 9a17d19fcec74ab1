// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/models"
)

// loginAttemptRepository appends rows to "login_attempts". Rows are never
// updated or deleted.
type loginAttemptRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLoginAttemptRepository(db *DB, logger *logger.Logger) LoginAttemptRepository {
	logger.Debug().Msg("creating login attempt repository")
	return &loginAttemptRepository{
		db:     db,
		logger: logger,
	}
}

func (r *loginAttemptRepository) SaveLoginAttempt(ctx context.Context, attempt models.LoginAttempt) error {
	query, args, err := r.db.buildInsertLoginAttemptQuery(attempt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*loginAttemptRepository.SaveLoginAttempt").
			Str("username", attempt.Username).
			Stringer("class", r.db.classify(err)).
			Msg("failed to save login attempt")
		return r.db.wrapError(ctx, err, ErrExecutingStatement)
	}

	return nil
}
