// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUsersByUsername returns the users matching username case-insensitively.
// At most two rows are read: the caller treats more than one as ambiguous.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - timeout → [ErrQueryTimeout].
//   - any other driver-level error → [ErrExecutingQuery] / [ErrScanningRows].
func (r *userRepository) FindUsersByUsername(ctx context.Context, username string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUsersByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByUsername").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByUsername").
			Stringer("class", r.db.classify(err)).
			Msg("failed to execute query")
		return nil, r.db.wrapError(ctx, err, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0, maxUsernameMatches)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.Password, &user.Name, &user.IsAdmin, &user.IsActive); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsersByUsername").Msg("scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByUsername").Msg("rows iteration error")
		return nil, r.db.wrapError(ctx, err, ErrScanningRows)
	}

	if len(users) == 0 {
		return nil, ErrNoUserWasFound
	}

	return users, nil
}
