// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/models"
)

// deviceRepository is the SQL implementation of [DeviceRepository] over the
// "authorized_devices" table. UNIQUE(user_id) keeps one binding per user.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *deviceRepository) FindDeviceByUserID(ctx context.Context, userID int64) (models.AuthorizedDevice, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindDeviceByUserIDQuery(userID)
	if err != nil {
		return models.AuthorizedDevice{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var device models.AuthorizedDevice
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&device.DeviceID,
		&device.UserID,
		&device.DeviceToken,
		&device.Fingerprint,
		&device.DeviceName,
		&device.UserAgent,
		&device.IPAddress,
		&device.IsActive,
		&device.LastAccess,
		&device.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AuthorizedDevice{}, ErrDeviceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.FindDeviceByUserID").
			Int64("user_id", userID).
			Stringer("class", r.db.classify(err)).
			Msg("failed to read device binding")
		return models.AuthorizedDevice{}, r.db.wrapError(ctx, err, ErrExecutingQuery)
	}

	return device, nil
}

func (r *deviceRepository) InsertDevice(ctx context.Context, device models.AuthorizedDevice) error {
	query, args, err := r.db.buildInsertDeviceQuery(device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.exec(ctx, "*deviceRepository.InsertDevice", device.UserID, query, args)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrDeviceAlreadyBound, err)
	}

	return err
}

func (r *deviceRepository) TouchDevice(ctx context.Context, device models.AuthorizedDevice) error {
	query, args, err := r.db.buildTouchDeviceQuery(device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceRepository.TouchDevice").
			Int64("user_id", device.UserID).
			Msg("failed to refresh device binding")
		return r.db.wrapError(ctx, err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDeviceNotUpdated
	}

	return nil
}

func (r *deviceRepository) UpsertDevice(ctx context.Context, device models.AuthorizedDevice) error {
	query, args, err := r.db.buildUpsertDeviceQuery(device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*deviceRepository.UpsertDevice", device.UserID, query, args)
}

func (r *deviceRepository) exec(ctx context.Context, funcName string, userID int64, query string, args []any) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).
			Int64("user_id", userID).
			Stringer("class", r.db.classify(err)).
			Msg("failed to write device binding")
		return r.db.wrapError(ctx, err, ErrExecutingStatement)
	}

	return nil
}
