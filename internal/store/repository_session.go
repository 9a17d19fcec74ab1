// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/access-gate/internal/logger"
	"github.com/MKhiriev/access-gate/models"
)

// sessionRepository is the SQL implementation of [SessionRepository] over the
// "active_sessions" table. The partial unique index on
// (user_id, device_token) WHERE is_active backs the single active session
// per pair.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// IssueOrRefresh runs in one transaction:
//  1. read the pair's active session (locked on PostgreSQL);
//  2. if found, overwrite token, address, expiry and activity in place;
//  3. otherwise deactivate the pair's sessions and insert a new one.
//
// A concurrent insert for the same pair hits the partial unique index and
// surfaces as [ErrSessionConflict].
func (r *sessionRepository) IssueOrRefresh(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*sessionRepository.IssueOrRefresh").
		Int64("user_id", session.UserID).
		Logger()

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.Session{}, r.db.wrapError(ctx, err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	query, args, err := r.db.buildFindActiveSessionForDeviceQuery(session.UserID, session.DeviceToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var existingID int64
	var createdAt time.Time
	err = tx.QueryRowContext(ctx, query, args...).Scan(&existingID, &createdAt)
	switch {
	case err == nil:
		session.SessionID = existingID
		session.CreatedAt = createdAt
		if err = r.refresh(ctx, tx, session); err != nil {
			log.Err(err).Int64("session_id", existingID).Msg("failed to refresh session")
			return models.Session{}, err
		}
	case errors.Is(err, sql.ErrNoRows):
		if session.SessionID, err = r.replace(ctx, tx, session); err != nil {
			log.Err(err).Stringer("class", r.db.classify(err)).Msg("failed to create session")
			return models.Session{}, err
		}
	default:
		log.Err(err).Stringer("class", r.db.classify(err)).Msg("failed to read active session")
		return models.Session{}, r.db.wrapError(ctx, err, ErrExecutingQuery)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.Session{}, r.db.wrapError(ctx, err, ErrCommitingTransaction)
	}

	session.IsActive = true
	session.LogoutAt = nil
	return session, nil
}

func (r *sessionRepository) refresh(ctx context.Context, tx *sql.Tx, session models.Session) error {
	query, args, err := r.db.buildRefreshSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return r.db.wrapError(ctx, err, ErrExecutingStatement)
	}

	return nil
}

func (r *sessionRepository) replace(ctx context.Context, tx *sql.Tx, session models.Session) (int64, error) {
	query, args, err := r.db.buildDeactivatePairSessionsQuery(session.UserID, session.DeviceToken)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return 0, r.db.wrapError(ctx, err, ErrExecutingStatement)
	}

	query, args, err = r.db.buildInsertSessionQuery(session)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sessionID int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&sessionID); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", ErrSessionConflict, err)
		}
		return 0, r.db.wrapError(ctx, err, ErrExecutingStatement)
	}

	return sessionID, nil
}

func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.SessionWithUser, error) {
	query, args, err := r.db.buildFindSessionByTokenQuery(token)
	if err != nil {
		return models.SessionWithUser{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var found models.SessionWithUser
	var logoutAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.Session.SessionID,
		&found.Session.UserID,
		&found.Session.DeviceToken,
		&found.Session.IPAddress,
		&found.Session.SessionToken,
		&found.Session.CreatedAt,
		&found.Session.LastActivity,
		&found.Session.ExpiresAt,
		&found.Session.IsActive,
		&logoutAt,
		&found.User.Username,
		&found.User.Name,
		&found.User.IsAdmin,
		&found.User.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionWithUser{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.FindSessionByToken").
			Stringer("class", r.db.classify(err)).
			Msg("failed to read session")
		return models.SessionWithUser{}, r.db.wrapError(ctx, err, ErrExecutingQuery)
	}

	found.User.UserID = found.Session.UserID
	if logoutAt.Valid {
		found.Session.LogoutAt = &logoutAt.Time
	}

	return found, nil
}

func (r *sessionRepository) DeactivateSession(ctx context.Context, token string) error {
	query, args, err := r.db.buildDeactivateSessionQuery(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "*sessionRepository.DeactivateSession", query, args)
	return err
}

func (r *sessionRepository) InvalidateSession(ctx context.Context, token string, logoutAt time.Time) (bool, error) {
	query, args, err := r.db.buildInvalidateSessionQuery(token, logoutAt)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "*sessionRepository.InvalidateSession", query, args)
	return affected > 0, err
}

func (r *sessionRepository) TouchSession(ctx context.Context, token string, at time.Time) error {
	query, args, err := r.db.buildTouchSessionQuery(token, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "*sessionRepository.TouchSession", query, args)
	return err
}

func (r *sessionRepository) DeactivateExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := r.db.buildDeactivateExpiredSessionsQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.DeactivateExpiredSessions", query, args)
}

func (r *sessionRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).
			Stringer("class", r.db.classify(err)).
			Msg("failed to update sessions")
		return 0, r.db.wrapError(ctx, err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
