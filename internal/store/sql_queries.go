// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/access-gate/models"
)

var (
	userColumns = []string{"user_id", "username", "password", "name", "is_admin", "is_active"}

	deviceColumns = []string{
		"device_id", "user_id", "device_token", "device_fingerprint", "device_name",
		"user_agent", "ip_address", "is_active", "last_access", "created_at",
	}

	sessionWithUserColumns = []string{
		"s.session_id", "s.user_id", "s.device_token", "s.ip_address", "s.session_token",
		"s.created_at", "s.last_activity", "s.expires_at", "s.is_active", "s.logout_at",
		"u.username", "u.name", "u.is_admin", "u.is_active",
	}
)

// maxUsernameMatches is one above the single allowed match, so ambiguous
// usernames are detected without reading the whole table.
const maxUsernameMatches = 2

func (db *DB) buildFindUsersByUsernameQuery(username string) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"lower(username)": username}).
		OrderBy("user_id").
		Limit(maxUsernameMatches).
		ToSql()
}

func (db *DB) buildFindDeviceByUserIDQuery(userID int64) (string, []any, error) {
	return db.builder().
		Select(deviceColumns...).
		From(models.AuthorizedDevice{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) deviceInsert(device models.AuthorizedDevice) sq.InsertBuilder {
	return db.builder().
		Insert(models.AuthorizedDevice{}.TableName()).
		Columns("user_id", "device_token", "device_fingerprint", "device_name",
			"user_agent", "ip_address", "is_active", "last_access", "created_at").
		Values(device.UserID, device.DeviceToken, device.Fingerprint, device.DeviceName,
			device.UserAgent, device.IPAddress, device.IsActive, device.LastAccess.UTC(), device.CreatedAt.UTC())
}

func (db *DB) buildInsertDeviceQuery(device models.AuthorizedDevice) (string, []any, error) {
	return db.deviceInsert(device).ToSql()
}

// buildUpsertDeviceQuery replaces the user's single binding in place. The
// original created_at is kept.
func (db *DB) buildUpsertDeviceQuery(device models.AuthorizedDevice) (string, []any, error) {
	return db.deviceInsert(device).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			device_token = excluded.device_token,
			device_fingerprint = excluded.device_fingerprint,
			device_name = excluded.device_name,
			user_agent = excluded.user_agent,
			ip_address = excluded.ip_address,
			is_active = excluded.is_active,
			last_access = excluded.last_access`).
		ToSql()
}

func (db *DB) buildTouchDeviceQuery(device models.AuthorizedDevice) (string, []any, error) {
	return db.builder().
		Update(models.AuthorizedDevice{}.TableName()).
		Set("device_name", device.DeviceName).
		Set("user_agent", device.UserAgent).
		Set("ip_address", device.IPAddress).
		Set("is_active", true).
		Set("last_access", device.LastAccess.UTC()).
		Where(sq.Eq{"user_id": device.UserID}).
		Where(sq.Eq{"device_token": device.DeviceToken}).
		ToSql()
}

func (db *DB) buildFindActiveSessionForDeviceQuery(userID int64, deviceToken string) (string, []any, error) {
	query := db.builder().
		Select("session_id", "created_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"device_token": deviceToken}).
		Where(sq.Eq{"is_active": true}).
		Limit(1)

	if suffix := db.lockSuffix(); suffix != "" {
		query = query.Suffix(suffix)
	}

	return query.ToSql()
}

func (db *DB) buildRefreshSessionQuery(session models.Session) (string, []any, error) {
	return db.builder().
		Update(models.Session{}.TableName()).
		Set("ip_address", session.IPAddress).
		Set("session_token", session.SessionToken).
		Set("expires_at", session.ExpiresAt.UTC()).
		Set("last_activity", session.LastActivity.UTC()).
		Where(sq.Eq{"session_id": session.SessionID}).
		ToSql()
}

func (db *DB) buildDeactivatePairSessionsQuery(userID int64, deviceToken string) (string, []any, error) {
	return db.builder().
		Update(models.Session{}.TableName()).
		Set("is_active", false).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"device_token": deviceToken}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func (db *DB) buildInsertSessionQuery(session models.Session) (string, []any, error) {
	return db.builder().
		Insert(models.Session{}.TableName()).
		Columns("user_id", "device_token", "ip_address", "session_token",
			"created_at", "last_activity", "expires_at", "is_active").
		Values(session.UserID, session.DeviceToken, session.IPAddress, session.SessionToken,
			session.CreatedAt.UTC(), session.LastActivity.UTC(), session.ExpiresAt.UTC(), true).
		Suffix("RETURNING session_id").
		ToSql()
}

// buildFindSessionByTokenQuery reads the session in any state, joined with
// the flags of its owner.
func (db *DB) buildFindSessionByTokenQuery(token string) (string, []any, error) {
	return db.builder().
		Select(sessionWithUserColumns...).
		From(models.Session{}.TableName() + " s").
		Join(models.User{}.TableName() + " u ON u.user_id = s.user_id").
		Where(sq.Eq{"s.session_token": token}).
		ToSql()
}

func (db *DB) buildDeactivateSessionQuery(token string) (string, []any, error) {
	return db.builder().
		Update(models.Session{}.TableName()).
		Set("is_active", false).
		Where(sq.Eq{"session_token": token}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func (db *DB) buildInvalidateSessionQuery(token string, logoutAt time.Time) (string, []any, error) {
	return db.builder().
		Update(models.Session{}.TableName()).
		Set("is_active", false).
		Set("logout_at", logoutAt.UTC()).
		Where(sq.Eq{"session_token": token}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func (db *DB) buildTouchSessionQuery(token string, at time.Time) (string, []any, error) {
	return db.builder().
		Update(models.Session{}.TableName()).
		Set("last_activity", at.UTC()).
		Where(sq.Eq{"session_token": token}).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func (db *DB) buildDeactivateExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return db.builder().
		Update(models.Session{}.TableName()).
		Set("is_active", false).
		Where(sq.Eq{"is_active": true}).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		ToSql()
}

func (db *DB) buildInsertLoginAttemptQuery(attempt models.LoginAttempt) (string, []any, error) {
	return db.builder().
		Insert(models.LoginAttempt{}.TableName()).
		Columns("username", "ip_address", "device_token", "success", "failure_reason", "timestamp").
		Values(attempt.Username, attempt.IPAddress, attempt.DeviceToken, attempt.Success,
			attempt.FailureReason, attempt.Timestamp.UTC()).
		ToSql()
}
