// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/access-gate/internal/logger"
)

var userRowColumns = []string{"user_id", "username", "password", "name", "is_admin", "is_active"}

const findUsersQuery = `SELECT user_id, username, password, name, is_admin, is_active FROM users WHERE lower\(username\) = \$1 ORDER BY user_id LIMIT 2`

func TestFindUsersByUsername_Success(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(findUsersQuery).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "Alice", "secret", "Alice A.", false, true))

	users, err := repo.FindUsersByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(7), users[0].UserID)
	assert.Equal(t, "Alice", users[0].Username)
	assert.Equal(t, "secret", users[0].Password)
	assert.True(t, users[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUsersByUsername_Ambiguous(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(findUsersQuery).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "bob", "x", "Bob", false, true).
			AddRow(2, "BOB", "y", "Bob 2", false, true))

	users, err := repo.FindUsersByUsername(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestFindUsersByUsername_NotFound(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(findUsersQuery).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUsersByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUsersByUsername_QueryError(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(findUsersQuery).WillReturnError(errors.New("db network error"))

	_, err := repo.FindUsersByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUsersByUsername_Timeout(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(findUsersQuery).WillReturnError(context.DeadlineExceeded)

	_, err := repo.FindUsersByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrQueryTimeout)
}

func TestFindUsersByUsername_ScanError(t *testing.T) {
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(findUsersQuery).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	_, err := repo.FindUsersByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindUsersByUsername_SQLitePlaceholders(t *testing.T) {
	db, mock := newTestDB(t, DialectSQLite)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM users WHERE lower\(username\) = \? ORDER BY user_id LIMIT 2`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "alice", "pw", "Alice", true, true))

	users, err := repo.FindUsersByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, users[0].IsAdmin)
}
