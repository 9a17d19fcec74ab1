// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when no user matches a lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDeviceNotFound is returned when a user has no device binding yet.
	ErrDeviceNotFound = errors.New("device binding was not found")

	// ErrDeviceAlreadyBound is returned when inserting a binding for a user
	// that already has one (UNIQUE(user_id)).
	ErrDeviceAlreadyBound = errors.New("user already has a device binding")

	// ErrDeviceNotUpdated is returned when refreshing a binding matched no row,
	// i.e. the binding changed since it was read.
	ErrDeviceNotUpdated = errors.New("device binding was not updated")

	// ErrSessionNotFound is returned when no session carries the given token.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionConflict is returned when a concurrent login for the same
	// (user, device) pair won the race for the single active session slot.
	ErrSessionConflict = errors.New("active session conflict")

	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrQueryTimeout is returned when a store call exceeds the configured
	// query timeout.
	ErrQueryTimeout = errors.New("store call timed out")
)
