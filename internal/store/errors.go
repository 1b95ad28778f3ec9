// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQuestionNotFound is returned when a read or mutation targets a
	// question id that does not exist.
	ErrQuestionNotFound = errors.New("question was not found")

	// ErrAdminNotFound is returned when no admin row matches the lookup.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrUsernameTaken is returned when an admin insert or rename collides
	// with an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidSettingValue is returned when a persisted setting cannot be
	// converted to its typed form.
	ErrInvalidSettingValue = errors.New("invalid setting value")

	// ErrUnsupportedDSN is returned when the DSN names neither a PostgreSQL
	// URL nor a usable SQLite path.
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
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// IsStorageError reports whether err is one of the low-level database
// failures above.
func IsStorageError(err error) bool {
	for _, target := range []error{
		ErrBuildingSQLQuery,
		ErrExecutingQuery,
		ErrBeginningTransaction,
		ErrCommitingTransaction,
		ErrExecutingStatement,
		ErrScanningRow,
		ErrScanningRows,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
