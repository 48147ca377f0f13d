// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Local store errors. Anything wrapping these must reach the caller of a
// mutation: local durability is the baseline the rest of the client relies
// on.
var (
	// ErrLocalStoreRead wraps failures reading a document.
	ErrLocalStoreRead = errors.New("local store read failed")

	// ErrLocalStoreWrite wraps failures writing or deleting a document.
	ErrLocalStoreWrite = errors.New("local store write failed")

	// ErrDecodingDocument means a stored document is not valid JSON for its
	// key. The document is left untouched.
	ErrDecodingDocument = errors.New("stored document is corrupt")
)

// Backend repository errors.
var (
	// ErrOwnerMismatch is returned when a row with the same id already
	// belongs to another owner.
	ErrOwnerMismatch = errors.New("transaction belongs to another owner")

	// ErrProfileNotFound is returned when no profile matches the lookup or a
	// row references an owner that does not exist.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileConflict is returned when a new profile collides with an
	// existing owner id.
	ErrProfileConflict = errors.New("profile owner id already taken")

	// ErrTemporarilyUnavailable wraps Postgres errors classified as
	// retryable (connection loss, serialization failure, deadlock).
	ErrTemporarilyUnavailable = errors.New("database temporarily unavailable")
)

// Low-level SQL errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
