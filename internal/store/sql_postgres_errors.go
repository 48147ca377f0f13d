// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may succeed if run
// again.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not known to be transient.
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryableCodes are SQLSTATEs that describe a transient condition:
// class 08 (connection), class 40 (rollback, serialization, deadlock),
// 57P03 (cannot connect now) and 53300 (too many connections).
var retryableCodes = map[string]struct{}{
	pgerrcode.ConnectionException:                           {},
	pgerrcode.ConnectionDoesNotExist:                        {},
	pgerrcode.ConnectionFailure:                             {},
	pgerrcode.SQLClientUnableToEstablishSQLConnection:       {},
	pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection: {},
	pgerrcode.TransactionRollback:                           {},
	pgerrcode.SerializationFailure:                          {},
	pgerrcode.DeadlockDetected:                              {},
	pgerrcode.CannotConnectNow:                              {},
	pgerrcode.TooManyConnections:                            {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Non-Postgres errors are
// NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to a classification. Integrity violations
// (class 23), data exceptions (class 22) and syntax errors (class 42) are
// never retryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryableCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
