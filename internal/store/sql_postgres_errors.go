package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may succeed on retry.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, bad input and
	// anything the classifier does not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// conflicts, deadlocks and a server that is restarting.
	Retryable
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE carried by *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// retryableCodes lists single SQLSTATEs outside the retryable classes.
var retryableCodes = map[string]struct{}{
	pgerrcode.CannotConnectNow:   {},
	pgerrcode.AdminShutdown:      {},
	pgerrcode.CrashShutdown:      {},
	pgerrcode.TooManyConnections: {},
}

// Classify implements [ErrorClassificator]. Errors that are not PostgreSQL
// errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies by SQLSTATE. Class 08 (connection exception) and
// class 40 (transaction rollback) are retried as a whole; see retryableCodes
// for the rest.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	if pgerrcode.IsConnectionException(code) || pgerrcode.IsTransactionRollback(code) {
		return Retryable
	}
	if _, ok := retryableCodes[code]; ok {
		return Retryable
	}

	return NonRetryable
}
