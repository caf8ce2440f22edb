package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repositories how a failed statement should
// surface to the service layer.
type ErrorClassification int

const (
	// NonRetryable is a permanent failure. It is the default.
	NonRetryable ErrorClassification = iota

	// Retryable may succeed on a later attempt: connection loss, deadlock,
	// serialization failure or a server that is still starting.
	Retryable

	// MissingReference is a foreign key violation: a child names a parent
	// that does not exist for its owner.
	MissingReference
)

// retryablePgCodes lists transient PostgreSQL codes from classes 08, 40
// and 57.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
	pgerrcode.AdminShutdown:          {},
}

// PostgresErrorClassifier classifies errors of the server's resource store.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Errors that are not driver
// errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code onto an [ErrorClassification].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgErr.Code == pgerrcode.ForeignKeyViolation {
		return MissingReference
	}
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
