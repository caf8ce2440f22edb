package store

import (
	"database/sql"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// DB wraps a database handle together with the error classifier of its
// driver. Repositories embed *DB.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation may succeed
// if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// classify runs the configured classifier. A DB without one treats every
// error as permanent.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

func (db *DB) isRetryable(err error) bool {
	return db.classify(err) == Retryable
}
