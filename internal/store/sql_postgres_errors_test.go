// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "wrapped connection failure", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}), want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: Retryable},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: MissingReference},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "unknown code", err: &pgconn.PgError{Code: "XX000"}, want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_classifyWriteError(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}

	assert.ErrorIs(t, db.classifyWriteError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), ErrParentNotFound)
	assert.ErrorIs(t, db.classifyWriteError(&pgconn.PgError{Code: pgerrcode.SerializationFailure}), ErrStorageUnavailable)
	assert.ErrorIs(t, db.classifyWriteError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}), ErrExecutingStatement)

	bare := &DB{}
	assert.ErrorIs(t, bare.classifyWriteError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), ErrExecutingStatement)
}
