package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

func newPostgresDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func TestResourceRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookResourceRepository(newPostgresDBFromSQL(db))
	updatedAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO books")).
		WithArgs("b-1", int64(5), "Ledger", "USD", false).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	got, err := repo.Create(testContext(), 5, models.RemoteBook{
		RemoteMeta: models.RemoteMeta{ID: "b-1"},
		Name:       "Ledger",
		Currency:   "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, updatedAt, got.UpdatedAt)
	assert.False(t, got.IsDeleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepository_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWalletResourceRepository(newPostgresDBFromSQL(db))

	mock.ExpectQuery("INSERT INTO wallets").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	_, err := repo.Create(testContext(), 5, models.RemoteWallet{
		RemoteMeta: models.RemoteMeta{ID: "w-1"},
		BookID:     "missing",
	})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestResourceRepository_Create_TransientError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookResourceRepository(newPostgresDBFromSQL(db))

	mock.ExpectQuery("INSERT INTO books").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})

	_, err := repo.Create(testContext(), 5, models.RemoteBook{RemoteMeta: models.RemoteMeta{ID: "b-1"}})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestResourceRepository_Update_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookResourceRepository(newPostgresDBFromSQL(db))

	mock.ExpectQuery("UPDATE books").
		WillReturnRows(sqlmock.NewRows([]string{"is_deleted", "updated_at"}))

	_, err := repo.Update(testContext(), 5, models.RemoteBook{RemoteMeta: models.RemoteMeta{ID: "b-404"}})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestResourceRepository_Update_KeepsTombstoneFlag(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookResourceRepository(newPostgresDBFromSQL(db))
	updatedAt := time.Now().UTC()

	mock.ExpectQuery("UPDATE books").
		WillReturnRows(sqlmock.NewRows([]string{"is_deleted", "updated_at"}).AddRow(true, updatedAt))

	got, err := repo.Update(testContext(), 5, models.RemoteBook{RemoteMeta: models.RemoteMeta{ID: "b-1"}, Name: "x"})
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, updatedAt, got.UpdatedAt)
}

func TestResourceRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  execOutcome
		wantErr error
	}{
		{name: "tombstoned", result: execOutcome{affected: 1}},
		{name: "unknown id", result: execOutcome{affected: 0}, wantErr: ErrRecordNotFound},
		{name: "exec error", result: execOutcome{err: errors.New("boom")}, wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewTransactionResourceRepository(newPostgresDBFromSQL(db))

			exec := mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET is_deleted = $1")).
				WithArgs(true, "t-1", int64(5))
			if tt.result.err != nil {
				exec.WillReturnError(tt.result.err)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.result.affected))
			}

			err := repo.Delete(testContext(), 5, "t-1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

type execOutcome struct {
	affected int64
	err      error
}

func TestResourceRepository_ListChangedSince(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCategoryResourceRepository(newPostgresDBFromSQL(db))
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := since.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE user_id = $1 AND updated_at >= $2")).
		WithArgs(int64(5), since).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_deleted", "updated_at", "book_id", "name", "kind"}).
			AddRow("c-1", false, t1, "b-1", "Food", "expense").
			AddRow("c-9", true, t1, "b-1", "Old", "income"))

	got, err := repo.ListChangedSince(testContext(), 5, since)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-1", got[0].ID)
	assert.Equal(t, models.CategoryExpense, got[0].Kind)
	assert.True(t, got[1].IsDeleted)
	assert.Equal(t, models.CategoryIncome, got[1].Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceRepository_ListChangedSince_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCategoryResourceRepository(newPostgresDBFromSQL(db))

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.ListChangedSince(testContext(), 5, time.Time{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
