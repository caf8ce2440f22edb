package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// resourceRepository is the PostgreSQL implementation of
// [ResourceRepository]. Deletes are soft so that they reach other devices
// through ListChangedSince.
type resourceRepository[P models.RemoteRecord] struct {
	*DB
	table resourceTable[P]
}

func newResourceRepository[P models.RemoteRecord](db *DB, t resourceTable[P]) *resourceRepository[P] {
	return &resourceRepository[P]{DB: db, table: t}
}

// NewBookResourceRepository returns the server repository of books.
func NewBookResourceRepository(db *DB) ResourceRepository[models.RemoteBook] {
	return newResourceRepository(db, booksResource)
}

// NewWalletResourceRepository returns the server repository of wallets.
func NewWalletResourceRepository(db *DB) ResourceRepository[models.RemoteWallet] {
	return newResourceRepository(db, walletsResource)
}

// NewCategoryResourceRepository returns the server repository of categories.
func NewCategoryResourceRepository(db *DB) ResourceRepository[models.RemoteCategory] {
	return newResourceRepository(db, categoriesResource)
}

// NewTransactionResourceRepository returns the server repository of
// transactions.
func NewTransactionResourceRepository(db *DB) ResourceRepository[models.RemoteTransaction] {
	return newResourceRepository(db, transactionsResource)
}

func (r *resourceRepository[P]) Create(ctx context.Context, userID int64, record P) (P, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateResourceQuery(r.table, userID, record)
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	meta := r.table.meta(&record)
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&meta.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Create").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Str("id", meta.ID).
			Msg("failed to insert resource")
		return record, r.classifyWriteError(err)
	}
	meta.IsDeleted = false

	return record, nil
}

func (r *resourceRepository[P]) Update(ctx context.Context, userID int64, record P) (P, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateResourceQuery(r.table, userID, record)
	if err != nil {
		return record, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	meta := r.table.meta(&record)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&meta.IsDeleted, &meta.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return record, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Update").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Str("id", meta.ID).
			Msg("failed to update resource")
		return record, r.classifyWriteError(err)
	}

	return record, nil
}

func (r *resourceRepository[P]) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteResourceQuery(r.table, userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.Delete").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to delete resource")
		return r.classifyWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *resourceRepository[P]) ListChangedSince(ctx context.Context, userID int64, since time.Time) ([]P, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListChangedSinceQuery(r.table, userID, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.ListChangedSince").
			Str("table", r.table.name).
			Int64("user_id", userID).
			Msg("failed to execute query for changed resources")
		if r.isRetryable(err) {
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]P, 0, 50)
	for rows.Next() {
		var record P
		meta := r.table.meta(&record)

		dest := append([]any{&meta.ID, &meta.IsDeleted, &meta.UpdatedAt}, r.table.fields(&record)...)
		if err = rows.Scan(dest...); err != nil {
			log.Err(err).
				Str("func", "resourceRepository.ListChangedSince").
				Str("table", r.table.name).
				Msg("failed to scan resource row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "resourceRepository.ListChangedSince").
			Str("table", r.table.name).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
