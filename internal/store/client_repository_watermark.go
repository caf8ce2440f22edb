package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type watermarkRepository struct {
	*DB
}

// NewWatermarkRepository returns the SQLite implementation of
// [WatermarkRepository] backed by the sync_state table.
func NewWatermarkRepository(db *DB) WatermarkRepository {
	return &watermarkRepository{DB: db}
}

func (w *watermarkRepository) GetAll(ctx context.Context) (map[models.EntityType]time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWatermarksQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := w.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.GetAll").
			Msg("failed to execute query for getting watermarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	watermarks := make(map[models.EntityType]time.Time, len(models.PushOrder))
	for rows.Next() {
		var (
			entity     string
			lastSyncAt time.Time
		)
		if err = rows.Scan(&entity, &lastSyncAt); err != nil {
			log.Err(err).
				Str("func", "watermarkRepository.GetAll").
				Msg("failed to scan watermark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		watermarks[models.EntityType(entity)] = lastSyncAt
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return watermarks, nil
}

func (w *watermarkRepository) SaveAll(ctx context.Context, watermarks map[models.EntityType]time.Time) error {
	log := logger.FromContext(ctx)

	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.SaveAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for entity, lastSyncAt := range watermarks {
		query, args, err := buildUpsertWatermarkQuery(entity, lastSyncAt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "watermarkRepository.SaveAll").
				Str("entity", string(entity)).
				Msg("failed to save watermark")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.SaveAll").
			Msg("failed to commit watermarks")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
