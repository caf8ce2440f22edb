package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/migrations"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Storages groups the server-side resource repositories.
type Storages struct {
	Books        ResourceRepository[models.RemoteBook]
	Wallets      ResourceRepository[models.RemoteWallet]
	Categories   ResourceRepository[models.RemoteCategory]
	Transactions ResourceRepository[models.RemoteTransaction]

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// resource repositories.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.MigratePostgres(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Books:        NewBookResourceRepository(db),
		Wallets:      NewWalletResourceRepository(db),
		Categories:   NewCategoryResourceRepository(db),
		Transactions: NewTransactionResourceRepository(db),
		db:           db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
