package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/migrations"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	Books        EntityRepository[*models.Book]
	Wallets      EntityRepository[*models.Wallet]
	Categories   EntityRepository[*models.Category]
	Transactions EntityRepository[*models.Transaction]
	Watermarks   WatermarkRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations.
//  3. Wires one repository per entity table plus the watermark store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := migrations.MigrateSQLite(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db), nil
}

// NewClientStoragesFromDB wires the repositories over an already migrated
// database.
func NewClientStoragesFromDB(db *DB) *ClientStorages {
	return &ClientStorages{
		Books:        NewBookRepository(db),
		Wallets:      NewWalletRepository(db),
		Categories:   NewCategoryRepository(db),
		Transactions: NewTransactionRepository(db),
		Watermarks:   NewWatermarkRepository(db),
		db:           db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
