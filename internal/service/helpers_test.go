package service

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

var (
	fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	// pendingAt is the UpdatedAt of records built by pendingBook.
	pendingAt = fixedNow.Add(-time.Hour)
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func fixedClock() time.Time {
	return fixedNow
}

func newTestClientStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "ledger.db"),
	}}
	storages, err := store.NewClientStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func pendingBook(localID int64, serverID string, action models.SyncAction) *models.Book {
	return &models.Book{
		SyncMeta: models.SyncMeta{
			LocalID:    localID,
			ServerID:   serverID,
			IsDeleted:  action == models.SyncActionDelete,
			SyncAction: action,
			UpdatedAt:  pendingAt,
		},
		Name:     "Ledger",
		Currency: "EUR",
	}
}

// countingNotifier records ChangeNotifier calls.
type countingNotifier struct {
	activity atomic.Int32
	requests atomic.Int32
}

func (n *countingNotifier) MarkActivity() { n.activity.Add(1) }
func (n *countingNotifier) RequestSync()  { n.requests.Add(1) }
