package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// seedLedger stores a synced book b-1 with a synced wallet w-1 and a
// category that has not reached the server yet.
func seedLedger(t *testing.T, storages *store.ClientStorages) (bookID, walletID, categoryID int64) {
	t.Helper()
	ctx := testContext()

	bookID, err := storages.Books.Insert(ctx, &models.Book{
		SyncMeta: models.SyncMeta{ServerID: "b-1", IsSynced: true, UpdatedAt: fixedNow},
		Name:     "Ledger",
		Currency: "EUR",
	})
	require.NoError(t, err)

	walletID, err = storages.Wallets.Insert(ctx, &models.Wallet{
		SyncMeta: models.SyncMeta{ServerID: "w-1", IsSynced: true, UpdatedAt: fixedNow},
		BookID:   bookID,
		Name:     "Cash",
		Balance:  decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	categoryID, err = storages.Categories.Insert(ctx, &models.Category{
		SyncMeta: models.SyncMeta{SyncAction: models.SyncActionCreate, UpdatedAt: fixedNow},
		BookID:   bookID,
		Name:     "Food",
		Kind:     models.CategoryExpense,
	})
	require.NoError(t, err)

	return bookID, walletID, categoryID
}

// ── encode ───────────────────────────────────────────────────────────────────

func TestWalletBinding_CreateSendsParentServerID(t *testing.T) {
	storages := newTestClientStorages(t)
	bookID, _, _ := seedLedger(t, storages)

	resource := mock.NewMockResource[models.RemoteWallet](gomock.NewController(t))
	b := newWalletBinding(resource, storages.Books)

	wallet := &models.Wallet{
		SyncMeta: models.SyncMeta{LocalID: 5, SyncAction: models.SyncActionCreate, UpdatedAt: fixedNow},
		BookID:   bookID,
		Name:     "Card",
		Balance:  decimal.RequireFromString("12.50"),
	}

	resource.EXPECT().Create(gomock.Any(), models.RemoteWallet{
		RemoteMeta: models.RemoteMeta{UpdatedAt: fixedNow},
		BookID:     "b-1",
		Name:       "Card",
		Balance:    wallet.Balance,
	}).Return("w-2", nil)

	serverID, err := b.Create(testContext(), wallet)

	require.NoError(t, err)
	assert.Equal(t, "w-2", serverID)
}

func TestWalletBinding_UpdateAndDeleteUseServerID(t *testing.T) {
	storages := newTestClientStorages(t)
	bookID, _, _ := seedLedger(t, storages)

	resource := mock.NewMockResource[models.RemoteWallet](gomock.NewController(t))
	b := newWalletBinding(resource, storages.Books)

	wallet := &models.Wallet{
		SyncMeta: models.SyncMeta{LocalID: 5, ServerID: "w-1", UpdatedAt: fixedNow},
		BookID:   bookID,
		Name:     "Cash",
	}

	resource.EXPECT().Update(gomock.Any(), "w-1", gomock.Any()).Return(nil)
	resource.EXPECT().Delete(gomock.Any(), "w-1").Return(nil)

	require.NoError(t, b.Update(testContext(), wallet))
	require.NoError(t, b.Delete(testContext(), wallet))
}

func TestTransactionBinding_ParentNotSynced(t *testing.T) {
	storages := newTestClientStorages(t)
	_, walletID, categoryID := seedLedger(t, storages)

	// the resource must not be called
	resource := mock.NewMockResource[models.RemoteTransaction](gomock.NewController(t))
	b := newTransactionBinding(resource, storages.Wallets, storages.Categories)

	_, err := b.Create(testContext(), &models.Transaction{
		SyncMeta:   models.SyncMeta{LocalID: 1, SyncAction: models.SyncActionCreate, UpdatedAt: fixedNow},
		WalletID:   walletID,
		CategoryID: categoryID,
		Amount:     decimal.NewFromInt(-7),
		OccurredAt: fixedNow,
	})

	assert.ErrorIs(t, err, ErrParentNotSynced)
}

func TestTransactionBinding_ParentMissing(t *testing.T) {
	storages := newTestClientStorages(t)
	_, walletID, _ := seedLedger(t, storages)

	resource := mock.NewMockResource[models.RemoteTransaction](gomock.NewController(t))
	b := newTransactionBinding(resource, storages.Wallets, storages.Categories)

	err := b.Update(testContext(), &models.Transaction{
		SyncMeta:   models.SyncMeta{LocalID: 1, ServerID: "t-1", UpdatedAt: fixedNow},
		WalletID:   walletID,
		CategoryID: 404,
		OccurredAt: fixedNow,
	})

	assert.ErrorIs(t, err, ErrParentNotFound)
}

// ── decode ───────────────────────────────────────────────────────────────────

func TestTransactionBinding_DecodeTranslatesParents(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := testContext()
	_, walletID, categoryID := seedLedger(t, storages)
	require.NoError(t, storages.Categories.RecordSyncSuccess(ctx, categoryID, "c-1", fixedNow, fixedNow))

	b := newTransactionBinding(mock.NewMockResource[models.RemoteTransaction](gomock.NewController(t)), storages.Wallets, storages.Categories)

	occurred := time.Date(2026, 4, 30, 18, 0, 0, 0, time.UTC)
	decoded, err := b.Decode(ctx, models.RemoteTransaction{
		RemoteMeta: models.RemoteMeta{ID: "t-9", UpdatedAt: fixedNow},
		WalletID:   "w-1",
		CategoryID: "c-1",
		Amount:     decimal.RequireFromString("-3.20"),
		Note:       "coffee",
		OccurredAt: occurred,
	})

	require.NoError(t, err)
	assert.Equal(t, "t-9", decoded.ServerID)
	assert.True(t, decoded.IsSynced)
	assert.Equal(t, walletID, decoded.WalletID)
	assert.Equal(t, categoryID, decoded.CategoryID)
	assert.Equal(t, "coffee", decoded.Note)
	assert.Equal(t, occurred, decoded.OccurredAt)
}

func TestCategoryBinding_DecodeUnknownParent(t *testing.T) {
	storages := newTestClientStorages(t)

	b := newCategoryBinding(mock.NewMockResource[models.RemoteCategory](gomock.NewController(t)), storages.Books)

	_, err := b.Decode(testContext(), models.RemoteCategory{
		RemoteMeta: models.RemoteMeta{ID: "c-5", UpdatedAt: fixedNow},
		BookID:     "b-missing",
		Name:       "Rent",
		Kind:       models.CategoryExpense,
	})

	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestBookBinding_RoundTrip(t *testing.T) {
	b := newBookBinding(mock.NewMockResource[models.RemoteBook](gomock.NewController(t)))

	decoded, err := b.Decode(testContext(), models.RemoteBook{
		RemoteMeta: models.RemoteMeta{ID: "b-3", UpdatedAt: fixedNow},
		Name:       "Travel",
		Currency:   "USD",
	})
	require.NoError(t, err)

	encoded, err := b.encode(testContext(), decoded)
	require.NoError(t, err)
	assert.Equal(t, models.RemoteBook{
		RemoteMeta: models.RemoteMeta{ID: "b-3", UpdatedAt: fixedNow},
		Name:       "Travel",
		Currency:   "USD",
	}, encoded)
}
