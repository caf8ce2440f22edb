package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

func newTestClientServices(t *testing.T) (*ClientServices, *store.ClientStorages, *countingNotifier) {
	t.Helper()

	storages := newTestClientStorages(t)
	notifier := &countingNotifier{}
	services := NewClientServices(storages, notifier)
	services.Books.now = fixedClock
	services.Wallets.now = fixedClock
	services.Categories.now = fixedClock
	services.Transactions.now = fixedClock

	return services, storages, notifier
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestEntityService_CreateMarksPending(t *testing.T) {
	services, storages, notifier := newTestClientServices(t)
	ctx := testContext()

	book, err := services.Books.Create(ctx, &models.Book{Name: "Ledger", Currency: "EUR"})
	require.NoError(t, err)
	assert.NotZero(t, book.LocalID)

	stored, err := storages.Books.FindByLocalID(ctx, book.LocalID)
	require.NoError(t, err)
	assert.False(t, stored.IsSynced)
	assert.Equal(t, models.SyncActionCreate, stored.SyncAction)
	assert.Empty(t, stored.ServerID)
	assert.True(t, fixedNow.Equal(stored.UpdatedAt))

	assert.Equal(t, int32(1), notifier.activity.Load())
	assert.Equal(t, int32(1), notifier.requests.Load())
}

func TestEntityService_CreateRejectsInvalid(t *testing.T) {
	services, _, notifier := newTestClientServices(t)

	_, err := services.Books.Create(testContext(), &models.Book{Name: "", Currency: "EUR"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, notifier.requests.Load())
}

func TestEntityService_CreateRequiresLiveParent(t *testing.T) {
	services, _, _ := newTestClientServices(t)
	ctx := testContext()

	_, err := services.Wallets.Create(ctx, &models.Wallet{BookID: 42, Name: "Cash", Balance: decimal.Zero})
	assert.ErrorIs(t, err, ErrParentNotFound)

	book, err := services.Books.Create(ctx, &models.Book{Name: "Ledger", Currency: "EUR"})
	require.NoError(t, err)
	wallet, err := services.Wallets.Create(ctx, &models.Wallet{BookID: book.LocalID, Name: "Cash", Balance: decimal.Zero})
	require.NoError(t, err)

	// a deleted parent no longer accepts children
	require.NoError(t, services.Wallets.Delete(ctx, wallet.LocalID))
	_, err = services.Transactions.Create(ctx, &models.Transaction{
		WalletID:   wallet.LocalID,
		CategoryID: 1,
		Amount:     decimal.NewFromInt(5),
		OccurredAt: fixedNow,
	})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestEntityService_Update(t *testing.T) {
	tests := []struct {
		name       string
		serverID   string
		wantAction models.SyncAction
	}{
		{name: "never synced stays CREATE", serverID: "", wantAction: models.SyncActionCreate},
		{name: "synced becomes UPDATE", serverID: "b-1", wantAction: models.SyncActionUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, storages, _ := newTestClientServices(t)
			ctx := testContext()

			localID, err := storages.Books.Insert(ctx, &models.Book{
				SyncMeta: models.SyncMeta{ServerID: tt.serverID, IsSynced: tt.serverID != "", UpdatedAt: fixedNow},
				Name:     "Ledger",
				Currency: "EUR",
			})
			require.NoError(t, err)

			updated, err := services.Books.Update(ctx, &models.Book{
				SyncMeta: models.SyncMeta{LocalID: localID},
				Name:     "Household",
				Currency: "EUR",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.serverID, updated.ServerID)

			stored, err := storages.Books.FindByLocalID(ctx, localID)
			require.NoError(t, err)
			assert.Equal(t, "Household", stored.Name)
			assert.Equal(t, tt.wantAction, stored.SyncAction)
			assert.False(t, stored.IsSynced)
		})
	}
}

func TestEntityService_UpdateMissing(t *testing.T) {
	services, _, _ := newTestClientServices(t)

	_, err := services.Books.Update(testContext(), &models.Book{
		SyncMeta: models.SyncMeta{LocalID: 99},
		Name:     "Ledger",
		Currency: "EUR",
	})

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestEntityService_DeleteNeverSyncedIsPurged(t *testing.T) {
	services, storages, _ := newTestClientServices(t)
	ctx := testContext()

	book, err := services.Books.Create(ctx, &models.Book{Name: "Ledger", Currency: "EUR"})
	require.NoError(t, err)

	require.NoError(t, services.Books.Delete(ctx, book.LocalID))

	_, err = storages.Books.FindByLocalID(ctx, book.LocalID)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	unsynced, err := storages.Books.ListUnsynced(ctx)
	require.NoError(t, err)
	assert.Empty(t, unsynced)
}

func TestEntityService_DeleteSyncedLeavesTombstone(t *testing.T) {
	services, storages, notifier := newTestClientServices(t)
	ctx := testContext()

	localID, err := storages.Books.Insert(ctx, &models.Book{
		SyncMeta: models.SyncMeta{ServerID: "b-1", IsSynced: true, UpdatedAt: fixedNow},
		Name:     "Ledger",
		Currency: "EUR",
	})
	require.NoError(t, err)

	require.NoError(t, services.Books.Delete(ctx, localID))
	// a second delete is a no-op
	require.NoError(t, services.Books.Delete(ctx, localID))
	assert.Equal(t, int32(1), notifier.requests.Load())

	stored, err := storages.Books.FindByLocalID(ctx, localID)
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted)
	assert.False(t, stored.IsSynced)
	assert.Equal(t, models.SyncActionDelete, stored.SyncAction)

	_, err = services.Books.Get(ctx, localID)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrRecordDeleted)

	active, err := services.Books.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestEntityService_DeleteWalletRetiresTransactions(t *testing.T) {
	services, storages, _ := newTestClientServices(t)
	ctx := testContext()

	book, err := services.Books.Create(ctx, &models.Book{Name: "Ledger", Currency: "EUR"})
	require.NoError(t, err)
	wallet, err := services.Wallets.Create(ctx, &models.Wallet{BookID: book.LocalID, Name: "Cash", Balance: decimal.Zero})
	require.NoError(t, err)
	category, err := services.Categories.Create(ctx, &models.Category{BookID: book.LocalID, Name: "Food", Kind: models.CategoryExpense})
	require.NoError(t, err)

	newTx := func(note string) *models.Transaction {
		tx, err := services.Transactions.Create(ctx, &models.Transaction{
			WalletID:   wallet.LocalID,
			CategoryID: category.LocalID,
			Amount:     decimal.NewFromInt(-3),
			Note:       note,
			OccurredAt: fixedNow,
		})
		require.NoError(t, err)
		return tx
	}
	draft := newTx("draft")
	synced := newTx("synced")
	require.NoError(t, storages.Transactions.RecordSyncSuccess(ctx, synced.LocalID, "t-1", fixedNow, fixedNow))

	require.NoError(t, services.Wallets.Delete(ctx, wallet.LocalID))

	_, err = storages.Transactions.FindByLocalID(ctx, draft.LocalID)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	tombstone, err := storages.Transactions.FindByLocalID(ctx, synced.LocalID)
	require.NoError(t, err)
	assert.True(t, tombstone.IsDeleted)
	assert.Equal(t, models.SyncActionDelete, tombstone.SyncAction)
	assert.True(t, tombstone.UpdatedAt.After(fixedNow))

	// the category survives
	_, err = services.Categories.Get(ctx, category.LocalID)
	assert.NoError(t, err)
}

func TestLaterThan(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		prev time.Time
		want time.Time
	}{
		{name: "clock moved on", now: fixedNow, prev: fixedNow.Add(-time.Second), want: fixedNow},
		{name: "same instant", now: fixedNow, prev: fixedNow, want: fixedNow.Add(time.Microsecond)},
		{name: "clock behind", now: fixedNow.Add(-time.Hour), prev: fixedNow, want: fixedNow.Add(time.Microsecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(laterThan(tt.now, tt.prev)))
		})
	}
}

func TestEntityService_DeleteMissing(t *testing.T) {
	services, _, _ := newTestClientServices(t)

	err := services.Categories.Delete(testContext(), 7)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// ── storage failures ──

func newMockedBookService(t *testing.T) (*EntityService[*models.Book], *mock.MockEntityRepository[*models.Book], *mock.MockChangeNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockEntityRepository[*models.Book](ctrl)
	notifier := mock.NewMockChangeNotifier(ctrl)

	svc := newEntityService(models.EntityBook, repo, validators.NewLedgerValidator(), nil, notifier)
	svc.now = fixedClock
	return svc, repo, notifier
}

func TestEntityService_InsertFailureDoesNotNotify(t *testing.T) {
	svc, repo, _ := newMockedBookService(t)
	storageErr := errors.New("disk full")

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), storageErr)

	_, err := svc.Create(context.Background(), &models.Book{Name: "Home", Currency: "EUR"})
	require.ErrorIs(t, err, storageErr)
}

func TestEntityService_SyncedDeleteNotifies(t *testing.T) {
	svc, repo, notifier := newMockedBookService(t)
	ctx := context.Background()

	synced := &models.Book{
		SyncMeta: models.SyncMeta{LocalID: 7, ServerID: "srv-7", IsSynced: true},
		Name:     "Home",
		Currency: "EUR",
	}

	gomock.InOrder(
		repo.EXPECT().FindByLocalID(gomock.Any(), int64(7)).Return(synced, nil),
		repo.EXPECT().MarkDeleted(gomock.Any(), int64(7), fixedNow).Return(nil),
		notifier.EXPECT().MarkActivity(),
		notifier.EXPECT().RequestSync(),
	)

	require.NoError(t, svc.Delete(ctx, 7))
}

func TestEntityService_MarkDeletedFailure(t *testing.T) {
	svc, repo, _ := newMockedBookService(t)

	repo.EXPECT().FindByLocalID(gomock.Any(), int64(7)).
		Return(&models.Book{SyncMeta: models.SyncMeta{LocalID: 7, ServerID: "srv-7"}}, nil)
	repo.EXPECT().MarkDeleted(gomock.Any(), int64(7), fixedNow).Return(store.ErrExecutingQuery)

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
