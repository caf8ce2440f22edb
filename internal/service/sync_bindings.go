package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// parentLookup resolves parent keys in both directions.
type parentLookup[T models.Syncable] interface {
	FindByLocalID(ctx context.Context, localID int64) (T, error)
	FindByServerID(ctx context.Context, serverID string) (T, error)
}

// parentServerID returns the server id of a local parent.
func parentServerID[T models.Syncable](ctx context.Context, repo parentLookup[T], entity models.EntityType, localID int64) (string, error) {
	parent, err := repo.FindByLocalID(ctx, localID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %s local_id=%d", ErrParentNotFound, entity, localID)
	}
	if err != nil {
		return "", err
	}
	if !parent.Meta().HasServerID() {
		return "", fmt.Errorf("%w: %s local_id=%d", ErrParentNotSynced, entity, localID)
	}
	return parent.Meta().ServerID, nil
}

// parentLocalID returns the local id of the parent known under serverID.
func parentLocalID[T models.Syncable](ctx context.Context, repo parentLookup[T], entity models.EntityType, serverID string) (int64, error) {
	parent, err := repo.FindByServerID(ctx, serverID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %s server_id=%q", ErrParentNotFound, entity, serverID)
	}
	if err != nil {
		return 0, err
	}
	return parent.Meta().LocalID, nil
}

// remoteMetaOf builds the wire metadata of a local record.
func remoteMetaOf(m *models.SyncMeta) models.RemoteMeta {
	return models.RemoteMeta{ID: m.ServerID, IsDeleted: m.IsDeleted, UpdatedAt: m.UpdatedAt}
}

// syncMetaOf builds the local metadata of a remote record. The store fills
// in the sync flags on save.
func syncMetaOf(m models.RemoteMeta) models.SyncMeta {
	return models.SyncMeta{ServerID: m.ID, IsSynced: true, UpdatedAt: m.UpdatedAt}
}

// dependentRetirer is implemented by decoders of parent entities. The pull
// reconciler calls it before purging a parent on a remote tombstone.
type dependentRetirer interface {
	RetireDependents(ctx context.Context, localID int64, at time.Time) error
}

// childRelinker is implemented by remote operations of parent entities. The
// push reconciler calls it after a parent got a new server id.
type childRelinker interface {
	RelinkChildren(ctx context.Context, localID int64) error
}

// binding adapts a Resource to RemoteOperations and RecordDecoder through a
// per-entity pair of encode and decode functions.
type binding[T models.Syncable, P models.RemoteRecord] struct {
	resource adapter.Resource[P]
	encode   func(ctx context.Context, record T) (P, error)
	decode   func(ctx context.Context, remote P) (T, error)

	// dependents and relink act on the local children of a record. Both
	// are nil for entities without children.
	dependents retireFunc
	relink     relinkFunc
}

func (b *binding[T, P]) Create(ctx context.Context, record T) (string, error) {
	payload, err := b.encode(ctx, record)
	if err != nil {
		return "", err
	}
	return b.resource.Create(ctx, payload)
}

func (b *binding[T, P]) Update(ctx context.Context, record T) error {
	payload, err := b.encode(ctx, record)
	if err != nil {
		return err
	}
	return b.resource.Update(ctx, record.Meta().ServerID, payload)
}

func (b *binding[T, P]) Delete(ctx context.Context, record T) error {
	return b.resource.Delete(ctx, record.Meta().ServerID)
}

func (b *binding[T, P]) Decode(ctx context.Context, remote P) (T, error) {
	return b.decode(ctx, remote)
}

func (b *binding[T, P]) RetireDependents(ctx context.Context, localID int64, at time.Time) error {
	if b.dependents == nil {
		return nil
	}
	return b.dependents(ctx, localID, at)
}

func (b *binding[T, P]) RelinkChildren(ctx context.Context, localID int64) error {
	if b.relink == nil {
		return nil
	}
	return b.relink(ctx, localID)
}

// newBookBinding binds books, which have no parent keys.
func newBookBinding(resource adapter.Resource[models.RemoteBook]) *binding[*models.Book, models.RemoteBook] {
	return &binding[*models.Book, models.RemoteBook]{
		resource: resource,
		encode: func(_ context.Context, b *models.Book) (models.RemoteBook, error) {
			return models.RemoteBook{RemoteMeta: remoteMetaOf(b.Meta()), Name: b.Name, Currency: b.Currency}, nil
		},
		decode: func(_ context.Context, r models.RemoteBook) (*models.Book, error) {
			return &models.Book{SyncMeta: syncMetaOf(r.RemoteMeta), Name: r.Name, Currency: r.Currency}, nil
		},
	}
}

func newWalletBinding(resource adapter.Resource[models.RemoteWallet], books parentLookup[*models.Book]) *binding[*models.Wallet, models.RemoteWallet] {
	return &binding[*models.Wallet, models.RemoteWallet]{
		resource: resource,
		encode: func(ctx context.Context, w *models.Wallet) (models.RemoteWallet, error) {
			bookID, err := parentServerID(ctx, books, models.EntityBook, w.BookID)
			if err != nil {
				return models.RemoteWallet{}, err
			}
			return models.RemoteWallet{RemoteMeta: remoteMetaOf(w.Meta()), BookID: bookID, Name: w.Name, Balance: w.Balance}, nil
		},
		decode: func(ctx context.Context, r models.RemoteWallet) (*models.Wallet, error) {
			bookID, err := parentLocalID(ctx, books, models.EntityBook, r.BookID)
			if err != nil {
				return nil, err
			}
			return &models.Wallet{SyncMeta: syncMetaOf(r.RemoteMeta), BookID: bookID, Name: r.Name, Balance: r.Balance}, nil
		},
	}
}

func newCategoryBinding(resource adapter.Resource[models.RemoteCategory], books parentLookup[*models.Book]) *binding[*models.Category, models.RemoteCategory] {
	return &binding[*models.Category, models.RemoteCategory]{
		resource: resource,
		encode: func(ctx context.Context, c *models.Category) (models.RemoteCategory, error) {
			bookID, err := parentServerID(ctx, books, models.EntityBook, c.BookID)
			if err != nil {
				return models.RemoteCategory{}, err
			}
			return models.RemoteCategory{RemoteMeta: remoteMetaOf(c.Meta()), BookID: bookID, Name: c.Name, Kind: c.Kind}, nil
		},
		decode: func(ctx context.Context, r models.RemoteCategory) (*models.Category, error) {
			bookID, err := parentLocalID(ctx, books, models.EntityBook, r.BookID)
			if err != nil {
				return nil, err
			}
			return &models.Category{SyncMeta: syncMetaOf(r.RemoteMeta), BookID: bookID, Name: r.Name, Kind: r.Kind}, nil
		},
	}
}

func newTransactionBinding(
	resource adapter.Resource[models.RemoteTransaction],
	wallets parentLookup[*models.Wallet],
	categories parentLookup[*models.Category],
) *binding[*models.Transaction, models.RemoteTransaction] {
	return &binding[*models.Transaction, models.RemoteTransaction]{
		resource: resource,
		encode: func(ctx context.Context, t *models.Transaction) (models.RemoteTransaction, error) {
			walletID, err := parentServerID(ctx, wallets, models.EntityWallet, t.WalletID)
			if err != nil {
				return models.RemoteTransaction{}, err
			}
			categoryID, err := parentServerID(ctx, categories, models.EntityCategory, t.CategoryID)
			if err != nil {
				return models.RemoteTransaction{}, err
			}
			return models.RemoteTransaction{
				RemoteMeta: remoteMetaOf(t.Meta()),
				WalletID:   walletID,
				CategoryID: categoryID,
				Amount:     t.Amount,
				Note:       t.Note,
				OccurredAt: t.OccurredAt,
			}, nil
		},
		decode: func(ctx context.Context, r models.RemoteTransaction) (*models.Transaction, error) {
			walletID, err := parentLocalID(ctx, wallets, models.EntityWallet, r.WalletID)
			if err != nil {
				return nil, err
			}
			categoryID, err := parentLocalID(ctx, categories, models.EntityCategory, r.CategoryID)
			if err != nil {
				return nil, err
			}
			return &models.Transaction{
				SyncMeta:   syncMetaOf(r.RemoteMeta),
				WalletID:   walletID,
				CategoryID: categoryID,
				Amount:     r.Amount,
				Note:       r.Note,
				OccurredAt: r.OccurredAt,
			}, nil
		},
	}
}
