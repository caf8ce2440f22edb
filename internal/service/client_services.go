package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// ClientServices groups the local entity services of the client.
type ClientServices struct {
	Books        *EntityService[*models.Book]
	Wallets      *EntityService[*models.Wallet]
	Categories   *EntityService[*models.Category]
	Transactions *EntityService[*models.Transaction]
}

// NewClientServices builds the entity services over the client storages.
// notifier is told about every mutation and may be nil.
func NewClientServices(storages *store.ClientStorages, notifier ChangeNotifier) *ClientServices {
	validator := validators.NewLedgerValidator()
	deps := newLedgerDependents(storages)

	services := &ClientServices{
		Books: newEntityService(models.EntityBook, storages.Books, validator, nil, notifier),
		Wallets: newEntityService(models.EntityWallet, storages.Wallets, validator,
			func(ctx context.Context, w *models.Wallet) error {
				return liveParent(ctx, storages.Books, models.EntityBook, w.BookID)
			}, notifier),
		Categories: newEntityService(models.EntityCategory, storages.Categories, validator,
			func(ctx context.Context, c *models.Category) error {
				return liveParent(ctx, storages.Books, models.EntityBook, c.BookID)
			}, notifier),
		Transactions: newEntityService(models.EntityTransaction, storages.Transactions, validator,
			func(ctx context.Context, t *models.Transaction) error {
				if err := liveParent(ctx, storages.Wallets, models.EntityWallet, t.WalletID); err != nil {
					return err
				}
				return liveParent(ctx, storages.Categories, models.EntityCategory, t.CategoryID)
			}, notifier),
	}
	services.Books.dependents = deps.retireBook
	services.Wallets.dependents = deps.retireWallet
	services.Categories.dependents = deps.retireCategory

	return services
}
