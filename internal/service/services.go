package service

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Services groups the server-side resource services.
type Services struct {
	AppInfo      AppInfoService
	Books        ResourceService[models.RemoteBook]
	Wallets      ResourceService[models.RemoteWallet]
	Categories   ResourceService[models.RemoteCategory]
	Transactions ResourceService[models.RemoteTransaction]
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()
	validator := validators.NewLedgerValidator()

	logger.Info().Msg("resource services created")

	return &Services{
		AppInfo: NewAppInfoService(buildInfo, logger),

		Books: newResourceService("books", storages.Books, ids, validator,
			func(b *models.RemoteBook) *models.RemoteMeta { return &b.RemoteMeta }),
		Wallets: newResourceService("wallets", storages.Wallets, ids, validator,
			func(w *models.RemoteWallet) *models.RemoteMeta { return &w.RemoteMeta }),
		Categories: newResourceService("categories", storages.Categories, ids, validator,
			func(c *models.RemoteCategory) *models.RemoteMeta { return &c.RemoteMeta }),
		Transactions: newResourceService("transactions", storages.Transactions, ids, validator,
			func(t *models.RemoteTransaction) *models.RemoteMeta { return &t.RemoteMeta }),
	}
}
