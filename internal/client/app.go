package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/workers"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// App is the assembled client: local ledger services plus the background
// sync machinery.
type App struct {
	services     *service.ClientServices
	orchestrator *service.SyncOrchestrator
	trigger      *workers.SyncTrigger
	workers      *workers.Workers
	storages     *store.ClientStorages

	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

// NewApp opens local storage and wires the sync pipeline. Storage is closed
// again when any later step fails.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create server adapter: %w", err), storages.Close())
	}

	connectivity := adapter.NewConnectivityChecker(serverAdapter, cfg.Adapter.RequestTimeout)
	orchestrator := service.NewSyncOrchestrator(storages, serverAdapter, connectivity, logger)

	activity := workers.NewActivityTracker(cfg.Workers.IdleAfter)
	scheduler := workers.NewScheduler(orchestrator, connectivity, activity, cfg.Workers, logger)
	trigger := workers.NewSyncTrigger(scheduler, activity, cfg.Workers.OnDemandDelay, logger)

	logger.Info().Msg("client app created")
	return &App{
		services:     service.NewClientServices(storages, trigger),
		orchestrator: orchestrator,
		trigger:      trigger,
		workers:      workers.NewWorkers(scheduler),
		storages:     storages,
		workersCfg:   cfg.Workers,
		logger:       logger,
	}, nil
}

// Services exposes the local ledger operations.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// SyncNow runs one synchronization pass in the caller's goroutine. It is
// rejected with [service.ErrSyncInProgress] while a scheduled run is active.
func (a *App) SyncNow(ctx context.Context) (models.SyncReport, error) {
	return a.orchestrator.FullSync(ctx)
}

// Run starts the scheduler, requests an initial sync and blocks until ctx is
// done. Storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.workers.Start(ctx)

	if err := a.trigger.SchedulePeriodic(a.workersCfg.SyncInterval); err != nil {
		a.workers.Stop()
		return errors.Join(fmt.Errorf("schedule periodic sync: %w", err), a.storages.Close())
	}
	a.trigger.RequestSync()

	<-ctx.Done()
	a.logger.Info().Str("func", "*App.Run").Msg("client is shutting down")

	a.workers.Stop()
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}
	return nil
}
