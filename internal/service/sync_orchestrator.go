// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type entityPipeline[T models.Syncable, P models.RemoteRecord] struct {
	entity models.EntityType
	push   *PushReconciler[T]
	pull   *PullReconciler[T, P]
}

// NewEntitySync assembles the pipeline of one entity type from its local
// repository, its remote resource and the binding between the two.
func NewEntitySync[T models.Syncable, P models.RemoteRecord](
	entity models.EntityType,
	repo store.EntitySyncRepository[T],
	source RemoteSource[P],
	remote RemoteOperations[T],
	decoder RecordDecoder[T, P],
) EntitySync {
	return &entityPipeline[T, P]{
		entity: entity,
		push:   NewPushReconciler(entity, repo, remote),
		pull:   NewPullReconciler(entity, repo, source, decoder),
	}
}

func (e *entityPipeline[T, P]) Entity() models.EntityType {
	return e.entity
}

func (e *entityPipeline[T, P]) Push(ctx context.Context) (models.PushStats, error) {
	return e.push.Push(ctx)
}

func (e *entityPipeline[T, P]) Pull(ctx context.Context, since time.Time) (models.PullStats, error) {
	return e.pull.Pull(ctx, since)
}

// SyncOrchestrator runs one full sync: connectivity check, push of every
// entity type in dependency order, pull of every type from its own
// watermark, tombstone cleanup and watermark persistence. Nothing is rolled
// back on failure; the next run resumes from the records still pending.
type SyncOrchestrator struct {
	pipelines    []EntitySync
	watermarks   store.WatermarkRepository
	cleaner      TombstoneCleaner
	connectivity adapter.ConnectivityChecker

	running atomic.Bool
	state   atomic.Int32

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncOrchestrator wires the four entity pipelines over the client
// storages and the server adapter.
func NewSyncOrchestrator(
	storages *store.ClientStorages,
	server adapter.ServerAdapter,
	connectivity adapter.ConnectivityChecker,
	logger *logger.Logger,
) *SyncOrchestrator {
	books := newBookBinding(server.Books())
	wallets := newWalletBinding(server.Wallets(), storages.Books)
	categories := newCategoryBinding(server.Categories(), storages.Books)
	transactions := newTransactionBinding(server.Transactions(), storages.Wallets, storages.Categories)

	deps := newLedgerDependents(storages)
	books.dependents, books.relink = deps.retireBook, deps.relinkBook
	wallets.dependents, wallets.relink = deps.retireWallet, deps.relinkWallet
	categories.dependents, categories.relink = deps.retireCategory, deps.relinkCategory

	pipelines := []EntitySync{
		NewEntitySync(models.EntityBook, storages.Books, server.Books(), books, books),
		NewEntitySync(models.EntityWallet, storages.Wallets, server.Wallets(), wallets, wallets),
		NewEntitySync(models.EntityCategory, storages.Categories, server.Categories(), categories, categories),
		NewEntitySync(models.EntityTransaction, storages.Transactions, server.Transactions(), transactions, transactions),
	}

	return newSyncOrchestrator(pipelines, storages.Watermarks, storages.Transactions, connectivity, logger)
}

func newSyncOrchestrator(
	pipelines []EntitySync,
	watermarks store.WatermarkRepository,
	cleaner TombstoneCleaner,
	connectivity adapter.ConnectivityChecker,
	logger *logger.Logger,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		pipelines:    pipelines,
		watermarks:   watermarks,
		cleaner:      cleaner,
		connectivity: connectivity,
		now:          time.Now,
		logger:       logger,
	}
}

// State returns the current position of the run state machine.
func (o *SyncOrchestrator) State() models.SyncState {
	return models.SyncState(o.state.Load())
}

func (o *SyncOrchestrator) setState(ctx context.Context, state models.SyncState) {
	o.state.Store(int32(state))
	logger.FromContext(ctx).Debug().
		Str("func", "*SyncOrchestrator.setState").
		Stringer("state", state).
		Msg("sync state changed")
}

// Run performs one full sync and reports the coarse outcome to the
// scheduler. Every error becomes Retry; a run requested while another one is
// active is rejected with Retry too.
func (o *SyncOrchestrator) Run(ctx context.Context) models.SyncResult {
	if _, err := o.FullSync(ctx); err != nil {
		return models.SyncRetry
	}
	return models.SyncSuccess
}

// FullSync performs one full sync and returns its report. It fails with
// [ErrSyncInProgress] when another run is active.
func (o *SyncOrchestrator) FullSync(ctx context.Context) (models.SyncReport, error) {
	ctx = o.logger.WithField("sync_run", uuid.NewString()).WithContext(ctx)
	log := logger.FromContext(ctx)

	report := models.NewSyncReport(o.now())

	if !o.running.CompareAndSwap(false, true) {
		log.Info().Str("func", "*SyncOrchestrator.FullSync").Msg("sync already running, request rejected")
		return report, ErrSyncInProgress
	}
	defer o.running.Store(false)
	defer o.setState(ctx, models.SyncIdle)

	err := o.sync(ctx, &report)
	report.FinishedAt = o.now()

	if err != nil {
		log.Warn().Err(err).
			Str("func", "*SyncOrchestrator.FullSync").
			Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
			Msg("sync failed, will retry")
		return report, err
	}

	o.logReport(ctx, report)
	return report, nil
}

func (o *SyncOrchestrator) sync(ctx context.Context, report *models.SyncReport) error {
	if !o.connectivity.IsAvailable(ctx) {
		return ErrNoConnectivity
	}

	watermarks, err := o.watermarks.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load watermarks: %w", err)
	}

	o.setState(ctx, models.SyncPushing)
	for _, p := range o.pipelines {
		stats, err := p.Push(ctx)
		report.Push[p.Entity()] = stats
		if err != nil {
			return err
		}
	}

	o.setState(ctx, models.SyncPulling)
	next := maps.Clone(watermarks)
	if next == nil {
		next = make(map[models.EntityType]time.Time, len(o.pipelines))
	}
	for _, p := range o.pipelines {
		stats, err := p.Pull(ctx, watermarks[p.Entity()])
		report.Pull[p.Entity()] = stats
		if err != nil {
			return err
		}
		next[p.Entity()] = stats.Watermark
	}

	o.setState(ctx, models.SyncCleaningUp)
	purged, err := o.cleaner.PurgeAcknowledgedTombstones(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCleanupFailed, err)
	}
	report.TombstonesPurged = purged

	if err = o.watermarks.SaveAll(ctx, next); err != nil {
		return fmt.Errorf("save watermarks: %w", err)
	}
	return nil
}

func (o *SyncOrchestrator) logReport(ctx context.Context, report models.SyncReport) {
	event := logger.FromContext(ctx).Info().
		Str("func", "*SyncOrchestrator.FullSync").
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Int64("tombstones_purged", report.TombstonesPurged)

	for _, p := range o.pipelines {
		push := report.Push[p.Entity()]
		pull := report.Pull[p.Entity()]
		event = event.
			Int(string(p.Entity())+"_pushed", push.Total()).
			Int(string(p.Entity())+"_pulled", pull.Saved+pull.Purged).
			Int(string(p.Entity())+"_deferred", pull.Deferred)
	}

	event.Msg("sync completed")
}
