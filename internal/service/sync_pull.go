package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// PullReconciler folds server changes of one entity type into local storage
// with last-write-wins on UpdatedAt.
type PullReconciler[T models.Syncable, P models.RemoteRecord] struct {
	entity  models.EntityType
	repo    store.EntitySyncRepository[T]
	source  RemoteSource[P]
	decoder RecordDecoder[T, P]

	now func() time.Time
}

func NewPullReconciler[T models.Syncable, P models.RemoteRecord](
	entity models.EntityType,
	repo store.EntitySyncRepository[T],
	source RemoteSource[P],
	decoder RecordDecoder[T, P],
) *PullReconciler[T, P] {
	return &PullReconciler[T, P]{entity: entity, repo: repo, source: source, decoder: decoder, now: time.Now}
}

// Pull fetches the records changed since the watermark and applies them.
// The returned stats carry the new watermark for this entity type.
func (p *PullReconciler[T, P]) Pull(ctx context.Context, since time.Time) (models.PullStats, error) {
	remote, err := p.source.ListChangedSince(ctx, since)
	if err != nil {
		return models.PullStats{Watermark: since}, fmt.Errorf("%w: list changed %s: %w", ErrPullFailed, p.entity, err)
	}

	stats, err := p.Apply(ctx, remote)
	if stats.Watermark.Before(since) {
		stats.Watermark = since
	}
	return stats, err
}

// Apply folds remote records into local storage:
//   - a remote tombstone purges the local counterpart, if any;
//   - a live record is saved when there is no local counterpart or the
//     remote UpdatedAt is strictly newer, which also overrides a pending
//     local delete;
//   - anything else is skipped and local pending changes survive.
//
// Purging a parent deletes its local children the way a local delete does. A live record whose
// parent is not stored locally is deferred: the watermark stays at or
// before it so the next pass fetches it again.
func (p *PullReconciler[T, P]) Apply(ctx context.Context, remote []P) (models.PullStats, error) {
	log := logger.FromContext(ctx)
	var (
		stats      models.PullStats
		deferredAt time.Time
	)

	for _, record := range remote {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrPullFailed, err)
		}

		meta := record.GetRemoteMeta()
		deferred := stats.Deferred
		if err := p.applyOne(ctx, record, meta, &stats); err != nil {
			log.Err(err).
				Str("func", "PullReconciler.Apply").
				Str("entity", string(p.entity)).
				Str("server_id", meta.ID).
				Msg("pull aborted")
			return stats, fmt.Errorf("%w: %s server_id=%q: %w", ErrPullFailed, p.entity, meta.ID, err)
		}

		if stats.Deferred > deferred && (deferredAt.IsZero() || meta.UpdatedAt.Before(deferredAt)) {
			deferredAt = meta.UpdatedAt
		}
		if meta.UpdatedAt.After(stats.Watermark) {
			stats.Watermark = meta.UpdatedAt
		}
	}

	if !deferredAt.IsZero() && deferredAt.Before(stats.Watermark) {
		stats.Watermark = deferredAt
	}
	return stats, nil
}

func (p *PullReconciler[T, P]) applyOne(ctx context.Context, record P, meta models.RemoteMeta, stats *models.PullStats) error {
	if meta.ID == "" {
		return ErrInvalidRemoteRecord
	}

	local, err := p.repo.FindByServerID(ctx, meta.ID)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		return err
	}

	if meta.IsDeleted {
		if !found {
			stats.Skipped++
			return nil
		}
		if retirer, ok := p.decoder.(dependentRetirer); ok {
			if err = retirer.RetireDependents(ctx, local.Meta().LocalID, p.now()); err != nil {
				return err
			}
		}
		if err = p.repo.PurgePermanently(ctx, local.Meta().LocalID); err != nil {
			return err
		}
		stats.Purged++
		return nil
	}

	if found && !meta.UpdatedAt.After(local.Meta().UpdatedAt) {
		stats.Skipped++
		return nil
	}

	decoded, err := p.decoder.Decode(ctx, record)
	if errors.Is(err, ErrParentNotFound) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "PullReconciler.applyOne").
			Str("entity", string(p.entity)).
			Str("server_id", meta.ID).
			Time("updated_at", meta.UpdatedAt).
			Msg("parent is not stored locally, deferring record")
		stats.Deferred++
		return nil
	}
	if err != nil {
		return err
	}
	if err = p.repo.SaveFromRemote(ctx, decoded, p.now()); err != nil {
		return err
	}
	stats.Saved++
	return nil
}
