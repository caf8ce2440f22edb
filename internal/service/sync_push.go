package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// PushReconciler replays the pending local changes of one entity type
// against the server. The first failing record aborts the pass; the records
// already handled keep their new state.
type PushReconciler[T models.Syncable] struct {
	entity models.EntityType
	repo   store.EntitySyncRepository[T]
	remote RemoteOperations[T]

	now func() time.Time
}

func NewPushReconciler[T models.Syncable](entity models.EntityType, repo store.EntitySyncRepository[T], remote RemoteOperations[T]) *PushReconciler[T] {
	return &PushReconciler[T]{entity: entity, repo: repo, remote: remote, now: time.Now}
}

// Push handles every record returned by ListUnsynced.
//
//   - CREATE: remote create, then RecordSyncSuccess with the new server id.
//   - UPDATE: remote update, then RecordSyncSuccess with the same server id.
//     A 404 means the server lost the record, so it is created again and
//     its local children are queued to push the new id.
//   - DELETE: remote delete, then PurgePermanently. A 404 counts as
//     acknowledged. A tombstone without a server id is purged locally.
//
// A CREATE or UPDATE whose local parent no longer exists is dropped: the
// server copy, if any, is deleted and the row is purged.
func (p *PushReconciler[T]) Push(ctx context.Context) (models.PushStats, error) {
	log := logger.FromContext(ctx)
	var stats models.PushStats

	records, err := p.repo.ListUnsynced(ctx)
	if err != nil {
		return stats, fmt.Errorf("%w: list unsynced %s: %w", ErrPushFailed, p.entity, err)
	}

	for _, record := range records {
		if err = ctx.Err(); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrPushFailed, err)
		}

		meta := record.Meta()
		if verr := meta.Validate(); verr != nil {
			log.Warn().Err(verr).
				Str("func", "PushReconciler.Push").
				Str("entity", string(p.entity)).
				Int64("local_id", meta.LocalID).
				Msg("inconsistent sync metadata, classifying by state")
		}

		action := pushAction(meta)
		if err = p.pushOne(ctx, record, action, &stats); err != nil {
			log.Err(err).
				Str("func", "PushReconciler.Push").
				Str("entity", string(p.entity)).
				Str("action", string(action)).
				Int64("local_id", meta.LocalID).
				Msg("push aborted")
			return stats, fmt.Errorf("%w: %s %s local_id=%d: %w", ErrPushFailed, action, p.entity, meta.LocalID, err)
		}
	}

	return stats, nil
}

func (p *PushReconciler[T]) pushOne(ctx context.Context, record T, action models.SyncAction, stats *models.PushStats) error {
	meta := record.Meta()

	switch action {
	case models.SyncActionCreate:
		_, err := p.create(ctx, record, stats)
		if errors.Is(err, ErrParentNotFound) {
			return p.dropOrphan(ctx, record, err, stats)
		}
		return err

	case models.SyncActionUpdate:
		err := p.remote.Update(ctx, record)
		if errors.Is(err, adapter.ErrNotFound) {
			return p.recreate(ctx, record, stats)
		}
		if errors.Is(err, ErrParentNotFound) {
			return p.dropOrphan(ctx, record, err, stats)
		}
		if err != nil {
			return err
		}
		if err = p.repo.RecordSyncSuccess(ctx, meta.LocalID, meta.ServerID, meta.UpdatedAt, p.now()); err != nil {
			return err
		}
		stats.Updated++
		return nil

	case models.SyncActionDelete:
		if !meta.HasServerID() {
			if err := p.repo.PurgePermanently(ctx, meta.LocalID); err != nil {
				return err
			}
			stats.Purged++
			return nil
		}
		if err := p.remote.Delete(ctx, record); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return err
		}
		if err := p.repo.PurgePermanently(ctx, meta.LocalID); err != nil {
			return err
		}
		stats.Deleted++
		return nil

	default:
		return models.ErrUnknownSyncAction
	}
}

func (p *PushReconciler[T]) create(ctx context.Context, record T, stats *models.PushStats) (string, error) {
	meta := record.Meta()

	serverID, err := p.remote.Create(ctx, record)
	if err != nil {
		return "", err
	}
	if err = p.repo.RecordSyncSuccess(ctx, meta.LocalID, serverID, meta.UpdatedAt, p.now()); err != nil {
		return "", err
	}
	stats.Created++
	return serverID, nil
}

// recreate creates a record the server no longer knows. Its server children
// still point at the old id, so the local children are queued to push the
// new one.
func (p *PushReconciler[T]) recreate(ctx context.Context, record T, stats *models.PushStats) error {
	log := logger.FromContext(ctx)
	meta := record.Meta()
	oldID := meta.ServerID

	newID, err := p.create(ctx, record, stats)
	if errors.Is(err, ErrParentNotFound) {
		return p.dropOrphan(ctx, record, err, stats)
	}
	if err != nil {
		return err
	}

	log.Warn().
		Str("func", "PushReconciler.recreate").
		Str("entity", string(p.entity)).
		Int64("local_id", meta.LocalID).
		Str("old_server_id", oldID).
		Str("new_server_id", newID).
		Msg("record was unknown to the server and has been created again")

	relinker, ok := p.remote.(childRelinker)
	if !ok {
		return nil
	}
	if err = relinker.RelinkChildren(ctx, meta.LocalID); err != nil {
		return fmt.Errorf("relink children of %s local_id=%d: %w", p.entity, meta.LocalID, err)
	}
	return nil
}

// dropOrphan discards a record whose local parent is gone. The server copy
// is deleted first so other devices drop it too.
func (p *PushReconciler[T]) dropOrphan(ctx context.Context, record T, cause error, stats *models.PushStats) error {
	meta := record.Meta()

	logger.FromContext(ctx).Warn().Err(cause).
		Str("func", "PushReconciler.dropOrphan").
		Str("entity", string(p.entity)).
		Int64("local_id", meta.LocalID).
		Str("server_id", meta.ServerID).
		Msg("parent record is gone, dropping orphan")

	if meta.HasServerID() {
		if err := p.remote.Delete(ctx, record); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return err
		}
	}
	if err := p.repo.PurgePermanently(ctx, meta.LocalID); err != nil {
		return err
	}
	stats.Purged++
	return nil
}

// pushAction picks the remote operation for an unsynced record. Rows whose
// action disagrees with their state are classified by state: deleted rows
// are deletes, and rows without a server id are creates.
func pushAction(meta *models.SyncMeta) models.SyncAction {
	switch {
	case meta.IsDeleted || meta.SyncAction == models.SyncActionDelete:
		return models.SyncActionDelete
	case !meta.HasServerID():
		return models.SyncActionCreate
	case meta.SyncAction == models.SyncActionNone, meta.SyncAction == models.SyncActionCreate:
		return models.SyncActionUpdate
	default:
		return meta.SyncAction
	}
}
