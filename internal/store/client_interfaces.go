package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EntitySyncRepository is the storage contract the push and pull reconcilers
// rely on. One instance serves one entity type.
type EntitySyncRepository[T models.Syncable] interface {
	// ListUnsynced returns every record with is_synced = false, tombstones
	// included, in local id order.
	ListUnsynced(ctx context.Context) ([]T, error)
	// RecordSyncSuccess stores the server id and marks the record synced
	// with no pending action, provided its updated_at still equals pushedAt.
	// A record edited after the pushed snapshot only gets the server id and
	// stays pending.
	RecordSyncSuccess(ctx context.Context, localID int64, serverID string, pushedAt, syncedAt time.Time) error
	// PurgePermanently removes the row.
	PurgePermanently(ctx context.Context, localID int64) error
	// FindByServerID returns the record with the given server id, deleted or
	// not, or [ErrRecordNotFound].
	FindByServerID(ctx context.Context, serverID string) (T, error)
	// SaveFromRemote upserts the record keyed on its server id and forces it
	// to the synced, not deleted, no-action state.
	SaveFromRemote(ctx context.Context, record T, syncedAt time.Time) error
}

// EntityRepository extends [EntitySyncRepository] with the local lifecycle
// operations used by the entity services.
type EntityRepository[T models.Syncable] interface {
	EntitySyncRepository[T]

	// Insert stores a new record and returns its local id.
	Insert(ctx context.Context, record T) (int64, error)
	// Update rewrites the domain fields and sync metadata of the record.
	Update(ctx context.Context, record T) error
	// MarkDeleted turns the record into a tombstone with a pending DELETE.
	MarkDeleted(ctx context.Context, localID int64, updatedAt time.Time) error
	// FindByLocalID returns the record or [ErrRecordNotFound].
	FindByLocalID(ctx context.Context, localID int64) (T, error)
	// ListActive returns the records that are not deleted.
	ListActive(ctx context.Context) ([]T, error)
	// ListByParent returns every record, tombstones included, whose parent
	// key column equals parentID.
	ListByParent(ctx context.Context, column string, parentID int64) ([]T, error)
	// MarkChildrenPending turns the synced live records whose parent key
	// column equals parentID into pending updates and returns their count.
	MarkChildrenPending(ctx context.Context, column string, parentID int64) (int64, error)
	// PurgeAcknowledgedTombstones removes deleted rows whose deletion the
	// server already confirmed and returns the number of removed rows.
	PurgeAcknowledgedTombstones(ctx context.Context) (int64, error)
}

// WatermarkRepository persists the per-entity-type pull watermarks.
type WatermarkRepository interface {
	// GetAll returns every stored watermark. Types that were never pulled
	// are absent from the map.
	GetAll(ctx context.Context) (map[models.EntityType]time.Time, error)
	// SaveAll stores all given watermarks in one transaction.
	SaveAll(ctx context.Context, watermarks map[models.EntityType]time.Time) error
}
