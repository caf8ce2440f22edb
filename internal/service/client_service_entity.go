package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// EntityService applies local mutations to one entity type and maintains
// its sync metadata so the next push replays them.
type EntityService[T models.Syncable] struct {
	entity    models.EntityType
	repo      store.EntityRepository[T]
	validator validators.Validator
	// checkParents verifies that the parent keys of a record point to live
	// local records. Nil for entities without parents.
	checkParents func(ctx context.Context, record T) error
	// dependents deletes the local children of a record before the record
	// itself. Nil for entities without children.
	dependents retireFunc
	notifier   ChangeNotifier

	now func() time.Time
}

func newEntityService[T models.Syncable](
	entity models.EntityType,
	repo store.EntityRepository[T],
	validator validators.Validator,
	checkParents func(ctx context.Context, record T) error,
	notifier ChangeNotifier,
) *EntityService[T] {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &EntityService[T]{
		entity:       entity,
		repo:         repo,
		validator:    validator,
		checkParents: checkParents,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Create stores a new record pending CREATE and returns it with its local id.
func (s *EntityService[T]) Create(ctx context.Context, record T) (T, error) {
	if err := s.validate(ctx, record); err != nil {
		return record, err
	}

	m := record.Meta()
	*m = models.SyncMeta{SyncAction: models.SyncActionCreate, UpdatedAt: s.now().UTC()}

	localID, err := s.repo.Insert(ctx, record)
	if err != nil {
		return record, fmt.Errorf("create %s: %w", s.entity, err)
	}
	m.LocalID = localID

	s.changed(ctx, "created", localID)
	return record, nil
}

// Update stores new field values for an existing record. The pending action
// stays CREATE while the record has no server id.
func (s *EntityService[T]) Update(ctx context.Context, record T) (T, error) {
	m := record.Meta()

	current, err := s.Get(ctx, m.LocalID)
	if err != nil {
		return record, err
	}
	if err = s.validate(ctx, record); err != nil {
		return record, err
	}

	cm := current.Meta()
	action := models.SyncActionUpdate
	if !cm.HasServerID() {
		action = models.SyncActionCreate
	}
	*m = models.SyncMeta{
		LocalID:    cm.LocalID,
		ServerID:   cm.ServerID,
		SyncAction: action,
		LastSyncAt: cm.LastSyncAt,
		UpdatedAt:  laterThan(s.now(), cm.UpdatedAt),
	}

	if err = s.repo.Update(ctx, record); err != nil {
		return record, fmt.Errorf("update %s: %w", s.entity, err)
	}

	s.changed(ctx, "updated", m.LocalID)
	return record, nil
}

// Delete removes a record and its live children. A record the server never
// acknowledged is purged at once; any other becomes a tombstone pending
// DELETE.
func (s *EntityService[T]) Delete(ctx context.Context, localID int64) error {
	current, err := s.repo.FindByLocalID(ctx, localID)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.entity, err)
	}

	cm := current.Meta()
	if cm.IsDeleted && cm.HasServerID() {
		return nil
	}

	now := s.now()
	if s.dependents != nil {
		if err = s.dependents(ctx, localID, now); err != nil {
			return fmt.Errorf("delete %s: %w", s.entity, err)
		}
	}

	if cm.HasServerID() {
		err = s.repo.MarkDeleted(ctx, localID, laterThan(now, cm.UpdatedAt))
	} else {
		err = s.repo.PurgePermanently(ctx, localID)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.entity, err)
	}

	s.changed(ctx, "deleted", localID)
	return nil
}

// Get returns a live record. Tombstones are reported as not found.
func (s *EntityService[T]) Get(ctx context.Context, localID int64) (T, error) {
	record, err := s.repo.FindByLocalID(ctx, localID)
	if err != nil {
		return record, fmt.Errorf("get %s: %w", s.entity, err)
	}
	if record.Meta().IsDeleted {
		var zero T
		return zero, fmt.Errorf("get %s: %w: %w", s.entity, store.ErrRecordNotFound, ErrRecordDeleted)
	}
	return record, nil
}

// List returns every live record.
func (s *EntityService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return records, nil
}

func (s *EntityService[T]) validate(ctx context.Context, record T) error {
	if err := s.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if s.checkParents == nil {
		return nil
	}
	return s.checkParents(ctx, record)
}

func (s *EntityService[T]) changed(ctx context.Context, what string, localID int64) {
	logger.FromContext(ctx).Debug().
		Str("func", "*EntityService.changed").
		Str("entity", string(s.entity)).
		Int64("local_id", localID).
		Msg(string(s.entity) + " " + what)

	s.notifier.MarkActivity()
	s.notifier.RequestSync()
}

// liveParent fails with ErrParentNotFound unless localID names a live record.
func liveParent[T models.Syncable](ctx context.Context, repo store.EntityRepository[T], entity models.EntityType, localID int64) error {
	parent, err := repo.FindByLocalID(ctx, localID)
	if errors.Is(err, store.ErrRecordNotFound) || (err == nil && parent.Meta().IsDeleted) {
		return fmt.Errorf("%w: %s local_id=%d", ErrParentNotFound, entity, localID)
	}
	return err
}

type nopNotifier struct{}

func (nopNotifier) MarkActivity() {}
func (nopNotifier) RequestSync()  {}
