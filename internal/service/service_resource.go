package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type resourceService[P models.RemoteRecord] struct {
	name      string
	repo      store.ResourceRepository[P]
	ids       IDGenerator
	validator validators.Validator
	meta      func(*P) *models.RemoteMeta
}

func newResourceService[P models.RemoteRecord](
	name string,
	repo store.ResourceRepository[P],
	ids IDGenerator,
	validator validators.Validator,
	meta func(*P) *models.RemoteMeta,
) ResourceService[P] {
	return &resourceService[P]{name: name, repo: repo, ids: ids, validator: validator, meta: meta}
}

// Create assigns a fresh server id and stores the record. Client-supplied
// ids and tombstone flags are ignored.
func (s *resourceService[P]) Create(ctx context.Context, userID int64, record P) (P, error) {
	if err := s.validator.Validate(ctx, record); err != nil {
		return record, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	m := s.meta(&record)
	*m = models.RemoteMeta{ID: s.ids.Generate()}

	created, err := s.repo.Create(ctx, userID, record)
	if err != nil {
		return record, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "resourceService.Create").
		Str("resource", s.name).
		Int64("user_id", userID).
		Str("id", m.ID).
		Msg("resource created")
	return created, nil
}

// Update stores new field values under id. An id that is not a UUID cannot
// name any record and is reported as not found.
func (s *resourceService[P]) Update(ctx context.Context, userID int64, id string, record P) (P, error) {
	if !utils.IsValidUUID(id) {
		return record, fmt.Errorf("%w: %s id %q", store.ErrRecordNotFound, s.name, id)
	}
	if err := s.validator.Validate(ctx, record); err != nil {
		return record, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	m := s.meta(&record)
	*m = models.RemoteMeta{ID: id}

	return s.repo.Update(ctx, userID, record)
}

func (s *resourceService[P]) Delete(ctx context.Context, userID int64, id string) error {
	if !utils.IsValidUUID(id) {
		return fmt.Errorf("%w: %s id %q", store.ErrRecordNotFound, s.name, id)
	}
	return s.repo.Delete(ctx, userID, id)
}

func (s *resourceService[P]) ListChangedSince(ctx context.Context, userID int64, since time.Time) ([]P, error) {
	records, err := s.repo.ListChangedSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []P{}
	}
	return records, nil
}
