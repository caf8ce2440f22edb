package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ResourceRepository stores one resource family on the server. Every
// operation is scoped to the authenticated user.
type ResourceRepository[P models.RemoteRecord] interface {
	// Create stores record under its id and returns it with the server
	// updated_at.
	Create(ctx context.Context, userID int64, record P) (P, error)
	// Update rewrites the domain fields of an existing record.
	Update(ctx context.Context, userID int64, record P) (P, error)
	// Delete turns the record into a tombstone.
	Delete(ctx context.Context, userID int64, id string) error
	// ListChangedSince returns every record of the user, tombstones
	// included, with updated_at >= since. A zero since returns all.
	ListChangedSince(ctx context.Context, userID int64, since time.Time) ([]P, error)
}
