// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RemoteOperations replays local changes of one entity type against the
// server. Create returns the server id assigned to the record.
type RemoteOperations[T models.Syncable] interface {
	Create(ctx context.Context, record T) (string, error)
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, record T) error
}

// RemoteSource lists server records of one entity type changed since a
// watermark. [adapter.Resource] satisfies it.
type RemoteSource[P models.RemoteRecord] interface {
	ListChangedSince(ctx context.Context, since time.Time) ([]P, error)
}

// RecordDecoder converts a server payload into a local entity, translating
// parent server ids into local ids.
type RecordDecoder[T models.Syncable, P models.RemoteRecord] interface {
	Decode(ctx context.Context, remote P) (T, error)
}

// EntitySync is the push and pull pipeline of one entity type.
type EntitySync interface {
	Entity() models.EntityType
	Push(ctx context.Context) (models.PushStats, error)
	Pull(ctx context.Context, since time.Time) (models.PullStats, error)
}

// TombstoneCleaner purges tombstones acknowledged by the server.
type TombstoneCleaner interface {
	PurgeAcknowledgedTombstones(ctx context.Context) (int64, error)
}

// ChangeNotifier is told about every local mutation. It feeds idle
// detection and requests an on-demand sync.
type ChangeNotifier interface {
	MarkActivity()
	RequestSync()
}

// IDGenerator issues server ids.
type IDGenerator interface {
	Generate() string
}

// ResourceService is the server-side use case of one resource family.
// Every call is scoped to userID.
type ResourceService[P models.RemoteRecord] interface {
	Create(ctx context.Context, userID int64, record P) (P, error)
	Update(ctx context.Context, userID int64, id string, record P) (P, error)
	Delete(ctx context.Context, userID int64, id string) error
	ListChangedSince(ctx context.Context, userID int64, since time.Time) ([]P, error)
}
