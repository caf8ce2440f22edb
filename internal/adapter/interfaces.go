// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync engine and
// the ledger server.
//
// The primary abstraction is [ServerAdapter], which exposes one [Resource]
// per synchronizable entity family. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the ledger server. Implementations
// are responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping checks that the server answers its health endpoint.
	Ping(ctx context.Context) error

	Books() Resource[models.RemoteBook]
	Wallets() Resource[models.RemoteWallet]
	Categories() Resource[models.RemoteCategory]
	Transactions() Resource[models.RemoteTransaction]
}

// Resource is one REST resource family on the server.
type Resource[P models.RemoteRecord] interface {
	// Create POSTs payload and returns the server id assigned to it.
	Create(ctx context.Context, payload P) (string, error)

	// Update PUTs payload under the given server id.
	Update(ctx context.Context, serverID string, payload P) error

	// Delete removes the record with the given server id.
	Delete(ctx context.Context, serverID string) error

	// ListChangedSince returns every record, tombstones included, whose
	// server-side updatedAt is not before since. A zero since lists all.
	ListChangedSince(ctx context.Context, since time.Time) ([]P, error)
}

// ConnectivityChecker reports whether a usable path to the server exists.
type ConnectivityChecker interface {
	IsAvailable(ctx context.Context) bool
}
