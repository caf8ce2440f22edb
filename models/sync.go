// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// SyncAction is the pending operation that still has to be replayed against
// the server for a local record. The empty value means nothing is pending.
type SyncAction string

const (
	// SyncActionNone marks a record with no pending remote operation.
	SyncActionNone SyncAction = ""

	// SyncActionCreate marks a record that has never been acknowledged by the
	// server and must be POSTed.
	SyncActionCreate SyncAction = "CREATE"

	// SyncActionUpdate marks a record that exists on the server and carries
	// local edits that must be PUT.
	SyncActionUpdate SyncAction = "UPDATE"

	// SyncActionDelete marks a local tombstone that must be DELETEd remotely
	// before it can be purged.
	SyncActionDelete SyncAction = "DELETE"
)

// Errors returned by [SyncMeta.Validate] when the sync metadata of a record
// violates one of the record invariants.
var (
	ErrSyncedWithPendingAction = errors.New("record without pending action must be synced")
	ErrDeletedWithWrongAction  = errors.New("deleted record may only carry DELETE or no action")
	ErrUnknownSyncAction       = errors.New("unknown sync action")
)

// SyncMeta holds the synchronization metadata shared by every local entity.
// It is embedded into [Book], [Wallet], [Category] and [Transaction], which
// makes pointers to those types satisfy [Syncable].
type SyncMeta struct {
	// LocalID is the row identifier in the local table. It is assigned on
	// local creation and never sent to the server as the record identity.
	LocalID int64 `json:"-"`

	// ServerID is the opaque identifier assigned by the server. An empty
	// string means the record has never been created remotely.
	ServerID string `json:"-"`

	// IsSynced is true only right after a successful round-trip with no
	// pending local change.
	IsSynced bool `json:"-"`

	// IsDeleted is the soft-delete flag: the record is queued for remote
	// deletion or its deletion was already confirmed.
	IsDeleted bool `json:"-"`

	// SyncAction is the operation to replay against the server.
	SyncAction SyncAction `json:"-"`

	// LastSyncAt is the time of the last successful reconciliation touching
	// this record, nil if it was never reconciled.
	LastSyncAt *time.Time `json:"-"`

	// UpdatedAt is the time of the last local or remote mutation and the
	// basis for last-write-wins conflict resolution.
	UpdatedAt time.Time `json:"-"`
}

// Meta returns the receiver itself. Because SyncMeta is embedded by value,
// the method is promoted to pointers of the embedding entity types.
func (m *SyncMeta) Meta() *SyncMeta {
	return m
}

// HasServerID reports whether the record was ever acknowledged by the server.
func (m *SyncMeta) HasServerID() bool {
	return m.ServerID != ""
}

// Validate checks the record invariants:
//   - no pending action implies the record is synced;
//   - a deleted record carries DELETE or no action.
func (m *SyncMeta) Validate() error {
	switch m.SyncAction {
	case SyncActionNone, SyncActionCreate, SyncActionUpdate, SyncActionDelete:
	default:
		return ErrUnknownSyncAction
	}
	if m.SyncAction == SyncActionNone && !m.IsSynced {
		return ErrSyncedWithPendingAction
	}
	if m.IsDeleted && m.SyncAction != SyncActionDelete && m.SyncAction != SyncActionNone {
		return ErrDeletedWithWrongAction
	}
	return nil
}

// Syncable is implemented by every entity that takes part in push/pull
// reconciliation.
type Syncable interface {
	Meta() *SyncMeta
}

// EntityType names one family of synchronizable records. The value doubles
// as the key of the per-type watermark.
type EntityType string

const (
	EntityBook        EntityType = "book"
	EntityWallet      EntityType = "wallet"
	EntityCategory    EntityType = "category"
	EntityTransaction EntityType = "transaction"
)

// PushOrder is the fixed order in which entity types are pushed. It mirrors
// foreign-key dependencies so that parent server ids exist before children
// reference them.
var PushOrder = []EntityType{EntityBook, EntityWallet, EntityCategory, EntityTransaction}
