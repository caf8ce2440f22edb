package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrRecordDeleted       = errors.New("record is deleted")

	ErrNoConnectivity      = errors.New("server is not reachable")
	ErrSyncInProgress      = errors.New("sync is already running")
	ErrPushFailed          = errors.New("push failed")
	ErrPullFailed          = errors.New("pull failed")
	ErrCleanupFailed       = errors.New("tombstone cleanup failed")
	ErrInvalidRemoteRecord = errors.New("remote record has no id")

	// ErrParentNotSynced is returned while pushing a child whose parent has
	// no server id yet. The next pass retries it.
	ErrParentNotSynced = errors.New("parent record is not synced")

	// ErrParentNotFound is returned when a parent key resolves to no local
	// record, on either side of the sync.
	ErrParentNotFound = errors.New("parent record not found")
)
