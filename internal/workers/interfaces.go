// Package workers runs the client's background sync.
//
// A [Scheduler] executes a single [Task] on periodic and one-off triggers,
// gates each run on [Constraints], allows only one active run and retries
// runs that ask for it with capped exponential backoff. [Workers] starts and
// stops a group of background workers as a unit.
package workers

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Worker is a background component with an explicit lifecycle.
//
// Start must not block; Stop cancels outstanding work and waits for every
// goroutine started by the worker to exit.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Task is the unit of work run by the [Scheduler].
type Task interface {
	Run(ctx context.Context) models.SyncResult
}

// NetworkMonitor reports whether a usable network path is available.
type NetworkMonitor interface {
	IsAvailable(ctx context.Context) bool
}

// IdleDetector reports whether the user is currently idle.
type IdleDetector interface {
	IsIdle() bool
}
