package models

import "time"

// SyncResult is the coarse outcome reported to the scheduler.
type SyncResult int

const (
	// SyncSuccess means every step of the run completed.
	SyncSuccess SyncResult = iota
	// SyncRetry asks the scheduler to run again later with backoff.
	SyncRetry
	// SyncFailure means the scheduler gave up on the current request.
	SyncFailure
)

func (r SyncResult) String() string {
	switch r {
	case SyncSuccess:
		return "success"
	case SyncRetry:
		return "retry"
	case SyncFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// SyncState is the orchestrator state machine position.
type SyncState int32

const (
	SyncIdle SyncState = iota
	SyncPushing
	SyncPulling
	SyncCleaningUp
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncPushing:
		return "pushing"
	case SyncPulling:
		return "pulling"
	case SyncCleaningUp:
		return "cleaning_up"
	default:
		return "unknown"
	}
}

// PushStats counts what one push pass did for a single entity type.
type PushStats struct {
	Created int
	Updated int
	Deleted int
	// Purged counts local-only tombstones removed without a remote call and
	// orphans dropped because their parent is gone.
	Purged int
}

// Total returns the number of records the pass handled.
func (s PushStats) Total() int {
	return s.Created + s.Updated + s.Deleted + s.Purged
}

// PullStats counts what one pull pass did for a single entity type.
type PullStats struct {
	Saved   int
	Purged  int
	Skipped int
	// Deferred counts live records whose parent is not stored locally. They
	// are fetched again by the next pass.
	Deferred int
	// Watermark is the greatest remote UpdatedAt seen in the pass, held back
	// to the earliest deferred record.
	Watermark time.Time
}

// SyncReport summarises a full orchestrator run.
type SyncReport struct {
	StartedAt        time.Time
	FinishedAt       time.Time
	Push             map[EntityType]PushStats
	Pull             map[EntityType]PullStats
	TombstonesPurged int64
}

// NewSyncReport returns a report with initialised maps.
func NewSyncReport(startedAt time.Time) SyncReport {
	return SyncReport{
		StartedAt: startedAt,
		Push:      make(map[EntityType]PushStats, len(PushOrder)),
		Pull:      make(map[EntityType]PullStats, len(PushOrder)),
	}
}
