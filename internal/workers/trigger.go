package workers

import (
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

const (
	// PeriodicSyncJob names the recurring background sync.
	PeriodicSyncJob = "periodic-sync"
	// OnDemandSyncJob names the sync requested after local edits.
	OnDemandSyncJob = "on-demand-sync"
)

// SyncTrigger turns local mutations into scheduler requests: every mutation
// marks activity and asks for an on-demand sync after a short delay, so a
// burst of edits collapses into one run.
type SyncTrigger struct {
	scheduler *Scheduler
	activity  *ActivityTracker
	delay     time.Duration
	logger    *logger.Logger
}

func NewSyncTrigger(scheduler *Scheduler, activity *ActivityTracker, delay time.Duration, logger *logger.Logger) *SyncTrigger {
	return &SyncTrigger{scheduler: scheduler, activity: activity, delay: delay, logger: logger}
}

func (t *SyncTrigger) MarkActivity() {
	t.activity.MarkActivity()
}

// RequestSync replaces a pending on-demand run that has not started yet.
func (t *SyncTrigger) RequestSync() {
	err := t.scheduler.EnqueueOneOff(OnDemandSyncJob, t.delay, Constraints{RequiresNetwork: true}, ReplaceExisting)
	if err != nil {
		t.logger.Warn().Err(err).
			Str("func", "*SyncTrigger.RequestSync").
			Msg("on-demand sync not scheduled")
	}
}

// SchedulePeriodic registers the recurring sync, gated on network and idle.
func (t *SyncTrigger) SchedulePeriodic(interval time.Duration) error {
	return t.scheduler.EnqueuePeriodic(PeriodicSyncJob, interval,
		Constraints{RequiresNetwork: true, RequiresIdle: true}, KeepExisting)
}
