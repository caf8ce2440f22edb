package workers

import "errors"

var (
	// ErrSchedulerStopped is returned when work is enqueued on a scheduler
	// that is not running.
	ErrSchedulerStopped = errors.New("scheduler is not running")
	// ErrInvalidInterval is returned for a non-positive periodic interval.
	ErrInvalidInterval = errors.New("periodic interval must be positive")

	errTaskRetry  = errors.New("task asked to be retried")
	errTaskFailed = errors.New("task failed")
)
