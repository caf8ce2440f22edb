// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Policy decides what happens when work is enqueued under a name that is
// already scheduled.
type Policy int

const (
	// KeepExisting leaves the scheduled job alone and drops the new request.
	KeepExisting Policy = iota
	// ReplaceExisting cancels the scheduled job unless it is already
	// running, then schedules the new request.
	ReplaceExisting
)

// Constraints gate a run. Unmet constraints skip a periodic tick and
// postpone a one-off run.
type Constraints struct {
	RequiresNetwork bool
	RequiresIdle    bool
}

const defaultRecheckInterval = 30 * time.Second

type job struct {
	name   string
	cancel context.CancelFunc

	mu      sync.Mutex
	running bool
	retired bool
}

// Scheduler runs one [Task] on periodic and one-off triggers. At most one
// run is active at a time; a run that returns [models.SyncRetry] is
// retried with capped exponential backoff until the retry budget is spent.
type Scheduler struct {
	task    Task
	network NetworkMonitor
	idle    IdleDetector

	backoffMin time.Duration
	backoffMax time.Duration
	maxRetries uint64
	recheck    time.Duration

	slot chan struct{}

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	jobs   map[string]*job
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewScheduler creates a Scheduler for task. It is idle until Start is
// called. network and idle may be nil, in which case the matching
// constraint is always met.
func NewScheduler(task Task, network NetworkMonitor, idle IdleDetector, cfg config.ClientWorkers, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		task:       task,
		network:    network,
		idle:       idle,
		backoffMin: cfg.BackoffMin,
		backoffMax: cfg.BackoffMax,
		maxRetries: cfg.MaxRetries,
		recheck:    defaultRecheckInterval,
		slot:       make(chan struct{}, 1),
		logger:     logger,
	}
}

// Start implements [Worker]. Jobs run until ctx is cancelled or Stop is
// called. Starting a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.jobs = make(map[string]*job)
}

// Stop implements [Worker]. It cancels every scheduled job, including a run
// in progress, and waits for all job goroutines to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.ctx, s.cancel, s.jobs = nil, nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// EnqueuePeriodic runs the task every interval while the constraints hold.
func (s *Scheduler) EnqueuePeriodic(name string, interval time.Duration, constraints Constraints, policy Policy) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	return s.enqueue(name, policy, func(ctx context.Context, j *job) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			if !s.constraintsMet(ctx, constraints) {
				s.logger.Debug().
					Str("func", "*Scheduler.EnqueuePeriodic").
					Str("job", name).
					Msg("constraints not met, tick skipped")
				continue
			}
			if !s.runJob(ctx, j) {
				return
			}
		}
	})
}

// EnqueueOneOff runs the task once after delay. While the constraints do
// not hold the run is postponed and re-checked periodically.
func (s *Scheduler) EnqueueOneOff(name string, delay time.Duration, constraints Constraints, policy Policy) error {
	return s.enqueue(name, policy, func(ctx context.Context, j *job) {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		for !s.constraintsMet(ctx, constraints) {
			s.logger.Debug().
				Str("func", "*Scheduler.EnqueueOneOff").
				Str("job", name).
				Dur("recheck", s.recheck).
				Msg("constraints not met, run postponed")

			select {
			case <-ctx.Done():
				return
			case <-time.After(s.recheck):
			}
		}

		s.runJob(ctx, j)
	})
}

func (s *Scheduler) enqueue(name string, policy Policy, loop func(ctx context.Context, j *job)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == nil {
		return ErrSchedulerStopped
	}

	if existing, ok := s.jobs[name]; ok {
		if policy == KeepExisting {
			s.logger.Debug().
				Str("func", "*Scheduler.enqueue").
				Str("job", name).
				Msg("job already scheduled, request dropped")
			return nil
		}
		existing.retire()
	}

	ctx, cancel := context.WithCancel(s.ctx)
	j := &job{name: name, cancel: cancel}
	s.jobs[name] = j

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release(j)
		loop(ctx, j)
	}()

	return nil
}

// retire stops j from starting new runs. A job that is not running is
// cancelled at once; a running one finishes its current run.
func (j *job) retire() {
	j.mu.Lock()
	j.retired = true
	running := j.running
	j.mu.Unlock()

	if !running {
		j.cancel()
	}
}

func (s *Scheduler) release(j *job) {
	j.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.jobs[j.name] == j {
		delete(s.jobs, j.name)
	}
}

// runJob waits for the run slot and executes the task on behalf of j. It
// reports false when j was retired and must stop.
func (s *Scheduler) runJob(ctx context.Context, j *job) bool {
	select {
	case <-ctx.Done():
		return false
	case s.slot <- struct{}{}:
	}
	defer func() { <-s.slot }()

	j.mu.Lock()
	if j.retired {
		j.mu.Unlock()
		return false
	}
	j.running = true
	j.mu.Unlock()

	s.execute(ctx, j.name)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.running = false
	return !j.retired
}

// execute runs the task, retrying Retry results with backoff. Exhausting
// the budget, a Failure result or cancellation yields Failure.
func (s *Scheduler) execute(ctx context.Context, name string) models.SyncResult {
	backoff := retry.NewExponential(s.backoffMin)
	backoff = retry.WithCappedDuration(s.backoffMax, backoff)
	backoff = retry.WithMaxRetries(s.maxRetries, backoff)

	attempts := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		switch s.task.Run(ctx) {
		case models.SyncSuccess:
			return nil
		case models.SyncRetry:
			return retry.RetryableError(errTaskRetry)
		default:
			return errTaskFailed
		}
	})

	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "*Scheduler.execute").
			Str("job", name).
			Int("attempts", attempts).
			Msg("run failed")
		return models.SyncFailure
	}

	s.logger.Info().
		Str("func", "*Scheduler.execute").
		Str("job", name).
		Int("attempts", attempts).
		Msg("run succeeded")
	return models.SyncSuccess
}

func (s *Scheduler) constraintsMet(ctx context.Context, c Constraints) bool {
	if c.RequiresNetwork && s.network != nil && !s.network.IsAvailable(ctx) {
		return false
	}
	if c.RequiresIdle && s.idle != nil && !s.idle.IsIdle() {
		return false
	}
	return true
}
