package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// scriptedTask returns the scripted results in order, then its fallback.
// A non-nil gate blocks every run until it is closed.
type scriptedTask struct {
	mu       sync.Mutex
	script   []models.SyncResult
	fallback models.SyncResult
	gate     chan struct{}

	calls   atomic.Int32
	active  atomic.Int32
	maxSeen atomic.Int32
}

func (t *scriptedTask) Run(ctx context.Context) models.SyncResult {
	t.calls.Add(1)
	n := t.active.Add(1)
	defer t.active.Add(-1)
	for {
		seen := t.maxSeen.Load()
		if n <= seen || t.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	if t.gate != nil {
		select {
		case <-t.gate:
		case <-ctx.Done():
			return models.SyncRetry
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.script) == 0 {
		return t.fallback
	}
	result := t.script[0]
	t.script = t.script[1:]
	return result
}

type switchableNetwork struct {
	up atomic.Bool
}

func (n *switchableNetwork) IsAvailable(context.Context) bool { return n.up.Load() }

type fixedIdle bool

func (f fixedIdle) IsIdle() bool { return bool(f) }

func testWorkersConfig() config.ClientWorkers {
	return config.ClientWorkers{
		SyncInterval:  time.Hour,
		OnDemandDelay: time.Millisecond,
		IdleAfter:     time.Minute,
		BackoffMin:    time.Millisecond,
		BackoffMax:    5 * time.Millisecond,
		MaxRetries:    3,
	}
}

func newTestScheduler(task Task, network NetworkMonitor, idle IdleDetector) *Scheduler {
	s := NewScheduler(task, network, idle, testWorkersConfig(), logger.Nop())
	s.recheck = 5 * time.Millisecond
	return s
}

func (s *Scheduler) jobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}
