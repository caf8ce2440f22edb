// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync/atomic"
	"time"
)

// ActivityTracker implements [IdleDetector] from local mutations: the user
// is idle once idleAfter has passed since the last MarkActivity. A tracker
// that never saw activity is idle.
type ActivityTracker struct {
	idleAfter time.Duration
	last      atomic.Int64

	now func() time.Time
}

func NewActivityTracker(idleAfter time.Duration) *ActivityTracker {
	return &ActivityTracker{idleAfter: idleAfter, now: time.Now}
}

func (a *ActivityTracker) MarkActivity() {
	a.last.Store(a.now().UnixNano())
}

func (a *ActivityTracker) IsIdle() bool {
	last := a.last.Load()
	if last == 0 {
		return true
	}
	return a.now().Sub(time.Unix(0, last)) >= a.idleAfter
}
