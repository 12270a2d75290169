package engine

import (
	"context"
	"math"
	"sync"
	"time"
)

// DefaultQuota is the published Congress.gov limit of 1000 requests per
// hour, expressed in requests per second.
const DefaultQuota = 1000.0 / 3600.0

// Throttle keeps the long-run request pace at or below a fixed quota.
// Rather than sleeping a fixed interval per request, it compares the
// observed pace since the first recorded attempt against the quota and
// only delays callers that are ahead of it, so bursts are allowed as
// long as the average stays within budget.
//
// State is shared: every client wired to the same Throttle observes the
// same epoch and counter. Construct one per process (or use Shared).
type Throttle struct {
	// Quota is the pace ceiling in requests per second. Zero or
	// negative disables delay computation entirely.
	Quota float64

	// Clock returns the current time. Defaults to time.Now. Tests
	// inject a fake.
	Clock func() time.Time

	// Sleep blocks for the computed delay. Defaults to a context-aware
	// timer wait. Tests inject a recorder.
	Sleep func(ctx context.Context, d time.Duration) error

	mu    sync.Mutex
	epoch time.Time
	count int64
}

// Snapshot is a point-in-time view of the throttle state.
type Snapshot struct {
	Quota        float64       `json:"quota"`
	Epoch        time.Time     `json:"epoch,omitempty"`
	Count        int64         `json:"count"`
	Elapsed      time.Duration `json:"elapsed"`
	ObservedRate float64       `json:"observed_rate"`
	NextDelay    time.Duration `json:"next_delay"`
}

// New returns a Throttle with the given quota in requests per second.
func New(quota float64) *Throttle {
	return &Throttle{Quota: quota}
}

var shared = New(DefaultQuota)

// Shared returns the process-wide throttle used by default. All clients
// that do not inject their own Throttle pace against this one.
func Shared() *Throttle {
	return shared
}

// Record registers one HTTP attempt. The very first recorded attempt in
// the life of the Throttle fixes the epoch.
//
// Record is called for every attempt: retries, and calls that skipped
// Wait because throttling was not requested. Un-throttled bursts
// therefore advance the counter and inflate the delay computed for
// later throttled calls. Callers opting out of throttling must
// understand that trade-off; it mirrors the published quota, which
// counts every request regardless of how the client paced it.
func (t *Throttle) Record() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.epoch.IsZero() {
		t.epoch = t.now()
	}
	t.count++
}

// Wait blocks the caller until issuing one more request would keep the
// observed pace under the quota. It must be called before the attempt
// is issued. The first request ever is never delayed. A cancelled
// context aborts the wait and the caller must not issue (or Record)
// the attempt.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	delay := t.pendingDelay()
	if delay <= 0 {
		return nil
	}

	sleep := t.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	return sleep(ctx, delay)
}

// Snapshot reports the current shared state without mutating it.
func (t *Throttle) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{Quota: t.Quota, Epoch: t.epoch, Count: t.count}
	if t.epoch.IsZero() {
		return snap
	}

	snap.Elapsed = t.now().Sub(t.epoch)
	if snap.Elapsed > 0 {
		snap.ObservedRate = float64(t.count) / snap.Elapsed.Seconds()
	}
	snap.NextDelay = t.delayLocked(snap.Elapsed)
	return snap
}

// pendingDelay computes how long the caller must wait, or zero.
func (t *Throttle) pendingDelay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.epoch.IsZero() || t.count == 0 || t.Quota <= 0 {
		return 0
	}
	return t.delayLocked(t.now().Sub(t.epoch))
}

// delayLocked applies the pace check: if count/elapsed has reached the
// quota, the next attempt is due no earlier than (count+1)/quota after
// the epoch. Caller holds mu.
func (t *Throttle) delayLocked(elapsed time.Duration) time.Duration {
	if t.Quota <= 0 || t.count == 0 {
		return 0
	}

	elapsedSec := elapsed.Seconds()
	if elapsedSec > 0 && float64(t.count)/elapsedSec < t.Quota {
		return 0
	}

	delaySec := float64(t.count+1)/t.Quota - elapsedSec
	if delaySec <= 0 || math.IsInf(delaySec, 0) || math.IsNaN(delaySec) {
		return 0
	}
	return time.Duration(delaySec * float64(time.Second))
}

func (t *Throttle) now() time.Time {
	if t != nil && t.Clock != nil {
		return t.Clock()
	}
	return time.Now().UTC()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
