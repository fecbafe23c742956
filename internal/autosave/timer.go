// Package autosave provides the periodic tick that prompts the caller to
// persist the case being edited.
//
// The timer is deliberately plain: it fires at a fixed interval, has no
// backoff, and does not skip ticks while the callback is busy. It does not
// know which case is open; the callback decides what to save.
package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"safeairway/internal/logging"
)

// Defaults applied by New.
const (
	DefaultEnabled         = true
	DefaultIntervalMinutes = 5
)

// Timer emits auto-save ticks while enabled.
type Timer struct {
	mu      sync.Mutex
	enabled bool
	minutes int
	unit    time.Duration
	changed chan struct{}
	logger  *slog.Logger
}

// New returns an enabled timer with the default five minute interval.
func New(logger *slog.Logger) *Timer {
	return &Timer{
		enabled: DefaultEnabled,
		minutes: DefaultIntervalMinutes,
		unit:    time.Minute,
		changed: make(chan struct{}, 1),
		logger:  logging.NewComponentLogger(logger, "autosave"),
	}
}

// SetEnabled starts or stops ticking. A running Run loop picks up the change
// immediately.
func (t *Timer) SetEnabled(enabled bool) {
	t.mu.Lock()
	t.enabled = enabled
	t.mu.Unlock()
	t.notify()
}

// SetInterval changes the tick interval. Values below one minute are raised
// to one. The next tick is scheduled a full interval after the change.
func (t *Timer) SetInterval(minutes int) {
	if minutes < 1 {
		minutes = 1
	}
	t.mu.Lock()
	t.minutes = minutes
	t.mu.Unlock()
	t.notify()
}

// Enabled reports whether the timer is ticking.
func (t *Timer) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// Interval returns the tick interval in minutes.
func (t *Timer) Interval() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.minutes
}

func (t *Timer) notify() {
	select {
	case t.changed <- struct{}{}:
	default:
	}
}

func (t *Timer) state() (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled, time.Duration(t.minutes) * t.unit
}

// Run calls fn on every tick until ctx is cancelled. fn runs on the Run
// goroutine, so a slow fn delays the following tick rather than overlapping it.
func (t *Timer) Run(ctx context.Context, fn func(time.Time)) {
	for {
		enabled, interval := t.state()
		if !enabled {
			t.logger.Debug("autosave paused")
			select {
			case <-ctx.Done():
				return
			case <-t.changed:
				continue
			}
		}

		t.logger.Debug("autosave armed", logging.Duration("interval", interval))
		ticker := time.NewTicker(interval)
		restart := false
		for !restart {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-t.changed:
				restart = true
			case tick := <-ticker.C:
				fn(tick)
			}
		}
		ticker.Stop()
	}
}
