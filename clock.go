package pulse

import (
	"sync"
	"time"
)

// Clock supplies timestamps for scheduling decisions.
//
// The cycle driver reads the clock exactly once per cycle and shares the
// value with every widget consulted during that cycle, so no two widgets
// observe different now values in the same pass. Implementations must be
// monotonic: Now must never return a value earlier than a previous one
// within the process lifetime. A regression is surfaced by the driver as a
// [ClockRegressionError].
type Clock interface {
	Now() time.Time
}

// SystemClock returns the process clock. Readings carry Go's monotonic
// component, so comparisons are immune to wall-clock adjustments.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock advanced explicitly by the caller. Intended for
// tests and headless cycle driving.
//
// ManualClock is safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a manual clock starting at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new instant.
// Negative d is ignored; the clock never moves backwards.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}

// Set moves the clock to t if t is not earlier than the current instant.
// Earlier instants are ignored to preserve monotonicity.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.now) {
		c.now = t
	}
}
