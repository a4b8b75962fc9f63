package testutil

import "time"

// FixedClock is a wall clock that only moves when told to.
//
// It stands in for time.Now wherever a default departure time is taken,
// so ETA output is reproducible in tests and golden files.
type FixedClock struct {
	now time.Time
}

// NewFixedClock creates a clock that reads t until advanced.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

// Now returns the current reading.
func (c *FixedClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d (backward if d is negative).
func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.now = t
}
