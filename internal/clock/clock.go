// Package clock abstracts the time source so that rate estimation is
// deterministic under test. No other package reads wall-clock time directly.
package clock

import "time"

// Clock produces monotonically non-decreasing instants.
type Clock interface {
	Now() time.Time
}

// System reads the system clock. time.Time values from time.Now carry a
// monotonic reading, so differences between them are immune to wall-clock
// adjustments.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Manual is a hand-advanced clock for tests. It is not safe for concurrent
// use; advance it from the goroutine that owns it.
type Manual struct {
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d. d must be non-negative.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
