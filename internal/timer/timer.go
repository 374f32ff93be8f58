// Package timer implements the countdown window for timed recording
// questions. The countdown is wall-clock based: a Countdown stores the
// expiry instant at start, and Remaining is a pure function of the current
// time, so irregular polling never causes drift.
package timer

import "time"

// Countdown is a single countdown window. Its fields are fixed at start,
// so it is safe to query from a display-refresh loop at any frequency.
type Countdown struct {
	duration time.Duration
	expiry   time.Time
	now      func() time.Time
}

// Start begins a countdown of the given duration from the current time.
func Start(d time.Duration) *Countdown {
	return StartWithClock(d, time.Now)
}

// StartWithClock begins a countdown using the provided clock. Tests inject
// a fake clock to control the passage of time.
func StartWithClock(d time.Duration, now func() time.Time) *Countdown {
	return &Countdown{
		duration: d,
		expiry:   now().Add(d),
		now:      now,
	}
}

// Duration returns the full window length.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}

// Remaining returns the time left in the window, floored at zero.
func (c *Countdown) Remaining() time.Duration {
	r := c.expiry.Sub(c.now())
	if r < 0 {
		return 0
	}
	return r
}

// RemainingSeconds returns Remaining rounded up to whole seconds, matching
// what a countdown display shows.
func (c *Countdown) RemainingSeconds() int {
	r := c.Remaining()
	if r == 0 {
		return 0
	}
	secs := int((r + time.Second - 1) / time.Second)
	return secs
}

// Expired reports whether the window has elapsed. Expiry forces nothing:
// submitting notes is allowed before and after.
func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}
