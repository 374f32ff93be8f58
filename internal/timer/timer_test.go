package timer

import (
	"testing"
	"time"
)

// fakeClock returns a clock function and an advance function.
func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	current := start
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

func TestRemaining_Idempotent(t *testing.T) {
	now, _ := fakeClock(time.Unix(1000, 0))
	c := StartWithClock(60*time.Second, now)

	first := c.Remaining()
	for i := 0; i < 5; i++ {
		if got := c.Remaining(); got != first {
			t.Fatalf("Remaining changed without time passing: %v != %v", got, first)
		}
	}
	if first != 60*time.Second {
		t.Errorf("Remaining = %v, want 60s", first)
	}
}

func TestRemaining_MonotonicDecrease(t *testing.T) {
	now, advance := fakeClock(time.Unix(1000, 0))
	c := StartWithClock(60*time.Second, now)

	prev := c.Remaining()
	for i := 0; i < 10; i++ {
		advance(7 * time.Second)
		got := c.Remaining()
		if got > prev {
			t.Fatalf("Remaining increased: %v after %v", got, prev)
		}
		prev = got
	}
}

func TestRemaining_FloorsAtZero(t *testing.T) {
	now, advance := fakeClock(time.Unix(1000, 0))
	c := StartWithClock(10*time.Second, now)

	advance(25 * time.Second)
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining = %v, want 0", got)
	}
	if got := c.RemainingSeconds(); got != 0 {
		t.Errorf("RemainingSeconds = %d, want 0", got)
	}
	if !c.Expired() {
		t.Error("Expired = false after window elapsed")
	}
}

func TestRemainingSeconds_RoundsUp(t *testing.T) {
	now, advance := fakeClock(time.Unix(1000, 0))
	c := StartWithClock(60*time.Second, now)

	advance(500 * time.Millisecond)
	if got := c.RemainingSeconds(); got != 60 {
		t.Errorf("RemainingSeconds = %d, want 60 (partial second still counts)", got)
	}

	advance(1 * time.Second)
	if got := c.RemainingSeconds(); got != 59 {
		t.Errorf("RemainingSeconds = %d, want 59", got)
	}
}

func TestExpired_NotBeforeWindowEnds(t *testing.T) {
	now, advance := fakeClock(time.Unix(1000, 0))
	c := StartWithClock(60*time.Second, now)

	advance(59 * time.Second)
	if c.Expired() {
		t.Error("Expired = true with time remaining")
	}
	advance(time.Second)
	if !c.Expired() {
		t.Error("Expired = false at expiry instant")
	}
}
