// Package clock provides the timing sources of the game loop: a frame delta
// timer and a fixed-cadence tick source. Both read time from a Clock so the
// loop can be driven by a fake clock in tests.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock. Values carry a monotonic reading, so
// differences between them never go backwards.
func System() Clock {
	return systemClock{}
}

// FrameTimer measures the time between consecutive frames.
type FrameTimer struct {
	last time.Time
}

// NewFrameTimer starts measuring from start.
func NewFrameTimer(start time.Time) *FrameTimer {
	return &FrameTimer{last: start}
}

// Delta returns the seconds elapsed since the previous call (or since the
// timer was created) and moves the reference point to now.
func (f *FrameTimer) Delta(now time.Time) float64 {
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// FixedTicker raises ticks at a constant interval, independent of the frame
// rate. It is sampled once per frame with Due.
type FixedTicker struct {
	interval time.Duration
	maxDue   int
	last     time.Time
	acc      time.Duration
}

// NewFixedTicker creates a ticker firing every interval starting at start.
// At most maxDue ticks are reported per call; maxDue <= 0 means no limit.
func NewFixedTicker(interval time.Duration, maxDue int, start time.Time) *FixedTicker {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &FixedTicker{
		interval: interval,
		maxDue:   maxDue,
		last:     start,
	}
}

// Interval returns the tick period.
func (t *FixedTicker) Interval() time.Duration {
	return t.interval
}

// Due returns how many ticks elapsed since the previous call.
// Ticks beyond the catch-up limit are dropped, not carried over.
func (t *FixedTicker) Due(now time.Time) int {
	if d := now.Sub(t.last); d > 0 {
		t.acc += d
	}
	t.last = now

	n := int(t.acc / t.interval)
	t.acc -= time.Duration(n) * t.interval

	if t.maxDue > 0 && n > t.maxDue {
		n = t.maxDue
	}
	return n
}
