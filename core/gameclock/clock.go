package gameclock

import "time"

// Clock derives a pausable "game time" from a monotonic wall source.
// While running, game time advances at wall rate minus all time ever
// spent paused; while paused it is frozen at the value it had when the
// pause began. Game time never decreases.
type Clock struct {
	nowFn func() time.Time
	start time.Time

	pausedAccum   time.Duration
	paused        bool
	pauseStartRaw time.Duration
	frozen        time.Duration
}

// New creates a running clock starting at game time zero.
func New() *Clock {
	return NewWithNow(time.Now)
}

// NewWithNow creates a clock over an injectable wall source, used by
// tests to step time deterministically.
func NewWithNow(nowFn func() time.Time) *Clock {
	return &Clock{nowFn: nowFn, start: nowFn()}
}

// raw is the monotonic elapsed time since construction. It never resets.
func (c *Clock) raw() time.Duration {
	return c.nowFn().Sub(c.start)
}

// Now returns the current game time.
func (c *Clock) Now() time.Duration {
	if c.paused {
		return c.frozen
	}
	return c.raw() - c.pausedAccum
}

// IsPaused reports whether the clock is currently paused.
func (c *Clock) IsPaused() bool {
	return c.paused
}

// Pause freezes game time. Pausing an already paused clock is a no-op.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	r := c.raw()
	c.pauseStartRaw = r
	c.frozen = r - c.pausedAccum
	c.paused = true
}

// Resume unfreezes game time exactly where Pause left it. Resuming a
// running clock is a no-op.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedAccum += c.raw() - c.pauseStartRaw
	c.paused = false
}
