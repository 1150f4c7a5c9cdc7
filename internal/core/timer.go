package core

import "time"

// SimulationClock gates simulation advances to a target interval while
// polling on every display frame, so interval changes apply promptly and the
// advance rate never exceeds one per interval regardless of refresh rate.
//
// The clock holds at most one pending frame request. It is Idle when that
// request is zero and Scheduled otherwise.
type SimulationClock struct {
	sched    FrameScheduler
	advance  func()
	interval time.Duration

	last   time.Duration
	primed bool
	frame  FrameID
}

// NewSimulationClock constructs an idle clock that calls advance at most once
// per interval while running.
func NewSimulationClock(sched FrameScheduler, interval time.Duration, advance func()) *SimulationClock {
	if interval <= 0 {
		interval = time.Second
	}
	return &SimulationClock{sched: sched, advance: advance, interval: interval}
}

// SetInterval changes the minimum time between advances. It is read on the
// next frame callback.
func (c *SimulationClock) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.interval = d
}

// Interval returns the current minimum time between advances.
func (c *SimulationClock) Interval() time.Duration { return c.interval }

// Running reports whether a frame callback is scheduled.
func (c *SimulationClock) Running() bool { return c.frame != 0 }

// Frame returns the outstanding frame request, or zero when idle.
func (c *SimulationClock) Frame() FrameID { return c.frame }

// Start schedules the first frame. The first callback after Start always
// advances. Start on a running clock is a no-op and returns false.
func (c *SimulationClock) Start() bool {
	if c.frame != 0 {
		return false
	}
	c.primed = false
	c.frame = c.sched.RequestFrame(c.onFrame)
	return true
}

// Stop cancels the pending frame. Stop on an idle clock is a no-op and
// returns false.
func (c *SimulationClock) Stop() bool {
	if c.frame == 0 {
		return false
	}
	c.sched.CancelFrame(c.frame)
	c.frame = 0
	return true
}

func (c *SimulationClock) onFrame(now time.Duration) {
	fired := c.frame
	if !c.primed || now-c.last >= c.interval {
		c.primed = true
		c.last = now
		if c.advance != nil {
			c.advance()
		}
	}
	// advance may have stopped or restarted the clock
	if c.frame != fired {
		return
	}
	c.frame = c.sched.RequestFrame(c.onFrame)
}
