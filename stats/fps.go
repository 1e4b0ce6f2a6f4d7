package stats

import "time"

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

// FPSCounter computes frames per second over one-second windows.
type FPSCounter struct {
	now     Clock
	last    time.Time
	elapsed time.Duration
	frames  int
	fps     float64
}

// NewFPSCounter creates a counter. A nil clock uses time.Now.
func NewFPSCounter(now Clock) *FPSCounter {
	if now == nil {
		now = time.Now
	}
	return &FPSCounter{now: now, last: now()}
}

// Tick marks the end of a frame and returns the time since the previous
// tick in seconds. FPS is recomputed once a second has accumulated.
func (c *FPSCounter) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last)
	c.last = t

	c.frames++
	c.elapsed += dt
	if c.elapsed >= time.Second {
		c.fps = float64(c.frames) / c.elapsed.Seconds()
		c.frames = 0
		c.elapsed = 0
	}
	return dt.Seconds()
}

// FPS returns the rate of the last completed window, 0 before the first.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

// Reset starts a new window from now.
func (c *FPSCounter) Reset() {
	c.last = c.now()
	c.elapsed = 0
	c.frames = 0
	c.fps = 0
}
