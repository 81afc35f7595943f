// Package animations steps looping frame clocks.
package animations

// Cycle loops over Frames frame indices, moving on every TicksPerFrame
// ticks.
type Cycle struct {
	Frames        int
	TicksPerFrame int
	Looped        bool

	counter int
	frame   int
}

func NewCycle(frames, ticksPerFrame int) *Cycle {
	if frames < 1 {
		frames = 1
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Cycle{
		Frames:        frames,
		TicksPerFrame: ticksPerFrame,
	}
}

func (c *Cycle) Update() {
	c.counter++
	if c.counter < c.TicksPerFrame {
		return
	}
	c.counter = 0
	c.frame++
	if c.frame >= c.Frames {
		c.Looped = true
		c.frame = 0
	}
}

func (c *Cycle) Frame() int {
	return c.frame
}

// FrameAt is the current frame shifted by phase, so entities sharing one
// clock do not all beat their tails in step.
func (c *Cycle) FrameAt(phase uint64) int {
	return int((uint64(c.frame) + phase) % uint64(c.Frames))
}

func (c *Cycle) Restart() {
	c.frame = 0
	c.counter = 0
	c.Looped = false
}
