package animation

import (
	"fmt"
	"time"
)

// ChannelStatus reports whether a channel is moving.
type ChannelStatus int

const (
	// ChannelIdle means the channel is resting at its value.
	ChannelIdle ChannelStatus = iota
	// ChannelAnimating means the channel is converging on a target.
	ChannelAnimating
)

// String returns a human-readable representation of the status.
func (s ChannelStatus) String() string {
	switch s {
	case ChannelIdle:
		return "idle"
	case ChannelAnimating:
		return "animating"
	default:
		return fmt.Sprintf("ChannelStatus(%d)", int(s))
	}
}

// Channel is an animated scalar: a [Scalar] moved toward a target by a [Motion]
// on every frame.
//
// Calling AnimateTo while the channel is moving retargets it: the target is
// replaced, the current value and velocity carry over, and the completion
// callback of the earlier call is dropped. Set snaps without animating.
//
// Always call Dispose when done to stop the ticker and drop listeners.
type Channel struct {
	// Motion steps the channel. Changing it takes effect on the next frame.
	Motion Motion

	scalar       *Scalar
	ticker       *Ticker
	segment      Segment
	segmentStart time.Duration
	lastElapsed  time.Duration
	velocity     float64
	onSettle     func()
	generation   uint64
}

// NewChannel creates an idle channel at initial driven by motion.
func NewChannel(initial float64, motion Motion) *Channel {
	if motion == nil {
		motion = DefaultSpring()
	}
	return &Channel{
		Motion: motion,
		scalar: NewScalar(initial),
	}
}

// Value returns the current value.
func (c *Channel) Value() float64 {
	return c.scalar.Value()
}

// Velocity returns the current velocity in units per second.
func (c *Channel) Velocity() float64 {
	return c.velocity
}

// Target returns the value the channel is moving toward, or its value when idle.
func (c *Channel) Target() float64 {
	if c.IsAnimating() {
		return c.segment.Target
	}
	return c.scalar.Value()
}

// Status returns the current channel status.
func (c *Channel) Status() ChannelStatus {
	if c.IsAnimating() {
		return ChannelAnimating
	}
	return ChannelIdle
}

// IsAnimating returns true while the channel is converging on a target.
func (c *Channel) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Channel) AddListener(fn func()) func() {
	return c.scalar.AddListener(fn)
}

// ReadOnly returns a handle that cannot move the channel.
func (c *Channel) ReadOnly() ValueListenable {
	return c.scalar.ReadOnly()
}

// Set stops any animation and jumps to v. A pending completion callback is
// dropped.
func (c *Channel) Set(v float64) {
	c.halt()
	c.scalar.Set(v)
}

// Stop freezes the channel at its current value. A pending completion
// callback is dropped.
func (c *Channel) Stop() {
	c.halt()
}

// AnimateTo moves the channel toward target.
func (c *Channel) AnimateTo(target float64) {
	c.AnimateToThen(target, nil)
}

// AnimateToThen moves the channel toward target and calls done once it settles.
// If the channel is idle at target already, done runs immediately. done does
// not run if the animation is superseded by another AnimateTo, Set or Stop.
func (c *Channel) AnimateToThen(target float64, done func()) {
	c.generation++

	if !c.IsAnimating() && c.scalar.Value() == target {
		c.velocity = 0
		c.onSettle = nil
		if done != nil {
			done()
		}
		return
	}

	c.segment = Segment{From: c.scalar.Value(), Target: target}
	c.onSettle = done

	if c.IsAnimating() {
		c.segmentStart = c.lastElapsed
		return
	}

	c.segmentStart = 0
	c.lastElapsed = 0
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *Channel) tick(elapsed time.Duration) {
	dt := elapsed - c.lastElapsed
	c.lastElapsed = elapsed

	seg := c.segment
	seg.Elapsed = elapsed - c.segmentStart

	gen := c.generation
	next, velocity, settled := c.Motion.Step(seg, c.scalar.Value(), c.velocity, dt)
	c.velocity = velocity
	c.scalar.Set(next)

	// A listener retargeted or stopped the channel during notification.
	if gen != c.generation {
		return
	}
	if settled {
		c.finish()
	}
}

func (c *Channel) finish() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.velocity = 0
	done := c.onSettle
	c.onSettle = nil
	if done != nil {
		done()
	}
}

func (c *Channel) halt() {
	c.generation++
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.velocity = 0
	c.onSettle = nil
}

// Dispose stops the channel and removes its listeners.
func (c *Channel) Dispose() {
	c.halt()
	c.scalar.listeners = nil
}
