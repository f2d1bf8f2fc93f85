package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// DefaultFrameDuration is the time one Pump advances the clock (about 60fps).
const DefaultFrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// FrameDriver plays the role of the host frame clock. It owns a FakeClock
// installed as the animation clock and steps tickers on demand.
type FrameDriver struct {
	// FrameDuration is how far each Pump advances the clock.
	FrameDuration time.Duration

	clock     *FakeClock
	prevClock animation.Clock
	frame     int
	observers map[int]func(frame int, elapsed time.Duration)
	nextID    int
}

// NewFrameDriver installs a fresh FakeClock as the animation clock.
// Call Cleanup to restore the previous clock.
func NewFrameDriver() *FrameDriver {
	clk := NewFakeClock()
	return &FrameDriver{
		FrameDuration: DefaultFrameDuration,
		clock:         clk,
		prevClock:     animation.SetClock(clk),
		observers:     make(map[int]func(int, time.Duration)),
	}
}

// NewFrameDriverWithT is like NewFrameDriver and registers Cleanup with t.
func NewFrameDriverWithT(t testing.TB) *FrameDriver {
	d := NewFrameDriver()
	t.Cleanup(d.Cleanup)
	return d
}

// Cleanup restores the animation clock that was active before the driver.
func (d *FrameDriver) Cleanup() {
	animation.SetClock(d.prevClock)
}

// Clock returns the fake clock driving animations.
func (d *FrameDriver) Clock() *FakeClock {
	return d.clock
}

// Frame returns the number of frames pumped so far.
func (d *FrameDriver) Frame() int {
	return d.frame
}

// Elapsed returns the fake time elapsed since the driver was created.
func (d *FrameDriver) Elapsed() time.Duration {
	return d.clock.Since()
}

// OnFrame registers fn to run after every pumped frame.
// Returns an unsubscribe function.
func (d *FrameDriver) OnFrame(fn func(frame int, elapsed time.Duration)) func() {
	id := d.nextID
	d.nextID++
	d.observers[id] = fn
	return func() {
		delete(d.observers, id)
	}
}

// Pump advances the clock by one frame and steps all active tickers.
func (d *FrameDriver) Pump() {
	d.clock.Advance(d.FrameDuration)
	animation.StepTickers()
	d.frame++
	for _, fn := range d.observers {
		fn(d.frame, d.Elapsed())
	}
}

// PumpFrames pumps n frames.
func (d *FrameDriver) PumpFrames(n int) {
	for range n {
		d.Pump()
	}
}

// PumpAndSettle pumps frames until no ticker is active or timeout of fake time
// has passed. Returns ErrSettleTimeout if animations are still running.
func (d *FrameDriver) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for animation.HasActiveTickers() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		d.Pump()
		elapsed += d.FrameDuration
	}
	return nil
}
