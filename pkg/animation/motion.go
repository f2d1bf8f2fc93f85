package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Segment describes the stretch of motion since a channel's target was last set.
type Segment struct {
	// From is the channel value when the target was set.
	From float64
	// Target is the value the channel is converging on.
	Target float64
	// Elapsed is the time since the target was set, including the current step.
	Elapsed time.Duration
}

// Motion advances a value toward a segment's target by one frame.
//
// Step returns the next value and velocity (units per second) and reports
// whether the value has settled on the target. A settled result must equal
// seg.Target exactly.
type Motion interface {
	Step(seg Segment, value, velocity float64, dt time.Duration) (next, nextVelocity float64, settled bool)
}

// Spring defaults.
const (
	DefaultSpringFrequency  = 10.0
	DefaultRestDisplacement = 0.001
	DefaultRestVelocity     = 0.001
)

// SpringMotion converges on its target like a damped spring and never passes it.
//
// Damping ratios below 1 are raised to 1 (critical damping). A step that would
// cross the target lands on it and settles, which keeps a retargeted channel
// that is still carrying velocity from overshooting.
type SpringMotion struct {
	// Frequency is the angular frequency in radians per second.
	Frequency float64
	// Damping is the damping ratio.
	Damping float64
	// RestDisplacement is the distance from the target considered settled.
	RestDisplacement float64
	// RestVelocity is the speed considered settled.
	RestVelocity float64
}

// DefaultSpring returns a critically damped spring.
func DefaultSpring() SpringMotion {
	return SpringMotion{
		Frequency:        DefaultSpringFrequency,
		Damping:          1,
		RestDisplacement: DefaultRestDisplacement,
		RestVelocity:     DefaultRestVelocity,
	}
}

// Step implements Motion.
func (m SpringMotion) Step(seg Segment, value, velocity float64, dt time.Duration) (float64, float64, bool) {
	target := seg.Target
	if value == target && velocity == 0 {
		return target, 0, true
	}
	if dt <= 0 {
		return value, velocity, false
	}

	frequency := m.Frequency
	if frequency <= 0 {
		frequency = DefaultSpringFrequency
	}
	damping := math.Max(m.Damping, 1)

	spring := harmonica.NewSpring(dt.Seconds(), frequency, damping)
	pos, vel := spring.Update(value, velocity, target)

	if (target-value)*(target-pos) <= 0 {
		return target, 0, true
	}
	restDisplacement := m.RestDisplacement
	if restDisplacement <= 0 {
		restDisplacement = DefaultRestDisplacement
	}
	restVelocity := m.RestVelocity
	if restVelocity <= 0 {
		restVelocity = DefaultRestVelocity
	}
	if math.Abs(target-pos) <= restDisplacement && math.Abs(vel) <= restVelocity {
		return target, 0, true
	}
	return pos, vel, false
}

// TimingMotion moves from the segment start to its target over a fixed
// duration, shaped by Curve. A zero Duration jumps to the target on the first
// frame.
type TimingMotion struct {
	Duration time.Duration
	// Curve eases progress. Nil means linear.
	Curve func(float64) float64
}

// Step implements Motion.
func (m TimingMotion) Step(seg Segment, value, _ float64, dt time.Duration) (float64, float64, bool) {
	if m.Duration <= 0 {
		return seg.Target, 0, true
	}
	progress := float64(seg.Elapsed) / float64(m.Duration)
	if progress >= 1 {
		return seg.Target, 0, true
	}
	if progress < 0 {
		progress = 0
	}
	curve := m.Curve
	if curve == nil {
		curve = LinearCurve
	}
	next := Lerp(seg.From, seg.Target, curve(progress))
	var velocity float64
	if dt > 0 {
		velocity = (next - value) / dt.Seconds()
	}
	return next, velocity, false
}
