package trace

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/overlay"
	"github.com/go-drift/motion/pkg/wheel"
)

// Wheel is the part of a wheel picker a Recorder samples. *wheel.Picker
// satisfies it for any option type.
type Wheel interface {
	Position() animation.ValueListenable
	Visible() []int
	Transform(index int) wheel.Transform
}

// Recorder samples an overlay and a wheel into a Buffer once per frame.
// Either source may be nil.
type Recorder struct {
	Overlay *overlay.Controller
	Wheel   Wheel
	buffer  *Buffer
}

// NewRecorder returns a recorder writing into a buffer of the given capacity.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{buffer: NewBuffer(capacity)}
}

// Buffer returns the underlying sample buffer.
func (r *Recorder) Buffer() *Buffer {
	return r.buffer
}

// Record captures the current state as frame. Its signature matches a frame
// observer so it can be registered directly with a frame driver.
func (r *Recorder) Record(frame int, elapsed time.Duration) {
	r.buffer.Add(r.Capture(frame, elapsed))
}

// Capture returns the current state without recording it.
func (r *Recorder) Capture(frame int, elapsed time.Duration) Sample {
	s := Sample{
		Frame:     frame,
		ElapsedMs: float64(elapsed) / float64(time.Millisecond),
	}
	if r.Overlay != nil {
		s.Phase = r.Overlay.Phase().String()
		s.Translation = r.Overlay.Translation().Value()
		s.Opacity = r.Overlay.Opacity().Value()
	}
	if r.Wheel != nil {
		center := r.Wheel.Position().Value()
		s.Position = center
		for _, i := range r.Wheel.Visible() {
			t := r.Wheel.Transform(i)
			s.Items = append(s.Items, ItemSample{
				Index:    i,
				Distance: float64(i) - center,
				Opacity:  t.Opacity,
				Scale:    t.Scale,
				Rotation: t.RotationDegrees,
			})
		}
	}
	return s
}

// Timeline returns the recording so far.
func (r *Recorder) Timeline() Timeline {
	return r.buffer.Snapshot()
}
