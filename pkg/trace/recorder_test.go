package trace

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/overlay"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/wheel"
)

func TestRecorder_SamplesOverlayPerFrame(t *testing.T) {
	driver := motiontest.NewFrameDriverWithT(t)
	ctrl := overlay.NewController(overlay.Options{Placement: overlay.Bottom})
	defer ctrl.Dispose()

	rec := NewRecorder(0)
	rec.Overlay = ctrl
	driver.OnFrame(rec.Record)

	ctrl.OnLayout(overlay.Extent{Height: 300})
	ctrl.Show()
	if err := driver.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatal(err)
	}

	tl := rec.Timeline()
	if len(tl.Samples) != driver.Frame() {
		t.Fatalf("samples = %d, frames = %d", len(tl.Samples), driver.Frame())
	}
	first, last := tl.Samples[0], tl.Samples[len(tl.Samples)-1]
	if first.Frame != 1 || first.ElapsedMs != 16 {
		t.Errorf("first sample = %+v", first)
	}
	if first.Translation >= 300 || first.Translation <= 0 {
		t.Errorf("first frame translation = %v", first.Translation)
	}
	if last.Phase != "entered" || last.Translation != 0 || last.Opacity != 1 {
		t.Errorf("last sample = %+v", last)
	}
	for _, s := range tl.Samples {
		if len(s.Items) != 0 {
			t.Fatal("no wheel attached, items should be empty")
		}
	}
}

func TestRecorder_SamplesVisibleWheelItems(t *testing.T) {
	motiontest.NewFrameDriverWithT(t)
	options := make([]wheel.Option[int], 10)
	for i := range options {
		options[i] = wheel.Option[int]{Label: "item", Value: i}
	}
	p := wheel.NewPicker(options, wheel.Config{VisibleRest: 1, InitialIndex: 4})
	defer p.Dispose()

	rec := NewRecorder(8)
	rec.Wheel = p
	s := rec.Capture(0, 0)

	if s.Position != 4 || s.Phase != "" {
		t.Errorf("sample = %+v", s)
	}
	if len(s.Items) != 5 {
		t.Fatalf("items = %d, want 5 (indexes 2..6)", len(s.Items))
	}
	center := s.Items[2]
	if center.Index != 4 || center.Distance != 0 || center.Opacity != 1 || center.Scale != 1 || center.Rotation != 0 {
		t.Errorf("center item = %+v", center)
	}
	above, below := s.Items[1], s.Items[3]
	if above.Rotation != -below.Rotation || math.Abs(below.Rotation) != 20 {
		t.Errorf("neighbors rotate %v and %v", above.Rotation, below.Rotation)
	}
	if rec.Buffer().Len() != 0 {
		t.Error("Capture must not record")
	}
}
