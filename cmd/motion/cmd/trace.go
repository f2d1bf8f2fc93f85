package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/config"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/overlay"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/trace"
	"github.com/go-drift/motion/pkg/wheel"
)

// maxTraceFrames bounds a trace that runs until settled.
const maxTraceFrames = 3600

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Record a per-frame animation trace",
		Long: `Run the overlay open transition on a simulated frame clock and export
every frame's translation, opacity and wheel item transforms.

The overlay opens at frame 0. Each --toggle-at flips the visibility intent
just before the given frame, so rapid open/close sequences can be traced.
--drag releases a wheel drag at a scroll offset (converted to items with
picker.item_height) and lets it settle on the nearest item.
Without --frames the trace stops once every animation has settled.`,
		Usage: "motion trace [--config f] [--placement p] [--height h] [--width w] [--toggle-at n]... [--drag offset] [--select i] [--frames n] [--format json|yaml|cbor] [--out f]",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("config", config.FileName, "configuration file (ignored when absent)")
			fs.String("placement", "", "override overlay.placement (top, right, bottom, left)")
			fs.Float64("height", 300, "measured overlay height")
			fs.Float64("width", 390, "measured overlay width")
			fs.IntSlice("toggle-at", nil, "flip visibility before this frame (repeatable)")
			fs.Int("items", 12, "number of wheel items")
			fs.Int("select", -1, "animate the wheel to this index from frame 0")
			fs.Float64("drag", 0, "release a wheel drag at this scroll offset at frame 0 (item_height units per row)")
			fs.Int("frames", 0, "number of frames to record (0 records until settled)")
			fs.String("format", "json", "output format: json, yaml or cbor")
			fs.StringP("out", "o", "", "output file (default stdout)")
		},
		Run: runTrace,
	})
}

// traceScript describes one simulated run.
type traceScript struct {
	Config    *config.Resolved
	Extent    overlay.Extent
	ToggleAt  []int
	Items     int
	Select    int
	Drag      float64
	Frames    int
	MaxFrames int
}

func runTrace(fs *pflag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	path, _ := fs.GetString("config")
	resolved, err := config.LoadResolved(path)
	if err != nil {
		return err
	}
	if name, _ := fs.GetString("placement"); name != "" {
		p, err := overlay.ParsePlacement(name)
		if err != nil {
			return err
		}
		resolved.Placement = p
	}
	formatName, _ := fs.GetString("format")
	format, err := trace.ParseFormat(formatName)
	if err != nil {
		return err
	}

	script := traceScript{Config: resolved, MaxFrames: maxTraceFrames}
	script.Extent.Height, _ = fs.GetFloat64("height")
	script.Extent.Width, _ = fs.GetFloat64("width")
	script.ToggleAt, _ = fs.GetIntSlice("toggle-at")
	script.Items, _ = fs.GetInt("items")
	script.Select, _ = fs.GetInt("select")
	script.Drag, _ = fs.GetFloat64("drag")
	script.Frames, _ = fs.GetInt("frames")

	timeline, err := simulate(script)
	if err != nil {
		return err
	}

	out, _ := fs.GetString("out")
	var w io.Writer = stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			e := errors.New("trace.Create", errors.KindExport, err)
			e.Path = out
			return e
		}
		defer f.Close()
		w = f
	}
	if err := trace.Export(w, format, timeline); err != nil {
		return err
	}
	logger.Info("trace written",
		"frames", len(timeline.Samples),
		"placement", resolved.Placement.String(),
		"format", format.String(),
		"out", out,
	)
	return nil
}

// simulate plays script on a fake frame clock and returns the recording.
func simulate(s traceScript) (trace.Timeline, error) {
	driver := motiontest.NewFrameDriver()
	defer driver.Cleanup()
	driver.FrameDuration = s.Config.FrameDuration()

	opts := s.Config.OverlayOptions()
	opts.Logger = logger
	ctrl := overlay.NewController(opts)
	defer ctrl.Dispose()

	options := make([]wheel.Option[int], max(s.Items, 0))
	for i := range options {
		options[i] = wheel.Option[int]{Label: fmt.Sprintf("%02d", i), Value: i}
	}
	picker := wheel.NewPicker(options, s.Config.PickerConfig())
	defer picker.Dispose()

	capacity := s.Frames
	if capacity <= 0 {
		capacity = s.MaxFrames
	}
	rec := trace.NewRecorder(capacity + 1)
	rec.Overlay = ctrl
	rec.Wheel = picker
	driver.OnFrame(rec.Record)

	ctrl.OnLayout(s.Extent)
	ctrl.Show()
	if s.Drag != 0 {
		// A drag released at Drag, in scroll offset units.
		picker.ScrollTo(s.Drag)
		picker.Settle()
	}
	if s.Select >= 0 && len(options) > 0 {
		picker.SelectIndex(s.Select)
	}
	rec.Record(0, 0)

	lastToggle := 0
	if len(s.ToggleAt) > 0 {
		lastToggle = slices.Max(s.ToggleAt)
	}
	for frame := 1; ; frame++ {
		if slices.Contains(s.ToggleAt, frame) {
			ctrl.SetVisible(!ctrl.Visible())
		}
		driver.Pump()

		if s.Frames > 0 {
			if frame >= s.Frames {
				break
			}
			continue
		}
		if frame >= lastToggle && !animation.HasActiveTickers() {
			break
		}
		if frame >= s.MaxFrames {
			return trace.Timeline{}, fmt.Errorf("trace did not settle within %d frames (%v)",
				s.MaxFrames, time.Duration(s.MaxFrames)*driver.FrameDuration)
		}
	}
	return rec.Timeline(), nil
}
