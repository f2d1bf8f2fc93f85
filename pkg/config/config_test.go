package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/overlay"
)

func TestResolve_Defaults(t *testing.T) {
	r, err := Resolve(nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.VisibleRest != DefaultVisibleRest || r.ItemHeight != DefaultItemHeight || r.FrameRate != DefaultFrameRate {
		t.Errorf("picker defaults: %+v", r)
	}
	if r.Placement != overlay.Bottom {
		t.Errorf("placement = %v", r.Placement)
	}
	if r.Spring != animation.DefaultSpring() {
		t.Errorf("spring = %+v", r.Spring)
	}
	if r.Fade.Duration != overlay.DefaultFadeDuration || r.FadeCurve != "ease-out" {
		t.Errorf("fade = %v %s", r.Fade.Duration, r.FadeCurve)
	}
	if got := r.FrameDuration(); got != time.Second/60 {
		t.Errorf("frame duration = %v", got)
	}
}

func TestParseAndResolve(t *testing.T) {
	cfg, err := Parse([]byte(`
picker:
  visible_rest: 0
  item_height: 36
overlay:
  placement: Left
  spring:
    frequency: 14
    damping: 0.4
  fade:
    duration: 0s
    curve: linear
frame_rate: 30
`))
	if err != nil {
		t.Fatal(err)
	}
	r, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.VisibleRest != 0 {
		t.Errorf("explicit visible_rest 0 lost: %d", r.VisibleRest)
	}
	if r.ItemHeight != 36 || r.Placement != overlay.Left || r.FrameRate != 30 {
		t.Errorf("resolved = %+v", r)
	}
	if r.Spring.Frequency != 14 || r.Spring.Damping != 1 {
		t.Errorf("spring = %+v, damping must be raised to 1", r.Spring)
	}
	if r.Fade.Duration != 0 {
		t.Errorf("explicit zero fade lost: %v", r.Fade.Duration)
	}
	if got := r.Fade.Curve(0.25); got != 0.25 {
		t.Errorf("linear curve(0.25) = %v", got)
	}

	pc := r.PickerConfig()
	if pc.VisibleRest != 0 || pc.ItemHeight != 36 || pc.Motion != r.Spring {
		t.Errorf("picker config = %+v", pc)
	}

	opts := r.OverlayOptions()
	if opts.Placement != overlay.Left || opts.Translate != r.Spring {
		t.Errorf("options = %+v", opts)
	}
}

func TestResolve_NegativeVisibleRestClamps(t *testing.T) {
	n := -3
	r, err := Resolve(&Config{Picker: PickerConfig{VisibleRest: &n}})
	if err != nil {
		t.Fatal(err)
	}
	if r.VisibleRest != 0 {
		t.Errorf("visible rest = %d, want 0", r.VisibleRest)
	}
}

func TestResolve_Invalid(t *testing.T) {
	negative := -time.Second
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"placement", Config{Overlay: OverlayConfig{Placement: "center"}}, ErrInvalidPlacement},
		{"curve", Config{Overlay: OverlayConfig{Fade: FadeConfig{Curve: "bounce"}}}, ErrInvalidCurve},
		{"duration", Config{Overlay: OverlayConfig{Fade: FadeConfig{Duration: &negative}}}, ErrOutOfRange},
		{"frequency", Config{Overlay: OverlayConfig{Spring: SpringConfig{Frequency: -1}}}, ErrOutOfRange},
		{"item height", Config{Picker: PickerConfig{ItemHeight: -4}}, ErrOutOfRange},
		{"frame rate", Config{FrameRate: 1000}, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(&tt.cfg)
			if !stderrors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var me *errors.MotionError
			if !stderrors.As(err, &me) || me.Kind != errors.KindConfig {
				t.Errorf("expected config MotionError, got %#v", err)
			}
		})
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("overlay:\n  placment: top\n"))
	var me *errors.MotionError
	if !stderrors.As(err, &me) || me.Kind != errors.KindParsing {
		t.Fatalf("expected parsing error, got %v", err)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Picker.VisibleRest != nil || cfg.FrameRate != 0 {
		t.Errorf("empty input should decode to zero config: %+v", cfg)
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOptional(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Overlay.Placement != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("overlay:\n  placement: top\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadResolved(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Placement != overlay.Top {
		t.Errorf("placement = %v", r.Placement)
	}

	if err := os.WriteFile(path, []byte("frame_rate: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadOptional(path)
	var me *errors.MotionError
	if !stderrors.As(err, &me) {
		t.Fatalf("expected MotionError, got %v", err)
	}
	if me.Op != "config.Load" || me.Path != path || me.Kind != errors.KindParsing {
		t.Errorf("error = %+v", me)
	}
}

func TestLoadResolved_AttachesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("overlay:\n  fade:\n    curve: wobble\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadResolved(path)
	var me *errors.MotionError
	if !stderrors.As(err, &me) || me.Path != path {
		t.Fatalf("expected path on error, got %v", err)
	}
	if !stderrors.Is(err, ErrInvalidCurve) {
		t.Errorf("expected ErrInvalidCurve, got %v", err)
	}
}
