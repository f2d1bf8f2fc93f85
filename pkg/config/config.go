// Package config loads the optional motion.yaml file that tunes the picker
// curves, the overlay transition and the preview frame rate.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/overlay"
	"github.com/go-drift/motion/pkg/wheel"
)

// FileName is the configuration file looked up by the CLI.
const FileName = "motion.yaml"

// Defaults applied by Resolve.
const (
	DefaultVisibleRest = 2
	DefaultItemHeight  = wheel.DefaultItemHeight
	DefaultFrameRate   = 60
)

var (
	// ErrInvalidPlacement reports an unknown overlay.placement.
	ErrInvalidPlacement = overlay.ErrInvalidPlacement
	// ErrInvalidCurve reports an unknown overlay.fade.curve.
	ErrInvalidCurve = animation.ErrUnknownCurve
	// ErrOutOfRange reports a numeric field outside its allowed range.
	ErrOutOfRange = stderrors.New("value out of range")
)

// Config represents the optional motion.yaml configuration.
type Config struct {
	Picker    PickerConfig  `yaml:"picker"`
	Overlay   OverlayConfig `yaml:"overlay"`
	FrameRate int           `yaml:"frame_rate,omitempty"`
}

// PickerConfig contains wheel picker settings.
type PickerConfig struct {
	// VisibleRest is a pointer so an explicit 0 is kept.
	VisibleRest *int    `yaml:"visible_rest,omitempty"`
	ItemHeight  float64 `yaml:"item_height,omitempty"`
}

// OverlayConfig contains overlay transition settings.
type OverlayConfig struct {
	Placement string       `yaml:"placement,omitempty"`
	Spring    SpringConfig `yaml:"spring"`
	Fade      FadeConfig   `yaml:"fade"`
}

// SpringConfig tunes the translation spring.
type SpringConfig struct {
	Frequency float64 `yaml:"frequency,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
}

// FadeConfig tunes the opacity timing.
type FadeConfig struct {
	// Duration is a pointer so an explicit 0 (snap) is kept.
	Duration *time.Duration `yaml:"duration,omitempty"`
	Curve    string         `yaml:"curve,omitempty"`
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	VisibleRest int
	ItemHeight  float64
	Placement   overlay.Placement
	Spring      animation.SpringMotion
	Fade        animation.TimingMotion
	FadeCurve   string
	FrameRate   int
}

// FrameDuration returns the interval between frames at FrameRate.
func (r *Resolved) FrameDuration() time.Duration {
	return time.Second / time.Duration(r.FrameRate)
}

// PickerConfig returns wheel picker settings: the visible neighbors, the row
// height that maps scroll offsets to item units, and the selection spring.
func (r *Resolved) PickerConfig() wheel.Config {
	return wheel.Config{
		VisibleRest: r.VisibleRest,
		ItemHeight:  r.ItemHeight,
		Motion:      r.Spring,
	}
}

// OverlayOptions returns controller options for the resolved transition.
func (r *Resolved) OverlayOptions() overlay.Options {
	return overlay.Options{
		Placement: r.Placement,
		Translate: r.Spring,
		Fade:      r.Fade,
	}
}

// Parse decodes YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.New("config.Parse", errors.KindParsing, err)
	}
	return &cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := errors.New("config.Load", errors.KindConfig, err)
		e.Path = path
		return nil, e
	}
	cfg, err := Parse(data)
	if err != nil {
		var me *errors.MotionError
		if stderrors.As(err, &me) {
			me.Op = "config.Load"
			me.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty Config.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Default returns the resolved defaults.
func Default() *Resolved {
	r, _ := Resolve(&Config{})
	return r
}

// Resolve applies defaults and validates cfg. A nil cfg resolves to the
// defaults.
func Resolve(cfg *Config) (*Resolved, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	visibleRest := DefaultVisibleRest
	if cfg.Picker.VisibleRest != nil {
		visibleRest = max(*cfg.Picker.VisibleRest, 0)
	}

	itemHeight := cfg.Picker.ItemHeight
	if itemHeight < 0 {
		return nil, invalid("picker.item_height", fmt.Errorf("%w: %v", ErrOutOfRange, itemHeight))
	}
	if itemHeight == 0 {
		itemHeight = DefaultItemHeight
	}

	placement := overlay.Bottom
	if name := strings.TrimSpace(cfg.Overlay.Placement); name != "" {
		p, err := overlay.ParsePlacement(name)
		if err != nil {
			return nil, invalid("overlay.placement", err)
		}
		placement = p
	}

	spring := animation.DefaultSpring()
	if f := cfg.Overlay.Spring.Frequency; f != 0 {
		if f < 0 {
			return nil, invalid("overlay.spring.frequency", fmt.Errorf("%w: %v", ErrOutOfRange, f))
		}
		spring.Frequency = f
	}
	if d := cfg.Overlay.Spring.Damping; d != 0 {
		if d < 0 {
			return nil, invalid("overlay.spring.damping", fmt.Errorf("%w: %v", ErrOutOfRange, d))
		}
		spring.Damping = max(d, 1)
	}

	curveName := strings.TrimSpace(cfg.Overlay.Fade.Curve)
	if curveName == "" {
		curveName = "ease-out"
	}
	curve, err := animation.CurveByName(curveName)
	if err != nil {
		return nil, invalid("overlay.fade.curve", err)
	}
	duration := overlay.DefaultFadeDuration
	if cfg.Overlay.Fade.Duration != nil {
		duration = *cfg.Overlay.Fade.Duration
		if duration < 0 {
			return nil, invalid("overlay.fade.duration", fmt.Errorf("%w: %v", ErrOutOfRange, duration))
		}
	}

	frameRate := cfg.FrameRate
	if frameRate < 0 || frameRate > 240 {
		return nil, invalid("frame_rate", fmt.Errorf("%w: %d", ErrOutOfRange, frameRate))
	}
	if frameRate == 0 {
		frameRate = DefaultFrameRate
	}

	return &Resolved{
		VisibleRest: visibleRest,
		ItemHeight:  itemHeight,
		Placement:   placement,
		Spring:      spring,
		Fade:        animation.TimingMotion{Duration: duration, Curve: curve},
		FadeCurve:   strings.ToLower(curveName),
		FrameRate:   frameRate,
	}, nil
}

// LoadResolved loads the file at path if present and resolves it.
func LoadResolved(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	r, err := Resolve(cfg)
	if err != nil {
		var me *errors.MotionError
		if stderrors.As(err, &me) {
			me.Path = path
		}
		return nil, err
	}
	return r, nil
}

func invalid(field string, err error) error {
	return errors.New("config.Resolve", errors.KindConfig, fmt.Errorf("%s: %w", field, err))
}
