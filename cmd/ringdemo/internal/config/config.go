// Package config loads ringdemo.yaml and resolves it into screen options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/progressring/cmd/ringdemo/internal/screen"
	"github.com/go-drift/progressring/pkg/animation"
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/progressring"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "ringdemo.yaml"

// Config represents the optional ringdemo.yaml configuration.
type Config struct {
	Ring   RingConfig   `yaml:"ring"`
	Timer  TimerConfig  `yaml:"timer"`
	Screen ScreenConfig `yaml:"screen"`
	Intro  IntroConfig  `yaml:"intro"`
}

// RingConfig describes the progress ring.
type RingConfig struct {
	Size            float64 `yaml:"size,omitempty"`
	StrokeWidth     float64 `yaml:"stroke_width,omitempty"`
	RingColor       string  `yaml:"ring_color,omitempty"`
	BackgroundColor string  `yaml:"background_color,omitempty"`
	Direction       string  `yaml:"direction,omitempty"`
	LineCap         string  `yaml:"line_cap,omitempty"`
}

// TimerConfig describes the countdown timer.
type TimerConfig struct {
	Interval     time.Duration  `yaml:"interval,omitempty"`
	Max          time.Duration  `yaml:"max,omitempty"`
	RestartDelay *time.Duration `yaml:"restart_delay,omitempty"`
}

// ScreenConfig describes the surface the ring is drawn on.
type ScreenConfig struct {
	Width      int     `yaml:"width,omitempty"`
	Height     int     `yaml:"height,omitempty"`
	Background string  `yaml:"background,omitempty"`
	LabelColor string  `yaml:"label_color,omitempty"`
	LabelSize  float64 `yaml:"label_size,omitempty"`
}

// IntroConfig describes the optional start-up sweep.
type IntroConfig struct {
	Duration time.Duration `yaml:"duration,omitempty"`
	Curve    string        `yaml:"curve,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path   string // file the values came from, empty when defaults only
	Config Config // the fully populated configuration
	Screen screen.Options
}

// Load reads and parses a config file. A missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadOptional reads path if present and returns an empty config otherwise.
func LoadOptional(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, false, nil
		}
		return nil, false, err
	}
	return cfg, true, nil
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte, name string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &cfg, nil
}

// Resolve loads the config at path and fills in defaults. When required is
// false a missing file falls back to the defaults.
func Resolve(path string, required bool) (*Resolved, error) {
	var (
		cfg   *Config
		found = true
		err   error
	)
	if required {
		cfg, err = Load(path)
	} else {
		cfg, found, err = LoadOptional(path)
	}
	if err != nil {
		return nil, err
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	if found {
		resolved.Path = path
	}
	return resolved, nil
}

// Resolve fills defaults and validates the configuration.
func (c Config) Resolve() (*Resolved, error) {
	opts := screen.DefaultOptions()
	style := opts.Style

	full := c
	full.Ring.Size = orFloat(c.Ring.Size, opts.RingSize)
	full.Ring.StrokeWidth = orFloat(c.Ring.StrokeWidth, style.StrokeWidth)
	full.Ring.RingColor = orString(c.Ring.RingColor, style.RingColor.Hex())
	full.Ring.BackgroundColor = orString(c.Ring.BackgroundColor, style.BackgroundRingColor.Hex())
	full.Ring.Direction = orString(c.Ring.Direction, style.Direction.String())
	full.Ring.LineCap = orString(c.Ring.LineCap, style.LineCap.String())
	full.Timer.Interval = orDuration(c.Timer.Interval, opts.Interval)
	full.Timer.Max = orDuration(c.Timer.Max, opts.Max)
	if c.Timer.RestartDelay == nil {
		delay := opts.RestartDelay
		full.Timer.RestartDelay = &delay
	}
	full.Screen.Width = orInt(c.Screen.Width, opts.Width)
	full.Screen.Height = orInt(c.Screen.Height, opts.Height)
	full.Screen.Background = orString(c.Screen.Background, opts.Background.Hex())
	full.Screen.LabelColor = orString(c.Screen.LabelColor, opts.LabelColor.Hex())
	full.Screen.LabelSize = orFloat(c.Screen.LabelSize, opts.LabelSize)
	full.Intro.Curve = orString(c.Intro.Curve, "linear")

	var err error
	if style.RingColor, err = parseColor("ring.ring_color", full.Ring.RingColor); err != nil {
		return nil, err
	}
	if style.BackgroundRingColor, err = parseColor("ring.background_color", full.Ring.BackgroundColor); err != nil {
		return nil, err
	}
	if style.Direction, err = progressring.ParseDirection(full.Ring.Direction); err != nil {
		return nil, fmt.Errorf("ring.direction: %w", err)
	}
	if style.LineCap, err = graphics.ParseStrokeCap(full.Ring.LineCap); err != nil {
		return nil, fmt.Errorf("ring.line_cap: %w", err)
	}
	if opts.Background, err = parseColor("screen.background", full.Screen.Background); err != nil {
		return nil, err
	}
	if opts.LabelColor, err = parseColor("screen.label_color", full.Screen.LabelColor); err != nil {
		return nil, err
	}
	curve, ok := animation.CurveByName(full.Intro.Curve)
	if !ok {
		return nil, fmt.Errorf("intro.curve: unknown curve %q", full.Intro.Curve)
	}

	switch {
	case full.Ring.Size <= 0:
		return nil, fmt.Errorf("ring.size must be positive, got %v", full.Ring.Size)
	case full.Ring.StrokeWidth <= 0:
		return nil, fmt.Errorf("ring.stroke_width must be positive, got %v", full.Ring.StrokeWidth)
	case full.Ring.StrokeWidth >= full.Ring.Size:
		return nil, fmt.Errorf("ring.stroke_width %v must be smaller than ring.size %v", full.Ring.StrokeWidth, full.Ring.Size)
	case full.Screen.Width <= 0 || full.Screen.Height <= 0:
		return nil, fmt.Errorf("screen size %dx%d must be positive", full.Screen.Width, full.Screen.Height)
	case full.Screen.LabelSize <= 0:
		return nil, fmt.Errorf("screen.label_size must be positive, got %v", full.Screen.LabelSize)
	case full.Timer.Interval <= 0:
		return nil, fmt.Errorf("timer.interval must be positive, got %v", full.Timer.Interval)
	case full.Timer.Max < full.Timer.Interval:
		return nil, fmt.Errorf("timer.max %v must not be shorter than timer.interval %v", full.Timer.Max, full.Timer.Interval)
	case *full.Timer.RestartDelay < 0:
		return nil, fmt.Errorf("timer.restart_delay must not be negative, got %v", *full.Timer.RestartDelay)
	case full.Intro.Duration < 0:
		return nil, fmt.Errorf("intro.duration must not be negative, got %v", full.Intro.Duration)
	}

	style.StrokeWidth = full.Ring.StrokeWidth
	opts.Style = style
	opts.RingSize = full.Ring.Size
	opts.Width = full.Screen.Width
	opts.Height = full.Screen.Height
	opts.LabelSize = full.Screen.LabelSize
	opts.Interval = full.Timer.Interval
	opts.Max = full.Timer.Max
	opts.RestartDelay = *full.Timer.RestartDelay
	opts.IntroDuration = full.Intro.Duration
	opts.IntroCurve = curve

	return &Resolved{Config: full, Screen: opts}, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func parseColor(field, value string) (graphics.Color, error) {
	c, err := graphics.ParseHex(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

func orString(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func orFloat(v, def float64) float64 {
	if v != 0 {
		return v
	}
	return def
}

func orInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

func orDuration(v, def time.Duration) time.Duration {
	if v != 0 {
		return v
	}
	return def
}
