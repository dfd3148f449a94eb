package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/curvesketch/internal/curve"
	"github.com/san-kum/curvesketch/internal/easing"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 1024.0
	DefaultHeight     = 768.0
	DefaultFPS        = 60
	DefaultPoints     = 200
	DefaultPadding    = 50.0
	DefaultAxisOffset = 30.0
	DefaultSpeed      = 0.5
	DefaultCurveWidth = 2.0
	DefaultAxisWidth  = 1.0
	DefaultLabelSize  = 16.0
	DefaultTheme      = "minimal"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Curve     CurveConfig     `yaml:"curve"`
	Animation AnimationConfig `yaml:"animation"`
	Style     StyleConfig     `yaml:"style"`
	Theme     string          `yaml:"theme"`
}

type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
	FPS    int     `yaml:"fps"`
}

type CurveConfig struct {
	Points  int     `yaml:"points"`
	A       float64 `yaml:"a"`
	B       float64 `yaml:"b"`
	C       float64 `yaml:"c"`
	Padding float64 `yaml:"padding"`
}

type AnimationConfig struct {
	Speed float64 `yaml:"speed"`
	Ease  string  `yaml:"ease"`
}

type StyleConfig struct {
	Background string  `yaml:"background"`
	Axis       string  `yaml:"axis"`
	Label      string  `yaml:"label"`
	Curve      string  `yaml:"curve"`
	AxisWidth  float64 `yaml:"axis_width"`
	CurveWidth float64 `yaml:"curve_width"`
	LabelSize  float64 `yaml:"label_size"`
	AxisOffset float64 `yaml:"axis_offset"`
}

// Palette is the parsed form of the style colors.
type Palette struct {
	Background color.RGBA
	Axis       color.RGBA
	Label      color.RGBA
	Curve      color.RGBA
}

func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "curvesketch",
			FPS:    DefaultFPS,
		},
		Curve: CurveConfig{
			Points:  DefaultPoints,
			A:       curve.Reference.A,
			B:       curve.Reference.B,
			C:       curve.Reference.C,
			Padding: DefaultPadding,
		},
		Animation: AnimationConfig{
			Speed: DefaultSpeed,
			Ease:  easing.Linear,
		},
		Style: StyleConfig{
			Background: "#ffffff",
			Axis:       "#808080",
			Label:      "#000000",
			Curve:      "#ff0000",
			AxisWidth:  DefaultAxisWidth,
			CurveWidth: DefaultCurveWidth,
			LabelSize:  DefaultLabelSize,
			AxisOffset: DefaultAxisOffset,
		},
		Theme: DefaultTheme,
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays a YAML file onto cfg. Keys absent from the file keep
// whatever cfg already holds.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Resolve layers defaults, the named preset and the config file at path, in
// that order. Either name or path may be empty.
func Resolve(preset, path string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		cfg = GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, ListPresets())
		}
	}
	if path != "" {
		if err := LoadInto(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Quadratic() curve.Quadratic {
	return curve.Quadratic{A: c.Curve.A, B: c.Curve.B, C: c.Curve.C}
}

// Palette parses the style colors. Colors are hex strings such as "#ff0000".
func (c *Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Style.Background, &p.Background},
		{"axis", c.Style.Axis, &p.Axis},
		{"label", c.Style.Label, &p.Label},
		{"curve", c.Style.Curve, &p.Curve},
	}
	for _, f := range fields {
		rgba, err := ParseColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: style.%s: %v", ErrInvalidConfig, f.name, err)
		}
		*f.dst = rgba
	}
	return p, nil
}

// ParseColor converts a hex color string into an opaque RGBA value.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Validate reports the first setting that would make the animation
// ill-defined.
func (c *Config) Validate() error {
	// Comparisons are written so that NaN fails them.
	switch {
	case !(c.Canvas.Width > 0) || !(c.Canvas.Height > 0) || math.IsInf(c.Canvas.Width, 0) || math.IsInf(c.Canvas.Height, 0):
		return fmt.Errorf("%w: canvas size must be positive and finite, got %gx%g", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Canvas.FPS)
	case c.Curve.Points < 2:
		return fmt.Errorf("%w: curve.points must be at least 2, got %d", ErrInvalidConfig, c.Curve.Points)
	case !finite(c.Curve.A) || !finite(c.Curve.B) || !finite(c.Curve.C):
		return fmt.Errorf("%w: curve coefficients must be finite, got a=%g b=%g c=%g", ErrInvalidConfig, c.Curve.A, c.Curve.B, c.Curve.C)
	case !(c.Curve.Padding >= 0) || math.IsInf(c.Curve.Padding, 0):
		return fmt.Errorf("%w: curve.padding must be finite and not negative, got %g", ErrInvalidConfig, c.Curve.Padding)
	case !(c.Animation.Speed > 0) || math.IsInf(c.Animation.Speed, 0):
		return fmt.Errorf("%w: animation.speed must be positive and finite, got %g", ErrInvalidConfig, c.Animation.Speed)
	case !(c.Style.AxisOffset >= 0) || math.IsInf(c.Style.AxisOffset, 0):
		return fmt.Errorf("%w: style.axis_offset must be finite and not negative, got %g", ErrInvalidConfig, c.Style.AxisOffset)
	case !(c.Style.AxisWidth > 0) || !(c.Style.CurveWidth > 0) || math.IsInf(c.Style.AxisWidth, 0) || math.IsInf(c.Style.CurveWidth, 0):
		return fmt.Errorf("%w: stroke widths must be positive and finite", ErrInvalidConfig)
	case !(c.Style.LabelSize > 0) || math.IsInf(c.Style.LabelSize, 0):
		return fmt.Errorf("%w: style.label_size must be positive and finite, got %g", ErrInvalidConfig, c.Style.LabelSize)
	}
	if _, err := easing.Lookup(c.Animation.Ease); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
