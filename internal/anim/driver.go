package anim

import (
	"fmt"
	"math"

	"github.com/san-kum/curvesketch/internal/config"
	"github.com/san-kum/curvesketch/internal/curve"
	"github.com/san-kum/curvesketch/internal/easing"
	"github.com/san-kum/curvesketch/internal/geom"
	"github.com/tanema/gween/ease"
)

// labelInset is the distance of each axis label from the other axis.
const labelInset = 15.0

// Settings are the tunables of a Driver.
type Settings struct {
	Speed      float64
	Ease       string
	AxisOffset float64
	AxisWidth  float64
	CurveWidth float64
	LabelSize  float64
	Palette    config.Palette
}

// DefaultSettings mirrors config.DefaultConfig.
func DefaultSettings() Settings {
	p, _ := config.DefaultConfig().Palette()
	return Settings{
		Speed:      config.DefaultSpeed,
		Ease:       easing.Linear,
		AxisOffset: config.DefaultAxisOffset,
		AxisWidth:  config.DefaultAxisWidth,
		CurveWidth: config.DefaultCurveWidth,
		LabelSize:  config.DefaultLabelSize,
		Palette:    p,
	}
}

// Driver holds the animation state: the curve, how much of it is revealed,
// and whether the backdrop has been drawn.
type Driver struct {
	bounds      geom.Rect
	curve       *curve.Curve
	settings    Settings
	tween       ease.TweenFunc
	reveal      int
	initialized bool
}

// NewDriver returns a driver in its initializing phase. bounds is the full
// canvas rectangle; the axes are laid out against its edges. An unknown
// easing falls back to linear.
func NewDriver(bounds geom.Rect, c *curve.Curve, s Settings) *Driver {
	d := &Driver{bounds: bounds, curve: c, settings: s}
	if s.Ease != "" && s.Ease != easing.Linear {
		if fn, err := easing.Lookup(s.Ease); err == nil {
			d.tween = fn
		}
	}
	return d
}

// FromConfig validates cfg, samples the curve across the canvas inset by the
// configured padding, and returns a fresh driver.
func FromConfig(cfg *config.Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	bounds := CanvasBounds(cfg)
	c, err := curve.Generate(cfg.Curve.Points, bounds.Pad(cfg.Curve.Padding), cfg.Quadratic())
	if err != nil {
		return nil, fmt.Errorf("generate curve: %w", err)
	}

	return NewDriver(bounds, c, Settings{
		Speed:      cfg.Animation.Speed,
		Ease:       cfg.Animation.Ease,
		AxisOffset: cfg.Style.AxisOffset,
		AxisWidth:  cfg.Style.AxisWidth,
		CurveWidth: cfg.Style.CurveWidth,
		LabelSize:  cfg.Style.LabelSize,
		Palette:    palette,
	}), nil
}

// CanvasBounds is the canvas rectangle for cfg, centered on the origin.
func CanvasBounds(cfg *config.Config) geom.Rect {
	return geom.NewRectFromCenter(geom.Pt(0, 0), cfg.Canvas.Width, cfg.Canvas.Height)
}

// Reveal is the number of leading curve points considered drawn.
func (d *Driver) Reveal() int { return d.reveal }

// Initialized reports whether the backdrop has been rendered.
func (d *Driver) Initialized() bool { return d.initialized }

func (d *Driver) Curve() *curve.Curve { return d.curve }

func (d *Driver) Bounds() geom.Rect { return d.bounds }

func (d *Driver) Settings() Settings { return d.settings }

// Done reports whether the whole curve has been revealed.
func (d *Driver) Done() bool { return d.reveal >= d.curve.Len() }

// Duration is the number of frames a full reveal takes.
func (d *Driver) Duration() float64 {
	return float64(d.curve.Len()) / d.settings.Speed
}

// Progress is the revealed fraction of the curve in [0, 1].
func (d *Driver) Progress() float64 {
	return float64(d.reveal) / float64(d.curve.Len())
}

// VisibleSegments is the number of segments the next Render draws.
func (d *Driver) VisibleSegments() int {
	return max(d.reveal-1, 0)
}

// RevealedPoints returns a copy of the points revealed so far.
func (d *Driver) RevealedPoints() []geom.Point {
	return d.curve.Points()[:d.reveal]
}

// Advance recomputes the reveal index from the host's elapsed frame count.
// The index never exceeds the curve length and never moves backwards, even
// if the host counter restarts.
func (d *Driver) Advance(elapsed uint64) {
	d.reveal = max(d.reveal, d.revealAt(elapsed))
}

func (d *Driver) revealAt(elapsed uint64) int {
	n := d.curve.Len()
	if d.tween == nil {
		v := math.Floor(float64(elapsed) * d.settings.Speed)
		if v >= float64(n) {
			return n
		}
		return int(v)
	}
	p := easing.Progress(d.tween, float64(elapsed), d.Duration())
	return min(int(math.Floor(p*float64(n))), n)
}

// Render returns the commands for one frame. The first call after
// construction or Reset emits the backdrop; every call emits the revealed
// segments.
func (d *Driver) Render(frame uint64) Frame {
	f := Frame{Index: frame, Commands: make([]Command, 0, d.VisibleSegments()+5)}
	if !d.initialized {
		f.Commands = append(f.Commands, d.backdrop()...)
		d.initialized = true
	}

	s := d.settings
	for i := 0; i < d.VisibleSegments(); i++ {
		from, to := d.curve.Segment(i)
		f.Commands = append(f.Commands, Command{
			Kind:  KindLine,
			Layer: LayerCurve,
			From:  from,
			To:    to,
			Color: s.Palette.Curve,
			Width: s.CurveWidth,
		})
	}
	return f
}

func (d *Driver) backdrop() []Command {
	s := d.settings
	xEnd := d.bounds.X1 - s.AxisOffset
	yEnd := d.bounds.Y1 - s.AxisOffset
	origin := geom.Pt(0, 0)

	line := func(to geom.Point) Command {
		return Command{Kind: KindLine, Layer: LayerBackdrop, From: origin, To: to, Color: s.Palette.Axis, Width: s.AxisWidth}
	}
	label := func(text string, at geom.Point) Command {
		return Command{Kind: KindText, Layer: LayerBackdrop, Text: text, At: at, Color: s.Palette.Label, Size: s.LabelSize}
	}

	return []Command{
		{Kind: KindClear, Layer: LayerBackdrop, Color: s.Palette.Background},
		line(geom.Pt(xEnd, 0)),
		line(geom.Pt(0, yEnd)),
		label("X", geom.Pt(xEnd, labelInset)),
		label("Y", geom.Pt(labelInset, yEnd)),
	}
}

// Tick runs one host frame: advance, render, draw and present.
func (d *Driver) Tick(s Surface, frame uint64) error {
	d.Advance(frame)
	return Draw(s, d.Render(frame))
}

// Reset returns the driver to its initializing phase so the next Render
// redraws the backdrop and the reveal starts over.
func (d *Driver) Reset() {
	d.reveal = 0
	d.initialized = false
}

// Simulate ticks d for frames 0 through last inclusive.
func Simulate(d *Driver, s Surface, last uint64) error {
	for frame := uint64(0); frame <= last; frame++ {
		if err := d.Tick(s, frame); err != nil {
			return err
		}
	}
	return nil
}
