package viz

import (
	"image/color"
	"math"

	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/geom"
)

// BrailleSurface draws canvas-space primitives onto a Canvas, scaling the
// bounds rectangle to the canvas' sub-pixel grid. The canvas is monochrome,
// so colors are dropped; strokes of width 2 or more are doubled.
type BrailleSurface struct {
	canvas   *Canvas
	bounds   geom.Rect
	presents int
}

var _ anim.Surface = (*BrailleSurface)(nil)

func NewBrailleSurface(c *Canvas, bounds geom.Rect) *BrailleSurface {
	return &BrailleSurface{canvas: c, bounds: bounds}
}

// project maps a canvas-space point to sub-pixel coordinates.
func (s *BrailleSurface) project(p geom.Point) (int, int) {
	pw, ph := s.canvas.PixelSize()
	x := geom.MapRange(p.X, s.bounds.X0, s.bounds.X1, 0, float64(pw-1))
	y := geom.MapRange(p.Y, s.bounds.Y1, s.bounds.Y0, 0, float64(ph-1))
	return clampPixel(x), clampPixel(y)
}

func (s *BrailleSurface) Clear(color.RGBA) {
	s.canvas.Clear()
}

func (s *BrailleSurface) Line(from, to geom.Point, _ color.RGBA, width float64) {
	x0, y0 := s.project(from)
	x1, y1 := s.project(to)
	s.canvas.DrawLine(x0, y0, x1, y1)
	if width >= 2 {
		s.canvas.DrawLine(x0, y0+1, x1, y1+1)
	}
}

func (s *BrailleSurface) Text(text string, at geom.Point, _ color.RGBA, _ float64) {
	x, y := s.project(at)
	s.canvas.DrawText(x/2, y/4, text)
}

func (s *BrailleSurface) Present() error {
	s.presents++
	return nil
}

// Presents returns how many frames have been presented.
func (s *BrailleSurface) Presents() int { return s.presents }

// clampPixel rounds v and keeps far off-canvas points within int range; the
// canvas clips anything outside its grid.
func clampPixel(v float64) int {
	const limit = 1 << 20
	if math.IsNaN(v) {
		return -limit
	}
	return int(math.Round(max(-limit, min(limit, v))))
}
