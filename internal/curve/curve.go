package curve

import (
	"fmt"
	"math"

	"github.com/san-kum/curvesketch/internal/geom"
)

// Curve is an ordered, read-only sequence of sampled points.
type Curve struct {
	points []geom.Point
	q      Quadratic
}

// Generate samples q at count evenly spaced x values spanning
// [bounds.X0, bounds.X1]. The first sample sits exactly on X0 and the last
// exactly on X1.
func Generate(count int, bounds geom.Rect, q Quadratic) (*Curve, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, count)
	}
	if !bounds.IsFinite() {
		return nil, ErrInvalidBounds
	}

	last := count - 1
	points := make([]geom.Point, count)
	for i := range points {
		x := geom.MapRange(float64(i), 0, float64(last), bounds.X0, bounds.X1)
		if i == last {
			x = bounds.X1
		}
		points[i] = geom.Point{X: x, Y: q.At(x)}
	}

	return &Curve{points: points, q: q}, nil
}

// Len returns the number of samples.
func (c *Curve) Len() int { return len(c.points) }

// At returns the i-th sample.
func (c *Curve) At(i int) geom.Point { return c.points[i] }

// Quadratic returns the polynomial the curve was sampled from.
func (c *Curve) Quadratic() Quadratic { return c.q }

// Points returns a copy of the samples.
func (c *Curve) Points() []geom.Point {
	out := make([]geom.Point, len(c.points))
	copy(out, c.points)
	return out
}

// Segment returns the endpoints of the i-th line segment, joining samples i
// and i+1. Valid for 0 <= i < Len()-1.
func (c *Curve) Segment(i int) (geom.Point, geom.Point) {
	return c.points[i], c.points[i+1]
}

// Ys returns the y values in order.
func (c *Curve) Ys() []float64 {
	ys := make([]float64, len(c.points))
	for i, p := range c.points {
		ys[i] = p.Y
	}
	return ys
}

// Bounds returns the tightest rectangle containing every sample.
func (c *Curve) Bounds() geom.Rect {
	r := geom.Rect{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
	for _, p := range c.points {
		r.X0 = min(r.X0, p.X)
		r.Y0 = min(r.Y0, p.Y)
		r.X1 = max(r.X1, p.X)
		r.Y1 = max(r.Y1, p.Y)
	}
	return r
}

// FromPoints wraps previously generated samples, e.g. ones read back from
// storage. The slice is copied.
func FromPoints(points []geom.Point, q Quadratic) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	out := make([]geom.Point, len(points))
	copy(out, points)
	return &Curve{points: out, q: q}, nil
}
