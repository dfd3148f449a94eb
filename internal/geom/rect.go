package geom

// Rect is an axis-aligned rectangle. Constructors keep X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect returns the rectangle spanning both corners, normalised so that
// width and height are non-negative.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: min(x0, x1),
		Y0: min(y0, y1),
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// NewRectFromCenter returns a w×h rectangle centered on c.
func NewRectFromCenter(c Point, w, h float64) Rect {
	return NewRect(c.X-w/2, c.Y-h/2, c.X+w/2, c.Y+h/2)
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Pad insets r by amount on every side. When the padding exceeds half of an
// extent, that extent collapses onto the center line.
func (r Rect) Pad(amount float64) Rect {
	c := r.Center()
	out := Rect{X0: r.X0 + amount, Y0: r.Y0 + amount, X1: r.X1 - amount, Y1: r.Y1 - amount}
	if out.X0 > out.X1 {
		out.X0, out.X1 = c.X, c.X
	}
	if out.Y0 > out.Y1 {
		out.Y0, out.Y1 = c.Y, c.Y
	}
	return out
}

// IsFinite reports whether every edge of r is finite.
func (r Rect) IsFinite() bool {
	return Pt(r.X0, r.Y0).IsFinite() && Pt(r.X1, r.Y1).IsFinite()
}

// ToScreen converts a canvas-space point into top-left pixel coordinates for
// a screen of the same size as r.
func (r Rect) ToScreen(p Point) (float64, float64) {
	return p.X - r.X0, r.Y1 - p.Y
}
