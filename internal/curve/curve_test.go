package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/san-kum/curvesketch/internal/geom"
)

const tolerance = 1e-9

func TestGenerateExample(t *testing.T) {
	c, err := Generate(5, geom.NewRect(0, 0, 100, 100), Reference)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	want := []geom.Point{
		{X: 0, Y: 0},
		{X: 25, Y: 6.25},
		{X: 50, Y: 25},
		{X: 75, Y: 56.25},
		{X: 100, Y: 100},
	}
	if diff := cmp.Diff(want, c.Points(), cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateProperties(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		bounds geom.Rect
		q      Quadratic
	}{
		{"reference window", 200, geom.NewRectFromCenter(geom.Pt(0, 0), 1024, 768).Pad(50), Reference},
		{"two points", 2, geom.NewRect(-1, -1, 1, 1), Reference},
		{"linear term", 37, geom.NewRect(-3.5, 0, 12.25, 1), Quadratic{A: -0.5, B: 2, C: 7}},
		{"zero width", 10, geom.NewRect(4, 0, 4, 10), Reference},
		{"dense", 5000, geom.NewRect(-1e4, 0, 1e4, 1), Quadratic{A: 1e-6, B: 0.1, C: -3}},
	}

	for _, tt := range tests {
		c, err := Generate(tt.count, tt.bounds, tt.q)
		if err != nil {
			t.Fatalf("%s: generate failed: %v", tt.name, err)
		}

		if c.Len() != tt.count {
			t.Errorf("%s: expected %d points, got %d", tt.name, tt.count, c.Len())
		}
		if c.At(0).X != tt.bounds.X0 {
			t.Errorf("%s: first x %g, expected %g", tt.name, c.At(0).X, tt.bounds.X0)
		}
		if c.At(c.Len()-1).X != tt.bounds.X1 {
			t.Errorf("%s: last x %g, expected %g", tt.name, c.At(c.Len()-1).X, tt.bounds.X1)
		}

		for i := 0; i < c.Len(); i++ {
			p := c.At(i)
			if i > 0 && p.X < c.At(i-1).X {
				t.Errorf("%s: x decreased at %d: %g < %g", tt.name, i, p.X, c.At(i-1).X)
			}
			want := tt.q.A*p.X*p.X + tt.q.B*p.X + tt.q.C
			if math.Abs(p.Y-want) > tolerance*math.Max(1, math.Abs(want)) {
				t.Errorf("%s: point %d y=%g, expected %g", tt.name, i, p.Y, want)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	bounds := geom.NewRect(-462, -334, 462, 334)
	a, err := Generate(200, bounds, Reference)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := Generate(200, bounds, Reference)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if diff := cmp.Diff(a.Points(), b.Points()); diff != "" {
		t.Errorf("repeated generation differs:\n%s", diff)
	}
}

func TestGenerateRejectsDegenerateInput(t *testing.T) {
	bounds := geom.NewRect(0, 0, 100, 100)

	for _, count := range []int{-1, 0, 1} {
		c, err := Generate(count, bounds, Reference)
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("count %d: expected ErrTooFewPoints, got %v", count, err)
		}
		if c != nil {
			t.Errorf("count %d: expected nil curve", count)
		}
	}

	_, err := Generate(10, geom.Rect{X0: math.NaN(), X1: 1}, Reference)
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	c, err := Generate(3, geom.NewRect(0, 0, 2, 2), Reference)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	pts := c.Points()
	pts[0] = geom.Pt(99, 99)

	if c.At(0) == geom.Pt(99, 99) {
		t.Error("mutating Points() result changed the curve")
	}
}

func TestSegmentAndBounds(t *testing.T) {
	c, err := Generate(3, geom.NewRect(-10, 0, 10, 0), Reference)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	a, b := c.Segment(1)
	if a.X != 0 || b.X != 10 {
		t.Errorf("segment 1: expected x 0 -> 10, got %g -> %g", a.X, b.X)
	}

	want := geom.Rect{X0: -10, Y0: 0, X1: 10, Y1: 1}
	if diff := cmp.Diff(want, c.Bounds(), cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPoints(t *testing.T) {
	if _, err := FromPoints([]geom.Point{{X: 1}}, Reference); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}

	src := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	c, err := FromPoints(src, Reference)
	if err != nil {
		t.Fatalf("from points failed: %v", err)
	}
	src[0].X = 42
	if c.At(0).X != 0 {
		t.Error("FromPoints should copy its input")
	}
}
