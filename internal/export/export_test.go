package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/gif"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/config"
	"github.com/san-kum/curvesketch/internal/curve"
	"github.com/san-kum/curvesketch/internal/geom"
)

func newDriver(t *testing.T, points int, speed float64) *anim.Driver {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Curve.Points = points
	cfg.Animation.Speed = speed
	d, err := anim.FromConfig(cfg)
	if err != nil {
		t.Fatalf("driver setup failed: %v", err)
	}
	return d
}

func TestWriteSVGFrame(t *testing.T) {
	d := newDriver(t, 20, 0.5)

	var buf bytes.Buffer
	if err := WriteSVGFrame(&buf, d, 10); err != nil {
		t.Fatalf("svg export failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// 2 axes + 4 segments at reveal 5
	if n := strings.Count(out, "<line"); n != 6 {
		t.Errorf("expected 6 lines, got %d", n)
	}
	if n := strings.Count(out, "#ff0000"); n != 4 {
		t.Errorf("expected 4 red segments, got %d", n)
	}
	if !strings.Contains(out, ">X</text>") || !strings.Contains(out, ">Y</text>") {
		t.Error("expected axis labels")
	}
	if !strings.Contains(out, `width="1024" height="768"`) {
		t.Error("expected canvas-sized document")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteError(t *testing.T) {
	err := WriteSVG(failingWriter{}, geom.NewRect(0, 0, 10, 10), nil)
	if err == nil {
		t.Error("expected write error")
	}
}

func TestWriteGIF(t *testing.T) {
	d := newDriver(t, 10, 1)

	var buf bytes.Buffer
	opts := GIFOptions{Every: 3, Delay: 2, Scale: 0.25}
	if err := WriteGIF(&buf, d, opts); err != nil {
		t.Fatalf("gif export failed: %v", err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	// frames 0, 3, 6, 9 and the completing frame 10
	if len(g.Image) != 5 {
		t.Errorf("expected 5 gif frames, got %d", len(g.Image))
	}
	if b := g.Image[0].Bounds(); b.Dx() != 256 || b.Dy() != 192 {
		t.Errorf("expected 256x192 frames, got %dx%d", b.Dx(), b.Dy())
	}
	if !d.Done() {
		t.Error("driver should be fully revealed after export")
	}
}

func TestRasterSurfaceDrawsCurve(t *testing.T) {
	d := newDriver(t, 50, 1)
	s := NewRasterSurface(d.Bounds(), 1)

	if err := anim.Simulate(d, s, 60); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	// the vertex of y = 0.01x^2 sits on the canvas origin
	x, y := d.Bounds().ToScreen(geom.Pt(0, 0))
	c := s.Image().RGBAAt(int(x), int(y)-1)
	if c.R < 0x80 || c.G > 0x80 {
		t.Errorf("expected red near the vertex, got %+v", c)
	}

	corner := s.Image().RGBAAt(1, 1)
	if corner.R != 0xff || corner.G != 0xff || corner.B != 0xff {
		t.Errorf("expected white background, got %+v", corner)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	c, err := curve.Generate(25, geom.NewRect(-3, 0, 7, 0), curve.Quadratic{A: 0.3, B: -1, C: 2})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, c); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "i,x,y\n") {
		t.Errorf("missing header: %q", buf.String()[:10])
	}

	points, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if diff := cmp.Diff(c.Points(), points, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSVRejectsGarbage(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("i,x,y\n0,abc,1\n"))
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestWriteJSON(t *testing.T) {
	c, err := curve.Generate(5, geom.NewRect(0, 0, 100, 100), curve.Reference)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, c); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded jsonCurve
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Quadratic != curve.Reference {
		t.Errorf("expected reference quadratic, got %+v", decoded.Quadratic)
	}
	if len(decoded.Points) != 5 || decoded.Points[2].X != 50 {
		t.Errorf("unexpected points: %+v", decoded.Points)
	}
}
