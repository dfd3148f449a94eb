package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/geom"
)

// errWriter remembers the first write error, since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG renders a display list in canvas space as an SVG document the
// size of bounds.
func WriteSVG(w io.Writer, bounds geom.Rect, cmds []anim.Command) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width, height := int(math.Round(bounds.Width())), int(math.Round(bounds.Height()))
	canvas.Start(width, height)
	canvas.Title("curvesketch")

	px := func(p geom.Point) (int, int) {
		x, y := bounds.ToScreen(p)
		return int(math.Round(x)), int(math.Round(y))
	}

	for _, c := range cmds {
		switch c.Kind {
		case anim.KindClear:
			canvas.Rect(0, 0, width, height, "fill:"+hex(c.Color))
		case anim.KindLine:
			x0, y0 := px(c.From)
			x1, y1 := px(c.To)
			canvas.Line(x0, y0, x1, y1, fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round", hex(c.Color), c.Width))
		case anim.KindText:
			x, y := px(c.At)
			canvas.Text(x, y, c.Text, fmt.Sprintf("fill:%s;font-size:%gpx;font-family:sans-serif", hex(c.Color), c.Size))
		}
	}

	canvas.End()
	return ew.err
}

// WriteSVGFrame composites frames 0 through frame of d and writes the
// resulting canvas.
func WriteSVGFrame(w io.Writer, d *anim.Driver, frame uint64) error {
	r := anim.NewRecorder()
	if err := anim.Simulate(d, r, frame); err != nil {
		return err
	}
	return WriteSVG(w, d.Bounds(), r.Commands())
}

func hex(c color.RGBA) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cf.Hex()
}
