package export

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const coordLimit = 1 << 16

// RasterSurface is an anim.Surface backed by an RGBA image. Lines are filled
// as quads through golang.org/x/image/vector; labels use the fixed 7x13
// bitmap face, so the requested font size is ignored.
type RasterSurface struct {
	img    *image.RGBA
	bounds geom.Rect
	scale  float64
	raster *vector.Rasterizer
}

var _ anim.Surface = (*RasterSurface)(nil)

func NewRasterSurface(bounds geom.Rect, scale float64) *RasterSurface {
	if scale <= 0 {
		scale = 1
	}
	w := max(1, int(math.Round(bounds.Width()*scale)))
	h := max(1, int(math.Round(bounds.Height()*scale)))
	return &RasterSurface{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		bounds: bounds,
		scale:  scale,
		raster: vector.NewRasterizer(w, h),
	}
}

func (s *RasterSurface) project(p geom.Point) (float32, float32) {
	x, y := s.bounds.ToScreen(p)
	clamp := func(v float64) float32 {
		return float32(min(max(v*s.scale, -coordLimit), coordLimit))
	}
	return clamp(x), clamp(y)
}

func (s *RasterSurface) Clear(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *RasterSurface) Line(from, to geom.Point, c color.RGBA, width float64) {
	x0, y0 := s.project(from)
	x1, y1 := s.project(to)
	dx, dy := float64(x1-x0), float64(y1-y0)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := max(width*s.scale, 1) / 2
	nx, ny := float32(-dy/length*half), float32(dx/length*half)

	b := s.img.Bounds()
	s.raster.Reset(b.Dx(), b.Dy())
	s.raster.MoveTo(x0+nx, y0+ny)
	s.raster.LineTo(x1+nx, y1+ny)
	s.raster.LineTo(x1-nx, y1-ny)
	s.raster.LineTo(x0-nx, y0-ny)
	s.raster.ClosePath()
	s.raster.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

func (s *RasterSurface) Text(text string, at geom.Point, c color.RGBA, _ float64) {
	x, y := s.project(at)
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(text)
}

func (s *RasterSurface) Present() error { return nil }

// Image returns the live canvas.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

// Paletted snapshots the canvas into a Plan 9 paletted image.
func (s *RasterSurface) Paletted() *image.Paletted {
	p := image.NewPaletted(s.img.Bounds(), palette.Plan9)
	draw.Draw(p, p.Bounds(), s.img, image.Point{}, draw.Src)
	return p
}

type GIFOptions struct {
	// Every samples one GIF frame per this many driver frames.
	Every uint64
	// Delay between GIF frames, in hundredths of a second.
	Delay int
	// Scale multiplies the canvas size.
	Scale float64
	// MaxFrames caps the number of GIF frames; zero means no cap.
	MaxFrames int
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Every: 4, Delay: 4, Scale: 0.5, MaxFrames: 500}
}

// WriteGIF ticks d from frame 0 until the curve is fully revealed, sampling
// the canvas every opts.Every frames. The final, complete frame is always
// included.
func WriteGIF(w io.Writer, d *anim.Driver, opts GIFOptions) error {
	every := max(opts.Every, 1)
	s := NewRasterSurface(d.Bounds(), opts.Scale)
	out := &gif.GIF{LoopCount: 0}

	for frame := uint64(0); ; frame++ {
		if err := d.Tick(s, frame); err != nil {
			return err
		}
		done := d.Done()
		if frame%every == 0 || done {
			out.Image = append(out.Image, s.Paletted())
			out.Delay = append(out.Delay, opts.Delay)
		}
		if done || (opts.MaxFrames > 0 && len(out.Image) >= opts.MaxFrames) {
			break
		}
	}

	return gif.EncodeAll(w, out)
}
