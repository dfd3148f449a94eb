// Package ebitenhost runs the curve animation in an Ebitengine window.
package ebitenhost

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/config"
	"github.com/san-kum/curvesketch/internal/geom"
	"golang.org/x/image/font/gofont/goregular"
)

var errNoScreen = errors.New("ebitenhost: no screen to present to")

// Game implements ebiten.Game. The reveal advances once per Update, which
// Ebitengine calls at the configured TPS; Draw follows the display refresh
// rate and only renders.
type Game struct {
	clock  *anim.Clock
	canvas *ebiten.Image
	screen *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	bounds geom.Rect
	err    error
}

var _ anim.Surface = (*Game)(nil)

// NewGame prepares an offscreen canvas the size of the driver's bounds.
func NewGame(d *anim.Driver) (*Game, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: failed to parse font: %w", err)
	}
	b := d.Bounds()
	return &Game{
		clock:  anim.NewClock(d),
		canvas: ebiten.NewImage(int(b.Width()), int(b.Height())),
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
		bounds: b,
	}, nil
}

// Run opens a window and animates cfg until it is closed.
func Run(cfg *config.Config) error {
	d, err := anim.FromConfig(cfg)
	if err != nil {
		return err
	}
	g, err := NewGame(d)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
	ebiten.SetWindowTitle(cfg.Canvas.Title)
	ebiten.SetTPS(cfg.Canvas.FPS)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.clock.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	g.screen = screen
	if err := anim.Draw(g, g.clock.Frame()); err != nil {
		g.err = err
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.bounds.Width()), int(g.bounds.Height())
}

func (g *Game) Clear(c color.RGBA) {
	g.canvas.Fill(c)
}

func (g *Game) Line(from, to geom.Point, c color.RGBA, width float64) {
	x0, y0 := g.bounds.ToScreen(from)
	x1, y1 := g.bounds.ToScreen(to)
	vector.StrokeLine(g.canvas, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (g *Game) Text(s string, at geom.Point, c color.RGBA, size float64) {
	x, y := g.bounds.ToScreen(at)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(g.canvas, s, g.face(size), op)
}

func (g *Game) face(size float64) *text.GoTextFace {
	f, ok := g.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: g.source, Size: size}
		g.faces[size] = f
	}
	return f
}

// Present copies the persistent canvas onto the screen Ebitengine handed to
// Draw.
func (g *Game) Present() error {
	if g.screen == nil {
		return errNoScreen
	}
	g.screen.DrawImage(g.canvas, nil)
	return nil
}
