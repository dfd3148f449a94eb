package gui

import (
	"errors"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/config"
	"github.com/san-kum/curvesketch/internal/geom"
)

var errWindowClosed = errors.New("gui: window is not ready")

// App is the raylib host. Frames are drawn into a render texture that is
// never cleared by the host, so the backdrop emitted on the first frame stays
// under every later frame.
type App struct {
	Driver *anim.Driver
	Target rl.RenderTexture2D
	Frame  uint64

	bounds  geom.Rect
	drawing bool
}

var _ anim.Surface = (*App)(nil)

// initWindow opens the window and caps the frame rate at cfg's fps.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Canvas.Width), int32(cfg.Canvas.Height), cfg.Canvas.Title)
	rl.SetTargetFPS(int32(cfg.Canvas.FPS))
	rl.SetExitKey(rl.KeyQ)
}

// NewApp wraps d; the window must already be open.
func NewApp(d *anim.Driver) *App {
	b := d.Bounds()
	return &App{
		Driver: d,
		Target: rl.LoadRenderTexture(int32(b.Width()), int32(b.Height())),
		bounds: b,
	}
}

// Run opens a window and animates cfg until the window is closed.
func Run(cfg *config.Config) error {
	d, err := anim.FromConfig(cfg)
	if err != nil {
		return err
	}

	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(d)
	defer rl.UnloadRenderTexture(app.Target)
	return app.RunLoop()
}

func (a *App) RunLoop() error {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEscape) {
			return nil
		}
		if err := a.Driver.Tick(a, a.Frame); err != nil {
			return err
		}
		a.Frame++
	}
	return nil
}

func (a *App) begin() {
	if !a.drawing {
		rl.BeginTextureMode(a.Target)
		a.drawing = true
	}
}

func (a *App) screen(p geom.Point) rl.Vector2 {
	x, y := a.bounds.ToScreen(p)
	return rl.NewVector2(float32(x), float32(y))
}

func (a *App) Clear(c color.RGBA) {
	a.begin()
	rl.ClearBackground(toColor(c))
}

func (a *App) Line(from, to geom.Point, c color.RGBA, width float64) {
	a.begin()
	rl.DrawLineEx(a.screen(from), a.screen(to), float32(width), toColor(c))
}

func (a *App) Text(s string, at geom.Point, c color.RGBA, size float64) {
	a.begin()
	p := a.screen(at)
	rl.DrawText(s, int32(p.X), int32(p.Y), int32(size), toColor(c))
}

// Present closes the texture pass and blits the canvas to the window.
// Render textures are stored upside down, hence the negative source height.
func (a *App) Present() error {
	if a.drawing {
		rl.EndTextureMode()
		a.drawing = false
	}
	if !rl.IsWindowReady() {
		return errWindowClosed
	}

	w, h := float32(a.Target.Texture.Width), float32(a.Target.Texture.Height)
	rl.BeginDrawing()
	rl.DrawTextureRec(a.Target.Texture, rl.NewRectangle(0, 0, w, -h), rl.NewVector2(0, 0), rl.White)
	rl.EndDrawing()
	return nil
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
