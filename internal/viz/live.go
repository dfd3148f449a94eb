package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/config"
)

const (
	width  = 80
	height = 24
)

type TickMsg time.Time

// Model owns the driver, the terminal canvas and the frame clock.
type Model struct {
	cfg      *config.Config
	driver   *anim.Driver
	canvas   *Canvas
	surface  *BrailleSurface
	frame    uint64
	running  bool
	showHelp bool
	theme    Theme
	err      error
}

// NewModel wraps d in a terminal host. The canvas maps the driver's full
// bounds onto an 80x24 cell Braille grid.
func NewModel(cfg *config.Config, d *anim.Driver) Model {
	canvas := NewCanvas(width, height)
	return Model{
		cfg:     cfg,
		driver:  d,
		canvas:  canvas,
		surface: NewBrailleSurface(canvas, d.Bounds()),
		running: true,
		theme:   GetTheme(cfg.Theme),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.Canvas.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and runs one driver frame per tick while running.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.driver.Reset()
			m.frame = 0
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if err := m.driver.Tick(m.surface, m.frame); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.frame++
		}
		return m, m.tick()
	}
	return m, nil
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Frame returns the next frame index the clock will render.
func (m Model) Frame() uint64 { return m.frame }

func (m Model) Running() bool { return m.running }

func (m Model) Theme() Theme { return m.theme }

func (m Model) View() string {
	canvasStyle := lipgloss.NewStyle().Padding(1, 2).Foreground(m.theme.Curve)
	statsStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(m.theme.Border).Padding(1, 2).Width(45)
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	graphStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(2)

	d := m.driver
	var s strings.Builder
	s.WriteString(headerStyle.Render("CURVESKETCH") + "\n")

	status := "RUNNING"
	switch {
	case !m.running:
		status = "PAUSED"
	case d.Done():
		status = "DONE"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if pts := d.RevealedPoints(); len(pts) > 1 {
		ys := make([]float64, len(pts))
		for i, p := range pts {
			ys[i] = p.Y
		}
		chart := asciigraph.Plot(ys, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("revealed y"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.frame))
	row("Reveal", fmt.Sprintf("%d/%d", d.Reveal(), d.Curve().Len()))
	row("Segments", fmt.Sprintf("%d", d.VisibleSegments()))
	row("Progress", progressBar(d.Progress(), 20))
	row("Curve", d.Curve().Quadratic().String())
	row("Speed", fmt.Sprintf("%g pts/frame", d.Settings().Speed))
	row("Ease", d.Settings().Ease)
	row("Theme", m.theme.Name)

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\nT:Theme  ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.String()), statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart the reveal       ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q/Esc    - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func progressBar(ratio float64, barWidth int) string {
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio * float64(barWidth))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + fmt.Sprintf("] %3.0f%%", ratio*100)
}

// Run starts the terminal host and blocks until the user quits. A frame that
// fails to present ends the program with that error.
func Run(cfg *config.Config) error {
	d, err := anim.FromConfig(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(cfg, d), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
