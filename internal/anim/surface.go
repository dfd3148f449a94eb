package anim

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/san-kum/curvesketch/internal/geom"
)

// ErrPresent wraps a failure to flush a frame to the output. Hosts treat it
// as fatal.
var ErrPresent = errors.New("anim: present failed")

// Surface is the host canvas. Implementations must keep previously drawn
// content until Clear is called.
type Surface interface {
	Clear(c color.RGBA)
	Line(from, to geom.Point, c color.RGBA, width float64)
	Text(s string, at geom.Point, c color.RGBA, size float64)
	Present() error
}

// Draw replays f onto s and presents it.
func Draw(s Surface, f Frame) error {
	for _, c := range f.Commands {
		Apply(s, c)
	}
	if err := s.Present(); err != nil {
		return fmt.Errorf("%w: frame %d: %w", ErrPresent, f.Index, err)
	}
	return nil
}

// Apply issues a single command against s.
func Apply(s Surface, c Command) {
	switch c.Kind {
	case KindClear:
		s.Clear(c.Color)
	case KindLine:
		s.Line(c.From, c.To, c.Color, c.Width)
	case KindText:
		s.Text(c.Text, c.At, c.Color, c.Size)
	}
}

// Recorder is an in-memory Surface that keeps the composited display list of
// a persistent canvas: Clear empties it and a primitive already on the
// canvas is not recorded twice.
type Recorder struct {
	commands []Command
	seen     map[Command]struct{}
	frames   int
}

func NewRecorder() *Recorder {
	return &Recorder{seen: make(map[Command]struct{})}
}

func (r *Recorder) Clear(c color.RGBA) {
	r.commands = r.commands[:0]
	clear(r.seen)
	r.add(Command{Kind: KindClear, Color: c})
}

func (r *Recorder) Line(from, to geom.Point, c color.RGBA, width float64) {
	r.add(Command{Kind: KindLine, From: from, To: to, Color: c, Width: width})
}

func (r *Recorder) Text(s string, at geom.Point, c color.RGBA, size float64) {
	r.add(Command{Kind: KindText, Text: s, At: at, Color: c, Size: size})
}

func (r *Recorder) Present() error {
	r.frames++
	return nil
}

func (r *Recorder) add(c Command) {
	if _, ok := r.seen[c]; ok {
		return
	}
	r.seen[c] = struct{}{}
	r.commands = append(r.commands, c)
}

// Commands returns a copy of the composited display list.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Frames returns how many frames were presented.
func (r *Recorder) Frames() int { return r.frames }
