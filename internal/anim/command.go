package anim

import (
	"image/color"

	"github.com/san-kum/curvesketch/internal/geom"
)

// Kind identifies a draw primitive.
type Kind uint8

const (
	KindClear Kind = iota
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Layer tells the one-time backdrop apart from the curve drawn on top.
type Layer uint8

const (
	LayerBackdrop Layer = iota
	LayerCurve
)

// Command is a single draw primitive in canvas space. Only the fields
// relevant to Kind are set.
type Command struct {
	Kind  Kind
	Layer Layer
	From  geom.Point
	To    geom.Point
	At    geom.Point
	Text  string
	Color color.RGBA
	Width float64
	Size  float64
}

// Frame is the ordered command list for one rendered frame.
type Frame struct {
	Index    uint64
	Commands []Command
}

// Segments counts the curve segments in f.
func (f Frame) Segments() int {
	return f.count(LayerCurve)
}

// Backdrop counts the backdrop commands in f; zero on every frame after the
// first.
func (f Frame) Backdrop() int {
	return f.count(LayerBackdrop)
}

func (f Frame) count(l Layer) int {
	n := 0
	for _, c := range f.Commands {
		if c.Layer == l {
			n++
		}
	}
	return n
}
