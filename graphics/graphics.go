// Package graphics rasterises lines, rectangles, arcs, circles and bitmap
// text into single-pixel writes against a Sink.
//
// A Graphics value holds nothing but its sink and options, so it may be
// copied, rebuilt or shared freely. Every call issues its pixel writes
// synchronously in a fixed order and never clips: coordinates outside the
// panel are passed on and the sink decides what to do with them.
package graphics

import (
	"math"

	"lcdgfx/font"
)

// ErrGlyphNotFound is returned by the text operations for a character the
// font cannot draw.
var ErrGlyphNotFound = font.ErrGlyphNotFound

// Sink commits single pixel changes to a display surface.
type Sink interface {
	SetPixel(x, y int, on bool)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(x, y int, on bool)

// SetPixel calls f(x, y, on).
func (f SinkFunc) SetPixel(x, y int, on bool) { f(x, y, on) }

// Font is a fixed-cell bitmap font. *font.Font implements it.
type Font interface {
	Columns() int
	Rows() int
	// Code maps a rune to a character code of the font.
	Code(r rune) (int, error)
	// GlyphColumn returns the mask for one column of a glyph, bit r set
	// when row r is lit.
	GlyphColumn(code, col int) (uint32, error)
}

// LineMode selects how Line walks the minor axis of a sloped line.
type LineMode uint8

const (
	// LineSlope computes the minor coordinate of step i as
	// round(i * slope) from the start point.
	LineSlope LineMode = iota
	// LineBresenham accumulates an integer error term instead.
	LineBresenham
)

func (m LineMode) String() string {
	switch m {
	case LineSlope:
		return "slope"
	case LineBresenham:
		return "bresenham"
	}
	return "unknown"
}

// Option configures a Graphics.
type Option func(*Graphics)

// WithLineMode selects the rasteriser for sloped lines.
func WithLineMode(m LineMode) Option {
	return func(g *Graphics) { g.lineMode = m }
}

// Graphics draws onto a Sink.
type Graphics struct {
	sink     Sink
	lineMode LineMode
}

// New returns a Graphics drawing onto s.
func New(s Sink, opts ...Option) *Graphics {
	g := &Graphics{sink: s}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Sink returns the sink g draws onto.
func (g *Graphics) Sink() Sink { return g.sink }

func (g *Graphics) set(x, y int) { g.sink.SetPixel(x, y, true) }

// round rounds half up, so -0.5 becomes 0.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
