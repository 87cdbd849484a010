// Package font holds fixed-size monochrome bitmap fonts.
//
// A Font is a direct-indexed table of glyphs. Each glyph is a run of
// column masks; bit r of a mask (0 = top) is set when row r of that column
// is lit.
package font

import (
	"errors"
	"fmt"
)

// MaxRows is the tallest glyph a column mask can hold.
const MaxRows = 32

var (
	// ErrGlyphNotFound is returned for a character with no table entry.
	ErrGlyphNotFound = errors.New("font: glyph not found")

	// ErrInvalidFont is returned when a glyph table cannot form a font.
	ErrInvalidFont = errors.New("font: invalid glyph table")
)

// Encoding maps a rune to a single-byte character code.
// *charmap.Charmap from golang.org/x/text satisfies it.
type Encoding interface {
	EncodeRune(r rune) (b byte, ok bool)
}

// Font is an immutable glyph table.
type Font struct {
	name    string
	columns int
	rows    int
	table   []uint32
	enc     Encoding
}

// New builds a font from a flat table holding columns masks per code.
// The table is copied. A nil enc maps every rune to its own value.
func New(columns, rows int, table []uint32, enc Encoding) (*Font, error) {
	return newNamed("", columns, rows, table, enc)
}

func newNamed(name string, columns, rows int, table []uint32, enc Encoding) (*Font, error) {
	if columns < 1 {
		return nil, fmt.Errorf("%w: %d columns", ErrInvalidFont, columns)
	}
	if rows < 1 || rows > MaxRows {
		return nil, fmt.Errorf("%w: %d rows, want 1..%d", ErrInvalidFont, rows, MaxRows)
	}
	if len(table) == 0 || len(table)%columns != 0 {
		return nil, fmt.Errorf("%w: table length %d is not a multiple of %d", ErrInvalidFont, len(table), columns)
	}
	if rows < MaxRows {
		limit := uint32(1) << rows
		for i, m := range table {
			if m >= limit {
				return nil, fmt.Errorf("%w: code %d column %d has bits below row %d", ErrInvalidFont, i/columns, i%columns, rows)
			}
		}
	}

	t := make([]uint32, len(table))
	copy(t, table)
	return &Font{
		name:    name,
		columns: columns,
		rows:    rows,
		table:   t,
		enc:     enc,
	}, nil
}

// Columns returns the glyph width in pixels.
func (f *Font) Columns() int { return f.columns }

// Rows returns the glyph height in pixels.
func (f *Font) Rows() int { return f.rows }

// Coverage returns the number of character codes in the table.
func (f *Font) Coverage() int { return len(f.table) / f.columns }

// Code maps r to a character code of this font.
func (f *Font) Code(r rune) (int, error) {
	code := int(r)
	if f.enc != nil {
		b, ok := f.enc.EncodeRune(r)
		if !ok {
			return 0, fmt.Errorf("%w: rune %U has no code", ErrGlyphNotFound, r)
		}
		code = int(b)
	}
	if code < 0 || code >= f.Coverage() {
		return 0, fmt.Errorf("%w: rune %U (code %d)", ErrGlyphNotFound, r, code)
	}
	return code, nil
}

// GlyphColumn returns column col of the glyph for code.
func (f *Font) GlyphColumn(code, col int) (uint32, error) {
	if code < 0 || code >= f.Coverage() {
		return 0, fmt.Errorf("%w: code %d outside 0..%d", ErrGlyphNotFound, code, f.Coverage()-1)
	}
	if col < 0 || col >= f.columns {
		return 0, fmt.Errorf("%w: code %d column %d outside 0..%d", ErrGlyphNotFound, code, col, f.columns-1)
	}
	return f.table[code*f.columns+col], nil
}

// Glyph returns a copy of all column masks for code.
func (f *Font) Glyph(code int) ([]uint32, error) {
	if code < 0 || code >= f.Coverage() {
		return nil, fmt.Errorf("%w: code %d outside 0..%d", ErrGlyphNotFound, code, f.Coverage()-1)
	}
	g := make([]uint32, f.columns)
	copy(g, f.table[code*f.columns:])
	return g, nil
}

func (f *Font) String() string {
	name := f.name
	if name == "" {
		name = "Font"
	}
	return fmt.Sprintf("%s-%dx%d", name, f.columns, f.rows)
}
