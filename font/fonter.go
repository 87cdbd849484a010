package font

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Fonter exposes f through the tinyfont API so it can be used with
// tinyfont.WriteLine and friends on any drivers.Displayer. Runes without a
// glyph are drawn as '?'. The glyph top sits rows-1 pixels above the
// baseline passed to Draw.
func Fonter(f *Font) tinyfont.Fonter {
	return fonter{f: f}
}

type fonter struct {
	f *Font
}

func (t fonter) GetYAdvance() uint8 { return uint8(t.f.rows) }

func (t fonter) GetGlyph(r rune) tinyfont.Glypher {
	code, err := t.f.Code(r)
	if err != nil {
		code, err = t.f.Code('?')
		if err != nil {
			code = -1
		}
	}
	return glypher{f: t.f, r: r, code: code}
}

type glypher struct {
	f    *Font
	r    rune
	code int
}

func (g glypher) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	if g.code < 0 {
		return
	}
	top := y - int16(g.f.rows-1)
	base := g.code * g.f.columns
	for col := 0; col < g.f.columns; col++ {
		mask := g.f.table[base+col]
		for row := 0; row < g.f.rows; row++ {
			if mask&(1<<row) != 0 {
				display.SetPixel(x+int16(col), top+int16(row), c)
			}
		}
	}
}

func (g glypher) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(g.f.columns),
		Height:   uint8(g.f.rows),
		XAdvance: uint8(g.f.columns),
		XOffset:  0,
		YOffset:  -int8(g.f.rows - 1),
	}
}
