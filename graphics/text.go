package graphics

import "unicode/utf8"

// Text draws s left to right from (x, y), advancing f.Columns() pixels
// per character. Lit glyph bits are set, column by column and top to
// bottom within a column; unlit bits are left alone.
//
// Every character is looked up before the first pixel is written. If any
// lookup fails nothing is drawn and the lookup error is returned; for
// *font.Font that error wraps ErrGlyphNotFound.
func (g *Graphics) Text(x, y int, f Font, s string) error {
	return g.text(x, y, f, s, false)
}

// TextOpaque is like Text but also clears the unlit bits of every
// character cell.
func (g *Graphics) TextOpaque(x, y int, f Font, s string) error {
	return g.text(x, y, f, s, true)
}

// TextWidth returns the width in pixels of s drawn in f.
func TextWidth(f Font, s string) int {
	return utf8.RuneCountInString(s) * f.Columns()
}

func (g *Graphics) text(x, y int, f Font, s string, opaque bool) error {
	masks, err := glyphMasks(f, s)
	if err != nil {
		Logger().Debug("graphics: text rejected", "text", s, "err", err)
		return err
	}

	rows := f.Rows()
	for i, mask := range masks {
		for r := 0; r < rows; r++ {
			on := mask&(1<<r) != 0
			if on || opaque {
				g.sink.SetPixel(x+i, y+r, on)
			}
		}
	}
	return nil
}

// glyphMasks resolves every column of every character of s.
func glyphMasks(f Font, s string) ([]uint32, error) {
	cols := f.Columns()
	masks := make([]uint32, 0, utf8.RuneCountInString(s)*cols)
	for _, r := range s {
		code, err := f.Code(r)
		if err != nil {
			return nil, err
		}
		for c := 0; c < cols; c++ {
			m, err := f.GlyphColumn(code, c)
			if err != nil {
				return nil, err
			}
			masks = append(masks, m)
		}
	}
	return masks, nil
}
