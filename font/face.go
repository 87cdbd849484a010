package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// firstPrintable is the first code FromFace renders; control codes stay blank.
const firstPrintable = 0x20

// FromFace rasterises code points 0x20 to 0xFF of face into a
// columns x rows font. Glyphs sit on a baseline at the face ascent and are
// cut to the cell. Codes map to runes one to one.
func FromFace(face xfont.Face, columns, rows int) (*Font, error) {
	if columns < 1 || rows < 1 || rows > MaxRows {
		return nil, fmt.Errorf("%w: cell %dx%d", ErrInvalidFont, columns, rows)
	}

	cell := image.NewGray(image.Rect(0, 0, columns, rows))
	d := &xfont.Drawer{
		Dst:  cell,
		Src:  image.White,
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()

	table := make([]uint32, 256*columns)
	for code := firstPrintable; code < 256; code++ {
		clear(cell.Pix)
		d.Dot = fixed.P(0, ascent)
		d.DrawString(string(rune(code)))

		base := code * columns
		for x := 0; x < columns; x++ {
			var mask uint32
			for y := 0; y < rows; y++ {
				if cell.GrayAt(x, y).Y >= 0x80 {
					mask |= 1 << y
				}
			}
			table[base+x] = mask
		}
	}
	return newNamed("Face", columns, rows, table, nil)
}
