package font

import "golang.org/x/text/encoding/charmap"

// CodePage850 is the 5x8 MS-DOS code page 850 font.
// Runes are mapped to codes through the code page 850 character map.
var CodePage850 *Font

func init() {
	f, err := newNamed("CodePage850", 5, 8, cp850Glyphs[:], charmap.CodePage850)
	if err != nil {
		panic(err)
	}
	CodePage850 = f
}
