package font

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestDecodeTextFixed(t *testing.T) {
	// These glyphs are uniformly 3x2.
	var document = `A  [X X]
A  [ X ]
B  [XXX]
B  [X  ]
`
	f, err := DecodeText(strings.NewReader(document), nil)
	if err != nil {
		t.Fatal(err)
	}

	if f.Columns() != 3 {
		t.Error("unexpected font columns", f.Columns())
	}
	if f.Rows() != 2 {
		t.Error("unexpected font rows", f.Rows())
	}
	if f.Coverage() != 'B'+1 {
		t.Error("unexpected coverage", f.Coverage())
	}

	assertGlyph(t, f, 'A', 0b01, 0b10, 0b01)
	assertGlyph(t, f, 'B', 0b11, 0b01, 0b01)
	assertGlyph(t, f, '@', 0, 0, 0)
}

func TestDecodeTextVariable(t *testing.T) {
	// These glyphs vary in both width and height.
	var document = `A  [X]
A  [ ]
C  [  XXX]
C  [XX   ]
C  [XX   ]
C  [  XXX]
`
	f, err := DecodeText(strings.NewReader(document), nil)
	if err != nil {
		t.Fatal(err)
	}

	if f.Columns() != 5 {
		t.Error("unexpected font columns", f.Columns())
	}
	if f.Rows() != 4 {
		t.Error("unexpected font rows", f.Rows())
	}

	assertGlyph(t, f, 'A', 0b0001, 0, 0, 0, 0)
	assertGlyph(t, f, 'C', 0b0110, 0b0110, 0b1001, 0b1001, 0b1001)
}

func TestDecodeTextEncoding(t *testing.T) {
	var document = "é  [X]\n"
	f, err := DecodeText(strings.NewReader(document), charmap.CodePage850)
	if err != nil {
		t.Fatal(err)
	}
	if f.Coverage() != 0x83 {
		t.Errorf("coverage = %#x, want 0x83", f.Coverage())
	}
	assertGlyph(t, f, 'é', 0b1)
}

func TestDecodeTextErrors(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{"empty", ""},
		{"no brackets", "A  XX\n"},
		{"code above 255", "Ā  [X]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeText(strings.NewReader(tt.document), nil); !errors.Is(err, ErrInvalidFont) {
				t.Errorf("error = %v, want ErrInvalidFont", err)
			}
		})
	}
}
