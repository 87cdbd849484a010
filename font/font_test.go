package font

import (
	"errors"
	"testing"
)

func assertGlyph(t *testing.T, f *Font, ch rune, values ...uint32) {
	t.Helper()
	code, err := f.Code(ch)
	if err != nil {
		t.Fatalf("Code(%q): %v", ch, err)
	}
	for col, v := range values {
		got, err := f.GlyphColumn(code, col)
		if err != nil {
			t.Fatalf("GlyphColumn(%d, %d): %v", code, col, err)
		}
		if got != v {
			t.Errorf("character %c column %d: expected %08b got %08b", ch, col, v, got)
		}
	}
}

func TestCodePage850Shape(t *testing.T) {
	f := CodePage850
	if f.Columns() != 5 {
		t.Error("unexpected columns", f.Columns())
	}
	if f.Rows() != 8 {
		t.Error("unexpected rows", f.Rows())
	}
	if f.Coverage() != 256 {
		t.Error("unexpected coverage", f.Coverage())
	}
	if got := f.String(); got != "CodePage850-5x8" {
		t.Errorf("String() = %q", got)
	}
}

func TestCodePage850Glyphs(t *testing.T) {
	assertGlyph(t, CodePage850, 'A', 0x7E, 0x09, 0x09, 0x09, 0x7E)
	assertGlyph(t, CodePage850, 'P', 0x7F, 0x09, 0x09, 0x09, 0x06)
	assertGlyph(t, CodePage850, ' ', 0, 0, 0, 0, 0)
	assertGlyph(t, CodePage850, '!', 0x00, 0x00, 0x5F, 0x00, 0x00)
}

func TestCodePage850Encoding(t *testing.T) {
	tests := []struct {
		r    rune
		code int
	}{
		{'A', 0x41},
		{'~', 0x7E},
		{'Ç', 0x80},
		{'é', 0x82},
		{'ß', 0xE1},
		{'█', 0xDB},
	}
	for _, tt := range tests {
		got, err := CodePage850.Code(tt.r)
		if err != nil {
			t.Errorf("Code(%q): %v", tt.r, err)
			continue
		}
		if got != tt.code {
			t.Errorf("Code(%q) = %#x, want %#x", tt.r, got, tt.code)
		}
	}

	if _, err := CodePage850.Code('€'); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Code('€') error = %v, want ErrGlyphNotFound", err)
	}
}

func TestGlyphColumnOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		code, col int
	}{
		{"code past table", 256, 0},
		{"negative code", -1, 0},
		{"column past glyph", 'A', 5},
		{"negative column", 'A', -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CodePage850.GlyphColumn(tt.code, tt.col)
			if !errors.Is(err, ErrGlyphNotFound) {
				t.Fatalf("error = %v, want ErrGlyphNotFound", err)
			}
			if got != 0 {
				t.Errorf("returned mask %#x alongside an error", got)
			}
		})
	}
}

func TestSmallTableDoesNotAlias(t *testing.T) {
	// Two codes only: code 2 must not read past the end.
	f, err := New(2, 3, []uint32{0b001, 0b010, 0b100, 0b111}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Code('\x02'); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Code(2) error = %v, want ErrGlyphNotFound", err)
	}
	if _, err := f.GlyphColumn(2, 0); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("GlyphColumn(2, 0) error = %v, want ErrGlyphNotFound", err)
	}
	got, err := f.GlyphColumn(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0b111 {
		t.Errorf("GlyphColumn(1, 1) = %03b, want 111", got)
	}
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		table         []uint32
	}{
		{"no columns", 0, 8, []uint32{0}},
		{"no rows", 1, 0, []uint32{0}},
		{"too many rows", 1, 33, []uint32{0}},
		{"empty table", 2, 8, nil},
		{"ragged table", 2, 8, []uint32{0, 0, 0}},
		{"mask taller than rows", 1, 3, []uint32{0b1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.columns, tt.rows, tt.table, nil); !errors.Is(err, ErrInvalidFont) {
				t.Errorf("error = %v, want ErrInvalidFont", err)
			}
		})
	}

	if _, err := New(1, 32, []uint32{0xFFFFFFFF}, nil); err != nil {
		t.Errorf("32-row font rejected: %v", err)
	}
}

func TestFontIsImmutable(t *testing.T) {
	table := []uint32{0b01, 0b10}
	f, err := New(1, 2, table, nil)
	if err != nil {
		t.Fatal(err)
	}
	table[0] = 0b11

	g, err := f.Glyph(0)
	if err != nil {
		t.Fatal(err)
	}
	if g[0] != 0b01 {
		t.Errorf("font changed with caller's table: %02b", g[0])
	}
	g[0] = 0b11
	if got, _ := f.GlyphColumn(0, 0); got != 0b01 {
		t.Errorf("font changed through Glyph copy: %02b", got)
	}
}
