package font

import (
	"image"
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type pointDisplay struct {
	lit map[image.Point]color.RGBA
}

func (d *pointDisplay) Size() (x, y int16) { return 128, 64 }
func (d *pointDisplay) Display() error     { return nil }

func (d *pointDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.lit == nil {
		d.lit = make(map[image.Point]color.RGBA)
	}
	d.lit[image.Pt(int(x), int(y))] = c
}

func TestFonterDraw(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	d := &pointDisplay{}

	g := Fonter(CodePage850).GetGlyph('A')
	// baseline at y=7 puts the glyph top at y=0
	g.Draw(d, 0, 7, white)

	want := map[image.Point]bool{}
	for col, m := range []uint32{0x7E, 0x09, 0x09, 0x09, 0x7E} {
		for row := 0; row < 8; row++ {
			if m&(1<<row) != 0 {
				want[image.Pt(col, row)] = true
			}
		}
	}
	if len(d.lit) != len(want) {
		t.Errorf("lit %d pixels, want %d", len(d.lit), len(want))
	}
	for p := range want {
		if c, ok := d.lit[p]; !ok || c != white {
			t.Errorf("pixel %v not lit", p)
		}
	}
}

func TestFonterInfo(t *testing.T) {
	fr := Fonter(CodePage850)
	if got := fr.GetYAdvance(); got != 8 {
		t.Errorf("GetYAdvance() = %d, want 8", got)
	}

	info := fr.GetGlyph('é').Info()
	if info.Rune != 'é' || info.Width != 5 || info.Height != 8 || info.XAdvance != 5 || info.YOffset != -7 {
		t.Errorf("unexpected glyph info %+v", info)
	}

	if _, outbox := tinyfont.LineWidth(fr, "AB"); outbox != 10 {
		t.Errorf("LineWidth outbox = %d, want 10", outbox)
	}
}

func TestFonterFallback(t *testing.T) {
	d := &pointDisplay{}
	Fonter(CodePage850).GetGlyph('€').Draw(d, 0, 7, color.RGBA{A: 255})
	q := &pointDisplay{}
	Fonter(CodePage850).GetGlyph('?').Draw(q, 0, 7, color.RGBA{A: 255})
	if len(d.lit) == 0 || len(d.lit) != len(q.lit) {
		t.Errorf("unmapped rune drew %d pixels, '?' draws %d", len(d.lit), len(q.lit))
	}
}
