package graphics_test

import (
	"image"
	"testing"
)

func TestRectangleFill(t *testing.T) {
	g, r := record()
	g.Rectangle(2, 3, 4, 5, true)

	if len(r.Calls) != 20 {
		t.Fatalf("wrote %d pixels, want 20", len(r.Calls))
	}
	span := image.Rect(2, 3, 6, 8)
	for p, n := range r.Writes() {
		if !p.In(span) {
			t.Errorf("pixel %v outside %v", p, span)
		}
		if n != 1 {
			t.Errorf("pixel %v written %d times", p, n)
		}
	}
}

func TestRectangleOutline(t *testing.T) {
	g, r := record()
	g.Rectangle(2, 3, 4, 5, false)

	span := image.Rect(2, 3, 6, 8)
	corners := map[image.Point]bool{
		{2, 3}: true, {5, 3}: true, {2, 7}: true, {5, 7}: true,
	}
	writes := r.Writes()
	// perimeter of a 4x5 box
	if len(writes) != 14 {
		t.Errorf("touched %d pixels, want 14", len(writes))
	}
	for p, n := range writes {
		onBorder := p.In(span) && (p.X == 2 || p.X == 5 || p.Y == 3 || p.Y == 7)
		if !onBorder {
			t.Errorf("pixel %v is not on the border", p)
		}
		want := 1
		if corners[p] {
			want = 2
		}
		if n != want {
			t.Errorf("pixel %v written %d times, want %d", p, n, want)
		}
	}
}

func TestRectangleFillAndOutlineAgree(t *testing.T) {
	fill, rf := record()
	fill.Rectangle(-3, 7, 6, 2, true)
	outline, ro := record()
	outline.Rectangle(-3, 7, 6, 2, false)

	// a two-row box is all border
	lf, lo := rf.Lit(), ro.Lit()
	if len(lf) != len(lo) {
		t.Fatalf("fill lit %d pixels, outline %d", len(lf), len(lo))
	}
	for p := range lf {
		if !lo[p] {
			t.Errorf("pixel %v filled but not outlined", p)
		}
	}
}

func TestRectangleDegenerate(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-2, 3}, {3, -2}} {
		for _, fill := range []bool{true, false} {
			g, r := record()
			g.Rectangle(1, 1, size[0], size[1], fill)
			if len(r.Calls) != 0 {
				t.Errorf("Rectangle(1, 1, %d, %d, %v) wrote %d pixels", size[0], size[1], fill, len(r.Calls))
			}
		}
	}

	g, r := record()
	g.Rectangle(4, 4, 1, 1, true)
	if len(r.Calls) != 1 || r.Count(4, 4) != 1 {
		t.Errorf("1x1 fill wrote %v", r.Calls)
	}
}
