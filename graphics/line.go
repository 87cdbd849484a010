package graphics

// Line draws a straight segment from (x0, y0) to (x1, y1), both endpoints
// included.
//
// Axis-aligned segments set every pixel between the endpoints. Sloped
// segments walk the dominant axis, the one with the larger delta (x on a
// tie), one pixel at a time in the positive direction and place the minor
// coordinate according to the line mode. Either way exactly
// max(|dx|, |dy|)+1 pixels are written.
func (g *Graphics) Line(x0, y0, x1, y1 int) {
	dx := x1 - x0
	dy := y1 - y0

	switch {
	case dx == 0 && dy == 0:
		g.set(x0, y0)
	case dx == 0:
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			g.set(x0, y)
		}
	case dy == 0:
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			g.set(x, y0)
		}
	case g.lineMode == LineBresenham:
		g.lineBresenham(x0, y0, x1, y1)
	case abs(dx) >= abs(dy):
		if dx < 0 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		dx = x1 - x0
		dy = y1 - y0
		for i := 0; i <= dx; i++ {
			g.set(x0+i, y0+round(float64(i*dy)/float64(dx)))
		}
	default:
		if dy < 0 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		dx = x1 - x0
		dy = y1 - y0
		for i := 0; i <= dy; i++ {
			g.set(x0+round(float64(i*dx)/float64(dy)), y0+i)
		}
	}
}

func (g *Graphics) lineBresenham(x0, y0, x1, y1 int) {
	dx, sx := abs(x1-x0), 1
	if x1 < x0 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y1 < y0 {
		sy = -1
	}

	e := dx + dy
	for {
		g.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
