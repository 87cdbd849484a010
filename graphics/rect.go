package graphics

// Rectangle draws the rectangle covering columns [x, x+width) and rows
// [y, y+height).
//
// A filled rectangle writes each covered pixel once, column by column. An
// outline is drawn as four independent lines along the border, so each
// corner pixel is written twice. Nothing is drawn when width or height is
// not positive.
func (g *Graphics) Rectangle(x, y, width, height int, fill bool) {
	if width <= 0 || height <= 0 {
		Logger().Debug("graphics: empty rectangle", "x", x, "y", y, "width", width, "height", height)
		return
	}
	right := x + width - 1
	bottom := y + height - 1

	if fill {
		for i := x; i <= right; i++ {
			for j := y; j <= bottom; j++ {
				g.set(i, j)
			}
		}
		return
	}

	g.Line(x, y, x, bottom)
	g.Line(x, bottom, right, bottom)
	g.Line(right, bottom, right, y)
	g.Line(right, y, x, y)
}
