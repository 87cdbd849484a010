package graphics

import "math"

const degree = math.Pi / 180

// Arc samples the circle of the given radius around (x, y) once per whole
// degree from startAngle to endAngle inclusive, setting
// (x + round(r·sin a), y + round(r·cos a)) for each angle a. Angle 0 points
// along +y. It writes exactly endAngle-startAngle+1 pixels, repeating
// pixels on small radii and leaving gaps on large ones. Nothing is drawn
// when endAngle < startAngle.
func (g *Graphics) Arc(x, y, radius, startAngle, endAngle int) {
	r := float64(radius)
	for i := startAngle; i <= endAngle; i++ {
		a := float64(i) * degree
		g.set(x+round(r*math.Sin(a)), y+round(r*math.Cos(a)))
	}
}

// Circle is Arc(x, y, radius, 0, 360).
func (g *Graphics) Circle(x, y, radius int) {
	g.Arc(x, y, radius, 0, 360)
}

// ArcAdaptive draws the same arc as Arc but samples often enough that
// consecutive samples are at most one pixel of arc apart, and never less
// often than once per degree. Repeats of the previous pixel are skipped.
func (g *Graphics) ArcAdaptive(x, y, radius, startAngle, endAngle int) {
	if endAngle < startAngle {
		return
	}
	r := float64(radius)
	start := float64(startAngle) * degree
	span := float64(endAngle-startAngle) * degree
	steps := max(endAngle-startAngle, int(math.Ceil(span*math.Abs(r))))

	var px, py int
	for k := 0; k <= steps; k++ {
		a := start
		if steps > 0 {
			a += span * float64(k) / float64(steps)
		}
		cx := x + round(r*math.Sin(a))
		cy := y + round(r*math.Cos(a))
		if k > 0 && cx == px && cy == py {
			continue
		}
		g.set(cx, cy)
		px, py = cx, cy
	}
}

// CircleAdaptive is ArcAdaptive(x, y, radius, 0, 360).
func (g *Graphics) CircleAdaptive(x, y, radius int) {
	g.ArcAdaptive(x, y, radius, 0, 360)
}
