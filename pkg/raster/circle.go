package raster

// Circle draws a midpoint circle outline of radius r centred on (cx, cy).
func (c *Canvas) Circle(cx, cy, r int, col Color) {
	midpoint(r, func(x, y int) {
		c.Plot(cx+x, cy+y, col)
		c.Plot(cx+x, cy-y, col)
		c.Plot(cx-x, cy+y, col)
		c.Plot(cx-x, cy-y, col)
		c.Plot(cx+y, cy+x, col)
		c.Plot(cx+y, cy-x, col)
		c.Plot(cx-y, cy+x, col)
		c.Plot(cx-y, cy-x, col)
	})
}

// FillCircle draws a filled disc using vertical spans.
func (c *Canvas) FillCircle(cx, cy, r int, col Color) {
	midpoint(r, func(x, y int) {
		c.Line(cx+x, cy+y, cx+x, cy-y, col)
		c.Line(cx-x, cy+y, cx-x, cy-y, col)
		c.Line(cx+y, cy+x, cx+y, cy-x, col)
		c.Line(cx-y, cy+x, cx-y, cy-x, col)
	})
}

// midpoint walks one octant of a circle, handing each step to visit.
func midpoint(r int, visit func(x, y int)) {
	if r < 0 {
		return
	}
	err := -r
	x, y := r, 0
	for y <= x {
		visit(x, y)
		err += y<<1 + 1
		y++
		if err >= 0 {
			err -= x<<1 - 1
			x--
		}
	}
}
