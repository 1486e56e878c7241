package raster

type plotFunc func(x, y int, col Color)

// Line draws an opaque Bresenham line, inclusive of both endpoints.
func (c *Canvas) Line(x0, y0, x1, y1 int, col Color) {
	bresenham(x0, y0, x1, y1, col, c.Plot)
}

// LineBlended draws a Bresenham line compositing each pixel with col's alpha.
func (c *Canvas) LineBlended(x0, y0, x1, y1 int, col Color) {
	bresenham(x0, y0, x1, y1, col, c.PlotBlended)
}

func bresenham(x0, y0, x1, y1 int, col Color, plot plotFunc) {
	dx, sx := abs(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
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
