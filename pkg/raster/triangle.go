package raster

// Triangle draws an opaque triangle outline.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int, col Color) {
	c.Line(x1, y1, x2, y2, col)
	c.Line(x1, y1, x3, y3, col)
	c.Line(x3, y3, x2, y2, col)
}

// FillTriangle scan-converts a triangle with blended horizontal spans.
//
//	        * (x1, y1)
//	      *      *
//	    *            *
//	  * (x2, y2) ******** (midX, y2)   <- flat-bottom half above, flat-top below
//	        *          *
//	             *      *
//	                  * (x3, y3)
//
// A triangle whose vertices all share one row has no area and draws nothing.
// A half with zero height never divides by its height.
func (c *Canvas) FillTriangle(x1, y1, x2, y2, x3, y3 int, col Color) {
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y3 < y2 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y1 == y3 {
		return
	}

	midX := int(float32(x1) + float32(y2-y1)/float32(y3-y1)*float32(x3-x1))

	c.fillFlatBottom(x1, y1, x2, y2, midX, col)
	c.fillFlatTop(x2, y2, midX, x3, y3, col)
}

// fillFlatBottom fills rows y1..y2 of the triangle with apex (x1, y1) and
// flat edge (x2, y2)-(x3, y2).
func (c *Canvas) fillFlatBottom(x1, y1, x2, y2, x3 int, col Color) {
	if y2 == y1 {
		lo, hi := minMax(float32(min(x1, x2, x3)), float32(max(x1, x2, x3)))
		c.span(lo, hi, y1, col)
		return
	}

	slope2 := float32(x2-x1) / float32(y2-y1)
	slope3 := float32(x3-x1) / float32(y2-y1)

	// Rows off the canvas are never walked.
	for y := max(y1, 0); y <= min(y2, c.Height-1); y++ {
		dy := float32(y - y1)
		c.span(float32(x1)+slope2*dy, float32(x1)+slope3*dy, y, col)
	}
}

// fillFlatTop fills rows y1+1..y3 of the triangle with flat edge
// (x1, y1)-(x2, y1) and apex (x3, y3).
func (c *Canvas) fillFlatTop(x1, y1, x2, x3, y3 int, col Color) {
	if y3 == y1 {
		return
	}

	slope1 := float32(x3-x1) / float32(y3-y1)
	slope2 := float32(x3-x2) / float32(y3-y1)

	for y := min(y3, c.Height-1); y > max(y1, -1); y-- {
		dy := float32(y3 - y)
		c.span(float32(x3)-slope1*dy, float32(x3)-slope2*dy, y, col)
	}
}

// span draws one blended row between two interpolated x bounds, widening by
// half a pixel on each side. The bounds are clipped to the canvas first.
func (c *Canvas) span(a, b float32, y int, col Color) {
	if y < 0 || y >= c.Height {
		return
	}
	lo, hi := minMax(a, b)
	w := float32(c.Width)
	lo = min(max(lo, -2), w+1)
	hi = min(max(hi, -2), w+1)
	x0, x1 := int(lo-0.5), int(hi+0.5)
	if x1 < 0 || x0 >= c.Width {
		return
	}
	c.LineBlended(max(x0, 0), y, min(x1, c.Width-1), y, col)
}

func minMax(a, b float32) (float32, float32) {
	if a > b {
		return b, a
	}
	return a, b
}
