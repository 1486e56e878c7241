package raster

// Rect fills a w×h rectangle with its top-left corner at (x, y).
func (c *Canvas) Rect(x, y, w, h int, col Color) {
	for i := x; i < x+w; i++ {
		c.Line(i, y, i, y+h-1, col)
	}
}

// RectBlended fills a rectangle compositing with col's alpha.
func (c *Canvas) RectBlended(x, y, w, h int, col Color) {
	for i := x; i < x+w; i++ {
		c.LineBlended(i, y, i, y+h-1, col)
	}
}
