package raster

// Glyphs supplies coverage masks for on-screen text. The rasterizer owns no
// font tables; callers plug one in.
type Glyphs interface {
	// Glyph returns a w×h row-major coverage mask for r, the horizontal
	// advance in pixels, and whether the rune is available.
	Glyph(r rune) (mask []uint8, w, h, advance int, ok bool)
}

// Text draws s with its top-left corner at (x, y) and returns the x just
// past the last glyph. Coverage scales col's alpha; missing runes are
// skipped.
func (c *Canvas) Text(x, y int, s string, g Glyphs, col Color) int {
	if g == nil {
		return x
	}
	a := uint32(col.Alpha())
	for _, r := range s {
		mask, w, h, advance, ok := g.Glyph(r)
		if !ok {
			continue
		}
		for gy := 0; gy < h; gy++ {
			for gx := 0; gx < w; gx++ {
				cov := uint32(mask[gy*w+gx])
				if cov == 0 {
					continue
				}
				c.PlotBlended(x+gx, y+gy, col.WithAlpha(uint8(cov*a/255)))
			}
		}
		x += advance
	}
	return x
}
