package hud

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type glyph struct {
	mask    []uint8
	w, h    int
	advance int
}

// FaceGlyphs adapts a font.Face to raster.Glyphs. Each glyph is rendered
// once into a cell as tall as the font's ascent plus descent, with its top
// row on the text's top edge.
type FaceGlyphs struct {
	face   font.Face
	ascent fixed.Int26_6
	height int
	cache  map[rune]glyph
}

// NewFaceGlyphs wraps face.
func NewFaceGlyphs(face font.Face) *FaceGlyphs {
	m := face.Metrics()
	return &FaceGlyphs{
		face:   face,
		ascent: m.Ascent,
		height: (m.Ascent + m.Descent).Ceil(),
		cache:  make(map[rune]glyph),
	}
}

// BasicGlyphs returns the fixed 7×13 bitmap font.
func BasicGlyphs() *FaceGlyphs {
	return NewFaceGlyphs(basicfont.Face7x13)
}

// LineHeight returns the cell height in pixels.
func (g *FaceGlyphs) LineHeight() int {
	return g.height
}

// Glyph implements raster.Glyphs.
func (g *FaceGlyphs) Glyph(r rune) ([]uint8, int, int, int, bool) {
	if gl, ok := g.cache[r]; ok {
		return gl.mask, gl.w, gl.h, gl.advance, true
	}

	dot := fixed.Point26_6{Y: g.ascent}
	dr, mask, maskp, adv, ok := g.face.Glyph(dot, r)
	if !ok {
		return nil, 0, 0, 0, false
	}

	gl := glyph{w: adv.Ceil(), h: g.height, advance: adv.Ceil()}
	gl.mask = make([]uint8, gl.w*gl.h)
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || y < 0 || x >= gl.w || y >= gl.h {
				continue
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			gl.mask[y*gl.w+x] = uint8(a >> 8)
		}
	}
	g.cache[r] = gl
	return gl.mask, gl.w, gl.h, gl.advance, true
}
