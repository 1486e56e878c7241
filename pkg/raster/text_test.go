package raster

import "testing"

type boxGlyphs struct{}

func (boxGlyphs) Glyph(r rune) ([]uint8, int, int, int, bool) {
	if r == ' ' {
		return nil, 0, 0, 3, true
	}
	if r == '?' {
		return nil, 0, 0, 0, false
	}
	return []uint8{255, 0, 0, 255}, 2, 2, 3, true
}

func TestText(t *testing.T) {
	c := New(20, 5)
	c.Fill(Black)

	end := c.Text(1, 1, "a ?b", boxGlyphs{}, White)
	if end != 1+3*3 {
		t.Errorf("end x = %d, want 10", end)
	}
	if c.At(1, 1) != White || c.At(2, 2) != White {
		t.Error("first glyph missing")
	}
	if c.At(2, 1) != Black {
		t.Error("zero coverage painted")
	}
	if c.At(7, 1) != White {
		t.Error("glyph after space and missing rune misplaced")
	}
}

func TestTextNilGlyphs(t *testing.T) {
	c := New(4, 4)
	if got := c.Text(2, 0, "x", nil, White); got != 2 {
		t.Errorf("Text with nil glyphs = %d", got)
	}
}
