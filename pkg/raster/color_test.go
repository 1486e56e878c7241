package raster

import "testing"

func TestBlendBoundaries(t *testing.T) {
	bgs := []Color{Black, White, Teal, RGBA(10, 20, 30, 40)}
	fgs := []Color{Red, Lilac, RGBA(200, 100, 50, 255)}

	for _, bg := range bgs {
		for _, fg := range fgs {
			if got := Blend(bg, fg); got != fg {
				t.Errorf("Blend(%08x, opaque %08x) = %08x, want fg", bg, fg, got)
			}
			if got := Blend(bg, fg.WithAlpha(0)); got != bg {
				t.Errorf("Blend(%08x, clear %08x) = %08x, want bg", bg, fg, got)
			}
		}
	}
}

func TestBlendHalf(t *testing.T) {
	got := Blend(Black, White.WithAlpha(0x80))
	r, g, b, a := got.RGBA()
	for _, ch := range []uint8{r, g, b} {
		if ch < 126 || ch > 130 {
			t.Errorf("channel = %d, want about 128", ch)
		}
	}
	if a != 255 {
		t.Errorf("alpha = %d, want 255 over an opaque background", a)
	}
}

func TestColorScale(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		f    float32
		want Color
	}{
		{"identity", RGBA(100, 50, 25, 255), 1, RGBA(100, 50, 25, 255)},
		{"half", RGBA(100, 50, 20, 255), 0.5, RGBA(50, 25, 10, 255)},
		{"clamped", RGBA(200, 100, 10, 255), 2, RGBA(255, 200, 20, 255)},
		{"negative", White, -1, Black},
		{"alpha kept", RGBA(100, 100, 100, 0x88), 0.5, RGBA(50, 50, 50, 0x88)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Scale(tt.f); got != tt.want {
				t.Errorf("Scale(%v) = %08x, want %08x", tt.f, got, tt.want)
			}
		})
	}
}

func TestRGBARoundTrip(t *testing.T) {
	c := RGBA(1, 2, 3, 4)
	if c != 0x04030201 {
		t.Fatalf("RGBA packing = %08x", c)
	}
	r, g, b, a := c.RGBA()
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("unpack = %d %d %d %d", r, g, b, a)
	}
}
