package raster

import (
	"testing"
	"time"
)

func TestFillTriangleRows(t *testing.T) {
	tests := []struct {
		name string
		pts  [6]int
	}{
		{"general", [6]int{10, 10, 50, 30, 20, 60}},
		{"flat top", [6]int{10, 10, 30, 10, 20, 30}},
		{"flat bottom", [6]int{20, 10, 10, 30, 30, 30}},
		{"unsorted input", [6]int{20, 60, 10, 10, 50, 30}},
		{"sliver", [6]int{5, 5, 6, 40, 7, 62}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(64, 64)
			c.Fill(Black)
			p := tt.pts
			c.FillTriangle(p[0], p[1], p[2], p[3], p[4], p[5], White)

			top := min(p[1], p[3], p[5])
			bottom := max(p[1], p[3], p[5])
			for y := 0; y < c.Height; y++ {
				first, last, n := -1, -1, 0
				for x := 0; x < c.Width; x++ {
					if c.At(x, y) == White {
						if first < 0 {
							first = x
						}
						last = x
						n++
					}
				}
				inside := y >= top && y <= bottom
				if inside && n == 0 {
					t.Errorf("row %d empty", y)
				}
				if !inside && n != 0 {
					t.Errorf("row %d outside [%d,%d] has %d pixels", y, top, bottom, n)
				}
				if n > 0 && last-first+1 != n {
					t.Errorf("row %d has a gap: %d pixels over [%d,%d]", y, n, first, last)
				}
			}
		})
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	c := New(32, 32)
	c.Fill(Black)

	c.FillTriangle(3, 7, 20, 7, 28, 7, White)
	c.FillTriangle(9, 9, 9, 9, 9, 9, White)

	if n := count(c, White); n != 0 {
		t.Errorf("zero-height triangles painted %d pixels", n)
	}
}

func TestFillTriangleBlends(t *testing.T) {
	c := New(32, 32)
	c.Fill(Black)
	c.FillTriangle(2, 2, 30, 2, 16, 30, White.WithAlpha(0x80))

	r, _, _, _ := c.At(16, 10).RGBA()
	if r < 120 || r > 135 {
		t.Errorf("half-alpha fill red = %d, want about 128", r)
	}
}

func TestFillTriangleHugeCoordinates(t *testing.T) {
	const far = 100_000_000
	tests := []struct {
		name string
		pts  [6]int
		want int
	}{
		{"covers canvas", [6]int{-far, -far, far, 0, 0, far}, 40 * 30},
		{"off to the right", [6]int{far, -far, 2 * far, 0, far, far}, 0},
		{"below", [6]int{-far, far, far, far + 5, 0, 2 * far}, 0},
		{"tall sliver", [6]int{10, -far, 12, far, 11, 15}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(40, 30)
			c.Fill(Black)
			p := tt.pts

			done := make(chan struct{})
			go func() {
				c.FillTriangle(p[0], p[1], p[2], p[3], p[4], p[5], White)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("FillTriangle did not return")
			}

			n := count(c, White)
			if tt.want >= 0 && n != tt.want {
				t.Errorf("painted %d pixels, want %d", n, tt.want)
			}
			if tt.want < 0 && n == 0 {
				t.Error("sliver painted nothing")
			}
		})
	}
}
