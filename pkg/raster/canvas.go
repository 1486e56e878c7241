// Package raster is a small software rasterizer that paints directly into a
// packed-pixel buffer addressed by y*width+x.
//
// Every primitive clips per pixel: coordinates outside the canvas are
// silently dropped, so callers never need to pre-clip geometry.
package raster

import (
	"image"
	"image/color"
)

// Canvas is a width×height frame buffer of packed ABGR pixels.
type Canvas struct {
	Pix    []Color
	Width  int
	Height int
}

// New allocates a canvas. Non-positive sizes are raised to 1.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		Pix:    make([]Color, width*height),
		Width:  width,
		Height: height,
	}
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.Pix {
		c.Pix[i] = col
	}
}

// In reports whether (x, y) lies inside the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// At returns the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if !c.In(x, y) {
		return 0
	}
	return c.Pix[y*c.Width+x]
}

// Plot overwrites one pixel. Out-of-range coordinates are ignored.
func (c *Canvas) Plot(x, y int, col Color) {
	if !c.In(x, y) {
		return
	}
	c.Pix[y*c.Width+x] = col
}

// PlotBlended composites col over one pixel using col's alpha.
func (c *Canvas) PlotBlended(x, y int, col Color) {
	if !c.In(x, y) {
		return
	}
	i := y*c.Width + x
	c.Pix[i] = Blend(c.Pix[i], col)
}

// Image copies the canvas into an *image.RGBA.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b, a := c.Pix[y*c.Width+x].RGBA()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
