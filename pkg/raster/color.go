package raster

// Color is a packed 32-bit pixel. From most to least significant byte the
// channels are alpha, blue, green, red, so a little-endian Pix slice reads as
// R,G,B,A bytes in memory.
type Color uint32

// Palette used by the puzzle and the HUD.
const (
	Red     Color = 0xFF0000FF
	Green   Color = 0xFF00FF00
	Blue    Color = 0xFFFF0000
	White   Color = 0xFFFFFFFF
	Black   Color = 0xFF000000
	Teal    Color = 0xFF008080
	Lilac   Color = 0xFFE6D7FF
	Yellow  Color = 0xFF00FFFF
	Orange  Color = 0xFF00A5FF
	HotPink Color = 0xFFB469FF
	Purple  Color = 0xFF800080
	Pink    Color = 0xFFFF6FFF

	TransparentRed    Color = 0x880000FF
	TransparentGreen  Color = 0x8800FF00
	TransparentBlue   Color = 0x88FF0000
	TransparentWhite  Color = 0x88FFFFFF
	TransparentYellow Color = 0x8800FFFF
	TransparentOrange Color = 0x8800A5FF
)

// RGBA builds a Color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGBA splits the color into 8-bit channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// Scale multiplies the color channels by f, clamping each to 255. Alpha is
// kept.
func (c Color) Scale(f float32) Color {
	if f < 0 {
		f = 0
	}
	r, g, b, a := c.RGBA()
	return RGBA(scaleChannel(r, f), scaleChannel(g, f), scaleChannel(b, f), a)
}

func scaleChannel(ch uint8, f float32) uint8 {
	v := float32(ch) * f
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Blend composites fg over bg using fg's alpha. Alpha 255 returns fg
// unchanged and alpha 0 returns bg unchanged.
func Blend(bg, fg Color) Color {
	a := uint32(fg.Alpha())
	switch a {
	case 0xFF:
		return fg
	case 0:
		return bg
	}
	br, bgc, bb, ba := bg.RGBA()
	fr, fgc, fb, _ := fg.RGBA()
	outA := a + uint32(ba)*(255-a)/255
	return RGBA(
		blendChannel(br, fr, a),
		blendChannel(bgc, fgc, a),
		blendChannel(bb, fb, a),
		uint8(min(outA, 255)),
	)
}

func blendChannel(bg, fg uint8, a uint32) uint8 {
	v := (uint32(fg)*a + uint32(bg)*(255-a)) / 255
	if v > 255 {
		return 255
	}
	return uint8(v)
}
