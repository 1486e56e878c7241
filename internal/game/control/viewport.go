package control

// Viewport is the window rectangle a frame is scaled into, keeping its
// aspect ratio and centring it.
type Viewport struct {
	X, Y, Width, Height int

	frameW, frameH int
}

// Fit letterboxes a frameW×frameH frame into a winW×winH window.
func Fit(winW, winH, frameW, frameH int) Viewport {
	v := Viewport{frameW: frameW, frameH: frameH}
	if winW <= 0 || winH <= 0 || frameW <= 0 || frameH <= 0 {
		return v
	}
	// Compare winW/winH with frameW/frameH without division.
	if winW*frameH > winH*frameW {
		v.Height = winH
		v.Width = winH * frameW / frameH
	} else {
		v.Width = winW
		v.Height = winW * frameH / frameW
	}
	v.X = (winW - v.Width) / 2
	v.Y = (winH - v.Height) / 2
	return v
}

// ToFrame maps a window position to frame pixels. ok is false outside the
// viewport.
func (v Viewport) ToFrame(x, y int) (fx, fy int, ok bool) {
	if v.Width == 0 || v.Height == 0 {
		return -1, -1, false
	}
	x -= v.X
	y -= v.Y
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return -1, -1, false
	}
	return x * v.frameW / v.Width, y * v.frameH / v.Height, true
}

// Scale converts window rectangle units to another pixel density, e.g. from
// screen coordinates to a high-DPI drawable.
func (v Viewport) Scale(num, den int) Viewport {
	if den == 0 {
		return v
	}
	v.X = v.X * num / den
	v.Y = v.Y * num / den
	v.Width = v.Width * num / den
	v.Height = v.Height * num / den
	return v
}
