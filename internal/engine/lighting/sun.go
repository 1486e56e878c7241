// Package lighting provides the directional light used for face shading.
package lighting

import (
	"github.com/Faultbox/hypercube/pkg/math"
)

// Direction converts longitude/latitude angles in degrees to a unit light
// axis. Longitude turns around Y, latitude is the elevation from the
// horizon, so latitude 90 gives +Y.
func Direction(longitude, latitude float32, t math.Trig) math.Vec3 {
	lon := longitude * math.Pi / 180
	lat := latitude * math.Pi / 180

	return math.Vec3{
		X: t.Cos(lat) * t.Sin(lon),
		Y: t.Sin(lat),
		Z: t.Cos(lat) * t.Cos(lon),
	}
}

// Shader turns a face normal into a brightness factor for a light that
// shines from both ends of its axis.
type Shader struct {
	Light  math.Vec3
	Darken float32
	Floor  float32
	Boost  float32
}

// Intensity returns Darken·|n·L| for a unit normal, raised to Floor when it
// falls below it.
func (s Shader) Intensity(normal math.Vec3) float32 {
	d := normal.Dot(s.Light)
	if d < 0 {
		d = -d
	}
	v := s.Darken * d
	if v < s.Floor {
		v = s.Floor
	}
	return v
}
