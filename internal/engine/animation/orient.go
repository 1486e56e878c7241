package animation

import (
	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
)

// Orientation is the scene rotation for one frame with its sines and
// cosines evaluated once.
type Orientation struct {
	sinA, cosA float32
	sinB, cosB float32
	sinC, cosC float32
	anchor     math.Vec3
}

// Orientation wraps e into [0, 2π) and prepares the scene rotation about
// the anchor. A turns about x, B about y and C about z.
func (g *Geometry) Orientation(e puzzle.Euler) Orientation {
	e = e.Wrapped()
	return Orientation{
		sinA:   g.trig.Sin(e.A),
		cosA:   g.trig.Cos(e.A),
		sinB:   g.trig.Sin(e.B),
		cosB:   g.trig.Cos(e.B),
		sinC:   g.trig.Sin(e.C),
		cosC:   g.trig.Cos(e.C),
		anchor: g.anchor,
	}
}

// Apply rotates p about the anchor.
func (o Orientation) Apply(p math.Vec3) math.Vec3 {
	d := p.Sub(o.anchor)
	i, j, k := d.X, d.Y, d.Z
	sA, cA := o.sinA, o.cosA
	sB, cB := o.sinB, o.cosB
	sC, cC := o.sinC, o.cosC

	x := j*sA*sB*cC - k*cA*sB*cC + j*cA*sC + k*sA*sC + i*cB*cC
	y := j*cA*cC + k*sA*cC - j*sA*sB*sC + k*cA*sB*sC - i*cB*sC
	z := k*cA*cB - j*sA*cB + i*sB

	return math.Vec3{X: x, Y: y, Z: z}.Add(o.anchor)
}

// ApplyAll rotates every corner in place.
func (o Orientation) ApplyAll(corners *[puzzle.CornersPerCubie]math.Vec3) {
	for i := range corners {
		corners[i] = o.Apply(corners[i])
	}
}
