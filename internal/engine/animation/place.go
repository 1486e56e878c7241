package animation

import (
	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
)

// Cubie geometry.
const (
	Scale   = 0.9
	Gap     = 0.5
	Spacing = 2 * Scale
	// HalfEdge is half the edge length of a cubie.
	HalfEdge = Scale - Gap

	DefaultCameraDistance = 200
)

// Interpolation selects how a partial rotation is built.
type Interpolation int

// Interpolation modes.
const (
	// Direct builds the quaternion for the partial angle.
	Direct Interpolation = iota
	// Slerp interpolates from identity toward the full-turn quaternion.
	Slerp
)

// ParseInterpolation maps a config value to a mode, defaulting to Direct.
func ParseInterpolation(s string) Interpolation {
	if s == "slerp" {
		return Slerp
	}
	return Direct
}

// Move is the preview in progress for a frame.
type Move struct {
	Type    MoveType
	Percent float32
	// Source is the merging cluster when Type is MoveIn.
	Source puzzle.ClusterID
}

// Active reports whether the move displaces anything.
func (m Move) Active() bool {
	if m.Percent <= 0 {
		return false
	}
	if m.Type == MoveIn {
		return m.Source.Axis() != puzzle.AxisNone
	}
	return m.Type.Rotates()
}

func (m Move) fraction() float32 {
	switch {
	case m.Percent <= 0:
		return 0
	case m.Percent >= 100:
		return 1
	}
	return m.Percent / 100
}

// Geometry places cubie corners. It is immutable after construction.
type Geometry struct {
	trig   math.Trig
	interp Interpolation
	anchor math.Vec3
	axes   axisTable
}

// NewGeometry builds a Geometry for the given trig backend. The scene
// anchor sits cameraDistance along +z.
func NewGeometry(t math.Trig, interp Interpolation, cameraDistance float32) *Geometry {
	if t == nil {
		t = math.Precise{}
	}
	return &Geometry{
		trig:   t,
		interp: interp,
		anchor: math.Vec3{Z: cameraDistance},
		axes:   newAxisTable(t),
	}
}

// Anchor returns the point the scene rotates about.
func (g *Geometry) Anchor() math.Vec3 {
	return g.anchor
}

// Axis returns the unit axis of a rotation type.
func (g *Geometry) Axis(t MoveType) (math.Vec3, bool) {
	if !t.Rotates() {
		return math.Vec3{}, false
	}
	return g.axes[t], true
}

// ClusterCenter returns the rest position of a cluster's centre.
func (g *Geometry) ClusterCenter(c puzzle.ClusterID) math.Vec3 {
	return c.Offset().Add(g.anchor)
}

// RestCenter returns the rest position of a cubie's centre.
func (g *Geometry) RestCenter(k puzzle.Key) math.Vec3 {
	x, y, z := k.Local.Coords()
	local := math.Vec3{
		X: -Spacing + Spacing*float32(x),
		Y: -Spacing + Spacing*float32(y),
		Z: -Spacing + Spacing*float32(z),
	}
	return local.Add(g.ClusterCenter(k.Cluster))
}

// RestCorners returns the axis-aligned corners of a cubie. The x sign
// alternates every corner, y every two and z every four, starting at
// (+,+,+).
func (g *Geometry) RestCorners(k puzzle.Key) [puzzle.CornersPerCubie]math.Vec3 {
	return cornersAround(g.RestCenter(k))
}

func cornersAround(c math.Vec3) [puzzle.CornersPerCubie]math.Vec3 {
	var out [puzzle.CornersPerCubie]math.Vec3
	for i := range out {
		out[i] = math.Vec3{
			X: c.X + cornerSign(i&1)*HalfEdge,
			Y: c.Y + cornerSign(i&2)*HalfEdge,
			Z: c.Z + cornerSign(i&4)*HalfEdge,
		}
	}
	return out
}

func cornerSign(bit int) float32 {
	if bit == 0 {
		return 1
	}
	return -1
}

// PlaceCorners returns a cubie's corners for the given preview, before the
// scene orientation is applied.
//
// Rotation previews turn every cluster except the filler about the scene
// anchor. A merge preview slides the four clusters of the merge cycle toward
// their destination slots and turns the four neighbours circling the merge
// axis about their own centres.
func (g *Geometry) PlaceCorners(k puzzle.Key, m Move) [puzzle.CornersPerCubie]math.Vec3 {
	if !m.Active() {
		return g.RestCorners(k)
	}
	f := m.fraction()

	if m.Type == MoveIn {
		return g.placeMoveIn(k, m.Source, f)
	}

	corners := g.RestCorners(k)
	if k.Cluster == puzzle.ClusterFiller {
		return corners
	}
	q := g.partialTurn(m.Type, f)
	for i := range corners {
		corners[i] = q.RotateAbout(corners[i], g.anchor)
	}
	return corners
}

func (g *Geometry) placeMoveIn(k puzzle.Key, source puzzle.ClusterID, f float32) [puzzle.CornersPerCubie]math.Vec3 {
	if dest, ok := slideTarget(source, k.Cluster); ok {
		shift := dest.Offset().Sub(k.Cluster.Offset()).Scale(f)
		return cornersAround(g.RestCenter(k).Add(shift))
	}

	corners := g.RestCorners(k)
	t := neighbourAxis(source, k.Cluster)
	if t == NoRotation {
		return corners
	}
	q := g.partialTurn(t, f)
	pivot := g.ClusterCenter(k.Cluster)
	for i := range corners {
		corners[i] = q.RotateAbout(corners[i], pivot)
	}
	return corners
}

// slideTarget returns where a cluster of the merge cycle travels.
func slideTarget(source, c puzzle.ClusterID) (puzzle.ClusterID, bool) {
	switch c {
	case source:
		return puzzle.ClusterCore, true
	case puzzle.ClusterCore:
		return source.Opposite(), true
	case source.Opposite():
		return puzzle.ClusterFiller, true
	case puzzle.ClusterFiller:
		return source, true
	}
	return 0, false
}

// partialTurn returns the rotation reached at fraction f of t's full angle.
func (g *Geometry) partialTurn(t MoveType, f float32) math.Quat {
	axis := g.axes[t]
	full := t.FullAngle()
	if g.interp == Slerp {
		end := math.QuatFromAxisAngle(axis, full, g.trig)
		return math.QuatIdentity().SlerpArc(end, f, g.trig)
	}
	return math.QuatFromAxisAngle(axis, f*full, g.trig)
}
