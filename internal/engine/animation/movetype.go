// Package animation places cubie corners in world space for a frame: rest
// geometry, partial-turn previews and the overall scene orientation.
package animation

import (
	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
)

// MoveType selects the preview being animated. Values 0..26 rotate about the
// axis through the matching local position (13 has none).
type MoveType int

// Special move types.
const (
	NoRotation MoveType = -1
	MoveIn     MoveType = puzzle.CubiesPerCluster
)

// TypeOf returns the preview type that animates a local selector.
func TypeOf(l puzzle.LocalIndex) MoveType {
	if !l.Valid() || l == puzzle.LocalCenter {
		return NoRotation
	}
	return MoveType(l)
}

// Rotates reports whether t is an axis rotation.
func (t MoveType) Rotates() bool {
	return t >= 0 && t < MoveIn && puzzle.LocalIndex(t) != puzzle.LocalCenter
}

// FullAngle is the angle a rotation preview reaches at 100%: a quarter turn
// about a face axis, a half turn about an edge diagonal, a third turn about
// a body diagonal.
func (t MoveType) FullAngle() float32 {
	if !t.Rotates() {
		return 0
	}
	switch puzzle.LocalIndex(t).Kind() {
	case puzzle.KindCenter:
		return math.Pi / 2
	case puzzle.KindEdge:
		return math.Pi
	case puzzle.KindCorner:
		return 2 * math.Pi / 3
	}
	return 0
}

// axisTable holds the 26 unit rotation axes, one per non-centre local
// position, pointing from the cluster centre through that position.
type axisTable [puzzle.CubiesPerCluster]math.Vec3

func newAxisTable(t math.Trig) axisTable {
	var tbl axisTable
	for l := puzzle.LocalIndex(0); l < puzzle.CubiesPerCluster; l++ {
		if l == puzzle.LocalCenter {
			continue
		}
		x, y, z := l.Coords()
		dir := math.Vec3{X: float32(x - 1), Y: float32(y - 1), Z: float32(z - 1)}
		tbl[l] = dir.Normalize(t)
	}
	return tbl
}

// moveInAxes gives, for each merging cluster, the preview type whose axis
// turns each of its four neighbours. Directions match the quarter turn the
// merge commits.
var moveInAxes = [puzzle.Clusters][puzzle.Clusters]MoveType{
	puzzle.ClusterNegY: {
		puzzle.ClusterPosZ: 10, puzzle.ClusterPosX: 10, puzzle.ClusterNegZ: 10, puzzle.ClusterNegX: 10,
	},
	puzzle.ClusterPosZ: {
		puzzle.ClusterNegY: 14, puzzle.ClusterPosX: 14, puzzle.ClusterPosY: 14, puzzle.ClusterNegX: 14,
	},
	puzzle.ClusterPosX: {
		puzzle.ClusterNegY: 22, puzzle.ClusterNegZ: 22, puzzle.ClusterPosY: 22, puzzle.ClusterPosZ: 22,
	},
	puzzle.ClusterNegZ: {
		puzzle.ClusterNegY: 12, puzzle.ClusterPosX: 12, puzzle.ClusterPosY: 12, puzzle.ClusterNegX: 12,
	},
	puzzle.ClusterNegX: {
		puzzle.ClusterNegY: 4, puzzle.ClusterNegZ: 4, puzzle.ClusterPosY: 4, puzzle.ClusterPosZ: 4,
	},
	puzzle.ClusterPosY: {
		puzzle.ClusterPosZ: 16, puzzle.ClusterPosX: 16, puzzle.ClusterNegZ: 16, puzzle.ClusterNegX: 16,
	},
}

// neighbourAxis returns the rotation a neighbour of a merging cluster
// performs, or NoRotation if it does not turn.
func neighbourAxis(moving, neighbour puzzle.ClusterID) MoveType {
	if !moving.Valid() || !neighbour.Valid() {
		return NoRotation
	}
	if t := moveInAxes[moving][neighbour]; t != 0 {
		return t
	}
	return NoRotation
}
