// Package puzzle holds the cubie state of the multi-cluster puzzle and the
// permutation engine that relabels colours when moves are applied.
//
// Cubies never move: a move only rewrites which colour sits at which fixed
// position, so a cubie's ID always equals its index in Puzzle.Cubies.
package puzzle

import (
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

// Layout constants.
const (
	Clusters         = 8
	CubiesPerCluster = 27
	Cubies           = Clusters * CubiesPerCluster
	CornersPerCubie  = 8
)

// ClusterID names one 3×3×3 block. The core sits at the origin, six
// neighbours hang off its faces and the filler slot parks a cluster that is
// currently out of play.
type ClusterID int

// Cluster slots.
const (
	ClusterCore ClusterID = iota
	ClusterNegY
	ClusterPosZ
	ClusterPosX
	ClusterNegZ
	ClusterNegX
	ClusterPosY
	ClusterFiller
)

// Separation is the distance between the centres of adjacent clusters.
const Separation = 15

var clusterOffsets = [Clusters]math.Vec3{
	ClusterCore:   {X: 0, Y: 0, Z: 0},
	ClusterNegY:   {X: 0, Y: -Separation, Z: 0},
	ClusterPosZ:   {X: 0, Y: 0, Z: Separation},
	ClusterPosX:   {X: Separation, Y: 0, Z: 0},
	ClusterNegZ:   {X: 0, Y: 0, Z: -Separation},
	ClusterNegX:   {X: -Separation, Y: 0, Z: 0},
	ClusterPosY:   {X: 0, Y: Separation, Z: 0},
	ClusterFiller: {X: 10 * Separation, Y: 0, Z: 0},
}

var clusterColors = [Clusters]raster.Color{
	ClusterCore:   raster.Purple,
	ClusterNegY:   raster.White,
	ClusterPosZ:   raster.Orange,
	ClusterPosX:   raster.Blue,
	ClusterNegZ:   raster.Red,
	ClusterNegX:   raster.Green,
	ClusterPosY:   raster.Yellow,
	ClusterFiller: raster.Lilac,
}

// Valid reports whether c names an existing slot.
func (c ClusterID) Valid() bool {
	return c >= ClusterCore && c <= ClusterFiller
}

// Offset returns the displacement of the cluster's centre from the core.
func (c ClusterID) Offset() math.Vec3 {
	if !c.Valid() {
		return math.Vec3{}
	}
	return clusterOffsets[c]
}

// SolvedColor returns the colour a cluster carries after Reset.
func (c ClusterID) SolvedColor() raster.Color {
	if !c.Valid() {
		return 0
	}
	return clusterColors[c]
}

// Opposite returns the face neighbour on the other side of the core. The
// core and the filler have no opposite and return themselves.
func (c ClusterID) Opposite() ClusterID {
	switch c {
	case ClusterNegY:
		return ClusterPosY
	case ClusterPosY:
		return ClusterNegY
	case ClusterPosZ:
		return ClusterNegZ
	case ClusterNegZ:
		return ClusterPosZ
	case ClusterPosX:
		return ClusterNegX
	case ClusterNegX:
		return ClusterPosX
	}
	return c
}

// Axis returns the axis joining the cluster to the core, or AxisNone for
// the core and the filler.
func (c ClusterID) Axis() Axis {
	switch c {
	case ClusterPosX, ClusterNegX:
		return AxisX
	case ClusterPosY, ClusterNegY:
		return AxisY
	case ClusterPosZ, ClusterNegZ:
		return AxisZ
	}
	return AxisNone
}

// Positive reports whether the cluster lies on the positive side of its axis.
func (c ClusterID) Positive() bool {
	return c == ClusterPosX || c == ClusterPosY || c == ClusterPosZ
}

// Axis is one of the three cube axes.
type Axis int

// Axes. AxisNone marks "no previous merge".
const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "none"
}

// LocalIndex addresses a cubie inside a cluster as 9x + 3y + z with x, y, z
// in 0..2.
type LocalIndex int

// LocalCenter is the immobile centre of a cluster.
const LocalCenter LocalIndex = 13

// LocalAt builds a LocalIndex from grid coordinates.
func LocalAt(x, y, z int) LocalIndex {
	return LocalIndex(9*x + 3*y + z)
}

// Coords splits the index back into grid coordinates.
func (l LocalIndex) Coords() (x, y, z int) {
	return int(l) / 9, int(l) / 3 % 3, int(l) % 3
}

// Valid reports whether l lies in 0..26.
func (l LocalIndex) Valid() bool {
	return l >= 0 && l < CubiesPerCluster
}

// Kind classifies a local position by how many faces it exposes.
type Kind int

// Kinds of position.
const (
	KindCore Kind = iota
	KindCenter
	KindEdge
	KindCorner
)

func (k Kind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	}
	return "core"
}

// Kind returns the position class of l.
func (l LocalIndex) Kind() Kind {
	x, y, z := l.Coords()
	off := 0
	for _, c := range [3]int{x, y, z} {
		if c != 1 {
			off++
		}
	}
	return Kind(off)
}

// Key addresses one cubie by cluster and local index.
type Key struct {
	Cluster ClusterID
	Local   LocalIndex
}

// Offset maps the key to its flat index in Puzzle.Cubies.
func (k Key) Offset() int {
	return int(k.Cluster)*CubiesPerCluster + int(k.Local)
}

// KeyOf is the inverse of Key.Offset.
func KeyOf(offset int) Key {
	return Key{
		Cluster: ClusterID(offset / CubiesPerCluster),
		Local:   LocalIndex(offset % CubiesPerCluster),
	}
}

// Cubie is one unit cube. Corners are rebuilt by the renderer every frame;
// only Color and Selected carry state between frames.
type Cubie struct {
	Corners  [CornersPerCubie]math.Vec3
	Color    raster.Color
	ID       int
	Selected bool
}

// Euler holds the scene orientation angles in radians.
type Euler struct {
	A, B, C float32
}

// Wrapped returns the angles folded into [0, 2π).
func (e Euler) Wrapped() Euler {
	return Euler{A: math.WrapAngle(e.A), B: math.WrapAngle(e.B), C: math.WrapAngle(e.C)}
}

// Puzzle is the complete mutable state: every cubie, the scene orientation
// and the axis of the last merge.
type Puzzle struct {
	Cubies        [Cubies]Cubie
	Angles        Euler
	LastMergeAxis Axis
}

// New returns a solved puzzle.
func New() *Puzzle {
	p := &Puzzle{}
	p.Reset()
	return p
}

// Reset restores the solved state: one colour per cluster, identity equal to
// position, nothing selected and no merge history. Angles are kept.
func (p *Puzzle) Reset() {
	for i := range p.Cubies {
		p.Cubies[i] = Cubie{
			Color: KeyOf(i).Cluster.SolvedColor(),
			ID:    i,
		}
	}
	p.LastMergeAxis = AxisNone
}

// At returns the cubie addressed by k.
func (p *Puzzle) At(k Key) *Cubie {
	return &p.Cubies[k.Offset()]
}

// Colors returns a snapshot of every cubie's colour in index order.
func (p *Puzzle) Colors() [Cubies]raster.Color {
	var out [Cubies]raster.Color
	for i := range p.Cubies {
		out[i] = p.Cubies[i].Color
	}
	return out
}

// Solved reports whether every cubie shows its own cluster's solved colour.
func (p *Puzzle) Solved() bool {
	for i := range p.Cubies {
		if p.Cubies[i].Color != KeyOf(i).Cluster.SolvedColor() {
			return false
		}
	}
	return true
}

// Selected returns the ID of the selected cubie, or -1.
func (p *Puzzle) Selected() int {
	for i := range p.Cubies {
		if p.Cubies[i].Selected {
			return i
		}
	}
	return -1
}
