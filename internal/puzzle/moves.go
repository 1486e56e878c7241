package puzzle

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/logger"
)

// Selector picks a move. 0..26 address a layer group by local index; values
// from 27 up address a cluster to merge in (selector / 27).
type Selector int

// MergeSelector returns the selector that merges cluster c into the core.
func MergeSelector(c ClusterID) Selector {
	return Selector(int(c) * CubiesPerCluster)
}

// IsLocal reports whether s addresses a layer group.
func (s Selector) IsLocal() bool {
	return s >= 0 && s < CubiesPerCluster
}

// IsMerge reports whether s addresses a merge target.
func (s Selector) IsMerge() bool {
	return s >= CubiesPerCluster && s < Cubies
}

// Target returns the cluster a merge selector names.
func (s Selector) Target() ClusterID {
	return ClusterID(int(s) / CubiesPerCluster)
}

// Apply resolves a selector. With commit set, the move's colour permutation
// is applied immediately; without it the state is left alone and the move
// is only previewed by the renderer. Either way the cubie whose identity
// equals the selector becomes the only selected cubie.
//
// Selectors with no move (the cluster centre, merges of the core or the
// filler, anything out of range) do nothing.
func (p *Puzzle) Apply(sel Selector, commit bool) {
	if commit {
		switch {
		case sel.IsLocal():
			p.applyLocal(LocalIndex(sel))
		case sel.IsMerge():
			p.Merge(sel.Target())
		default:
			logger.Debug("unmapped selector", zap.Int("selector", int(sel)))
		}
	}
	p.Select(sel)
}

// Select marks exactly the cubie with identity sel; out-of-range selectors
// clear the selection.
func (p *Puzzle) Select(sel Selector) {
	for i := range p.Cubies {
		p.Cubies[i].Selected = i == int(sel)
	}
}

func (p *Puzzle) applyLocal(l LocalIndex) {
	seq := Sequence(l)
	if len(seq) == 0 {
		logger.Debug("selector has no move", zap.Int("local", int(l)))
		return
	}
	for _, t := range seq {
		p.Turn(t)
	}
}

// Turn applies one primitive quarter turn: the four neighbours around the
// axis pass their colour blocks on, then every ring of the core cycles.
func (p *Puzzle) Turn(t Turn) {
	if t.Axis < AxisX || t.Axis > AxisZ {
		return
	}
	tbl := &turnTables[t.Axis]

	clusters := tbl.clusters
	if t.Reverse {
		clusters = flip(clusters)
	}
	p.cycleBlocks(clusters)
	p.rotateCluster(ClusterCore, t)
}

// rotateCluster turns a single cluster in place about t's axis.
func (p *Puzzle) rotateCluster(c ClusterID, t Turn) {
	tbl := &turnTables[t.Axis]
	for _, ring := range tbl.rings {
		if t.Reverse {
			ring = flip(ring)
		}
		p.cycle(c, ring)
	}
}

// cycle moves the colour at anchor i to anchor i+1 within cluster c.
func (p *Puzzle) cycle(c ClusterID, ring [4]LocalIndex) {
	a0 := p.At(Key{c, ring[0]})
	a1 := p.At(Key{c, ring[1]})
	a2 := p.At(Key{c, ring[2]})
	a3 := p.At(Key{c, ring[3]})
	a0.Color, a1.Color, a2.Color, a3.Color = a3.Color, a0.Color, a1.Color, a2.Color
}

// cycleBlocks moves the 27 colours of slots[i] into slots[i+1].
func (p *Puzzle) cycleBlocks(slots [4]ClusterID) {
	for l := LocalIndex(0); l < CubiesPerCluster; l++ {
		a0 := p.At(Key{slots[0], l})
		a1 := p.At(Key{slots[1], l})
		a2 := p.At(Key{slots[2], l})
		a3 := p.At(Key{slots[3], l})
		a0.Color, a1.Color, a2.Color, a3.Color = a3.Color, a0.Color, a1.Color, a2.Color
	}
}

func flip[T any](a [4]T) [4]T {
	return [4]T{a[3], a[2], a[1], a[0]}
}

// Scramble applies n random committed layer moves drawn from rng and
// returns the selectors used. The selection is left on the last move; n <= 0
// changes nothing.
func (p *Puzzle) Scramble(rng *rand.Rand, n int) []Selector {
	if n <= 0 {
		return nil
	}
	var movable []LocalIndex
	for l := LocalIndex(0); l < CubiesPerCluster; l++ {
		if len(moveTable[l]) > 0 {
			movable = append(movable, l)
		}
	}

	seq := make([]Selector, 0, n)
	for range n {
		sel := Selector(movable[rng.IntN(len(movable))])
		p.Apply(sel, true)
		seq = append(seq, sel)
	}
	return seq
}
