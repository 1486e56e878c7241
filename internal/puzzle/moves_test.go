package puzzle

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/Faultbox/hypercube/pkg/raster"
)

// labelled returns a puzzle where every cubie carries a unique colour, so any
// misplaced label shows up.
func labelled() *Puzzle {
	p := New()
	for i := range p.Cubies {
		p.Cubies[i].Color = raster.Color(i)
	}
	return p
}

var primitives = map[LocalIndex]Turn{
	22: TurnPosX, 4: TurnNegX,
	16: TurnPosY, 10: TurnNegY,
	14: TurnPosZ, 12: TurnNegZ,
}

func TestPrimitiveOrderFour(t *testing.T) {
	for sel, turn := range primitives {
		p := labelled()
		want := p.Colors()
		for range 4 {
			p.Apply(Selector(sel), true)
		}
		if p.Colors() != want {
			t.Errorf("selector %d (%+v) is not order 4", sel, turn)
		}
	}
}

func TestPrimitiveNotIdentity(t *testing.T) {
	for sel := range primitives {
		p := labelled()
		want := p.Colors()
		p.Apply(Selector(sel), true)
		if p.Colors() == want {
			t.Errorf("selector %d changed nothing", sel)
		}
	}
}

func TestTurnInverse(t *testing.T) {
	for sel, turn := range primitives {
		p := labelled()
		want := p.Colors()
		p.Turn(turn)
		p.Turn(turn.Inverse())
		if p.Colors() != want {
			t.Errorf("selector %d followed by its inverse did not restore", sel)
		}
	}
}

func TestCompositeOrders(t *testing.T) {
	for l := LocalIndex(0); l < CubiesPerCluster; l++ {
		var order int
		switch l.Kind() {
		case KindEdge:
			order = 2
		case KindCorner:
			order = 3
		default:
			continue
		}
		t.Run(fmt.Sprintf("%s_%d", l.Kind(), l), func(t *testing.T) {
			seq := Sequence(l)
			if l.Kind() == KindEdge && len(seq) != 3 {
				t.Fatalf("edge %d resolves to %d turns", l, len(seq))
			}
			if l.Kind() == KindCorner && len(seq) != 2 {
				t.Fatalf("corner %d resolves to %d turns", l, len(seq))
			}

			p := labelled()
			want := p.Colors()
			p.Apply(Selector(l), true)
			if p.Colors() == want {
				t.Fatalf("selector %d changed nothing", l)
			}
			for range order - 1 {
				p.Apply(Selector(l), true)
			}
			if p.Colors() != want {
				t.Errorf("selector %d is not order %d", l, order)
			}
		})
	}
}

// A committed corner move carries the selected corner cubie's colour to
// itself: a third turn about the body diagonal fixes the corner on it.
func TestCornerMoveFixesDiagonal(t *testing.T) {
	for _, l := range []LocalIndex{0, 2, 6, 8, 18, 20, 24, 26} {
		p := labelled()
		p.Apply(Selector(l), true)
		if got := p.At(Key{ClusterCore, l}).Color; got != raster.Color(l) {
			t.Errorf("corner %d moved: now holds %d", l, got)
		}
		opposite := LocalIndex(26 - l)
		if got := p.At(Key{ClusterCore, opposite}).Color; got != raster.Color(opposite) {
			t.Errorf("corner %d moved its opposite %d", l, opposite)
		}
	}
}

func TestSelectorFourScenario(t *testing.T) {
	p := New()
	p.Apply(4, true)

	// Reverse x: +z → +y → −z → −y → +z.
	want := map[ClusterID]ClusterID{
		ClusterPosY: ClusterPosZ,
		ClusterNegZ: ClusterPosY,
		ClusterNegY: ClusterNegZ,
		ClusterPosZ: ClusterNegY,
	}
	for c := ClusterID(0); c < Clusters; c++ {
		src, moved := want[c]
		if !moved {
			src = c
		}
		for l := LocalIndex(0); l < CubiesPerCluster; l++ {
			if got := p.At(Key{c, l}).Color; got != src.SolvedColor() {
				t.Fatalf("cluster %d local %d = %08x, want color of %d", c, l, got, src)
			}
		}
	}
	if p.Selected() != 4 {
		t.Errorf("selected = %d, want 4", p.Selected())
	}
}

func TestNoOpSelectors(t *testing.T) {
	for _, sel := range []Selector{13, -1, -50, Cubies, 1000, MergeSelector(ClusterFiller)} {
		p := labelled()
		want := p.Colors()
		p.Apply(sel, true)
		if p.Colors() != want {
			t.Errorf("selector %d mutated colors", sel)
		}
	}
}

func TestPreviewDoesNotMutate(t *testing.T) {
	for _, sel := range []Selector{0, 1, 4, 22, 26, MergeSelector(ClusterPosX)} {
		p := labelled()
		want := p.Colors()
		p.Apply(sel, false)
		if p.Colors() != want {
			t.Errorf("preview of %d mutated colors", sel)
		}
		if p.Selected() != int(sel) {
			t.Errorf("preview of %d selected %d", sel, p.Selected())
		}
	}
}

func TestSelection(t *testing.T) {
	tests := []struct {
		sel  Selector
		want int
	}{
		{0, 0},
		{13, 13},
		{100, 100},
		{Cubies - 1, Cubies - 1},
		{Cubies, -1},
		{-3, -1},
	}
	p := New()
	for _, tt := range tests {
		p.Apply(tt.sel, false)
		n := 0
		for _, c := range p.Cubies {
			if c.Selected {
				n++
			}
		}
		if got := p.Selected(); got != tt.want {
			t.Errorf("Apply(%d): selected %d, want %d", tt.sel, got, tt.want)
		}
		if tt.want >= 0 && n != 1 {
			t.Errorf("Apply(%d): %d cubies selected", tt.sel, n)
		}
	}
}

func TestIdentityNeverMoves(t *testing.T) {
	p := New()
	p.Scramble(rand.New(rand.NewPCG(1, 2)), 40)
	p.Merge(ClusterPosZ)
	p.Merge(ClusterNegX)
	for i, c := range p.Cubies {
		if c.ID != i {
			t.Fatalf("cubie %d carries ID %d", i, c.ID)
		}
	}
}

func TestScramble(t *testing.T) {
	p := New()
	seq := p.Scramble(rand.New(rand.NewPCG(7, 7)), 25)
	if len(seq) != 25 {
		t.Fatalf("scramble returned %d moves", len(seq))
	}
	for _, s := range seq {
		if !s.IsLocal() || s == Selector(LocalCenter) {
			t.Errorf("scramble used selector %d", s)
		}
	}

	replay := New()
	for _, s := range seq {
		replay.Apply(s, true)
	}
	if p.Colors() != replay.Colors() {
		t.Error("returned sequence does not reproduce the scramble")
	}

	q := New()
	q.Scramble(rand.New(rand.NewPCG(7, 7)), 25)
	if p.Colors() != q.Colors() {
		t.Error("scramble is not deterministic for a fixed seed")
	}
}

func TestScrambleNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -40} {
		p := New()
		if seq := p.Scramble(rand.New(rand.NewPCG(7, 7)), n); len(seq) != 0 {
			t.Errorf("Scramble(%d) returned %d moves", n, len(seq))
		}
		if !p.Solved() {
			t.Errorf("Scramble(%d) changed the puzzle", n)
		}
	}
}

func TestSolved(t *testing.T) {
	p := New()
	p.Apply(22, true)
	if p.Solved() {
		t.Error("puzzle still solved after a face turn")
	}
	for range 3 {
		p.Apply(22, true)
	}
	if !p.Solved() {
		t.Error("four face turns should solve again")
	}
}
