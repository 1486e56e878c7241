package animation

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

func near(a, b math.Vec3, eps float64) bool {
	return gomath.Abs(float64(a.X-b.X)) < eps &&
		gomath.Abs(float64(a.Y-b.Y)) < eps &&
		gomath.Abs(float64(a.Z-b.Z)) < eps
}

func centroid(c [puzzle.CornersPerCubie]math.Vec3) math.Vec3 {
	var sum math.Vec3
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Scale(1.0 / float32(len(c)))
}

func newTestGeometry() *Geometry {
	return NewGeometry(math.Precise{}, Direct, DefaultCameraDistance)
}

func TestRestCorners(t *testing.T) {
	g := newTestGeometry()

	centre := g.RestCenter(puzzle.Key{Cluster: puzzle.ClusterCore, Local: puzzle.LocalCenter})
	if !near(centre, math.Vec3{Z: 200}, 1e-6) {
		t.Errorf("core centre at %+v", centre)
	}

	k := puzzle.Key{Cluster: puzzle.ClusterPosX, Local: 0}
	corners := g.RestCorners(k)
	want0 := math.Vec3{X: 15 - 1.8 + 0.4, Y: -1.8 + 0.4, Z: 200 - 1.8 + 0.4}
	if !near(corners[0], want0, 1e-4) {
		t.Errorf("corner 0 = %+v, want %+v", corners[0], want0)
	}
	// Axis-aligned cube of edge 0.8.
	for i, p := range corners {
		d := p.Sub(corners[7])
		for _, v := range []float32{d.X, d.Y, d.Z} {
			if !(gomath.Abs(float64(v)) < 1e-4 || gomath.Abs(float64(v)-2*HalfEdge) < 1e-4) {
				t.Errorf("corner %d offset %+v is not on the cube", i, d)
			}
		}
	}
	if !near(corners[1].Sub(corners[0]), math.Vec3{X: -0.8}, 1e-4) {
		t.Error("corner 1 should differ from corner 0 in x only")
	}
	if !near(corners[4].Sub(corners[0]), math.Vec3{Z: -0.8}, 1e-4) {
		t.Error("corner 4 should differ from corner 0 in z only")
	}
}

func TestFullAngle(t *testing.T) {
	tests := []struct {
		t    MoveType
		want float32
	}{
		{22, math.Pi / 2},
		{4, math.Pi / 2},
		{1, math.Pi},
		{25, math.Pi},
		{0, 2 * math.Pi / 3},
		{26, 2 * math.Pi / 3},
		{13, 0},
		{NoRotation, 0},
		{MoveIn, 0},
	}
	for _, tt := range tests {
		if got := tt.t.FullAngle(); got != tt.want {
			t.Errorf("FullAngle(%d) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestAxesAreUnit(t *testing.T) {
	g := NewGeometry(math.Legacy{}, Direct, DefaultCameraDistance)
	for l := 0; l < puzzle.CubiesPerCluster; l++ {
		axis, ok := g.Axis(MoveType(l))
		if l == int(puzzle.LocalCenter) {
			if ok {
				t.Error("centre should have no axis")
			}
			continue
		}
		if n := axis.Dot(axis); gomath.Abs(float64(n)-1) > 1e-3 {
			t.Errorf("axis %d has squared length %v", l, n)
		}
	}
}

func TestInactivePreviewIsRest(t *testing.T) {
	g := newTestGeometry()
	k := puzzle.Key{Cluster: puzzle.ClusterCore, Local: 5}
	rest := g.RestCorners(k)

	for _, m := range []Move{
		{Type: NoRotation, Percent: 50},
		{Type: 22, Percent: 0},
		{Type: 13, Percent: 60},
		{Type: MoveIn, Percent: 40, Source: puzzle.ClusterCore},
	} {
		if got := g.PlaceCorners(k, m); got != rest {
			t.Errorf("move %+v displaced a cubie", m)
		}
	}
}

// At 100% a rotation preview lands every cubie where the committed move
// sends its colour.
func TestFullPreviewMatchesCommit(t *testing.T) {
	for _, interp := range []Interpolation{Direct, Slerp} {
		g := NewGeometry(math.Precise{}, interp, DefaultCameraDistance)
		for _, sel := range []puzzle.LocalIndex{22, 4, 16, 10, 14, 12, 1, 9, 0, 26} {
			p := puzzle.New()
			for i := range p.Cubies {
				p.Cubies[i].Color = 0
			}
			for l := puzzle.LocalIndex(0); l < puzzle.CubiesPerCluster; l++ {
				p.At(puzzle.Key{Cluster: puzzle.ClusterCore, Local: l}).Color = raster.Color(1 + l)
			}
			p.Apply(puzzle.Selector(sel), true)

			m := Move{Type: TypeOf(sel), Percent: 100}
			for l := puzzle.LocalIndex(0); l < puzzle.CubiesPerCluster; l++ {
				from := puzzle.Key{Cluster: puzzle.ClusterCore, Local: l}
				moved := centroid(g.PlaceCorners(from, m))

				var to puzzle.LocalIndex = -1
				for d := puzzle.LocalIndex(0); d < puzzle.CubiesPerCluster; d++ {
					if near(moved, g.RestCenter(puzzle.Key{Cluster: puzzle.ClusterCore, Local: d}), 1e-2) {
						to = d
					}
				}
				if to < 0 {
					t.Fatalf("sel %d interp %d: cubie %d lands off-grid at %+v", sel, interp, l, moved)
				}
				got := p.At(puzzle.Key{Cluster: puzzle.ClusterCore, Local: to}).Color
				if got != raster.Color(1+l) {
					t.Errorf("sel %d: cubie %d lands on %d but its colour went elsewhere", sel, l, to)
				}
			}
		}
	}
}

func TestSlerpMatchesDirect(t *testing.T) {
	direct := NewGeometry(math.Precise{}, Direct, DefaultCameraDistance)
	slerp := NewGeometry(math.Precise{}, Slerp, DefaultCameraDistance)
	k := puzzle.Key{Cluster: puzzle.ClusterPosY, Local: 2}

	for _, typ := range []MoveType{22, 1, 26} {
		for _, pct := range []float32{10, 35, 50, 80} {
			m := Move{Type: typ, Percent: pct}
			a := direct.PlaceCorners(k, m)
			b := slerp.PlaceCorners(k, m)
			for i := range a {
				if !near(a[i], b[i], 1e-2) {
					t.Fatalf("type %d at %v%%: corner %d %+v vs %+v", typ, pct, i, a[i], b[i])
				}
			}
		}
	}
}

func TestRotationSkipsFiller(t *testing.T) {
	g := newTestGeometry()
	k := puzzle.Key{Cluster: puzzle.ClusterFiller, Local: 3}
	if got := g.PlaceCorners(k, Move{Type: 16, Percent: 70}); got != g.RestCorners(k) {
		t.Error("filler moved during a rotation preview")
	}
}

func TestMoveInSlides(t *testing.T) {
	g := newTestGeometry()
	src := puzzle.ClusterPosX

	tests := []struct {
		from, to puzzle.ClusterID
	}{
		{src, puzzle.ClusterCore},
		{puzzle.ClusterCore, puzzle.ClusterNegX},
		{puzzle.ClusterNegX, puzzle.ClusterFiller},
		{puzzle.ClusterFiller, src},
	}
	for _, tt := range tests {
		k := puzzle.Key{Cluster: tt.from, Local: 7}
		half := centroid(g.PlaceCorners(k, Move{Type: MoveIn, Percent: 50, Source: src}))
		full := centroid(g.PlaceCorners(k, Move{Type: MoveIn, Percent: 100, Source: src}))

		start := g.RestCenter(k)
		end := g.RestCenter(puzzle.Key{Cluster: tt.to, Local: 7})
		if !near(full, end, 1e-3) {
			t.Errorf("cluster %d at 100%% = %+v, want %+v", tt.from, full, end)
		}
		if !near(half, start.Lerp(end, 0.5), 1e-3) {
			t.Errorf("cluster %d at 50%% = %+v", tt.from, half)
		}
	}
}

func TestMoveInTurnsNeighbours(t *testing.T) {
	g := newTestGeometry()
	src := puzzle.ClusterPosZ
	m := Move{Type: MoveIn, Percent: 100, Source: src}

	for _, c := range []puzzle.ClusterID{puzzle.ClusterNegY, puzzle.ClusterPosX, puzzle.ClusterPosY, puzzle.ClusterNegX} {
		// +z quarter turn: local (x,y,z) centre offset (−1,−1,·) goes to (+1,−1,·).
		from := puzzle.Key{Cluster: c, Local: puzzle.LocalAt(0, 0, 1)}
		to := puzzle.Key{Cluster: c, Local: puzzle.LocalAt(2, 0, 1)}
		got := centroid(g.PlaceCorners(from, m))
		if !near(got, g.RestCenter(to), 1e-3) {
			t.Errorf("cluster %d: corner cubie at %+v, want %+v", c, got, g.RestCenter(to))
		}

		centre := puzzle.Key{Cluster: c, Local: puzzle.LocalCenter}
		if !near(centroid(g.PlaceCorners(centre, m)), g.RestCenter(centre), 1e-4) {
			t.Errorf("cluster %d centre moved", c)
		}
	}
}

func TestOrientation(t *testing.T) {
	g := newTestGeometry()
	anchor := g.Anchor()
	up := anchor.Add(math.Vec3{Y: 1})

	tests := []struct {
		name string
		e    puzzle.Euler
		in   math.Vec3
		want math.Vec3
	}{
		{"identity", puzzle.Euler{}, up, up},
		{"full turn wraps", puzzle.Euler{A: 2 * math.Pi, B: -2 * math.Pi}, up, up},
		{"pitch", puzzle.Euler{A: math.Pi / 2}, up, anchor.Add(math.Vec3{Z: -1})},
		{"yaw", puzzle.Euler{B: math.Pi / 2}, anchor.Add(math.Vec3{X: 1}), anchor.Add(math.Vec3{Z: 1})},
		{"roll", puzzle.Euler{C: math.Pi / 2}, anchor.Add(math.Vec3{X: 1}), anchor.Add(math.Vec3{Y: -1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Orientation(tt.e).Apply(tt.in)
			if !near(got, tt.want, 1e-4) {
				t.Errorf("Apply(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrientationPreservesDistance(t *testing.T) {
	g := newTestGeometry()
	o := g.Orientation(puzzle.Euler{A: 0.7, B: 2.1, C: 5.3})
	p := g.Anchor().Add(math.Vec3{X: 3, Y: -4, Z: 12})
	d := o.Apply(p).Sub(g.Anchor())
	if got := d.Dot(d); gomath.Abs(float64(got)-169) > 1e-2 {
		t.Errorf("squared distance %v, want 169", got)
	}
}
