package pipeline

import (
	"testing"

	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/hud"
	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

var idle = Input{Selector: -1, Type: animation.NoRotation}

// frontPixel returns the screen position of the centre of a cluster's
// camera-facing middle cubie face in the unrotated view.
func frontPixel(p *Pipeline, c puzzle.ClusterID) (int, int) {
	face := puzzle.Key{Cluster: c, Local: puzzle.LocalAt(1, 1, 0)}
	centre := p.geometry.RestCenter(face).Add(math.Vec3{Z: -animation.HalfEdge})
	v, _ := p.composer.Projector().Project(centre)
	return v.Ints()
}

func frontColor(p *Pipeline, base raster.Color) raster.Color {
	return p.composer.Shade(base, math.Vec3{Z: -1}, false)
}

// The unrotated solved frame shows the five clusters facing the camera:
// −z in the middle and the four clusters around it. The core and +z sit
// behind −z and the filler is parked off screen.
func TestSolvedFrame(t *testing.T) {
	p := New(DefaultConfig())
	in := idle
	in.Reset = true
	c := p.RenderFrame(in)

	for _, pt := range [][2]int{{0, 0}, {799, 0}, {0, 599}, {799, 599}} {
		if got := c.At(pt[0], pt[1]); got != raster.Black {
			t.Errorf("pixel %v = %08x, want background", pt, got)
		}
	}

	visible := []puzzle.ClusterID{
		puzzle.ClusterNegZ, puzzle.ClusterPosX, puzzle.ClusterNegX, puzzle.ClusterPosY, puzzle.ClusterNegY,
	}
	seen := map[raster.Color]bool{}
	for _, cl := range visible {
		x, y := frontPixel(p, cl)
		want := frontColor(p, cl.SolvedColor())
		if got := c.At(x, y); got != want {
			t.Errorf("cluster %d face at (%d,%d) = %08x, want %08x", cl, x, y, got, want)
		}
		seen[c.At(x, y)] = true
	}
	if len(seen) != len(visible) {
		t.Errorf("%d distinct face colours, want %d", len(seen), len(visible))
	}

	stats := p.Stats()
	if stats.Cubies != puzzle.Cubies-puzzle.CubiesPerCluster || stats.Faces != 3*stats.Cubies {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Selected != -1 {
		t.Errorf("selected %d in an idle frame", stats.Selected)
	}
}

func TestSelectorFourFrame(t *testing.T) {
	p := New(DefaultConfig())
	in := idle
	in.Reset = true
	p.RenderFrame(in)

	p.RenderFrame(Input{Selector: 4, Commit: true, Percent: 60, Type: 22})
	c := p.RenderFrame(idle)

	want := map[puzzle.ClusterID]puzzle.ClusterID{
		puzzle.ClusterNegZ: puzzle.ClusterPosY,
		puzzle.ClusterNegY: puzzle.ClusterNegZ,
		puzzle.ClusterPosY: puzzle.ClusterPosZ,
		puzzle.ClusterPosX: puzzle.ClusterPosX,
		puzzle.ClusterNegX: puzzle.ClusterNegX,
	}
	for cl, src := range want {
		x, y := frontPixel(p, cl)
		if got := c.At(x, y); got != frontColor(p, src.SolvedColor()) {
			t.Errorf("cluster %d shows %08x, want colour of %d", cl, got, src)
		}
	}
}

func TestResetRestores(t *testing.T) {
	p := New(DefaultConfig())
	p.RenderFrame(Input{Selector: 22, Commit: true})
	if p.Puzzle().Solved() {
		t.Fatal("commit had no effect")
	}
	in := idle
	in.Reset = true
	p.RenderFrame(in)
	if !p.Puzzle().Solved() {
		t.Error("reset frame did not restore the solved state")
	}
}

func TestPreviewLeavesColours(t *testing.T) {
	p := New(DefaultConfig())
	rest := *p.RenderFrame(idle)
	restPix := append([]raster.Color(nil), rest.Pix...)

	before := p.Puzzle().Colors()
	c := p.RenderFrame(Input{Selector: 22, Percent: 50, Type: 22})

	if p.Puzzle().Colors() != before {
		t.Error("preview mutated colours")
	}
	same := true
	for i := range restPix {
		if restPix[i] != c.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("half-turn preview rendered the rest frame")
	}
	if p.Stats().Selected != 22 {
		t.Errorf("selected = %d, want 22", p.Stats().Selected)
	}
}

func TestMoveInShowsFiller(t *testing.T) {
	p := New(DefaultConfig())
	sel := int(puzzle.MergeSelector(puzzle.ClusterPosX))

	p.RenderFrame(Input{Selector: sel, Percent: 40, Type: animation.MoveIn})
	if got := p.Stats().Cubies; got != puzzle.Cubies {
		t.Errorf("merge preview drew %d cubies, want %d", got, puzzle.Cubies)
	}

	p.RenderFrame(Input{Selector: sel, Percent: 0, Type: animation.MoveIn})
	if got := p.Stats().Cubies; got != puzzle.Cubies-puzzle.CubiesPerCluster {
		t.Errorf("idle merge drew %d cubies", got)
	}

	p.RenderFrame(Input{Selector: sel, Commit: true})
	if got := p.Puzzle().At(puzzle.Key{Cluster: puzzle.ClusterCore}).Color; got != raster.Blue {
		t.Errorf("core holds %08x after merging +x", got)
	}
}

func TestAnglesWrapped(t *testing.T) {
	p := New(DefaultConfig())
	in := idle
	in.Yaw, in.Pitch, in.Roll = 7, -1, 2*math.Pi
	p.RenderFrame(in)

	a := p.Puzzle().Angles
	for _, v := range []float32{a.A, a.B, a.C} {
		if v < 0 || v >= 2*math.Pi {
			t.Errorf("angle %v not wrapped", v)
		}
	}
	if a.B != math.WrapAngle(7) || a.A != math.WrapAngle(-1) {
		t.Errorf("angles = %+v", a)
	}
}

func TestFrameCounter(t *testing.T) {
	p := New(DefaultConfig())
	for i := range 3 {
		p.RenderFrame(idle)
		if got := p.Stats().Frame; got != uint64(i) {
			t.Errorf("frame %d reported as %d", i, got)
		}
	}
}

func TestLegacyTrigFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trig = math.Legacy{}
	p := New(cfg)
	c := p.RenderFrame(idle)

	x, y := frontPixel(p, puzzle.ClusterNegZ)
	if got := c.At(x, y); got != frontColor(p, raster.Red) {
		t.Errorf("legacy trig centre = %08x", got)
	}
}

func TestHUDOverlay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HUD = hud.New("en", raster.White)
	p := New(cfg)

	c := p.RenderFrame(Input{Selector: 22, Percent: 50, Type: 22})
	barY := c.Height - 8 - 6 + 1
	if c.At(10, barY) == raster.Black {
		t.Error("progress bar missing from HUD frame")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	pc := FromConfig(cfg)
	if pc.HUD != nil {
		t.Error("HUD should be off by default")
	}
	if _, ok := pc.Trig.(math.Precise); !ok {
		t.Errorf("trig = %T, want math.Precise", pc.Trig)
	}

	in := idle
	in.Reset = true
	got := New(pc).RenderFrame(in)
	want := New(DefaultConfig()).RenderFrame(in)
	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("pixel %d differs from default pipeline: %08x vs %08x", i, got.Pix[i], want.Pix[i])
		}
	}

	cfg.HUD.Enabled = true
	cfg.Render.Trig = "legacy"
	pc = FromConfig(cfg)
	if pc.HUD == nil {
		t.Error("HUD enabled in config but missing")
	}
	if _, ok := pc.Trig.(math.Legacy); !ok {
		t.Errorf("trig = %T, want math.Legacy", pc.Trig)
	}
}
