// Package pipeline renders one puzzle frame per call: reset, move
// application, geometry rebuild, depth ordering and rasterization.
//
// A Pipeline owns its puzzle and canvas and must not be used from more than
// one goroutine at a time.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/hud"
	"github.com/Faultbox/hypercube/internal/engine/scene"
	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

// Default frame size.
const (
	Width  = 800
	Height = 600
)

// Config contains pipeline options.
type Config struct {
	Width          int
	Height         int
	Trig           math.Trig
	Degenerate     camera.DegeneratePolicy
	Focal          float32
	CameraDistance float32
	Interpolation  animation.Interpolation
	Scene          scene.Config

	// HUD is drawn over the frame when set.
	HUD *hud.Overlay
}

// DefaultConfig returns an 800×600 pipeline with precise trig and no HUD.
func DefaultConfig() Config {
	return Config{
		Width:          Width,
		Height:         Height,
		Trig:           math.Precise{},
		Degenerate:     camera.DegenerateSkip,
		Focal:          camera.DefaultFocal,
		CameraDistance: animation.DefaultCameraDistance,
		Interpolation:  animation.Direct,
		Scene:          scene.DefaultConfig(),
	}
}

// Input is everything the host supplies for one frame.
type Input struct {
	// Reset restores the solved puzzle before anything else.
	Reset bool

	// Absolute scene angles in radians.
	Yaw, Pitch, Roll float32

	// Cursor position for hover tracking.
	CursorX, CursorY int

	// Selector picks the move and the selected cubie.
	Selector int
	// Commit applies the move now and ignores Percent and Type.
	Commit bool

	// Preview progress in [0, 100] and the kind of preview.
	Percent float32
	Type    animation.MoveType
}

// Stats describes the last rendered frame.
type Stats struct {
	scene.Stats
	Frame    uint64
	Selected int
}

// Pipeline renders frames.
type Pipeline struct {
	config   Config
	puzzle   *puzzle.Puzzle
	geometry *animation.Geometry
	composer *scene.Composer
	canvas   *raster.Canvas

	frames uint64
	stats  Stats
}

// New creates a pipeline holding a solved puzzle.
func New(cfg Config) *Pipeline {
	if cfg.Trig == nil {
		cfg.Trig = math.Precise{}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = Width, Height
	}

	pr := camera.NewProjector(cfg.Width, cfg.Height)
	pr.Policy = cfg.Degenerate
	if cfg.Focal != 0 {
		pr.Focal = cfg.Focal
	}

	p := &Pipeline{
		config:   cfg,
		puzzle:   puzzle.New(),
		geometry: animation.NewGeometry(cfg.Trig, cfg.Interpolation, cfg.CameraDistance),
		composer: scene.New(cfg.Scene, pr, cfg.Trig),
		canvas:   raster.New(cfg.Width, cfg.Height),
		stats:    Stats{Selected: -1},
	}
	p.stats.Hovered = -1
	return p
}

// Puzzle exposes the puzzle state.
func (p *Pipeline) Puzzle() *puzzle.Puzzle {
	return p.puzzle
}

// Canvas returns the frame buffer. Its contents are replaced by every
// RenderFrame call.
func (p *Pipeline) Canvas() *raster.Canvas {
	return p.canvas
}

// Stats returns counters for the last frame.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// RenderFrame advances the puzzle by one host frame and returns the painted
// canvas.
func (p *Pipeline) RenderFrame(in Input) *raster.Canvas {
	if in.Reset {
		p.puzzle.Reset()
		logger.Debug("puzzle reset")
	}

	p.puzzle.Angles = puzzle.Euler{A: in.Pitch, B: in.Yaw, C: in.Roll}.Wrapped()

	sel := puzzle.Selector(in.Selector)
	p.puzzle.Apply(sel, in.Commit)
	if in.Commit {
		logger.Debug("move committed", zap.Int("selector", in.Selector))
	}

	move := p.previewOf(sel, in)
	orient := p.geometry.Orientation(p.puzzle.Angles)
	for i := range p.puzzle.Cubies {
		corners := p.geometry.PlaceCorners(puzzle.KeyOf(i), move)
		orient.ApplyAll(&corners)
		p.puzzle.Cubies[i].Corners = corners
	}

	sc := p.composer.Compose(p.canvas, &p.puzzle.Cubies, scene.Frame{
		ShowFiller: move.Type == animation.MoveIn && move.Active(),
		CursorX:    in.CursorX,
		CursorY:    in.CursorY,
	})

	p.stats = Stats{Stats: sc, Frame: p.frames, Selected: p.puzzle.Selected()}
	p.frames++

	if p.config.HUD != nil {
		p.config.HUD.Draw(p.canvas, p.hudState(sel, move))
	}
	return p.canvas
}

func (p *Pipeline) previewOf(sel puzzle.Selector, in Input) animation.Move {
	if in.Commit {
		return animation.Move{Type: animation.NoRotation}
	}
	m := animation.Move{Type: in.Type, Percent: in.Percent}
	if sel.IsMerge() {
		m.Source = sel.Target()
	}
	return m
}

func (p *Pipeline) hudState(sel puzzle.Selector, move animation.Move) hud.State {
	s := hud.State{
		Frame:    p.stats.Frame,
		Selector: int(sel),
		Merging:  sel.IsMerge(),
		Preview:  int(move.Type),
		Hovered:  p.stats.Hovered,
	}
	if move.Active() {
		s.Percent = move.Percent
	}
	if id := p.stats.Selected; id >= 0 {
		var centre math.Vec3
		for _, c := range p.puzzle.Cubies[id].Corners {
			centre = centre.Add(c)
		}
		s.Pivot, s.HasPivot = p.composer.Projector().Project(centre.Scale(1.0 / puzzle.CornersPerCubie))
	}
	return s
}
