// Package scene composes a frame: it orders cubies and faces back to front,
// shades each face and hands the triangles to the rasterizer.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/lighting"
	"github.com/Faultbox/hypercube/internal/engine/picking"
	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

// FacesPerCubie is the number of quads per cubie.
const FacesPerCubie = 6

// faceCorners lists each face as four corner indices A, B, C, D with A and
// D opposite, so the quad is the triangles (A,B,C) and (D,B,C) and its
// outline runs A, B, D, C.
var faceCorners = [FacesPerCubie][4]int{
	{0, 1, 2, 3},
	{5, 1, 4, 0},
	{4, 0, 6, 2},
	{5, 4, 7, 6},
	{5, 1, 7, 3},
	{7, 3, 6, 2},
}

// paintFrom is the first sorted face position that gets painted. Faces are
// sorted farthest first, so positions 3..5 are the three nearest.
const paintFrom = FacesPerCubie / 2

// Config contains composer options.
type Config struct {
	Background     raster.Color
	Darken         float32
	Floor          float32
	SelectedBoost  float32
	LightLongitude float32
	LightLatitude  float32
}

// DefaultConfig returns the default shading setup: an overhead light, faces
// darkened to 90% and never below 70%.
func DefaultConfig() Config {
	return Config{
		Background:     raster.Black,
		Darken:         0.9,
		Floor:          0.7,
		SelectedBoost:  1.35,
		LightLongitude: 0,
		LightLatitude:  90,
	}
}

// Plane is one face prepared for painting.
type Plane struct {
	Corners [4]math.Vec3
	Screen  [4]math.Vec2
	Color   raster.Color
}

// Outline returns the screen corners in perimeter order.
func (pl *Plane) Outline() [4]math.Vec2 {
	return [4]math.Vec2{pl.Screen[0], pl.Screen[1], pl.Screen[3], pl.Screen[2]}
}

// Frame holds per-frame composer inputs.
type Frame struct {
	// ShowFiller paints the filler cluster, which is only in view while a
	// cluster merges in.
	ShowFiller bool
	CursorX    int
	CursorY    int
}

// Stats reports what the last Compose call did.
type Stats struct {
	Cubies  int
	Faces   int
	Skipped int
	Hovered int
}

// Composer paints puzzle cubies onto a canvas.
type Composer struct {
	config    Config
	trig      math.Trig
	shader    lighting.Shader
	projector *camera.Projector

	// Projected corners persist across frames: a point the projector skips
	// keeps the value from the last frame that projected it.
	projected [puzzle.Cubies][puzzle.CornersPerCubie]math.Vec2

	order []int
	depth []float32
}

// New creates a composer drawing through projector.
func New(cfg Config, projector *camera.Projector, t math.Trig) *Composer {
	if t == nil {
		t = math.Precise{}
	}
	return &Composer{
		config: cfg,
		trig:   t,
		shader: lighting.Shader{
			Light:  lighting.Direction(cfg.LightLongitude, cfg.LightLatitude, t),
			Darken: cfg.Darken,
			Floor:  cfg.Floor,
			Boost:  cfg.SelectedBoost,
		},
		projector: projector,
		order:     make([]int, 0, puzzle.Cubies),
		depth:     make([]float32, puzzle.Cubies),
	}
}

// Config returns the composer configuration.
func (c *Composer) Config() Config {
	return c.config
}

// Projector returns the projector in use.
func (c *Composer) Projector() *camera.Projector {
	return c.projector
}

// Compose clears the canvas and paints every visible cubie from the given
// world-space corners.
func (c *Composer) Compose(dst *raster.Canvas, cubies *[puzzle.Cubies]puzzle.Cubie, f Frame) Stats {
	dst.Fill(c.config.Background)

	stats := Stats{Hovered: -1}
	hover := picking.NewTracker(f.CursorX, f.CursorY)
	filler := puzzle.Cubies - puzzle.CubiesPerCluster

	c.order = c.order[:0]
	for i := range cubies {
		if i >= filler && !f.ShowFiller {
			continue
		}
		c.order = append(c.order, i)
		c.depth[i] = c.zSum(cubies[i].Corners[:])
	}
	SortByDepth(c.order, c.depth)

	var faceOrder [FacesPerCubie]int
	var faceDepth [FacesPerCubie]float32
	for _, id := range c.order {
		cb := &cubies[id]
		stats.Skipped += c.projector.ProjectCorners(&cb.Corners, &c.projected[id])

		for fi, quad := range faceCorners {
			faceOrder[fi] = fi
			faceDepth[fi] = 0
			for _, ci := range quad {
				faceDepth[fi] += cb.Corners[ci].Z - c.projector.Camera.Z
			}
		}
		SortByDepth(faceOrder[:], faceDepth[:])

		for _, fi := range faceOrder[paintFrom:] {
			pl := c.plane(cb, id, faceCorners[fi])
			paint(dst, &pl)
			outline := pl.Outline()
			hover.Offer(id, outline[:])
			stats.Faces++
		}
		stats.Cubies++
	}

	stats.Hovered = hover.Hit()
	if stats.Skipped > 0 {
		logger.Debug("projection skipped points", zap.Int("count", stats.Skipped))
	}
	return stats
}

func (c *Composer) plane(cb *puzzle.Cubie, id int, quad [4]int) Plane {
	var pl Plane
	for i, ci := range quad {
		pl.Corners[i] = cb.Corners[ci]
		pl.Screen[i] = c.projected[id][ci]
	}
	pl.Color = c.Shade(cb.Color, c.normal(pl.Corners), cb.Selected)
	return pl
}

// Shade returns the painted colour of a face with the given unit normal.
func (c *Composer) Shade(base raster.Color, normal math.Vec3, selected bool) raster.Color {
	col := base.Scale(c.shader.Intensity(normal))
	if selected {
		col = col.Scale(c.shader.Boost)
	}
	return col
}

func (c *Composer) normal(q [4]math.Vec3) math.Vec3 {
	return q[1].Sub(q[0]).Cross(q[2].Sub(q[0])).Normalize(c.trig)
}

func (c *Composer) zSum(pts []math.Vec3) float32 {
	var z float32
	for _, p := range pts {
		z += p.Z - c.projector.Camera.Z
	}
	return z
}

// paint fills a face as the triangles (A,B,C) and (D,B,C).
func paint(dst *raster.Canvas, pl *Plane) {
	ax, ay := pl.Screen[0].Ints()
	bx, by := pl.Screen[1].Ints()
	cx, cy := pl.Screen[2].Ints()
	dx, dy := pl.Screen[3].Ints()
	dst.FillTriangle(ax, ay, bx, by, cx, cy, pl.Color)
	dst.FillTriangle(dx, dy, bx, by, cx, cy, pl.Color)
}
