// Package control turns viewer commands into per-frame pipeline input.
package control

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/pipeline"
	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/internal/puzzle"
)

// Action is a host command decoded from a key.
type Action int

// Actions understood by the Controller.
const (
	ActionNone Action = iota
	ActionPitchUp
	ActionPitchDown
	ActionYawLeft
	ActionYawRight
	ActionRollLeft
	ActionRollRight
	ActionNextCubie
	ActionPrevCubie
	ActionSkipLayer
	ActionPercentDown
	ActionPercentUp
	ActionRotate
	ActionMerge
	ActionReset
	ActionScreenshot
	ActionQuit

	// ActionCluster + n selects cluster n.
	ActionCluster
)

// lastKeyCluster is the highest cluster reachable from the number keys; the
// filler cannot be selected.
const lastKeyCluster = puzzle.ClusterPosY

// Controller turns host actions into one pipeline.Input per frame. It holds
// no SDL state.
type Controller struct {
	orbit *camera.Orbit
	step  float32

	cluster puzzle.ClusterID
	cubie   int

	// percent is the manual preview set with o/p.
	percent float32

	animating bool
	animSel   puzzle.Selector
	animPct   float32

	reset            bool
	cursorX, cursorY int
}

// NewController creates a controller whose first frame resets the puzzle.
// step is the preview percent added per animation frame.
func NewController(orbit *camera.Orbit, step float32) *Controller {
	if orbit == nil {
		orbit = camera.NewOrbit()
	}
	if step <= 0 {
		step = 15
	}
	return &Controller{
		orbit:   orbit,
		step:    step,
		reset:   true,
		cursorX: -1,
		cursorY: -1,
	}
}

// Orbit returns the scene angles the controller drives.
func (c *Controller) Orbit() *camera.Orbit {
	return c.orbit
}

// Animating reports whether a turn or merge animation is in flight. Input
// other than the cursor is ignored meanwhile.
func (c *Controller) Animating() bool {
	return c.animating
}

// Selector returns the move selector for the current cluster and cubie.
func (c *Controller) Selector() puzzle.Selector {
	return puzzle.Selector(int(c.cluster)*puzzle.CubiesPerCluster + c.cubie)
}

// Press applies one action. Quit and Screenshot are left to the host.
func (c *Controller) Press(a Action) {
	if c.animating {
		return
	}
	switch {
	case a == ActionPitchUp:
		c.orbit.Step(0, 1, 0)
	case a == ActionPitchDown:
		c.orbit.Step(0, -1, 0)
	case a == ActionYawLeft:
		c.orbit.Step(-1, 0, 0)
	case a == ActionYawRight:
		c.orbit.Step(1, 0, 0)
	case a == ActionRollLeft:
		c.orbit.Step(0, 0, 1)
	case a == ActionRollRight:
		c.orbit.Step(0, 0, -1)
	case a == ActionNextCubie:
		c.cubie = min(c.cubie+1, puzzle.CubiesPerCluster-1)
	case a == ActionPrevCubie:
		c.cubie = max(c.cubie-1, 0)
	case a == ActionSkipLayer:
		c.cubie = min(c.cubie+9, puzzle.CubiesPerCluster-1)
	case a == ActionPercentDown:
		c.percent = max(c.percent-1, 0)
	case a == ActionPercentUp:
		c.percent = min(c.percent+1, 100)
	case a == ActionRotate:
		c.Start(c.Selector())
	case a == ActionMerge:
		if c.cluster != puzzle.ClusterCore {
			c.Start(puzzle.MergeSelector(c.cluster))
		}
	case a == ActionReset:
		c.reset = true
		c.percent = 0
		c.orbit.Reset()
	case a >= ActionCluster && a <= ActionCluster+Action(lastKeyCluster):
		c.cluster = puzzle.ClusterID(a - ActionCluster)
		c.cubie = 0
	}
}

// Start begins animating sel and reports whether it has anything to
// animate. It does nothing while another animation runs.
func (c *Controller) Start(sel puzzle.Selector) bool {
	if c.animating {
		return false
	}
	if PreviewType(sel) == animation.NoRotation {
		logger.Debug("selector has nothing to animate", zap.Int("selector", int(sel)))
		return false
	}
	c.animating = true
	c.animSel = sel
	c.animPct = 0
	return true
}

// Drag turns the scene from a mouse drag delta.
func (c *Controller) Drag(dx, dy int) {
	if c.animating {
		return
	}
	c.orbit.HandleDrag(float32(dx), float32(dy))
}

// Cursor records the pointer position for hover tracking.
func (c *Controller) Cursor(x, y int) {
	c.cursorX, c.cursorY = x, y
}

// Next returns the input for the next frame and advances any animation. An
// animation shows previews at step, 2·step, … up to exactly 100 and then
// emits one commit frame.
func (c *Controller) Next() pipeline.Input {
	sel := c.Selector()
	if c.animating {
		sel = c.animSel
	}

	in := pipeline.Input{
		Reset:    c.reset,
		Yaw:      c.orbit.Yaw,
		Pitch:    c.orbit.Pitch,
		Roll:     c.orbit.Roll,
		CursorX:  c.cursorX,
		CursorY:  c.cursorY,
		Selector: int(sel),
		Type:     animation.NoRotation,
	}
	c.reset = false

	switch {
	case c.animating && c.animPct >= 100:
		in.Commit = true
		c.animating = false
		c.animPct, c.percent = 0, 0
	case c.animating:
		c.animPct = min(c.animPct+c.step, 100)
		in.Percent = c.animPct
		in.Type = PreviewType(sel)
	case c.percent > 0:
		in.Percent = c.percent
		in.Type = PreviewType(sel)
	}
	return in
}

// PreviewType maps a selector to the animation that previews it.
func PreviewType(sel puzzle.Selector) animation.MoveType {
	switch {
	case sel.IsLocal():
		return animation.TypeOf(puzzle.LocalIndex(sel))
	case sel.IsMerge() && sel.Target() != puzzle.ClusterFiller:
		return animation.MoveIn
	}
	return animation.NoRotation
}
