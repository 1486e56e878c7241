// Package camera projects camera-space points onto the screen and tracks the
// user-controlled scene orientation.
package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/pkg/math"
)

// DefaultFocal is the focal constant K.
const DefaultFocal = 3000

// ClampEpsilon replaces a zero depth under DegenerateClamp.
const ClampEpsilon = 1e-3

// DegeneratePolicy decides what happens to a point with zero depth.
type DegeneratePolicy int

// Policies.
const (
	// DegenerateSkip leaves the output untouched and reports failure.
	DegenerateSkip DegeneratePolicy = iota
	// DegenerateClamp substitutes ClampEpsilon for the zero depth.
	DegenerateClamp
)

// ParseDegenerate maps a config value to a policy, defaulting to skip.
func ParseDegenerate(s string) DegeneratePolicy {
	if s == "clamp" {
		return DegenerateClamp
	}
	return DegenerateSkip
}

func (p DegeneratePolicy) String() string {
	if p == DegenerateClamp {
		return "clamp"
	}
	return "skip"
}

// Projector is a pinhole projection with no clipping.
type Projector struct {
	Camera math.Vec3
	Focal  float32
	Width  int
	Height int
	Policy DegeneratePolicy
}

// NewProjector returns a projector for a width×height screen with the camera
// at the origin looking down +z.
func NewProjector(width, height int) *Projector {
	return &Projector{
		Focal:  DefaultFocal,
		Width:  width,
		Height: height,
	}
}

// Project maps p to screen coordinates. ok is false only when the depth is
// zero and the policy is DegenerateSkip.
func (pr *Projector) Project(p math.Vec3) (math.Vec2, bool) {
	d := p.Sub(pr.Camera)
	if d.Z == 0 {
		if pr.Policy != DegenerateClamp {
			logger.Debug("skipping zero-depth point", zap.Float32("x", d.X), zap.Float32("y", d.Y))
			return math.Vec2{}, false
		}
		d.Z = ClampEpsilon
	}
	return math.Vec2{
		X: d.X/d.Z*pr.Focal + float32(pr.Width)/2,
		Y: d.Y/d.Z*pr.Focal + float32(pr.Height)/2,
	}, true
}

// ProjectCorners projects every corner into out. Slots for skipped points
// keep their previous value; the number of skipped points is returned.
func (pr *Projector) ProjectCorners(corners *[8]math.Vec3, out *[8]math.Vec2) int {
	skipped := 0
	for i := range corners {
		v, ok := pr.Project(corners[i])
		if !ok {
			skipped++
			continue
		}
		out[i] = v
	}
	return skipped
}
