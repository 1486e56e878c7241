package camera

import (
	"github.com/Faultbox/hypercube/pkg/math"
)

// Orbit accumulates the absolute scene angles driven by the host. Angles
// are kept wrapped into [0, 2π).
type Orbit struct {
	Yaw   float32
	Pitch float32
	Roll  float32

	// Sensitivity
	DragSensitivity float32
	KeyStep         float32
}

// NewOrbit creates an orbit with default sensitivities.
func NewOrbit() *Orbit {
	return &Orbit{
		DragSensitivity: 0.005,
		KeyStep:         0.05,
	}
}

// HandleDrag turns the scene from a mouse drag delta in pixels.
func (o *Orbit) HandleDrag(deltaX, deltaY float32) {
	o.Yaw = math.WrapAngle(o.Yaw - deltaX*o.DragSensitivity)
	o.Pitch = math.WrapAngle(o.Pitch + deltaY*o.DragSensitivity)
}

// Step turns the scene by whole key steps on each angle.
func (o *Orbit) Step(yaw, pitch, roll int) {
	o.Yaw = math.WrapAngle(o.Yaw + float32(yaw)*o.KeyStep)
	o.Pitch = math.WrapAngle(o.Pitch + float32(pitch)*o.KeyStep)
	o.Roll = math.WrapAngle(o.Roll + float32(roll)*o.KeyStep)
}

// Reset returns to the unrotated view.
func (o *Orbit) Reset() {
	o.Yaw, o.Pitch, o.Roll = 0, 0, 0
}
