package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hypercube/internal/game/control"
)

// keyMap binds scancodes to viewer actions.
var keyMap = map[sdl.Scancode]control.Action{
	sdl.SCANCODE_W:         control.ActionPitchUp,
	sdl.SCANCODE_S:         control.ActionPitchDown,
	sdl.SCANCODE_A:         control.ActionYawLeft,
	sdl.SCANCODE_D:         control.ActionYawRight,
	sdl.SCANCODE_J:         control.ActionRollLeft,
	sdl.SCANCODE_K:         control.ActionRollRight,
	sdl.SCANCODE_PERIOD:    control.ActionNextCubie,
	sdl.SCANCODE_COMMA:     control.ActionPrevCubie,
	sdl.SCANCODE_SLASH:     control.ActionSkipLayer,
	sdl.SCANCODE_O:         control.ActionPercentDown,
	sdl.SCANCODE_P:         control.ActionPercentUp,
	sdl.SCANCODE_R:         control.ActionRotate,
	sdl.SCANCODE_M:         control.ActionMerge,
	sdl.SCANCODE_BACKSPACE: control.ActionReset,
	sdl.SCANCODE_F12:       control.ActionScreenshot,
	sdl.SCANCODE_ESCAPE:    control.ActionQuit,
	sdl.SCANCODE_1:         control.ActionCluster + 0,
	sdl.SCANCODE_2:         control.ActionCluster + 1,
	sdl.SCANCODE_3:         control.ActionCluster + 2,
	sdl.SCANCODE_4:         control.ActionCluster + 3,
	sdl.SCANCODE_5:         control.ActionCluster + 4,
	sdl.SCANCODE_6:         control.ActionCluster + 5,
	sdl.SCANCODE_7:         control.ActionCluster + 6,
}

// repeatable actions keep firing while their key is held.
func repeatable(a control.Action) bool {
	switch a {
	case control.ActionPitchUp, control.ActionPitchDown,
		control.ActionYawLeft, control.ActionYawRight,
		control.ActionRollLeft, control.ActionRollRight,
		control.ActionPercentDown, control.ActionPercentUp:
		return true
	}
	return false
}
