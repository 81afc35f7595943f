package components

import (
	"github.com/automoto/bigfish/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputData is the movement input sampled for the next tick.
type InputData struct {
	Keys     gamemath.DirectionKeys
	Joystick gamemath.Vec // magnitude <= 1

	// Pointer is the held pointer position when PointerHeld is set.
	Pointer     gamemath.Vec
	PointerHeld bool
}

var Input = donburi.NewComponentType[InputData]()
