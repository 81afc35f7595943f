package systems

import (
	"github.com/automoto/bigfish/archetypes"
	"github.com/automoto/bigfish/components"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations every frame
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input into the Input singleton.
// Must run BEFORE the simulation system.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	*input = components.InputData{}

	input.Keys = gamemath.DirectionKeys{
		Up:    anyKeyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  anyKeyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  anyKeyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: anyKeyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	if stick, ok := readLeftStick(gamepadIDs); ok {
		input.Joystick = stick
	}

	if x, y, ok := pointerPosition(); ok {
		input.Pointer = gamemath.Vec{X: x, Y: y}
		input.PointerHeld = true
	}
}

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readLeftStick returns the first left stick pushed past the deadzone,
// clamped to unit length.
func readLeftStick(gamepads []ebiten.GamepadID) (gamemath.Vec, bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		stick := gamemath.Vec{
			X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		stick = gamemath.ApplyDeadzone(stick, cfg.Input.AnalogDeadzone)
		if stick.IsZero() {
			continue
		}
		return gamemath.ClampMagnitude(stick, 1), true
	}
	return gamemath.Vec{}, false
}

// pointerPosition reports the held mouse button or first touch, in canvas
// coordinates.
func pointerPosition() (x, y float64, ok bool) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		return float64(tx), float64(ty), true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		return float64(mx), float64(my), true
	}
	return 0, 0, false
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e.World)
	}
	return components.Input.Get(entry)
}
