package systems

import (
	"time"

	"github.com/automoto/bigfish/components"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/shared/gamemath"
	"github.com/automoto/bigfish/simulation"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSimulation ticks sim once per frame with the polled input. A held
// pointer acts as a virtual joystick pulling the player toward it.
func NewUpdateSimulation(sim *simulation.Simulation) ecs.System {
	var last time.Time
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)

		in := simulation.Input{Keys: input.Keys, Joystick: input.Joystick}
		if input.PointerHeld {
			pos := components.Position.Get(sim.Player())
			pull := gamemath.SteerToward(pos.X, pos.Y, input.Pointer.X, input.Pointer.Y, cfg.Input.PointerReach)
			in.Joystick = gamemath.ClampMagnitude(in.Joystick.Add(pull), 1)
		}

		sim.Tick(in, frameDelta(&last))
	}
}

// frameDelta is the nominal step unless measured deltas are enabled, in
// which case it is the wall time since the previous frame, capped.
func frameDelta(last *time.Time) time.Duration {
	step := cfg.Simulation.Step()
	if !cfg.Simulation.MeasuredDelta {
		return step
	}

	now := time.Now()
	if last.IsZero() {
		*last = now
		return step
	}
	dt := now.Sub(*last)
	*last = now
	return min(dt, cfg.Simulation.MaxDelta())
}
