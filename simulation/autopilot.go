package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/bigfish/components"
	"github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/shared/gamemath"
)

const (
	// Extra distance, past the player's own radius, at which a bigger fish
	// makes the autopilot flee.
	autopilotThreatRange = 90
	autopilotWanderTicks = 120
	autopilotArrival     = 10
)

// Autopilot produces input without a human. It flees the nearest fish that
// could hurt it when one is close, chases the nearest fish it can eat, and
// otherwise wanders between random points.
type Autopilot struct {
	rng    *rand.Rand
	target gamemath.Vec
	timer  int
}

func NewAutopilot(seed uint64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Input decides the next tick's input for s.
func (a *Autopilot) Input(s *Simulation) Input {
	p := components.Player.Get(s.player)
	pos := components.Position.Get(s.player)
	radius := p.Radius()

	prey, preyDist := gamemath.Vec{}, math.Inf(1)
	threat, threatDist := gamemath.Vec{}, math.Inf(1)
	for _, e := range s.Enemies() {
		enemy := components.Enemy.Get(e)
		ep := components.Position.Get(e)
		d := math.Hypot(ep.X-pos.X, ep.Y-pos.Y)
		if radius >= enemy.Radius() {
			if d < preyDist {
				prey, preyDist = gamemath.Vec{X: ep.X, Y: ep.Y}, d
			}
		} else if d-enemy.Radius() < threatDist {
			threat, threatDist = gamemath.Vec{X: ep.X, Y: ep.Y}, d-enemy.Radius()
		}
	}

	reach := config.Input.PointerReach
	switch {
	case threatDist < radius+autopilotThreatRange:
		// Full speed directly away.
		return Input{Joystick: gamemath.SteerToward(threat.X, threat.Y, pos.X, pos.Y, 1)}
	case !math.IsInf(preyDist, 1):
		return Input{Joystick: gamemath.SteerToward(pos.X, pos.Y, prey.X, prey.Y, reach)}
	}

	a.timer--
	if a.timer <= 0 || math.Hypot(a.target.X-pos.X, a.target.Y-pos.Y) < autopilotArrival {
		a.target = gamemath.Vec{
			X: a.rng.Float64() * float64(config.C.Width),
			Y: a.rng.Float64() * float64(config.C.Height),
		}
		a.timer = autopilotWanderTicks
	}
	return Input{Joystick: gamemath.SteerToward(pos.X, pos.Y, a.target.X, a.target.Y, reach)}
}
