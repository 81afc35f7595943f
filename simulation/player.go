package simulation

import (
	"time"

	"github.com/automoto/bigfish/components"
	"github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/shared/gamemath"
)

// ClampOffsets returns the clamp box of the player sprite at its current
// draw size. Before the sprite has loaded, or when it is fully transparent,
// the player's bounding square is used instead.
func ClampOffsets(p *components.PlayerData, sprite *components.SpriteData) gamemath.ClampOffsets {
	w, h := sprite.NativeSize()
	if off, ok := gamemath.VisualOffsets(sprite.Bounds, w, h, p.DrawSize()); ok {
		return off
	}
	return gamemath.CircleOffsets(p.Radius())
}

func (s *Simulation) updatePlayer(in Input, dt time.Duration) {
	p := components.Player.Get(s.player)
	pos := components.Position.Get(s.player)

	dir := gamemath.MergeInput(in.Keys, in.Joystick)
	switch {
	case dir.X < 0:
		p.Facing = components.FacingLeft
	case dir.X > 0:
		p.Facing = components.FacingRight
	}

	step := p.Speed * stepScale(dt)
	pos.X += dir.X * step
	pos.Y += dir.Y * step

	off := ClampOffsets(p, components.Sprite.Get(s.player))
	pos.X, pos.Y = gamemath.ClampToVisible(pos.X, pos.Y, off, float64(config.C.Width), float64(config.C.Height))

	components.Flash.Get(s.player).Advance(dt)
	s.fitPlayer()
}

// fitPlayer resizes the player's broadphase box to its current radius.
func (s *Simulation) fitPlayer() {
	pos := components.Position.Get(s.player)
	components.Object.Get(s.player).Fit(pos.X, pos.Y, components.Player.Get(s.player).Radius())
}

// stepScale converts a tick duration into multiples of the nominal step that
// per-tick speeds are expressed in.
func stepScale(dt time.Duration) float64 {
	return float64(dt) / float64(config.Simulation.Step())
}
