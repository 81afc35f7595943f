package simulation

import (
	"cmp"
	"math"
	"slices"

	"github.com/automoto/bigfish/components"
	"github.com/automoto/bigfish/shared/alphamask"
	"github.com/automoto/bigfish/shared/gamemath"
	"github.com/automoto/bigfish/tags"
	"github.com/yohamta/donburi"
)

type body struct {
	x, y, r float64
	mask    *alphamask.AlphaMask
}

func (b body) Center() (float64, float64) {
	return b.x, b.y
}

func (b body) Radius() float64 {
	return b.r
}

func (b body) AlphaMask() *alphamask.AlphaMask {
	return b.mask
}

func playerBody(e *donburi.Entry) body {
	pos := components.Position.Get(e)
	return body{
		x:    pos.X,
		y:    pos.Y,
		r:    components.Player.Get(e).Radius(),
		mask: components.Sprite.Get(e).Mask,
	}
}

func enemyBody(e *donburi.Entry) body {
	pos := components.Position.Get(e)
	return body{
		x:    pos.X,
		y:    pos.Y,
		r:    components.Enemy.Get(e).Radius(),
		mask: components.Sprite.Get(e).Mask,
	}
}

// candidates returns the enemies sharing broadphase cells with the player
// whose serial is below before, newest first.
func (s *Simulation) candidates(before uint64) []*donburi.Entry {
	obj := components.Object.Get(s.player)
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	out := make([]*donburi.Entry, 0, len(check.Objects))
	for _, o := range check.Objects {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		if components.Enemy.Get(e).Serial < before {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		sa, sb := components.Enemy.Get(a).Serial, components.Enemy.Get(b).Serial
		return cmp.Compare(sb, sa)
	})
	return out
}

// resolveCollisions walks the enemies touching the player from newest to
// oldest. A meal grows the player, so the broadphase is queried again for the
// older enemies the larger body may now reach. It reports whether the
// session ended.
func (s *Simulation) resolveCollisions() bool {
	cursor := uint64(math.MaxUint64)
	for {
		restart := false
		for _, e := range s.candidates(cursor) {
			enemy := components.Enemy.Get(e)
			cursor = enemy.Serial

			if !gamemath.IsPixelColliding(playerBody(s.player), enemyBody(e)) {
				continue
			}

			p := components.Player.Get(s.player)
			if p.Radius() < enemy.Radius() {
				if s.hurt() {
					return true
				}
				continue
			}

			meal := *enemy
			s.removeEnemy(e)
			if s.eat(&meal) {
				return true
			}
			s.fitPlayer()
			restart = true
			break
		}
		if !restart {
			return false
		}
	}
}
