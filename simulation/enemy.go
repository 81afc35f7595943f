package simulation

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"github.com/automoto/bigfish/components"
	"github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/systems/factory"
	"github.com/yohamta/donburi"
)

// SpawnEnemy adds an enemy to the session and requests its mask.
func (s *Simulation) SpawnEnemy(spawn factory.EnemySpawn) *donburi.Entry {
	s.serial++
	e := factory.CreateEnemy(s.world, s.space, s.serial, spawn)
	s.requestMask(e)
	slog.Debug("enemy_spawned",
		"serial", s.serial,
		"tier", spawn.Tier,
		"size", spawn.Size,
		"from_left", spawn.FromLeft,
	)
	return e
}

func (s *Simulation) spawnEnemies() {
	p := components.Player.Get(s.player)
	if !s.spawner.Advance(p.Level) {
		return
	}
	n := BatchSize(config.Spawn.EnemiesPerSpawn, s.roller.Offset())
	for i := 0; i < n; i++ {
		s.SpawnEnemy(s.roller.Roll())
	}
}

func (s *Simulation) moveEnemies(dt time.Duration) {
	scale := stepScale(dt)
	components.Enemy.Each(s.world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		pos := components.Position.Get(e)
		pos.X += enemy.Direction() * enemy.Speed * scale
		components.Object.Get(e).Fit(pos.X, pos.Y, enemy.Radius())
	})
}

// cullEnemies removes every enemy that is no longer strictly inside the
// play area widened by its own size on each side.
func (s *Simulation) cullEnemies() {
	width := float64(config.C.Width)

	var gone []*donburi.Entry
	components.Enemy.Each(s.world, func(e *donburi.Entry) {
		size := components.Enemy.Get(e).Size
		x := components.Position.Get(e).X
		if !(x > -size && x < width+size) {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		s.removeEnemy(e)
	}
}

func (s *Simulation) removeEnemy(e *donburi.Entry) {
	factory.Destroy(s.world, s.space, e)
}

// Enemies returns the live enemies in spawn order.
func (s *Simulation) Enemies() []*donburi.Entry {
	var out []*donburi.Entry
	components.Enemy.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	slices.SortFunc(out, func(a, b *donburi.Entry) int {
		sa, sb := components.Enemy.Get(a).Serial, components.Enemy.Get(b).Serial
		return cmp.Compare(sa, sb)
	})
	return out
}

func (s *Simulation) clearEnemies() {
	for _, e := range s.Enemies() {
		s.removeEnemy(e)
	}
}
