package simulation

import (
	"log/slog"

	"github.com/automoto/bigfish/components"
	"github.com/automoto/bigfish/config"
)

// State is the progression state of a session.
type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Grow adds value to the player's growth and levels up at most once. won
// reports whether the player is at the final level afterwards.
func Grow(p *components.PlayerData, value float64) (leveled, won bool) {
	thresholds := config.Progression.GrowthThresholds
	last := len(thresholds) - 1

	p.Growth += value
	if p.Level < last && p.Growth >= thresholds[p.Level] {
		p.Level++
		leveled = true
	}
	return leveled, p.Level >= last
}

// TakeDamage lowers health and restarts the damage flash.
func TakeDamage(h *components.HealthData, f *components.FlashData, amount int) {
	h.Current -= amount
	f.Start(config.Player.DamageFlash())
}

func (s *Simulation) eat(enemy *components.EnemyData) (ended bool) {
	p := components.Player.Get(s.player)

	leveled, won := Grow(p, enemy.GrowthValue)
	slog.Debug("enemy_eaten", "tier", enemy.Tier, "value", enemy.GrowthValue, "growth", p.Growth)
	if leveled {
		slog.Info("level_up", "level", p.Level, "growth", p.Growth, "tick", s.ticks)
		for _, fn := range s.levelListeners {
			fn(p.Level)
		}
	}
	if won {
		s.end(Won)
		return true
	}
	return false
}

func (s *Simulation) hurt() (ended bool) {
	h := components.Health.Get(s.player)
	TakeDamage(h, components.Flash.Get(s.player), config.Progression.CollisionDamage)
	if h.Dead() {
		s.end(Lost)
		return true
	}
	return false
}

func (s *Simulation) end(state State) {
	s.state = state
	p := components.Player.Get(s.player)
	slog.Info("game_end",
		"won", state == Won,
		"level", p.Level,
		"growth", p.Growth,
		"health", components.Health.Get(s.player).Current,
		"ticks", s.ticks,
	)
	for _, fn := range s.endListeners {
		fn(state == Won)
	}
}
