// Package simulation runs the fish game: player movement, enemy spawning,
// pixel collision and the growth and level progression that ends a session.
// It has no rendering dependency; callers feed it input once per tick and
// read entity state back out of its world.
package simulation

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/bigfish/components"
	"github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/shared/gamemath"
	"github.com/automoto/bigfish/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Input is the movement input for one tick.
type Input struct {
	Keys     gamemath.DirectionKeys
	Joystick gamemath.Vec // magnitude <= 1
}

// HUDSink receives the player's stats once per tick.
type HUDSink interface {
	UpdateHUD(health, level int, growth float64)
}

// Options configures a new Simulation.
type Options struct {
	// Seed seeds enemy generation. Zero picks a time based seed.
	Seed   int64
	Loader MaskLoader
	HUD    HUDSink
	// World lets a caller share its donburi world with the simulation.
	// A fresh world is created when nil.
	World donburi.World
}

// Simulation is one game session. All methods must be called from the same
// goroutine; only mask deliveries may arrive from elsewhere.
type Simulation struct {
	world  donburi.World
	space  *resolv.Space
	player *donburi.Entry
	roller *factory.EnemyRoller
	seed   int64

	spawner    Spawner
	state      State
	ticks      uint64
	serial     uint64
	generation uint64

	loader         MaskLoader
	hud            HUDSink
	endListeners   []func(won bool)
	levelListeners []func(level int)

	mu      sync.Mutex
	arrived []maskDelivery
}

func New(opts Options) *Simulation {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := opts.World
	if w == nil {
		w = donburi.NewWorld()
	}

	s := &Simulation{
		world:  w,
		seed:   seed,
		roller: factory.NewEnemyRoller(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
		loader: opts.Loader,
		hud:    opts.HUD,
	}

	// Round the space up to whole cells so the last row and column of the
	// canvas are covered.
	cell := factory.SpaceCellSize
	spaceEntry := factory.CreateSpace(w, config.C.Width+cell-1, config.C.Height+cell-1, cell, cell)
	s.space = components.Space.Get(spaceEntry).Space
	s.player = factory.CreatePlayer(w, s.space)
	s.requestMask(s.player)

	return s
}

// Start begins a fresh session.
func (s *Simulation) Start() {
	s.Reset()
	slog.Info("game_start", "seed", s.seed)
}

// Reset returns the session to its initial Playing state: the player is
// back at the start position with full health, level 1 and no growth, and
// every enemy is gone. The player's loaded mask is kept.
func (s *Simulation) Reset() {
	s.clearEnemies()
	s.spawner.Reset()
	s.generation++
	s.state = Playing
	s.ticks = 0

	components.Player.SetValue(s.player, components.PlayerData{
		Speed:  config.Player.Speed,
		Level:  1,
		Growth: 0,
		Facing: components.FacingRight,
	})
	pos := components.Position.Get(s.player)
	pos.X, pos.Y = config.Player.StartX, config.Player.StartY
	components.Health.SetValue(s.player, components.HealthData{
		Current: config.Player.Health,
		Max:     config.Player.Health,
	})
	components.Flash.SetValue(s.player, components.FlashData{})
	s.fitPlayer()
}

// OnEnd registers fn to be called when the session is won or lost.
func (s *Simulation) OnEnd(fn func(won bool)) {
	s.endListeners = append(s.endListeners, fn)
}

// OnLevelUp registers fn to be called with the new level after a level up.
func (s *Simulation) OnLevelUp(fn func(level int)) {
	s.levelListeners = append(s.levelListeners, fn)
}

// SetHUD replaces the HUD sink.
func (s *Simulation) SetHUD(h HUDSink) {
	s.hud = h
}

// Tick advances the session by dt. A non-positive dt means one nominal
// step. Ticks after the session has ended do nothing.
func (s *Simulation) Tick(in Input, dt time.Duration) {
	if s.state.Terminal() {
		return
	}
	if dt <= 0 {
		dt = config.Simulation.Step()
	}

	s.applyMasks()
	s.ticks++

	s.updatePlayer(in, dt)
	s.spawnEnemies()
	s.moveEnemies(dt)
	s.cullEnemies()
	s.resolveCollisions()

	s.publishHUD()
}

func (s *Simulation) publishHUD() {
	if s.hud == nil {
		return
	}
	p := components.Player.Get(s.player)
	s.hud.UpdateHUD(components.Health.Get(s.player).Current, p.Level, p.Growth)
}

func (s *Simulation) World() donburi.World {
	return s.world
}

func (s *Simulation) Space() *resolv.Space {
	return s.space
}

func (s *Simulation) Player() *donburi.Entry {
	return s.player
}

func (s *Simulation) State() State {
	return s.state
}

func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

func (s *Simulation) Seed() int64 {
	return s.seed
}

// SpawnCounter is the number of ticks since the last spawn event.
func (s *Simulation) SpawnCounter() int {
	return s.spawner.Counter()
}
