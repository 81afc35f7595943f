package scenes

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/automoto/bigfish/assets"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/simulation"
	"github.com/automoto/bigfish/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene hosts one simulation and its renderers. It survives a restart
// from the end screen; the simulation is reset in place.
type GameScene struct {
	ecs          *ecs.ECS
	sim          *simulation.Simulation
	banner       *systems.Banner
	sceneChanger SceneChanger
	once         sync.Once

	ended bool
	won   bool
}

// NewGameScene creates a new game scene
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if gs.ended {
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs, gs.won))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// Restart begins a new session on the existing simulation.
func (gs *GameScene) Restart() {
	gs.ended = false
	gs.banner.Hide()
	gs.sim.Start()
}

func (gs *GameScene) configure() {
	// Shaders are optional; without them the flash falls back to a color scale.
	if err := assets.LoadShaders(); err != nil {
		slog.Warn("shader_load_failed", "error", err)
	}
	assets.PreloadSprites()

	world := donburi.NewWorld()
	gs.ecs = ecs.NewECS(world)

	hud := &systems.HUD{}
	gs.banner = &systems.Banner{}
	gs.sim = simulation.New(simulation.Options{
		Seed:   cfg.Simulation.Seed,
		Loader: assets.Library,
		HUD:    hud,
		World:  world,
	})
	gs.sim.OnLevelUp(func(level int) {
		gs.banner.Show(fmt.Sprintf("Level %d", level))
	})
	gs.sim.OnEnd(func(won bool) {
		gs.ended = true
		gs.won = won
	})

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateSimulation(gs.sim))
	gs.ecs.AddSystem(systems.UpdateAnimations)
	gs.ecs.AddSystem(gs.banner.Update)

	gs.ecs.AddRenderer(systems.LayerDefault, systems.DrawBackground)
	gs.ecs.AddRenderer(systems.LayerDefault, systems.DrawEnemies)
	gs.ecs.AddRenderer(systems.LayerDefault, systems.DrawPlayer)
	gs.ecs.AddRenderer(systems.LayerDefault, systems.DrawDebug)
	gs.ecs.AddRenderer(systems.LayerDefault, hud.Draw)
	gs.ecs.AddRenderer(systems.LayerDefault, gs.banner.Draw)

	gs.sim.Start()
}
