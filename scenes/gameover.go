package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/bigfish/systems"
	"github.com/automoto/bigfish/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the outcome of a session
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	game         *GameScene
	won          bool
	once         sync.Once
}

// NewGameOverScene creates the end screen for game. Restart resumes game
// with a fresh session; Home returns to the start screen.
func NewGameOverScene(sc SceneChanger, game *GameScene, won bool) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, game: game, won: won}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) restart() {
	gs.game.Restart()
	gs.sceneChanger.ChangeScene(gs.game)
}

func (gs *GameOverScene) home() {
	gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	screen := ui.NewEndUI(gs.won, gs.restart, gs.home)

	gs.ecs.AddSystem(systems.NewUpdateUI(screen.UI))
	gs.ecs.AddSystem(systems.NewUpdateMenu(systems.MenuKeys{
		ebiten.KeyEnter:  gs.restart,
		ebiten.KeyR:      gs.restart,
		ebiten.KeyEscape: gs.home,
		ebiten.KeyH:      gs.home,
	}))

	gs.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawUI(screen.UI))
}
