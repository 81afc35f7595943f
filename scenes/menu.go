package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/bigfish/assets"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/systems"
	"github.com/automoto/bigfish/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the start screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) start() {
	ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger))
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Warm every sprite while the player reads the title.
	assets.PreloadSprites()
	titleFish := assets.MustLoadImage(cfg.Player.Sprite)

	screen := ui.NewStartUI(ms.start)

	ms.ecs.AddSystem(systems.NewUpdateUI(screen.UI))
	ms.ecs.AddSystem(systems.NewUpdateMenu(systems.MenuKeys{
		ebiten.KeyEnter: ms.start,
		ebiten.KeySpace: ms.start,
	}))

	ms.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawUI(screen.UI))
	ms.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawTitleFish(titleFish))
}
