package systems

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuKeys maps keys to the action they trigger on a menu screen.
type MenuKeys map[ebiten.Key]func()

// NewUpdateMenu runs the action of the first key pressed this frame.
func NewUpdateMenu(keys MenuKeys) ecs.System {
	return func(_ *ecs.ECS) {
		for key, action := range keys {
			if inpututil.IsKeyJustPressed(key) {
				action()
				return
			}
		}
	}
}

// NewUpdateUI drives an ebitenui tree from the ECS update loop.
func NewUpdateUI(ui *ebitenui.UI) ecs.System {
	return func(_ *ecs.ECS) {
		ui.Update()
	}
}

func NewDrawUI(ui *ebitenui.UI) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		ui.Draw(screen)
	}
}
