package systems

import (
	"image/color"

	"github.com/automoto/bigfish/components"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broadphase object when bounds drawing is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBounds {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255}
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
