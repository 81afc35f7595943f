package systems

import (
	"image/color"

	"github.com/automoto/bigfish/assets"
	"github.com/automoto/bigfish/assets/animations"
	"github.com/automoto/bigfish/assets/sprites"
	"github.com/automoto/bigfish/components"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer; renderers draw in the order added.
const LayerDefault ecs.LayerID = 0

const swimTicksPerFrame = 8

var (
	drawOp   = &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	shaderOp = &ebiten.DrawRectShaderOptions{}

	// One clock drives every fish; enemies are phase shifted by serial.
	swim = animations.NewCycle(sprites.SwimFrames, swimTicksPerFrame)
)

// UpdateAnimations advances the swim cycle.
func UpdateAnimations(_ *ecs.ECS) {
	swim.Update()
}

func DrawBackground(_ *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor.RGBA())
}

// DrawEnemies renders every enemy whose sprite has loaded, flipped when it
// swims left. Sprites face right.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		img := assets.SpriteFrame(components.Sprite.Get(entry).Key, swim.FrameAt(enemy.Serial))
		if img == nil {
			return
		}

		pos := components.Position.Get(entry)
		placeSprite(img, enemy.Size, !enemy.FromLeft, pos.X, pos.Y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawPlayer renders the player, or an orange placeholder circle until its
// sprite has loaded. A damaged player is tinted toward the flash color.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)

	img := assets.SpriteFrame(components.Sprite.Get(entry).Key, swim.Frame())
	if img == nil {
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(player.Radius()),
			cfg.UI.PlaceholderColor.RGBA(), true)
		return
	}

	placeSprite(img, player.DrawSize(), player.Facing == components.FacingLeft, pos.X, pos.Y)

	if !components.Flash.Get(entry).Active {
		screen.DrawImage(img, drawOp)
		return
	}
	if assets.TintShader == nil {
		drawOp.ColorScale.ScaleWithColor(blend(color.White, cfg.Player.FlashTint.RGBA(), cfg.Player.FlashAmount))
		screen.DrawImage(img, drawOp)
		return
	}

	tint := cfg.Player.FlashTint
	shaderOp.GeoM = drawOp.GeoM
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"TintColor": []float32{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255, float32(tint.A) / 255},
		"Amount":    float32(cfg.Player.FlashAmount),
	}
	b := img.Bounds()
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
}

// placeSprite sets drawOp to draw img as a size x size square centred on
// (x, y), mirrored horizontally when flip is set.
func placeSprite(img *ebiten.Image, size float64, flip bool, x, y float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(size/float64(w), size/float64(h))
	if flip {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Translate(x, y)
}

// blend moves each channel of a toward b by t.
func blend(a color.Color, b color.RGBA, t float64) color.RGBA {
	ar, ag, ab, _ := a.RGBA()
	mix := func(x uint32, y uint8) uint8 {
		return uint8(float64(x>>8)*(1-t) + float64(y)*t)
	}
	return color.RGBA{R: mix(ar, b.R), G: mix(ag, b.G), B: mix(ab, b.B), A: 255}
}

// NewDrawTitleFish draws img as a large fish above the start screen title.
func NewDrawTitleFish(img *ebiten.Image) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		b := screen.Bounds()
		size := float64(b.Dy()) / 4
		placeSprite(img, size, false, float64(b.Dx())/2, float64(b.Dy())/5)
		screen.DrawImage(img, drawOp)
	}
}
