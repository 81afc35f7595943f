package systems

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// HUD keeps the last stats published by the simulation and draws them in
// the top-left corner.
type HUD struct {
	health int
	level  int
	growth float64
}

func (h *HUD) UpdateHUD(health, level int, growth float64) {
	h.health = health
	h.level = level
	h.growth = growth
}

// Lines is the HUD text, one stat per line. Growth is shown floored.
func (h *HUD) Lines() [3]string {
	return [3]string{
		fmt.Sprintf("Health: %d", h.health),
		fmt.Sprintf("Level: %d", h.level),
		fmt.Sprintf("Growth: %d", int(math.Floor(h.growth))),
	}
}

func (h *HUD) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	x := int(cfg.UI.HUDMargin)
	for i, line := range h.Lines() {
		y := int(cfg.UI.HUDMargin + float64(i+1)*cfg.UI.HUDLineHeight)
		text.Draw(screen, line, face, x, y, cfg.UI.HUDTextColor.RGBA())
	}
}

// Banner flashes a centred message that fades out.
type Banner struct {
	message string
	alpha   float32
	tween   *gween.Tween
}

// Show restarts the fade with msg.
func (b *Banner) Show(msg string) {
	b.message = msg
	b.alpha = 1
	b.tween = gween.New(1, 0, float32(cfg.UI.BannerSeconds), ease.InQuad)
}

func (b *Banner) Hide() {
	b.tween = nil
	b.alpha = 0
}

func (b *Banner) Update(_ *ecs.ECS) {
	if b.tween == nil {
		return
	}
	alpha, finished := b.tween.Update(1 / float32(ebiten.TPS()))
	b.alpha = alpha
	if finished {
		b.Hide()
	}
}

func (b *Banner) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	if b.alpha <= 0 {
		return
	}

	face := fonts.Banner.Get()
	bounds := text.BoundString(face, b.message)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy()/3 + bounds.Dy()/2

	c := cfg.UI.BannerColor
	text.Draw(screen, b.message, face, x, y, color.NRGBA{
		R: c.R, G: c.G, B: c.B,
		A: uint8(float32(c.A) * b.alpha),
	})
}
