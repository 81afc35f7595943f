package factory

import (
	"github.com/automoto/bigfish/archetypes"
	"github.com/automoto/bigfish/components"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, space *resolv.Space) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{
		Speed:  cfg.Player.Speed,
		Level:  1,
		Growth: 0,
		Facing: components.FacingRight,
	})
	components.Position.SetValue(player, math.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Sprite.SetValue(player, components.SpriteData{Key: cfg.Player.Sprite})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	pd := components.Player.Get(player)
	components.Object.Get(player).Fit(cfg.Player.StartX, cfg.Player.StartY, pd.Radius())

	return player
}
