package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/bigfish/archetypes"
	"github.com/automoto/bigfish/components"
	cfg "github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"gonum.org/v1/gonum/stat/distuv"
)

// EnemySpawn is a rolled enemy before it enters the world.
type EnemySpawn struct {
	Tier     int
	Size     float64
	Speed    float64
	X, Y     float64
	FromLeft bool
}

// EnemyRoller samples new enemies and spawn batch offsets from a single
// random source, so a seeded source replays the same session.
type EnemyRoller struct {
	src    rand.Source
	tiers  []cfg.TierConfig
	tier   distuv.Categorical
	speed  distuv.Uniform
	y      distuv.Uniform
	side   distuv.Bernoulli
	offset distuv.Uniform
	width  float64
}

func NewEnemyRoller(src rand.Source) *EnemyRoller {
	weights := make([]float64, len(cfg.Enemy.Tiers))
	for i := range weights {
		weights[i] = 1
	}

	return &EnemyRoller{
		src:    src,
		tiers:  cfg.Enemy.Tiers,
		tier:   distuv.NewCategorical(weights, src),
		speed:  distuv.Uniform{Min: cfg.Enemy.MinSpeed, Max: cfg.Enemy.MaxSpeed, Src: src},
		y:      distuv.Uniform{Min: 0, Max: float64(cfg.C.Height), Src: src},
		side:   distuv.Bernoulli{P: 0.5, Src: src},
		offset: distuv.Uniform{Min: 0, Max: float64(cfg.Spawn.RandomOffsetMax + 1), Src: src},
		width:  float64(cfg.C.Width),
	}
}

// Roll picks a tier uniformly, then size, speed, height and side in that
// order.
func (r *EnemyRoller) Roll() EnemySpawn {
	i := int(r.tier.Rand())
	if i >= len(r.tiers) {
		i = len(r.tiers) - 1
	}
	tier := r.tiers[i]

	size := distuv.Uniform{Min: tier.MinSize, Max: tier.MaxSize, Src: r.src}.Rand()
	speed := r.speed.Rand()
	y := r.y.Rand()
	fromLeft := r.side.Rand() == 1

	x := r.width + size
	if fromLeft {
		x = -size
	}

	return EnemySpawn{
		Tier:     i,
		Size:     size,
		Speed:    speed,
		X:        x,
		Y:        y,
		FromLeft: fromLeft,
	}
}

// Offset returns the random part of a spawn batch, uniform in
// [0, RandomOffsetMax].
func (r *EnemyRoller) Offset() int {
	return int(math.Floor(r.offset.Rand()))
}

func CreateEnemy(w donburi.World, space *resolv.Space, serial uint64, spawn EnemySpawn) *donburi.Entry {
	tier := cfg.Enemy.Tiers[spawn.Tier]

	enemy := archetypes.Enemy.Spawn(w)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Serial:      serial,
		Tier:        spawn.Tier,
		Size:        spawn.Size,
		Speed:       spawn.Speed,
		FromLeft:    spawn.FromLeft,
		GrowthValue: tier.GrowthValue,
	})
	components.Position.SetValue(enemy, dmath.Vec2{X: spawn.X, Y: spawn.Y})
	components.Sprite.SetValue(enemy, components.SpriteData{Key: tier.Sprite})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Object.Get(enemy).Fit(spawn.X, spawn.Y, spawn.Size/2)

	return enemy
}

// Destroy removes an entity and its broadphase object.
func Destroy(w donburi.World, space *resolv.Space, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
