package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the centre of an entity in canvas space.
var Position = donburi.NewComponentType[math.Vec2]()
