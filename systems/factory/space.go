package factory

import (
	"github.com/automoto/bigfish/archetypes"
	"github.com/automoto/bigfish/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceCellSize is the side of a broadphase cell in canvas pixels.
const SpaceCellSize = 32

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}
