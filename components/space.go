package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData holds the broadphase space shared by every body in a world.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
