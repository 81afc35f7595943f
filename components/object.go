package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's broadphase box in the collision space.
type ObjectData struct {
	*resolv.Object
}

// objectPadding grows each box by a pixel per side so that cell lookups
// never miss a sub-pixel overlap between bounding squares.
const objectPadding = 1

// Fit moves and resizes the box to cover the square of the given radius
// around (cx, cy) and re-registers it with its space.
func (o *ObjectData) Fit(cx, cy, radius float64) {
	o.X = cx - radius - objectPadding
	o.Y = cy - radius - objectPadding
	o.W = radius*2 + objectPadding*2
	o.H = radius*2 + objectPadding*2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
