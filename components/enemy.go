package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	// Serial increases with every spawn in a session; larger is newer.
	Serial      uint64
	Tier        int
	Size        float64
	Speed       float64
	FromLeft    bool // spawned off the left edge, swims right
	GrowthValue float64
}

func (e *EnemyData) Radius() float64 {
	return e.Size / 2
}

// Direction is +1 for enemies swimming right and -1 for those swimming left.
func (e *EnemyData) Direction() float64 {
	if e.FromLeft {
		return 1
	}
	return -1
}

var Enemy = donburi.NewComponentType[EnemyData]()
