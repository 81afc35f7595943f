package components

import (
	"github.com/automoto/bigfish/config"
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction a fish sprite points.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

type PlayerData struct {
	Speed  float64 // canvas pixels per nominal step
	Level  int     // 1-based
	Growth float64
	Facing Facing
}

// Radius is recomputed from growth on every call; nothing stores it.
func (p *PlayerData) Radius() float64 {
	return PlayerRadius(p.Growth)
}

// DrawSize is the side of the square the player sprite is stretched over.
func (p *PlayerData) DrawSize() float64 {
	return p.Radius() * 2
}

// PlayerRadius returns the radius of a player with the given growth.
func PlayerRadius(growth float64) float64 {
	return config.Player.BaseRadius + growth*config.Player.RadiusPerGrowth
}

var Player = donburi.NewComponentType[PlayerData]()
