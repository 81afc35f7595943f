package simulation

import (
	"github.com/automoto/bigfish/components"
	"github.com/automoto/bigfish/shared/alphamask"
	"github.com/yohamta/donburi"
)

// MaskLoader resolves sprite keys to collision masks. deliver may be called
// from any goroutine, at most once per request, and not at all for a sprite
// that cannot be loaded.
type MaskLoader interface {
	LoadMask(key string, deliver func(*alphamask.AlphaMask))
}

type maskDelivery struct {
	entity     donburi.Entity
	key        string
	generation uint64
	mask       *alphamask.AlphaMask
}

func (s *Simulation) requestMask(e *donburi.Entry) {
	if s.loader == nil {
		return
	}
	d := maskDelivery{
		entity:     e.Entity(),
		key:        components.Sprite.Get(e).Key,
		generation: s.generation,
	}
	s.loader.LoadMask(d.key, func(m *alphamask.AlphaMask) {
		d.mask = m
		s.mu.Lock()
		s.arrived = append(s.arrived, d)
		s.mu.Unlock()
	})
}

// applyMasks installs the masks that arrived since the last tick. Enemy
// deliveries for entities that are gone, or that predate a reset, are
// dropped.
func (s *Simulation) applyMasks() {
	s.mu.Lock()
	arrived := s.arrived
	s.arrived = nil
	s.mu.Unlock()

	for _, d := range arrived {
		if d.mask == nil || !s.world.Valid(d.entity) {
			continue
		}
		isPlayer := d.entity == s.player.Entity()
		if !isPlayer && d.generation != s.generation {
			continue
		}
		e := s.world.Entry(d.entity)
		if !e.HasComponent(components.Sprite) {
			continue
		}
		sprite := components.Sprite.Get(e)
		if sprite.Key != d.key || sprite.Loaded() {
			continue
		}
		sprite.SetMask(d.mask)
		if isPlayer {
			s.fitPlayer()
		}
	}
}
