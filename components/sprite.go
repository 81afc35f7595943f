package components

import (
	"github.com/automoto/bigfish/shared/alphamask"
	"github.com/yohamta/donburi"
)

// SpriteData names the image an entity is drawn with and holds the data
// derived from it once it has loaded. Mask is nil until then.
type SpriteData struct {
	Key    string
	Mask   *alphamask.AlphaMask
	Bounds alphamask.VisualBounds
}

func (s *SpriteData) Loaded() bool {
	return s.Mask != nil
}

// SetMask installs a freshly built mask and caches its visual bounds.
func (s *SpriteData) SetMask(m *alphamask.AlphaMask) {
	s.Mask = m
	if m != nil {
		s.Bounds = m.VisualBounds()
	}
}

// NativeSize is the raster size of the loaded sprite, 0x0 before load.
func (s *SpriteData) NativeSize() (int, int) {
	if s.Mask == nil {
		return 0, 0
	}
	return s.Mask.Width, s.Mask.Height
}

var Sprite = donburi.NewComponentType[SpriteData]()
