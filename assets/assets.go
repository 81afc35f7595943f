// Package assets turns sprite rasters into GPU images and owns the shaders.
// Images are created lazily on the draw goroutine the first time a loaded
// sprite is drawn.
package assets

import (
	"fmt"

	"github.com/automoto/bigfish/assets/sprites"
	"github.com/automoto/bigfish/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// Library is shared by the simulation (masks) and the renderers (images).
	Library = sprites.NewLibrary("")
	images  = NewImageLoader(Library)
)

// UseLibrary swaps the sprite source, dropping every cached image.
func UseLibrary(lib *sprites.Library) {
	Library = lib
	images = NewImageLoader(lib)
}

// ImageLoader caches the ebiten images of a sprite library.
type ImageLoader struct {
	lib   *sprites.Library
	cache map[string][]*ebiten.Image
}

func NewImageLoader(lib *sprites.Library) *ImageLoader {
	return &ImageLoader{
		lib:   lib,
		cache: make(map[string][]*ebiten.Image),
	}
}

// Frames returns the swim cycle for key, or nil while the sprite is loading
// or if it failed to load.
func (l *ImageLoader) Frames(key string) []*ebiten.Image {
	if imgs, ok := l.cache[key]; ok {
		return imgs
	}
	raw, ok := l.lib.Frames(key)
	if !ok {
		return nil
	}

	imgs := make([]*ebiten.Image, len(raw))
	for i, r := range raw {
		imgs[i] = ebiten.NewImageFromImage(r)
	}
	l.cache[key] = imgs
	return imgs
}

// MustLoadImage blocks until key is loaded and returns its first frame.
func (l *ImageLoader) MustLoadImage(key string) *ebiten.Image {
	if _, err := l.lib.Mask(key); err != nil {
		panic(fmt.Sprintf("loading sprite %s: %v", key, err))
	}
	return l.Frames(key)[0]
}

// SpriteFrame returns frame n (wrapped) of key's swim cycle, or nil while
// the sprite is not available.
func SpriteFrame(key string, n int) *ebiten.Image {
	frames := images.Frames(key)
	if len(frames) == 0 {
		return nil
	}
	return frames[n%len(frames)]
}

func MustLoadImage(key string) *ebiten.Image {
	return images.MustLoadImage(key)
}

// PreloadSprites starts loading every configured sprite in the background.
func PreloadSprites() {
	keys := []string{config.Player.Sprite}
	for _, t := range config.Enemy.Tiers {
		keys = append(keys, t.Sprite)
	}
	Library.Preload(keys...)
}
