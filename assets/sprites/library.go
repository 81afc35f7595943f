package sprites

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/bigfish/shared/alphamask"
)

// ErrUnknownSprite is returned for a key with neither a file nor built-in art.
var ErrUnknownSprite = errors.New("unknown sprite")

// Library resolves sprite keys to rasters and collision masks. A key is
// loaded once, on its own goroutine; later requests share the result.
//
// When Dir is set, <Dir>/<key>.png replaces the built-in art for that key.
type Library struct {
	Dir string
	// Synchronous makes LoadMask block and deliver on the caller's
	// goroutine. Headless runs use it to stay reproducible.
	Synchronous bool

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	ready  chan struct{}
	frames []image.Image
	mask   *alphamask.AlphaMask
	err    error
}

func NewLibrary(dir string) *Library {
	return &Library{
		Dir:     dir,
		entries: make(map[string]*entry),
	}
}

// LoadMask requests key and calls deliver with its mask once it is ready.
// deliver may run on another goroutine. It is never called for a sprite that
// failed to load.
func (l *Library) LoadMask(key string, deliver func(*alphamask.AlphaMask)) {
	e := l.start(key)
	if l.Synchronous {
		<-e.ready
		if e.err == nil {
			deliver(e.mask)
		}
		return
	}
	go func() {
		<-e.ready
		if e.err == nil {
			deliver(e.mask)
		}
	}()
}

// Mask blocks until key is loaded.
func (l *Library) Mask(key string) (*alphamask.AlphaMask, error) {
	e := l.start(key)
	<-e.ready
	return e.mask, e.err
}

// Frames returns the loaded swim cycle for key without blocking. ok is false
// while the sprite is still loading or if it failed.
func (l *Library) Frames(key string) (frames []image.Image, ok bool) {
	l.mu.Lock()
	e, found := l.entries[key]
	l.mu.Unlock()
	if !found {
		return nil, false
	}

	select {
	case <-e.ready:
		return e.frames, e.err == nil
	default:
		return nil, false
	}
}

// Preload starts loading every key without waiting.
func (l *Library) Preload(keys ...string) {
	for _, k := range keys {
		l.start(k)
	}
}

func (l *Library) start(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[key]; ok {
		return e
	}
	e := &entry{ready: make(chan struct{})}
	l.entries[key] = e

	go func() {
		defer close(e.ready)
		e.frames, e.err = l.load(key)
		if e.err != nil {
			slog.Warn("sprite_load_failed", "sprite", key, "error", e.err)
			return
		}
		// The mask covers every swim frame so the tail collides wherever
		// it is drawn.
		e.mask = alphamask.FromImage(e.frames[0])
		for _, f := range e.frames[1:] {
			e.mask.Merge(alphamask.FromImage(f))
		}
		slog.Debug("sprite_loaded", "sprite", key,
			"width", e.mask.Width, "height", e.mask.Height)
	}()
	return e
}

func (l *Library) load(key string) ([]image.Image, error) {
	if l.Dir != "" {
		img, err := decodePNG(filepath.Join(l.Dir, key+".png"))
		switch {
		case err == nil:
			return []image.Image{img}, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	if !Known(key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, key)
	}
	return GenerateFrames(key), nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
