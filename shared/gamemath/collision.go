package gamemath

import (
	"math"

	"github.com/automoto/bigfish/shared/alphamask"
)

// PixelStride is the sampling step, in canvas pixels, of the pixel test.
const PixelStride = 2

// Body is anything drawn as a square of side 2*Radius centred on its
// position, with an optional occupancy mask stretched over that square.
type Body interface {
	Center() (x, y float64)
	Radius() float64
	// AlphaMask returns nil until the body's sprite has loaded.
	AlphaMask() *alphamask.AlphaMask
}

// Overlap returns the intersection of the two bodies' bounding squares.
// ok is false when they do not intersect.
func Overlap(a, b Body) (left, top, right, bottom float64, ok bool) {
	ax, ay := a.Center()
	bx, by := b.Center()
	ar, br := a.Radius(), b.Radius()

	left = math.Max(ax-ar, bx-br)
	right = math.Min(ax+ar, bx+br)
	top = math.Max(ay-ar, by-br)
	bottom = math.Min(ay+ar, by+br)

	if right <= left || bottom <= top {
		return 0, 0, 0, 0, false
	}
	return left, top, right, bottom, true
}

// IsPixelColliding reports whether the opaque pixels of a and b overlap.
// The bounding squares are tested first and no mask is touched when they
// are apart. A body without a mask never collides. The overlap region is
// sampled every PixelStride pixels, so thin contacts can be missed but a
// reported hit is always real.
func IsPixelColliding(a, b Body) bool {
	left, top, right, bottom, ok := Overlap(a, b)
	if !ok {
		return false
	}

	ma, mb := a.AlphaMask(), b.AlphaMask()
	if ma == nil || mb == nil {
		return false
	}

	ax, ay := a.Center()
	bx, by := b.Center()
	ar, br := a.Radius(), b.Radius()
	aLeft, aTop, aSize := ax-ar, ay-ar, ar*2
	bLeft, bTop, bSize := bx-br, by-br, br*2

	for y := top; y < bottom; y += PixelStride {
		for x := left; x < right; x += PixelStride {
			if !ma.At(maskCoord(x, aLeft, ma.Width, aSize), maskCoord(y, aTop, ma.Height, aSize)) {
				continue
			}
			if mb.At(maskCoord(x, bLeft, mb.Width, bSize), maskCoord(y, bTop, mb.Height, bSize)) {
				return true
			}
		}
	}
	return false
}

// maskCoord maps a canvas coordinate into mask space for a body whose
// square starts at origin and spans size canvas pixels.
func maskCoord(p, origin float64, maskDim int, size float64) int {
	return int(math.Floor((p - origin) * float64(maskDim) / size))
}
