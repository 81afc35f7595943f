package gamemath

import (
	"math"

	"github.com/automoto/bigfish/shared/alphamask"
)

// Vec is a 2D vector in canvas space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// DirectionKeys is the held state of the four discrete movement controls.
type DirectionKeys struct {
	Up, Down, Left, Right bool
}

// Vector returns the unnormalised key direction; opposite keys cancel.
func (k DirectionKeys) Vector() Vec {
	var v Vec
	if k.Up {
		v.Y--
	}
	if k.Down {
		v.Y++
	}
	if k.Left {
		v.X--
	}
	if k.Right {
		v.X++
	}
	return v
}

// MergeInput adds the key vector and the joystick vector and normalises the
// sum. Summing first matters: a diagonal key press plus a half-tilted stick
// is not the same as averaging two unit vectors.
func MergeInput(keys DirectionKeys, joystick Vec) Vec {
	return keys.Vector().Add(joystick).Normalized()
}

// ClampFloat limits v to [lo, hi]. When lo > hi the upper bound wins.
func ClampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// ClampOffsets are the distances from a sprite's draw centre to the edges of
// its visible content, in canvas pixels. Left and Top are usually negative.
type ClampOffsets struct {
	Left, Right, Top, Bottom float64
}

// CircleOffsets is the fallback clamp box for a sprite whose visual bounds
// are not known: the entity's bounding square.
func CircleOffsets(radius float64) ClampOffsets {
	return ClampOffsets{Left: -radius, Right: radius, Top: -radius, Bottom: radius}
}

// VisualOffsets scales a sprite's pixel-space visual bounds, measured from the
// centre of its native raster, to a square draw of drawSize pixels. ok is
// false for degenerate input (no raster size or a fully transparent sprite).
func VisualOffsets(vb alphamask.VisualBounds, nativeW, nativeH int, drawSize float64) (off ClampOffsets, ok bool) {
	if nativeW <= 0 || nativeH <= 0 || vb.Empty() {
		return ClampOffsets{}, false
	}

	scaleX := drawSize / float64(nativeW)
	scaleY := drawSize / float64(nativeH)
	centerX := float64(nativeW) / 2
	centerY := float64(nativeH) / 2

	return ClampOffsets{
		Left:   (float64(vb.Left) - centerX) * scaleX,
		Right:  (float64(vb.Right) - centerX) * scaleX,
		Top:    (float64(vb.Top) - centerY) * scaleY,
		Bottom: (float64(vb.Bottom) - centerY) * scaleY,
	}, true
}

// ClampToVisible keeps the visible box described by off inside a
// width x height canvas.
func ClampToVisible(x, y float64, off ClampOffsets, width, height float64) (float64, float64) {
	return ClampFloat(x, -off.Left, width-off.Right),
		ClampFloat(y, -off.Top, height-off.Bottom)
}
