package gamemath

import (
	"math"
	"testing"

	"github.com/automoto/bigfish/shared/alphamask"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMergeInput(t *testing.T) {
	tests := []struct {
		name     string
		keys     DirectionKeys
		joystick Vec
		want     Vec
	}{
		{name: "idle", want: Vec{}},
		{name: "right key", keys: DirectionKeys{Right: true}, want: Vec{X: 1}},
		{name: "diagonal keys", keys: DirectionKeys{Right: true, Down: true}, want: Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
		{name: "opposite keys cancel", keys: DirectionKeys{Left: true, Right: true}, want: Vec{}},
		{name: "joystick only", joystick: Vec{X: 0, Y: -0.3}, want: Vec{Y: -1}},
		{name: "key cancelled by joystick", keys: DirectionKeys{Right: true}, joystick: Vec{X: -1}, want: Vec{}},
		{name: "key plus half stick", keys: DirectionKeys{Right: true}, joystick: Vec{Y: 0.5}, want: Vec{X: 2 / math.Sqrt(5), Y: 1 / math.Sqrt(5)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MergeInput(tc.keys, tc.joystick)
			if !approx(got.X, tc.want.X) || !approx(got.Y, tc.want.Y) {
				t.Errorf("MergeInput = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestMergeInputSumsBeforeNormalising(t *testing.T) {
	keys := DirectionKeys{Right: true}
	stick := Vec{Y: 0.5}

	merged := MergeInput(keys, stick)
	separately := keys.Vector().Normalized().Add(stick.Normalized()).Normalized()

	if approx(merged.X, separately.X) && approx(merged.Y, separately.Y) {
		t.Fatalf("merge order should matter, both gave %+v", merged)
	}
	if !approx(merged.Len(), 1) {
		t.Errorf("merged length = %v, want 1", merged.Len())
	}
}

func TestVisualOffsets(t *testing.T) {
	vb := alphamask.VisualBounds{Left: 10, Right: 79, Top: 5, Bottom: 44}
	off, ok := VisualOffsets(vb, 100, 50, 50)
	if !ok {
		t.Fatal("expected offsets")
	}
	want := ClampOffsets{Left: -20, Right: 14.5, Top: -20, Bottom: 19}
	if !approx(off.Left, want.Left) || !approx(off.Right, want.Right) ||
		!approx(off.Top, want.Top) || !approx(off.Bottom, want.Bottom) {
		t.Errorf("offsets = %+v, want %+v", off, want)
	}
}

func TestVisualOffsetsDegenerate(t *testing.T) {
	empty := alphamask.CalcVisualBounds(make([]bool, 16), 4, 4)
	if _, ok := VisualOffsets(empty, 4, 4, 30); ok {
		t.Error("fully transparent sprite should not produce offsets")
	}
	if _, ok := VisualOffsets(alphamask.VisualBounds{Right: 3, Bottom: 3}, 0, 4, 30); ok {
		t.Error("zero-width raster should not produce offsets")
	}
}

func TestClampToVisible(t *testing.T) {
	off := ClampOffsets{Left: -20, Right: 14.5, Top: -20, Bottom: 19}
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{name: "inside", x: 400, y: 300, wantX: 400, wantY: 300},
		{name: "past left and top", x: -100, y: -100, wantX: 20, wantY: 20},
		{name: "past right and bottom", x: 1000, y: 1000, wantX: 785.5, wantY: 581},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := ClampToVisible(tc.x, tc.y, off, 800, 600)
			if !approx(x, tc.wantX) || !approx(y, tc.wantY) {
				t.Errorf("ClampToVisible = (%v,%v), want (%v,%v)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestClampFloatInvertedRange(t *testing.T) {
	if got := ClampFloat(5, 10, 2); got != 2 {
		t.Errorf("ClampFloat with lo > hi = %v, want upper bound 2", got)
	}
}
