package gamemath

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/bigfish/shared/alphamask"
)

type testBody struct {
	x, y, r   float64
	mask      *alphamask.AlphaMask
	maskCalls int
}

func (b *testBody) Center() (float64, float64) { return b.x, b.y }
func (b *testBody) Radius() float64             { return b.r }
func (b *testBody) AlphaMask() *alphamask.AlphaMask {
	b.maskCalls++
	return b.mask
}

func solidMask(w, h int) *alphamask.AlphaMask {
	m := alphamask.New(w, h)
	for i := range m.Mask {
		m.Mask[i] = true
	}
	return m
}

// halfMask is opaque on the left half (left=true) or the right half.
func halfMask(w, h int, left bool) *alphamask.AlphaMask {
	m := alphamask.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, (x < w/2) == left)
		}
	}
	return m
}

func TestIsPixelCollidingAABBShortCircuit(t *testing.T) {
	a := &testBody{x: 0, y: 0, r: 10}
	b := &testBody{x: 25, y: 0, r: 10}

	if IsPixelColliding(a, b) {
		t.Fatal("separated bodies collided")
	}
	if a.maskCalls != 0 || b.maskCalls != 0 {
		t.Errorf("masks read %d/%d times for separated bodies", a.maskCalls, b.maskCalls)
	}

	// Touching edges do not overlap.
	b.x = 20
	if IsPixelColliding(a, b) {
		t.Error("edge-touching bodies collided")
	}
}

func TestIsPixelCollidingUnloadedMask(t *testing.T) {
	a := &testBody{x: 0, y: 0, r: 10, mask: solidMask(8, 8)}
	b := &testBody{x: 5, y: 5, r: 10}
	if IsPixelColliding(a, b) || IsPixelColliding(b, a) {
		t.Error("body without mask collided")
	}
}

func TestIsPixelCollidingShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b *testBody
		want bool
	}{
		{
			name: "solid squares overlapping",
			a:    &testBody{x: 0, y: 0, r: 10, mask: solidMask(16, 16)},
			b:    &testBody{x: 15, y: 3, r: 10, mask: solidMask(32, 32)},
			want: true,
		},
		{
			name: "overlap only in transparent halves",
			a:    &testBody{x: 0, y: 0, r: 10, mask: halfMask(10, 10, true)},
			b:    &testBody{x: 10, y: 0, r: 10, mask: halfMask(10, 10, false)},
			want: false,
		},
		{
			name: "deep overlap with disjoint opaque halves",
			a:    &testBody{x: 0, y: 0, r: 10, mask: halfMask(10, 10, true)},
			b:    &testBody{x: 5, y: 0, r: 10, mask: halfMask(10, 10, false)},
			want: false,
		},
		{
			name: "opaque halves meet",
			a:    &testBody{x: 0, y: 0, r: 10, mask: halfMask(10, 10, true)},
			b:    &testBody{x: -5, y: 0, r: 10, mask: halfMask(10, 10, false)},
			want: true,
		},
		{
			name: "transparent sprite",
			a:    &testBody{x: 0, y: 0, r: 10, mask: alphamask.New(10, 10)},
			b:    &testBody{x: 0, y: 0, r: 10, mask: solidMask(10, 10)},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPixelColliding(tc.a, tc.b); got != tc.want {
				t.Errorf("IsPixelColliding(a,b) = %v, want %v", got, tc.want)
			}
			if got := IsPixelColliding(tc.b, tc.a); got != tc.want {
				t.Errorf("IsPixelColliding(b,a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsPixelCollidingSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	masks := []*alphamask.AlphaMask{
		solidMask(12, 12),
		halfMask(20, 10, true),
		halfMask(7, 13, false),
	}

	for i := 0; i < 500; i++ {
		a := &testBody{
			x: rng.Float64() * 100, y: rng.Float64() * 100, r: 3 + rng.Float64()*40,
			mask: masks[rng.IntN(len(masks))],
		}
		b := &testBody{
			x: rng.Float64() * 100, y: rng.Float64() * 100, r: 3 + rng.Float64()*40,
			mask: masks[rng.IntN(len(masks))],
		}
		if IsPixelColliding(a, b) != IsPixelColliding(b, a) {
			t.Fatalf("asymmetric result for a=%+v b=%+v", *a, *b)
		}
	}
}
