package alphamask

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 0, color.NRGBA{R: 255, A: 1})
	img.Set(3, 2, color.NRGBA{G: 255, A: 255})
	img.Set(2, 1, color.NRGBA{B: 255, A: 0})

	m := FromImage(img)
	if m.Width != 4 || m.Height != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width, m.Height)
	}
	if len(m.Mask) != m.Width*m.Height {
		t.Fatalf("len(mask) = %d, want %d", len(m.Mask), m.Width*m.Height)
	}

	want := map[[2]int]bool{{1, 0}: true, {3, 2}: true}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := m.At(x, y); got != want[[2]int{x, y}] {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}
}

func TestFromImageGenericPath(t *testing.T) {
	// Gray images have no alpha channel, so every pixel is opaque.
	img := image.NewGray(image.Rect(10, 10, 13, 12))
	m := FromImage(img)
	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", m.Width, m.Height)
	}
	for i, v := range m.Mask {
		if !v {
			t.Fatalf("mask[%d] = false, want true", i)
		}
	}
}

func TestFromImageSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(5, 6, color.RGBA{A: 255})
	sub := img.SubImage(image.Rect(4, 4, 8, 8))

	m := FromImage(sub)
	if !m.At(1, 2) {
		t.Fatal("expected opaque pixel at (1,2) of the sub-image")
	}
}

func TestCalcVisualBounds(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		pixels [][2]int
		want   VisualBounds
		empty  bool
	}{
		{
			name:  "fully transparent",
			w:     5,
			h:     4,
			want:  VisualBounds{Left: 5, Right: 0, Top: 4, Bottom: 0},
			empty: true,
		},
		{
			name:   "single pixel",
			w:      5,
			h:      4,
			pixels: [][2]int{{2, 3}},
			want:   VisualBounds{Left: 2, Right: 2, Top: 3, Bottom: 3},
		},
		{
			name:   "off-centre blob",
			w:      10,
			h:      10,
			pixels: [][2]int{{1, 2}, {6, 4}, {3, 8}},
			want:   VisualBounds{Left: 1, Right: 6, Top: 2, Bottom: 8},
		},
		{
			name:   "corners",
			w:      3,
			h:      3,
			pixels: [][2]int{{0, 0}, {2, 2}},
			want:   VisualBounds{Left: 0, Right: 2, Top: 0, Bottom: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New(tc.w, tc.h)
			for _, p := range tc.pixels {
				m.Set(p[0], p[1], true)
			}
			got := m.VisualBounds()
			if got != tc.want {
				t.Errorf("bounds = %+v, want %+v", got, tc.want)
			}
			if got.Empty() != tc.empty {
				t.Errorf("Empty() = %v, want %v", got.Empty(), tc.empty)
			}
		})
	}
}

func TestAtOutOfRange(t *testing.T) {
	m := New(2, 2)
	for i := range m.Mask {
		m.Mask[i] = true
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if m.At(p[0], p[1]) {
			t.Errorf("At(%d,%d) = true, want false", p[0], p[1])
		}
	}

	var nilMask *AlphaMask
	if nilMask.At(0, 0) {
		t.Error("nil mask reported an opaque pixel")
	}
}

func TestMerge(t *testing.T) {
	m := New(3, 3)
	m.Set(0, 0, true)

	o := New(4, 2)
	o.Set(2, 1, true)
	o.Set(3, 0, true) // outside m

	m.Merge(o)
	m.Merge(nil)

	for _, p := range [][2]int{{0, 0}, {2, 1}} {
		if !m.At(p[0], p[1]) {
			t.Errorf("At(%d,%d) = false after merge", p[0], p[1])
		}
	}
	if got := m.VisualBounds(); got != (VisualBounds{Left: 0, Right: 2, Top: 0, Bottom: 1}) {
		t.Errorf("bounds = %+v", got)
	}
}
