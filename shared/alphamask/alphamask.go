// Package alphamask converts sprite rasters into per-pixel occupancy masks
// used for shape-aware collision and on-screen clamping.
package alphamask

import "image"

// AlphaMask is a row-major occupancy grid: Mask[y*Width+x] is true where the
// source pixel has a non-zero alpha channel.
type AlphaMask struct {
	Mask   []bool
	Width  int
	Height int
}

// VisualBounds is the tight pixel-space box around the opaque pixels of a
// sprite. Right and Bottom are inclusive.
type VisualBounds struct {
	Left, Right, Top, Bottom int
}

// New returns an empty mask of the given size.
func New(width, height int) *AlphaMask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &AlphaMask{
		Mask:   make([]bool, width*height),
		Width:  width,
		Height: height,
	}
}

// FromImage builds a mask from a decoded image. The image's bounds origin is
// normalised to (0,0).
func FromImage(img image.Image) *AlphaMask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())

	// Fast path for the two layouts image/png and ebiten hand back.
	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < m.Height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < m.Width; x++ {
				m.Mask[y*m.Width+x] = row[x*4+3] > 0
			}
		}
		return m
	case *image.RGBA:
		for y := 0; y < m.Height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < m.Width; x++ {
				m.Mask[y*m.Width+x] = row[x*4+3] > 0
			}
		}
		return m
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.Mask[y*m.Width+x] = a > 0
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is opaque. Out-of-range
// coordinates are transparent.
func (m *AlphaMask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Mask[y*m.Width+x]
}

// Set marks the pixel at (x, y). Out-of-range coordinates are ignored.
func (m *AlphaMask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Mask[y*m.Width+x] = opaque
}

// Merge marks every pixel that is opaque in o. Pixels of o outside m are
// ignored.
func (m *AlphaMask) Merge(o *AlphaMask) {
	if o == nil {
		return
	}
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			if o.Mask[y*o.Width+x] {
				m.Set(x, y, true)
			}
		}
	}
}

// VisualBounds returns the tight box around the mask's opaque pixels.
func (m *AlphaMask) VisualBounds() VisualBounds {
	return CalcVisualBounds(m.Mask, m.Width, m.Height)
}

// CalcVisualBounds scans every pixel and returns the smallest box enclosing
// the set pixels. With no set pixel the result is the inverted default box
// {Left: width, Right: 0, Top: height, Bottom: 0}.
func CalcVisualBounds(mask []bool, width, height int) VisualBounds {
	vb := VisualBounds{Left: width, Right: 0, Top: height, Bottom: 0}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y*width+x] {
				continue
			}
			if x < vb.Left {
				vb.Left = x
			}
			if x > vb.Right {
				vb.Right = x
			}
			if y < vb.Top {
				vb.Top = y
			}
			if y > vb.Bottom {
				vb.Bottom = y
			}
		}
	}
	return vb
}

// Empty reports whether the box is the degenerate box of a fully
// transparent sprite.
func (vb VisualBounds) Empty() bool {
	return vb.Left > vb.Right || vb.Top > vb.Bottom
}
