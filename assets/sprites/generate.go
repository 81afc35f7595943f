// Package sprites produces the fish rasters and their collision masks. It
// does not depend on ebiten so masks can be built off the render thread.
package sprites

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

const (
	// NativeSize is the side of every generated raster.
	NativeSize = 128
	// SwimFrames is the number of tail positions generated per fish.
	SwimFrames = 4
)

type style struct {
	body, fin, accent color.NRGBA
	// body ellipse radii and centre as fractions of NativeSize
	rx, ry, cx float64
	stripes    int
	spikes     bool
	tall       bool // dorsal fin reaches higher
}

var (
	eyeColor = color.NRGBA{R: 16, G: 16, B: 24, A: 255}

	styles = map[string]style{
		"ClownFish":  {body: rgb(255, 127, 39), fin: rgb(230, 92, 20), accent: rgb(250, 250, 250), rx: 0.34, ry: 0.26, cx: 0.58, stripes: 3},
		"Mackerel":   {body: rgb(96, 140, 170), fin: rgb(60, 96, 128), accent: rgb(200, 220, 230), rx: 0.40, ry: 0.16, cx: 0.56, stripes: 5},
		"BlueTang":   {body: rgb(40, 90, 220), fin: rgb(250, 210, 40), accent: rgb(20, 30, 80), rx: 0.34, ry: 0.28, cx: 0.58, stripes: 1},
		"Anchovy":    {body: rgb(170, 180, 190), fin: rgb(120, 130, 140), accent: rgb(90, 110, 160), rx: 0.42, ry: 0.12, cx: 0.56},
		"PufferFish": {body: rgb(230, 200, 110), fin: rgb(190, 160, 80), accent: rgb(120, 90, 40), rx: 0.30, ry: 0.30, cx: 0.58, spikes: true},
		"StoneFish":  {body: rgb(120, 100, 90), fin: rgb(90, 70, 60), accent: rgb(160, 130, 110), rx: 0.36, ry: 0.24, cx: 0.58, tall: true},
		"PikeFish":   {body: rgb(110, 140, 70), fin: rgb(80, 100, 50), accent: rgb(200, 210, 140), rx: 0.44, ry: 0.14, cx: 0.55, stripes: 4},
		"BlueFish":   {body: rgb(50, 120, 180), fin: rgb(30, 80, 130), accent: rgb(180, 220, 240), rx: 0.38, ry: 0.20, cx: 0.57},
		"SunFish":    {body: rgb(170, 170, 190), fin: rgb(120, 120, 150), accent: rgb(220, 220, 235), rx: 0.30, ry: 0.34, cx: 0.56, tall: true},
		"Shark":      {body: rgb(110, 120, 135), fin: rgb(80, 90, 105), accent: rgb(230, 230, 235), rx: 0.42, ry: 0.18, cx: 0.56, tall: true},
	}

	fallbackStyle = style{body: rgb(160, 160, 160), fin: rgb(110, 110, 110), accent: rgb(220, 220, 220), rx: 0.36, ry: 0.22, cx: 0.58}
)

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Known reports whether key has built-in art.
func Known(key string) bool {
	_, ok := styles[key]
	return ok
}

// Generate draws frame of the swim cycle for key, facing right. Unknown keys
// get a plain grey fish. Pixels are either fully opaque or fully transparent.
func Generate(key string, frame int) *image.NRGBA {
	st, ok := styles[key]
	if !ok {
		st = fallbackStyle
	}

	c := newCanvas()
	cx, cy := st.cx, 0.5
	rx, ry := st.rx, st.ry

	// tail tip sways with the frame
	sway := 0.04 * math.Sin(float64(frame%SwimFrames)*math.Pi/2)
	tailBase := cx - rx*0.8
	tailTip := 0.04
	tailHalf := math.Min(ry*0.9, 0.22)

	finTop := cy - ry*1.35
	if st.tall {
		finTop = cy - ry*1.6
	}

	// Back to front: fins, tail, spikes, body, body markings, eye.
	c.paint(c.shape(func(z *vector.Rasterizer) {
		polygon(z, cx-rx*0.35, cy-ry*0.85, cx+rx*0.25, cy-ry*0.85, cx-rx*0.2, finTop)
	}), st.fin, nil)
	c.paint(c.shape(func(z *vector.Rasterizer) {
		polygon(z, tailBase, cy, tailTip, cy-tailHalf+sway, tailTip, cy+tailHalf+sway)
	}), st.fin, nil)
	if st.spikes {
		c.paint(c.shape(func(z *vector.Rasterizer) { spikes(z, cx, cy, rx, ry) }), st.fin, nil)
	}

	body := c.shape(func(z *vector.Rasterizer) { ellipse(z, cx, cy, rx, ry) })
	c.paint(body, st.body, nil)
	if st.stripes > 0 {
		c.paint(c.shape(func(z *vector.Rasterizer) { stripes(z, cx, rx, st.stripes) }), st.accent, body)
	}
	c.lighten(c.shape(func(z *vector.Rasterizer) {
		polygon(z, 0, cy+ry*0.45, 1, cy+ry*0.45, 1, 1, 0, 1)
	}), body)

	c.paint(c.shape(func(z *vector.Rasterizer) { ellipse(z, cx+rx*0.6, cy-ry*0.3, 0.03, 0.03) }), eyeColor, nil)

	return c.img
}

// GenerateFrames returns the full swim cycle for key.
func GenerateFrames(key string) []image.Image {
	frames := make([]image.Image, SwimFrames)
	for i := range frames {
		frames[i] = Generate(key, i)
	}
	return frames
}

// canvas paints filled paths onto a NativeSize raster. Path coordinates are
// fractions of the raster side.
type canvas struct {
	img *image.NRGBA
	z   *vector.Rasterizer
	cov *image.Alpha
}

func newCanvas() *canvas {
	r := image.Rect(0, 0, NativeSize, NativeSize)
	return &canvas{
		img: image.NewNRGBA(r),
		z:   vector.NewRasterizer(NativeSize, NativeSize),
		cov: image.NewAlpha(r),
	}
}

// shape rasterizes the path traced by build. A pixel is inside when at
// least half of it is covered.
func (c *canvas) shape(build func(z *vector.Rasterizer)) []bool {
	c.z.Reset(NativeSize, NativeSize)
	build(c.z)

	clear(c.cov.Pix)
	c.z.Draw(c.cov, c.cov.Bounds(), image.Opaque, image.Point{})

	inside := make([]bool, NativeSize*NativeSize)
	for y := 0; y < NativeSize; y++ {
		row := c.cov.Pix[y*c.cov.Stride:]
		for x := 0; x < NativeSize; x++ {
			inside[y*NativeSize+x] = row[x] >= 0x80
		}
	}
	return inside
}

// paint fills the pixels of shape, restricted to clip when it is non-nil.
func (c *canvas) paint(shape []bool, col color.NRGBA, clip []bool) {
	for i, in := range shape {
		if in && (clip == nil || clip[i]) {
			c.img.SetNRGBA(i%NativeSize, i/NativeSize, col)
		}
	}
}

// lighten brightens the already painted pixels of shape inside clip.
func (c *canvas) lighten(shape, clip []bool) {
	up := func(v uint8) uint8 { return v + (255-v)/3 }
	for i, in := range shape {
		if !in || !clip[i] {
			continue
		}
		x, y := i%NativeSize, i/NativeSize
		p := c.img.NRGBAAt(x, y)
		c.img.SetNRGBA(x, y, color.NRGBA{R: up(p.R), G: up(p.G), B: up(p.B), A: p.A})
	}
}

func pt(v float64) float32 {
	return float32(v * NativeSize)
}

// polygon traces a closed polygon from x, y pairs.
func polygon(z *vector.Rasterizer, xy ...float64) {
	z.MoveTo(pt(xy[0]), pt(xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		z.LineTo(pt(xy[i]), pt(xy[i+1]))
	}
	z.ClosePath()
}

// ellipse traces an ellipse as four cubic arcs.
func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	const k = 0.5522847498 // cubic circle approximation
	z.MoveTo(pt(cx+rx), pt(cy))
	z.CubeTo(pt(cx+rx), pt(cy+ry*k), pt(cx+rx*k), pt(cy+ry), pt(cx), pt(cy+ry))
	z.CubeTo(pt(cx-rx*k), pt(cy+ry), pt(cx-rx), pt(cy+ry*k), pt(cx-rx), pt(cy))
	z.CubeTo(pt(cx-rx), pt(cy-ry*k), pt(cx-rx*k), pt(cy-ry), pt(cx), pt(cy-ry))
	z.CubeTo(pt(cx+rx*k), pt(cy-ry), pt(cx+rx), pt(cy-ry*k), pt(cx+rx), pt(cy))
	z.ClosePath()
}

// stripes traces n evenly spaced vertical bands across the body, each a
// sixth of a slot wide.
func stripes(z *vector.Rasterizer, cx, rx float64, n int) {
	slot := 2 * rx / float64(n+1)
	for i := 1; i <= n; i++ {
		left := cx - rx + float64(i)*slot
		polygon(z, left, 0, left+slot*0.17, 0, left+slot*0.17, 1, left, 1)
	}
}

// spikes traces sixteen triangles standing out of the body outline.
func spikes(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	const n = 16
	step := 2 * math.Pi / n
	at := func(a, r float64) (float64, float64) {
		return cx + math.Cos(a)*rx*r, cy + math.Sin(a)*ry*r
	}
	for i := 0; i < n; i++ {
		a := float64(i) * step
		x0, y0 := at(a, 0.95)
		x1, y1 := at(a+step*0.3, 0.95)
		tx, ty := at(a+step*0.15, 1.16)
		polygon(z, x0, y0, tx, ty, x1, y1)
	}
}
