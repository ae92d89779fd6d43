package glint

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// The glow behind a live border is a blurred, slightly enlarged copy of the
// ring composited underneath it. The blur is an iterative Kawase chain:
// repeated half-size downscales followed by upscales, letting bilinear
// filtering do the smoothing. No shader required.

// blurPassCount returns the number of downscale passes for a blur radius:
// log2(radius), minimum 1.
func blurPassCount(radius int) int {
	if radius <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(radius))))
}

// glowRenderer owns the offscreen chain for one border's glow. Buffers are
// reused across frames and reallocated only when the ring size or blur
// radius changes.
type glowRenderer struct {
	radius int
	scale  float64 // enlargement of the glow copy relative to the ring

	source *ebiten.Image // ring rendered at full size, pre-blur
	temps  []*ebiten.Image
	imgOp  ebiten.DrawImageOptions
}

func newGlowRenderer(radius int, scale float64) *glowRenderer {
	if radius < 0 {
		radius = 0
	}
	if scale < 1 {
		scale = 1
	}
	return &glowRenderer{radius: radius, scale: scale}
}

// beginSource returns a cleared offscreen of the given size for the caller
// to render the ring into before calling composite.
func (g *glowRenderer) beginSource(w, h int) *ebiten.Image {
	if g.source == nil || g.source.Bounds().Dx() != w || g.source.Bounds().Dy() != h {
		if g.source != nil {
			g.source.Deallocate()
		}
		g.source = ebiten.NewImage(w, h)
	} else {
		g.source.Clear()
	}
	return g.source
}

// composite blurs the source and draws it into dst, enlarged about the
// ring center at (x, y) and faded to the given opacity.
func (g *glowRenderer) composite(dst *ebiten.Image, x, y, opacity float64) {
	if g.source == nil || opacity <= 0 {
		return
	}
	blurred := g.blur(g.source)

	sw := float64(g.source.Bounds().Dx())
	sh := float64(g.source.Bounds().Dy())
	bw := float64(blurred.Bounds().Dx())
	bh := float64(blurred.Bounds().Dy())

	op := &g.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	// Upscale the blurred chain output to the enlarged glow size, centered
	// on the ring.
	op.GeoM.Scale(sw*g.scale/bw, sh*g.scale/bh)
	op.GeoM.Translate(x-sw*(g.scale-1)/2, y-sh*(g.scale-1)/2)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(blurred, op)
}

// blur runs the Kawase chain and returns the image holding the result.
// With a zero radius the source is returned untouched.
func (g *glowRenderer) blur(src *ebiten.Image) *ebiten.Image {
	if g.radius <= 0 {
		return src
	}
	passes := blurPassCount(g.radius)

	srcBounds := src.Bounds()
	w, h := srcBounds.Dx(), srcBounds.Dy()

	for len(g.temps) < passes {
		g.temps = append(g.temps, nil)
	}
	for i := passes; i < len(g.temps); i++ {
		if g.temps[i] != nil {
			g.temps[i].Deallocate()
			g.temps[i] = nil
		}
	}
	g.temps = g.temps[:passes]

	op := &g.imgOp

	// Downscale passes, each half-size.
	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		if g.temps[i] == nil || g.temps[i].Bounds().Dx() != w || g.temps[i].Bounds().Dy() != h {
			if g.temps[i] != nil {
				g.temps[i].Deallocate()
			}
			g.temps[i] = ebiten.NewImage(w, h)
		} else {
			g.temps[i].Clear()
		}
		op.GeoM.Reset()
		op.ColorScale.Reset()
		cw := float64(current.Bounds().Dx())
		ch := float64(current.Bounds().Dy())
		op.GeoM.Scale(float64(w)/cw, float64(h)/ch)
		op.Filter = ebiten.FilterLinear
		g.temps[i].DrawImage(current, op)
		current = g.temps[i]
	}

	// Upscale passes back up the chain; the final enlargement to glow size
	// happens in composite.
	for i := passes - 2; i >= 0; i-- {
		g.temps[i].Clear()
		op.GeoM.Reset()
		op.ColorScale.Reset()
		cw := float64(current.Bounds().Dx())
		ch := float64(current.Bounds().Dy())
		tw := float64(g.temps[i].Bounds().Dx())
		th := float64(g.temps[i].Bounds().Dy())
		op.GeoM.Scale(tw/cw, th/ch)
		op.Filter = ebiten.FilterLinear
		g.temps[i].DrawImage(current, op)
		current = g.temps[i]
	}

	return current
}
