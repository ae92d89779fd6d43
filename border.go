package glint

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// LiveBorder draws a glowing, rotating gradient border: a rounded-rect ring
// filled with a sweep gradient that spins about the ring center, with an
// optional blurred glow copy pulsing behind it.

// GlowConfig controls the ambient glow behind the ring.
type GlowConfig struct {
	Scale       float64 // glow enlargement relative to the ring (e.g. 1.15)
	Blur        int     // blur radius in pixels
	MinOpacity  float64
	MaxOpacity  float64
	PulsePeriod float64 // seconds for one min→max→min cycle; 0 = no pulse
}

// LiveBorderConfig configures a LiveBorder. Zero values get sensible
// defaults in NewLiveBorder.
type LiveBorderConfig struct {
	Width        float64
	Height       float64
	Colors       []Color
	StrokeWidth  float64
	CornerRadius float64
	Mode         ColorMode

	// Rotation is the initial angle in degrees; RotationSpeed animates it
	// in degrees per second (0 = static).
	Rotation      float64
	RotationSpeed float64

	// Background, when non-nil, fills the outer rounded rect behind the ring.
	Background *Color

	// Glow, when non-nil, enables the blurred glow copy.
	Glow *GlowConfig
}

// LiveBorder is the composed drawable. Call Update each tick and Draw each
// frame.
type LiveBorder struct {
	cfg   LiveBorderConfig
	stops []ColorStop

	mesh     ringMesh
	bgMesh   ringMesh
	sweep    *sweepUniforms
	rotation *RotationDriver
	pulse    *PulseDriver
	glow     *glowRenderer

	translated []ebiten.Vertex
	shaderOp   ebiten.DrawTrianglesShaderOptions
	bgOp       ebiten.DrawTrianglesOptions
}

// NewLiveBorder creates a live border from the given configuration.
func NewLiveBorder(cfg LiveBorderConfig) *LiveBorder {
	if cfg.StrokeWidth <= 0 {
		cfg.StrokeWidth = 2
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = []Color{ColorWhite}
	}
	b := &LiveBorder{
		cfg:      cfg,
		stops:    buildStops(cfg.Colors, cfg.Mode),
		sweep:    newSweepUniforms(),
		rotation: NewRotationDriver(cfg.RotationSpeed),
	}
	b.rotation.angle = fract(cfg.Rotation/360) * 360
	if g := cfg.Glow; g != nil {
		b.glow = newGlowRenderer(g.Blur, g.Scale)
		if g.PulsePeriod > 0 {
			b.pulse = NewPulseDriver(g.MinOpacity, g.MaxOpacity, g.PulsePeriod)
		}
	}
	return b
}

// SetColors replaces the gradient colors, preserving the color mode.
func (b *LiveBorder) SetColors(colors []Color) {
	b.cfg.Colors = colors
	b.stops = buildStops(colors, b.cfg.Mode)
}

// Angle returns the current gradient rotation in degrees.
func (b *LiveBorder) Angle() float64 {
	return b.rotation.Angle()
}

// Update advances the rotation and glow pulse by dt seconds.
func (b *LiveBorder) Update(dt float64) {
	b.rotation.Update(dt)
	if b.pulse != nil {
		b.pulse.Update(dt)
	}
}

// geometry returns the ring geometry from the current config.
func (b *LiveBorder) geometry() RingGeometry {
	return RingGeometry{
		Width:        b.cfg.Width,
		Height:       b.cfg.Height,
		BorderRadius: b.cfg.CornerRadius,
		StrokeWidth:  b.cfg.StrokeWidth,
	}
}

// Draw renders the border into dst with its top-left corner at (x, y).
// Draw order: glow, background, ring.
func (b *LiveBorder) Draw(dst *ebiten.Image, x, y float64) {
	geo := b.geometry()
	b.mesh.ensure(geo)

	angle := radians(b.rotation.Angle())
	center := geo.Center()

	if b.glow != nil {
		opacity := 1.0
		if b.pulse != nil {
			opacity = b.pulse.Value()
		} else if b.cfg.Glow != nil && b.cfg.Glow.MaxOpacity > 0 {
			opacity = b.cfg.Glow.MaxOpacity
		}
		src := b.glow.beginSource(int(geo.Width), int(geo.Height))
		b.drawRing(src, 0, 0, center, angle)
		b.glow.composite(dst, x, y, opacity)
	}

	if bg := b.cfg.Background; bg != nil {
		b.drawBackground(dst, x, y, *bg)
	}

	b.drawRing(dst, x, y, center, angle)
}

// drawRing submits the ring triangles with the sweep gradient shader.
func (b *LiveBorder) drawRing(dst *ebiten.Image, x, y float64, center Vec2, angle float64) {
	shader := ensureSweepGradientShader()
	b.sweep.set(x+center.X, y+center.Y, angle, b.stops)

	verts := b.translateVertices(b.mesh.verts, x, y)
	b.shaderOp.Uniforms = b.sweep.uniforms
	b.shaderOp.FillRule = ebiten.FillRuleEvenOdd
	dst.DrawTrianglesShader(verts, b.mesh.indices, shader, &b.shaderOp)
}

// drawBackground fills the outer rounded rect with a solid color.
func (b *LiveBorder) drawBackground(dst *ebiten.Image, x, y float64, c Color) {
	geo := b.geometry().normalized()
	// Background mesh: the outer contour only, no hole.
	b.bgMesh.ensure(RingGeometry{
		Width:        geo.Width,
		Height:       geo.Height,
		BorderRadius: geo.BorderRadius,
		StrokeWidth:  0,
	})
	verts := b.translateVertices(b.bgMesh.verts, x, y)
	for i := range verts {
		verts[i].ColorR = float32(c.R * c.A)
		verts[i].ColorG = float32(c.G * c.A)
		verts[i].ColorB = float32(c.B * c.A)
		verts[i].ColorA = float32(c.A)
	}
	b.bgOp.FillRule = ebiten.FillRuleEvenOdd
	b.bgOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(verts, b.bgMesh.indices, ensureWhitePixel(), &b.bgOp)
}

// translateVertices copies src into the persistent scratch buffer shifted
// by (x, y). The buffer grows to a high-water mark and never shrinks.
func (b *LiveBorder) translateVertices(src []ebiten.Vertex, x, y float64) []ebiten.Vertex {
	if cap(b.translated) < len(src) {
		b.translated = make([]ebiten.Vertex, len(src))
	}
	b.translated = b.translated[:len(src)]
	for i, v := range src {
		v.DstX += float32(x)
		v.DstY += float32(y)
		b.translated[i] = v
	}
	return b.translated
}
