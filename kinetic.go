package glint

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"
)

// KineticText animates a line of text one rune at a time: each rune rises
// into place and fades in, starting Stagger seconds after the previous one.
// Setting Steps > 1 quantizes each rune's progress into discrete jumps (the
// deliberately "laggy" look).

// KineticTextConfig configures a KineticText. Zero values get defaults in
// NewKineticText.
type KineticTextConfig struct {
	Text string
	Face text.Face

	RiseHeight float64        // pixels each rune rises; default 24
	Stagger    float64        // seconds between rune starts; default 0.05
	Duration   float64        // seconds per rune; default 0.4
	Steps      int            // quantization steps; <= 1 means smooth
	Easing     ease.TweenFunc // default ease.OutCubic
	Color      Color          // default opaque white
}

// KineticText plays a staggered per-rune entrance animation.
type KineticText struct {
	cfg      KineticTextConfig
	runes    []rune
	advances []float64 // x offset of each rune within the line

	elapsed float64
	drawOp  text.DrawOptions
}

// NewKineticText lays out the text and returns it ready to play. The
// animation starts at elapsed time zero; call Restart to replay.
func NewKineticText(cfg KineticTextConfig) *KineticText {
	if cfg.RiseHeight == 0 {
		cfg.RiseHeight = 24
	}
	if cfg.Stagger <= 0 {
		cfg.Stagger = 0.05
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 0.4
	}
	if cfg.Easing == nil {
		cfg.Easing = ease.OutCubic
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}

	k := &KineticText{cfg: cfg, runes: []rune(cfg.Text)}
	k.advances = make([]float64, len(k.runes))
	x := 0.0
	for i, r := range k.runes {
		k.advances[i] = x
		if cfg.Face != nil {
			x += text.Advance(string(r), cfg.Face)
		}
	}
	return k
}

// Width returns the laid-out line width in pixels.
func (k *KineticText) Width() float64 {
	if len(k.runes) == 0 || k.cfg.Face == nil {
		return 0
	}
	return k.advances[len(k.advances)-1] + text.Advance(string(k.runes[len(k.runes)-1]), k.cfg.Face)
}

// Update advances the animation by dt seconds.
func (k *KineticText) Update(dt float64) {
	k.elapsed += dt
}

// Restart rewinds the animation to the beginning.
func (k *KineticText) Restart() {
	k.elapsed = 0
}

// Done reports whether every rune has finished animating.
func (k *KineticText) Done() bool {
	if len(k.runes) == 0 {
		return true
	}
	last := float64(len(k.runes)-1)*k.cfg.Stagger + k.cfg.Duration
	return k.elapsed >= last
}

// runeProgress returns rune i's eased (and optionally quantized) progress
// in [0, 1].
func (k *KineticText) runeProgress(i int) float64 {
	start := float64(i) * k.cfg.Stagger
	raw := clamp01((k.elapsed - start) / k.cfg.Duration)
	eased := float64(k.cfg.Easing(float32(raw), 0, 1, 1))
	return Quantize(clamp01(eased), k.cfg.Steps)
}

// Draw renders the line with its top-left origin at (x, y). Rising runes
// overshoot below the origin until they settle.
func (k *KineticText) Draw(dst *ebiten.Image, x, y float64) {
	if k.cfg.Face == nil {
		return
	}
	c := k.cfg.Color
	for i, r := range k.runes {
		p := k.runeProgress(i)
		if p <= 0 {
			continue
		}
		op := &k.drawOp
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.GeoM.Translate(x+k.advances[i], y+(1-p)*k.cfg.RiseHeight)
		op.ColorScale.Scale(
			float32(c.R*c.A*p),
			float32(c.G*c.A*p),
			float32(c.B*c.A*p),
			float32(c.A*p),
		)
		text.Draw(dst, string(r), k.cfg.Face, op)
	}
}
