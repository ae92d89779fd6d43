// Package glint is a gallery of mobile-style UI animation effects for
// [Ebitengine]: an animated "liquid metal" procedural shader, glowing
// rotating gradient borders, flip/expand cards, and kinetic text.
//
// Everything is driven by per-frame recomputation: each effect exposes an
// Update(dt)/Draw pair and derives all visual state from continuously
// advancing scalar inputs (time, rotation angle, device tilt). Nothing
// blocks, persists, or touches the network.
//
// # Quick start
//
// Effects plug into any [ebiten.Game]:
//
//	metal := glint.NewLiquidMetal(glint.DefaultLiquidMetalParams(400, 400), glint.VariantStandard)
//
//	func (g *Game) Update() error {
//		g.elapsed += 1.0 / float64(ebiten.TPS())
//		metal.Params.Time = g.elapsed
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		metal.Draw(screen, 40, 40)
//	}
//
// # Liquid metal
//
// [LiquidMetal] fills one of five mask shapes ([Shape]) with chromatically
// dispersed metallic stripes. Colors come from the built-in metal presets
// ([MetalPreset], [GetMetalColors]) or custom highlight/shadow pairs. The
// tilt variant ([VariantTilt]) bends the pattern with device orientation,
// abstracted behind [TiltSource] and sampled by [PolledTilt].
//
// # Live borders
//
// [LiveBorder] draws a rounded-rect ring filled with a rotating sweep
// gradient, with an optional pulsing glow behind it. Gradient colors can be
// blended smoothly or split into hard-edged equal segments ([ColorMode]).
//
// # Cards and text
//
// [FlipCard], [ExpandCard], and [KineticText] are small tween-driven
// components (via [gween]) used by the demos in examples/.
//
// The Kage shader sources are compiled lazily on first draw; a compilation
// failure is an integration error and panics.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package glint
