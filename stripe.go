package glint

import "math"

// The stripe compositor turns a fractional stripe position into a metallic
// banding pattern: two thin accent bands followed by a wide gradient band,
// then a wrap seam back to the base color so the pattern tiles under
// fract(). It runs once per color channel with channel-specific positions
// (see dispersion below), which is what produces the chromatic fringing.

// tintEpsilon guards the color-burn division. The compositor's only
// non-total operation; must not be removed.
const tintEpsilon = 0.0001

// stripeWidths holds the three band-width ratios of the stripe pattern:
// two thin bands followed by the wide gradient band. The widths are
// fractions of one stripe period and should sum to less than 1.
type stripeWidths struct {
	thinA, thinB, gradient float64
}

// defaultStripeWidths is the band layout of the liquid metal surface.
var defaultStripeWidths = stripeWidths{thinA: 0.12, thinB: 0.1, gradient: 0.5}

// compositeStripe blends one color channel across the stripe bands.
//
// pos ∈ [0,1) selects the band; blur is half the transition span of each
// smoothstep boundary; bump ∈ [0,1] narrows the thin bands toward the rim;
// tint/tintAlpha apply the final color-burn toward the tint channel.
func compositeStripe(c1, c2, pos float64, w stripeWidths, blur, bump, tint, tintAlpha float64) float64 {
	// Thin bands narrow where the bump field is low (near the rim).
	wa := w.thinA * mix(0.3, 1, bump)
	wb := w.thinB * mix(0.5, 1, bump)

	e1 := wa
	e2 := e1 + wb
	e3 := e2 + w.gradient

	ch := c1
	// Band 2: thin accent in the second base color.
	ch = mix(ch, c2, smoothstep(e1-blur, e1+blur, pos))
	// Band 3: wide gradient from c1 back up to c2.
	g := clamp01((pos - e2) / math.Max(w.gradient, tintEpsilon))
	ch = mix(ch, mix(c1, c2, g), smoothstep(e2-blur, e2+blur, pos))
	// Saturate the gradient tail to pure c2.
	ch = mix(ch, c2, smoothstep(e3-blur, e3+blur, pos))
	// Wrap seam: return to c1 so fract() tiling is seamless.
	ch = mix(ch, c1, smoothstep(1-2*blur, 1, pos))
	// Color burn toward the tint channel.
	burn := 1 - math.Min(1, (1-ch)/math.Max(tint, tintEpsilon))
	ch = mix(ch, burn, tintAlpha)
	return ch
}

// dispersion is the chromatic dispersion driver: the shared stripe-pattern
// direction plus the per-channel red/blue offsets. Green is the reference
// channel and is never shifted.
type dispersion struct {
	direction float64
	red       float64
	blue      float64
}

// shiftScale maps UI-scale chromatic shift inputs to shader-scale offsets.
const shiftScale = 20.0

// stripeInput carries the per-pixel values the dispersion driver depends on.
type stripeInput struct {
	u, v       float64 // normalized coordinates
	t          float64 // elapsed seconds
	angle      float64 // stripe rotation in radians (tilt already applied)
	repetition float64 // stripe count per diagonal sweep
	distortion float64 // noise contribution amount
	edge       float64 // sharpened shape edge value
	noise      float64 // animated noise sample at this pixel
	shiftRed   float64 // UI-scale red shift amount
	shiftBlue  float64 // UI-scale blue shift amount
	tiltDiag   float64 // tilt contribution to the lighting diagonal (0 when unused)
	tiltBoost  float64 // extra dispersion from device tilt (0 when unused)
}

// computeDispersion derives the shared direction scalar and the red/blue
// channel offsets for one pixel.
func computeDispersion(in stripeInput) dispersion {
	sin, cos := math.Sincos(in.angle)
	dx := in.u - 0.5
	dy := in.v - 0.5
	ru := dx*cos - dy*sin
	rv := dx*sin + dy*cos

	// Diagonal gradient of the rotated frame: the base stripe direction.
	// Device tilt, when present, folds into the diagonal here.
	diag := ru + rv + in.tiltDiag

	// Radial pseudo-3D bump: distance to center through a y-dependent
	// power curve, simulating a curved metal surface.
	dc := math.Hypot(dx, dy)
	bump := math.Pow(clamp01(1-dc*1.2), mix(1.5, 3, clamp01(in.v)))

	dir := diag*in.repetition + bump*1.5 + in.noise*in.distortion + in.t*0.1 + in.edge*0.5

	// Vertical bands near the top/bottom edges feed the fringing.
	interior := smoothstep(0, 0.2, in.v) * (1 - smoothstep(0.8, 1, in.v))
	vband := 1 - interior

	base := bump*0.7 + vband*0.5 + math.Abs(diag)*0.3 + in.tiltBoost
	return dispersion{
		direction: dir,
		red:       base * in.shiftRed / shiftScale,
		blue:      base * in.shiftBlue / shiftScale,
	}
}

// stripePositions returns the per-channel fractional stripe positions
// (r, g, b). With both shifts at zero the three are identical and no
// fringing occurs.
func (d dispersion) stripePositions() (r, g, b float64) {
	return fract(d.direction + d.red), fract(d.direction), fract(d.direction - d.blue)
}
