package glint

import (
	"math"
	"testing"
)

// --- Band compositing ---

func TestCompositeStripeBandMidpoints(t *testing.T) {
	// With bump=1 the default layout is: [0, 0.12) c1, [0.12, 0.22) c2,
	// [0.22, 0.72) gradient c1→c2, [0.72, ~1) c2, wrapping back to c1.
	const c1, c2 = 0.2, 0.9
	const blur = 0.003
	w := defaultStripeWidths

	tests := []struct {
		name string
		pos  float64
		want float64
	}{
		{"thin band 1", 0.06, c1},
		{"thin band 2", 0.17, c2},
		{"gradient start", 0.23, c1},
		{"gradient mid", 0.47, (c1 + c2) / 2},
		{"gradient end", 0.71, c2},
		{"tail", 0.85, c2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compositeStripe(c1, c2, tt.pos, w, blur, 1, 1, 0)
			assertNearTol(t, "channel", got, tt.want, 0.02)
		})
	}
}

func TestCompositeStripeBandOrder(t *testing.T) {
	// Sweeping pos 0→1 must visit the bands in order: base, accent,
	// gradient ramp, saturated tail.
	const c1, c2 = 0.0, 1.0
	w := defaultStripeWidths

	prev := -1.0
	inGradient := false
	for i := 0; i <= 1000; i++ {
		pos := float64(i) / 1000
		v := compositeStripe(c1, c2, pos, w, 0.003, 1, 1, 0)
		if v < -epsilon || v > 1+epsilon {
			t.Fatalf("compositeStripe out of range at pos=%v: %v", pos, v)
		}
		// Within the gradient band the value must ramp monotonically.
		if pos > 0.23 && pos < 0.71 {
			if inGradient && v < prev-1e-6 {
				t.Fatalf("gradient band not monotonic at pos=%v: %v < %v", pos, v, prev)
			}
			inGradient = true
			prev = v
		}
	}
}

func TestCompositeStripeBumpNarrowsThinBands(t *testing.T) {
	// With a low bump the first accent band starts earlier: at pos=0.08 the
	// bump=1 layout is still in the base band while the bump=0 layout has
	// already crossed into the accent color.
	const c1, c2 = 0.0, 1.0
	w := defaultStripeWidths
	wide := compositeStripe(c1, c2, 0.08, w, 0.003, 1, 1, 0)
	narrow := compositeStripe(c1, c2, 0.08, w, 0.003, 0, 1, 0)
	if !(wide < 0.1 && narrow > 0.9) {
		t.Errorf("bump narrowing: wide=%v narrow=%v", wide, narrow)
	}
}

func TestCompositeStripeTintGuard(t *testing.T) {
	// tint=0 exercises the guarded division; the result must stay finite
	// and in range for any pos.
	w := defaultStripeWidths
	for i := 0; i <= 100; i++ {
		pos := float64(i) / 100
		v := compositeStripe(0.2, 0.9, pos, w, 0.01, 0.5, 0, 1)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("compositeStripe with zero tint at pos=%v: %v", pos, v)
		}
		if v < 0 || v > 1 {
			t.Fatalf("compositeStripe with zero tint out of range at pos=%v: %v", pos, v)
		}
	}
}

func TestCompositeStripeTintDisabled(t *testing.T) {
	// tintAlpha=0 must leave the banded value untouched regardless of tint.
	w := defaultStripeWidths
	for _, pos := range []float64{0.06, 0.17, 0.47, 0.85} {
		plain := compositeStripe(0.2, 0.9, pos, w, 0.003, 1, 0.5, 0)
		tinted := compositeStripe(0.2, 0.9, pos, w, 0.003, 1, 0.0001, 0)
		assertNear(t, "tintAlpha=0", tinted, plain)
	}
}

// --- Dispersion ---

func TestDispersionZeroShiftsCollapse(t *testing.T) {
	// With both shift amounts at zero the three channel positions must be
	// identical — no color fringing.
	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			in := stripeInput{
				u: float64(i) / 20, v: float64(j) / 20, t: 1.5,
				angle:      radians(30),
				repetition: 3,
				distortion: 0.4,
				edge:       0.3,
				noise:      0.17,
			}
			d := computeDispersion(in)
			r, g, b := d.stripePositions()
			if r != g || g != b {
				t.Fatalf("zero-shift positions differ at (%v, %v): r=%v g=%v b=%v", in.u, in.v, r, g, b)
			}
		}
	}
}

func TestDispersionShiftsSeparateChannels(t *testing.T) {
	in := stripeInput{
		u: 0.3, v: 0.4, t: 2,
		angle:      radians(45),
		repetition: 3,
		distortion: 0.4,
		edge:       0.2,
		noise:      -0.3,
		shiftRed:   1,
		shiftBlue:  0.5,
	}
	d := computeDispersion(in)
	if d.red <= 0 || d.blue <= 0 {
		t.Fatalf("expected positive offsets, got red=%v blue=%v", d.red, d.blue)
	}
	// Red offset scales linearly with the shift amount.
	in2 := in
	in2.shiftRed = 2
	d2 := computeDispersion(in2)
	assertNear(t, "red offset scaling", d2.red, 2*d.red)
	// Green is the reference channel: its position ignores the shifts.
	_, g1, _ := d.stripePositions()
	_, g2, _ := d2.stripePositions()
	assertNear(t, "green unshifted", g1, g2)
}

func TestDispersionPositionsFractional(t *testing.T) {
	in := stripeInput{
		u: 0.9, v: 0.1, t: 123.4,
		angle:      radians(200),
		repetition: 7,
		distortion: 1.2,
		edge:       0.8,
		noise:      0.9,
		shiftRed:   3,
		shiftBlue:  3,
	}
	r, g, b := computeDispersion(in).stripePositions()
	for name, v := range map[string]float64{"r": r, "g": g, "b": b} {
		if v < 0 || v >= 1 {
			t.Errorf("stripe position %s = %v, want [0, 1)", name, v)
		}
	}
}
