package glint

import "math"

// The edge evaluator produces a scalar "edge intensity" in [0, 1] for a
// point in the unit square: 0 deep inside the shape, rising toward 1 at the
// shape boundary. The liquid metal surface uses it both to mask the shape
// and to bend the stripe pattern around the rim.

// Full-fill border thickness and falloff softening exponent.
const (
	fullFillThickness = 0.15
	fullFillSoftness  = 0.25
)

// EdgeIntensity evaluates the edge field for the given shape at normalized
// coordinates (u, v) ∈ [0,1]² and time t (seconds). The result is clamped
// to [0, 1]. Only the daisy and metaball shapes are time-dependent.
func EdgeIntensity(u, v, t float64, shape Shape) float64 {
	switch shape {
	case ShapeCircle:
		return circleEdge(u, v)
	case ShapeDaisy:
		return daisyEdge(u, v, t)
	case ShapeDiamond:
		return diamondEdge(u, v)
	case ShapeMetaballs:
		return metaballEdge(u, v, t)
	default:
		return fullFillEdge(u, v)
	}
}

// fullFillEdge rises near the rectangle border: the per-axis distances to
// the nearest edge are scaled by the border thickness, combined
// multiplicatively, and softened by a fractional power.
func fullFillEdge(u, v float64) float64 {
	fx := clamp01(math.Min(u, 1-u) / fullFillThickness)
	fy := clamp01(math.Min(v, 1-v) / fullFillThickness)
	return clamp01(1 - math.Pow(fx*fy, fullFillSoftness))
}

// circleEdge is a steep radial falloff producing a hard circular cutoff.
func circleEdge(u, v float64) float64 {
	d := math.Hypot(u-0.5, v-0.5)
	return math.Pow(clamp01(3*d*0.67), 18)
}

// daisyEdge compares an animated polar radius against a six-lobed petal
// profile. The sin term wobbles the petals over time.
func daisyEdge(u, v, t float64) float64 {
	dx := u - 0.5
	dy := v - 0.5
	r := math.Hypot(dx, dy)
	theta := math.Atan2(dy, dx)

	petal := math.Abs(math.Cos(3 * theta))
	rr := r * (1 + 0.05*math.Sin(3*theta+2*t))

	e := smoothstep(petal-0.25, petal, rr*2.4)
	return clamp01(e * e)
}

// diamondEdge is the full-fill formula evaluated in a frame rotated 45°
// about the center and rescaled by √2, turning the square into a diamond.
func diamondEdge(u, v float64) float64 {
	const c = math.Sqrt2 / 2 // cos(45°) == sin(45°)
	dx := u - 0.5
	dy := v - 0.5
	ru := (dx*c-dy*c)*1.42 + 0.5
	rv := (dx*c+dy*c)*1.42 + 0.5
	return fullFillEdge(ru, rv)
}

// metaballEdge sums five orbiting blob fields and thresholds the total.
// Each blob's orbit speed, phase, and direction are fixed per index,
// derived by trigonometric hashing so the motion is deterministic.
func metaballEdge(u, v, t float64) float64 {
	sum := 0.0
	for i := 0; i < 5; i++ {
		fi := float64(i)
		speed := 0.5 + 0.35*math.Abs(math.Sin(fi*12.9898))
		phase := fi * 2.399 // golden angle spacing
		dir := 1.0
		if i&1 == 1 {
			dir = -1
		}

		cx := 0.5 + 0.22*math.Cos(dir*t*speed+phase)
		cy := 0.5 + 0.22*math.Sin(dir*t*speed*1.3+phase*1.7)

		d := clamp01(math.Hypot(u-cx, v-cy) * 3)
		f := 1 - d
		sum += f * f * f * f
	}
	e := smoothstep(0.65, 0.9, sum)
	return clamp01(e * e * e * e)
}

// sharpenContour applies the contour-sharpening blend to an edge value.
// Low contour values snap the boundary to a hard rim; high values keep the
// soft falloff.
func sharpenContour(edge, contour float64) float64 {
	return mix(smoothstep(0.85, 0.95, edge), edge, smoothstep(0, 0.4, contour))
}
