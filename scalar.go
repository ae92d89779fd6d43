package glint

import "math"

// Scalar helpers mirroring the GLSL/Kage builtins used by the CPU reference
// implementation of the shaders. Kept as free functions so the per-pixel
// code reads like the shader source.

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp clamps x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// mix linearly interpolates between a and b by t. t is not clamped.
func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothstep performs a cubic Hermite interpolation between 0 and 1 as x
// moves across [edge0, edge1]. Matches the GLSL builtin, including the
// degenerate edge0 == edge1 case (step function).
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// fract returns the fractional part of x, always in [0, 1).
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
