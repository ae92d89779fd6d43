package glint

import "math"

// Gradient noise used to distort the liquid metal stripe pattern. Two
// generators are provided: simplex (standard surface) and Perlin (tilt
// surface). Both are pure functions over a fixed permutation table, so
// identical inputs always produce identical outputs.

// perm is Ken Perlin's reference permutation of 0..255, doubled to avoid
// index wrapping.
var perm = buildPerm([256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
})

func buildPerm(base [256]uint8) [512]uint8 {
	var p [512]uint8
	for i := 0; i < 512; i++ {
		p[i] = base[i&255]
	}
	return p
}

// grad2 are the 8 gradient directions used by both generators.
var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// skew/unskew factors for 2D simplex noise.
var (
	simplexF2 = 0.5 * (math.Sqrt(3) - 1)
	simplexG2 = (3 - math.Sqrt(3)) / 6
)

// SimplexNoise2 evaluates 2D simplex noise at (x, y). The output is
// deterministic, continuous, and approximately in [-1, 1].
func SimplexNoise2(x, y float64) float64 {
	// Skew input space to find the containing simplex cell.
	s := (x + y) * simplexF2
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	t := (i + j) * simplexG2

	// Cell origin in input space, and offset from it.
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Which triangle of the cell are we in?
	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - i1 + simplexG2
	y1 := y0 - j1 + simplexG2
	x2 := x0 - 1 + 2*simplexG2
	y2 := y0 - 1 + 2*simplexG2

	ii := int(i) & 255
	jj := int(j) & 255

	n := simplexCorner(x0, y0, perm[ii+int(perm[jj])])
	n += simplexCorner(x1, y1, perm[ii+int(i1)+int(perm[jj+int(j1)])])
	n += simplexCorner(x2, y2, perm[ii+1+int(perm[jj+1])])

	// Scale to roughly [-1, 1].
	return 70 * n
}

// simplexCorner computes one corner's contribution with a (0.5 - d²)⁴
// falloff applied to the hashed gradient dot product.
func simplexCorner(x, y float64, hash uint8) float64 {
	t := 0.5 - x*x - y*y
	if t <= 0 {
		return 0
	}
	g := grad2[hash&7]
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

// PerlinNoise2 evaluates classic 2D Perlin gradient noise at (x, y) with
// quintic smoothing. The output is deterministic, continuous, and
// approximately in [-1, 1].
func PerlinNoise2(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := quinticFade(xf)
	v := quinticFade(yf)

	aa := perm[int(perm[xi])+yi]
	ab := perm[int(perm[xi])+yi+1]
	ba := perm[int(perm[xi+1])+yi]
	bb := perm[int(perm[xi+1])+yi+1]

	n00 := gradDot(aa, xf, yf)
	n10 := gradDot(ba, xf-1, yf)
	n01 := gradDot(ab, xf, yf-1)
	n11 := gradDot(bb, xf-1, yf-1)

	// Bilinear-style blend of the corner dot products. The raw range of
	// 2D Perlin is ±√2/2; rescale to roughly ±1.
	return math.Sqrt2 * mix(mix(n00, n10, u), mix(n01, n11, u), v)
}

// quinticFade is Perlin's improved smoothing curve 6t⁵ - 15t⁴ + 10t³.
func quinticFade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// perlinGrad are 8 unit-length gradient directions at 45° increments.
// Unit length keeps the raw Perlin range at ±√2/2 so the √2 rescale in
// PerlinNoise2 cannot overshoot ±1.
var perlinGrad = [8][2]float64{
	{1, 0}, {math.Sqrt2 / 2, math.Sqrt2 / 2},
	{0, 1}, {-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{-1, 0}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{0, -1}, {math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

// gradDot returns the dot product of a hashed unit-grid gradient with (x, y).
func gradDot(hash uint8, x, y float64) float64 {
	g := perlinGrad[hash&7]
	return g[0]*x + g[1]*y
}
