package glint

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// LiquidMetal renders an animated procedural "liquid metal" surface: a
// shaped mask filled with chromatically dispersed metallic stripes that flow
// and distort over time. Two shader variants exist: the standard surface
// (simplex-noise distortion) and the tilt surface (Perlin-noise distortion
// plus device-tilt response).
//
// The GPU path is a Kage shader; renderPixel is the matching CPU reference
// used by tests and RenderPreview.

// Variant selects the liquid metal shader flavor.
type Variant uint8

const (
	// VariantStandard uses simplex-noise distortion and no tilt input.
	VariantStandard Variant = iota
	// VariantTilt uses Perlin-noise distortion and perturbs the stripe
	// rotation and dispersion by device tilt.
	VariantTilt
)

// LiquidMetalParams is the flat per-frame uniform record. All color
// channels are normalized to [0, 1]; Time must be monotonically
// non-decreasing across frames. The record is cheap to copy and is expected
// to be rebuilt (or mutated) every rendered frame.
type LiquidMetalParams struct {
	Width, Height float64 // surface size in pixels
	Time          float64 // elapsed seconds

	Background Color   // composited behind the metal
	Tint       Color   // color-burn tint; Tint.A scales the burn
	TintAlpha  float64 // additional burn blend factor in [0, 1]

	Softness   float64 // stripe transition softness in [0, 1]
	Repetition float64 // stripe count per diagonal sweep (positive)
	ShiftRed   float64 // red chromatic shift, UI scale
	ShiftBlue  float64 // blue chromatic shift, UI scale
	Distortion float64 // noise distortion amount
	Contour    float64 // 0 = hard rim, 1 = soft falloff
	Angle      float64 // stripe rotation in degrees
	Shape      Shape   // mask shape

	Metal MetalColors // highlight/shadow stripe colors

	Tilt          Vec2    // device tilt (roll, pitch), each in [-1, 1]
	TiltInfluence float64 // how strongly tilt bends the pattern
}

// DefaultLiquidMetalParams returns a params record with the values the
// demos start from: a silver circle with moderate dispersion.
func DefaultLiquidMetalParams(width, height float64) LiquidMetalParams {
	return LiquidMetalParams{
		Width:      width,
		Height:     height,
		Background: Color{0, 0, 0, 0},
		Tint:       ColorWhite,
		TintAlpha:  0,
		Softness:   0.3,
		Repetition: 3,
		ShiftRed:   0.6,
		ShiftBlue:  0.6,
		Distortion: 0.4,
		Contour:    0.5,
		Angle:      30,
		Shape:      ShapeCircle,
		Metal:      MetalPreset(MetalSilver),
	}
}

// --- Kage shader sources ---
// Assembled from shared fragments so the two variants stay in lockstep.
// All shaders use //kage:unit pixels as required by Ebitengine. Output is
// premultiplied alpha.

const liquidMetalHeaderSrc = `//kage:unit pixels
package main

var Resolution vec2
var Time float
var BgColor vec4
var TintColor vec4
var TintAlpha float
var Softness float
var Repetition float
var ShiftRed float
var ShiftBlue float
var Distortion float
var Contour float
var Angle float
var ShapeSel float
var Highlight vec3
var Shadow vec3
`

const liquidMetalTiltUniformsSrc = `
var Tilt vec2
var TiltInfluence float
`

// Simplex noise with polynomial permutation hashing ((x*34+1)*x mod 289)
// and a (0.5 - d*d)^4 radial falloff.
const simplexNoiseKageSrc = `
func mod289(x vec3) vec3 {
	return x - floor(x*(1.0/289.0))*289.0
}

func permute(x vec3) vec3 {
	return mod289(((x * 34.0) + 1.0) * x)
}

func noise2(v vec2) float {
	C := vec4(0.211324865405187, 0.366025403784439, -0.577350269189626, 0.024390243902439)
	i := floor(v + dot(v, C.yy))
	x0 := v - i + dot(i, C.xx)
	var i1 vec2
	if x0.x > x0.y {
		i1 = vec2(1.0, 0.0)
	} else {
		i1 = vec2(0.0, 1.0)
	}
	x1 := x0 + C.xx - i1
	x2 := x0 + C.zz

	im := i - floor(i*(1.0/289.0))*289.0
	p := permute(permute(vec3(im.y, im.y+i1.y, im.y+1.0)) + vec3(im.x, im.x+i1.x, im.x+1.0))

	m := max(vec3(0.5)-vec3(dot(x0, x0), dot(x1, x1), dot(x2, x2)), vec3(0.0))
	m = m * m
	m = m * m

	x := 2.0*fract(p*C.www) - 1.0
	h := abs(x) - 0.5
	ox := floor(x + 0.5)
	a0 := x - ox
	m *= 1.79284291400159 - 0.85373472095314*(a0*a0+h*h)

	g := vec3(a0.x*x0.x+h.x*x0.y, a0.y*x1.x+h.y*x1.y, a0.z*x2.x+h.z*x2.y)
	return 130.0 * dot(m, g)
}
`

// Classic Perlin noise with hashed gradient vectors and the quintic fade
// 6t^5 - 15t^4 + 10t^3.
const perlinNoiseKageSrc = `
func hash2(p vec2) vec2 {
	q := vec2(dot(p, vec2(127.1, 311.7)), dot(p, vec2(269.5, 183.3)))
	return -1.0 + 2.0*fract(sin(q)*43758.5453123)
}

func noise2(p vec2) float {
	i := floor(p)
	f := fract(p)
	u := f * f * f * (f*(f*6.0-15.0)+10.0)
	a := dot(hash2(i), f)
	b := dot(hash2(i+vec2(1.0, 0.0)), f-vec2(1.0, 0.0))
	c := dot(hash2(i+vec2(0.0, 1.0)), f-vec2(0.0, 1.0))
	d := dot(hash2(i+vec2(1.0, 1.0)), f-vec2(1.0, 1.0))
	return mix(mix(a, b, u.x), mix(c, d, u.x), u.y)
}
`

// Shape edge evaluator, stripe compositor, and dispersion driver shared by
// both variants. Mirrors shape.go and stripe.go exactly.
const liquidMetalBodySrc = `
func fullFillEdge(uv vec2) float {
	fx := clamp(min(uv.x, 1.0-uv.x)/0.15, 0.0, 1.0)
	fy := clamp(min(uv.y, 1.0-uv.y)/0.15, 0.0, 1.0)
	return clamp(1.0-pow(fx*fy, 0.25), 0.0, 1.0)
}

func edgeValue(uv vec2, t float) float {
	d := uv - 0.5
	if ShapeSel < 0.5 {
		return fullFillEdge(uv)
	} else if ShapeSel < 1.5 {
		return pow(clamp(3.0*length(d)*0.67, 0.0, 1.0), 18.0)
	} else if ShapeSel < 2.5 {
		r := length(d)
		theta := atan2(d.y, d.x)
		petal := abs(cos(3.0 * theta))
		rr := r * (1.0 + 0.05*sin(3.0*theta+2.0*t))
		e := smoothstep(petal-0.25, petal, rr*2.4)
		return clamp(e*e, 0.0, 1.0)
	} else if ShapeSel < 3.5 {
		c := 0.70710678
		ru := (d.x*c-d.y*c)*1.42 + 0.5
		rv := (d.x*c+d.y*c)*1.42 + 0.5
		return fullFillEdge(vec2(ru, rv))
	}
	sum := 0.0
	for i := 0; i < 5; i++ {
		fi := float(i)
		speed := 0.5 + 0.35*abs(sin(fi*12.9898))
		phase := fi * 2.399
		dir := 1.0
		if mod(fi, 2.0) >= 1.0 {
			dir = -1.0
		}
		cx := 0.5 + 0.22*cos(dir*t*speed+phase)
		cy := 0.5 + 0.22*sin(dir*t*speed*1.3+phase*1.7)
		dd := clamp(distance(uv, vec2(cx, cy))*3.0, 0.0, 1.0)
		f := 1.0 - dd
		sum += f * f * f * f
	}
	e := smoothstep(0.65, 0.9, sum)
	return clamp(e*e*e*e, 0.0, 1.0)
}

func stripeChannel(c1, c2, pos, blur, bump, tint, tintAlpha float) float {
	wa := 0.12 * mix(0.3, 1.0, bump)
	wb := 0.1 * mix(0.5, 1.0, bump)
	e1 := wa
	e2 := e1 + wb
	e3 := e2 + 0.5

	ch := c1
	ch = mix(ch, c2, smoothstep(e1-blur, e1+blur, pos))
	g := clamp((pos-e2)/0.5, 0.0, 1.0)
	ch = mix(ch, mix(c1, c2, g), smoothstep(e2-blur, e2+blur, pos))
	ch = mix(ch, c2, smoothstep(e3-blur, e3+blur, pos))
	ch = mix(ch, c1, smoothstep(1.0-2.0*blur, 1.0, pos))
	burn := 1.0 - min(1.0, (1.0-ch)/max(tint, 0.0001))
	return mix(ch, burn, tintAlpha)
}

func metalColor(uv vec2, tiltAngle, tiltDiag, tiltBoost float) vec4 {
	t := Time
	e := edgeValue(uv, t)
	e = mix(smoothstep(0.85, 0.95, e), e, smoothstep(0.0, 0.4, Contour))

	ang := Angle*0.017453292519943295 + tiltAngle
	s := sin(ang)
	c := cos(ang)
	d := uv - 0.5
	ru := d.x*c - d.y*s
	rv := d.x*s + d.y*c
	diag := ru + rv + tiltDiag

	dc := length(d)
	bump := pow(clamp(1.0-dc*1.2, 0.0, 1.0), mix(1.5, 3.0, clamp(uv.y, 0.0, 1.0)))

	n := noise2(uv*3.0 + vec2(t*0.3, t*0.2))

	dir := diag*Repetition + bump*1.5 + n*Distortion + t*0.1 + e*0.5

	interior := smoothstep(0.0, 0.2, uv.y) * (1.0 - smoothstep(0.8, 1.0, uv.y))
	base := bump*0.7 + (1.0-interior)*0.5 + abs(diag)*0.3 + tiltBoost
	dr := base * ShiftRed / 20.0
	db := base * ShiftBlue / 20.0

	blur := max(Softness*0.5, 0.003)
	tintAmount := TintColor.a * TintAlpha
	r := stripeChannel(Shadow.r, Highlight.r, fract(dir+dr), blur, bump, TintColor.r, tintAmount)
	g := stripeChannel(Shadow.g, Highlight.g, fract(dir), blur, bump, TintColor.g, tintAmount)
	b := stripeChannel(Shadow.b, Highlight.b, fract(dir-db), blur, bump, TintColor.b, tintAmount)

	metal := vec3(r, g, b)
	metal = mix(metal, Shadow, e*0.6)
	a := 1.0 - smoothstep(0.92, 1.0, e)

	outRGB := metal*a + BgColor.rgb*BgColor.a*(1.0-a)
	outA := a + BgColor.a*(1.0-a)
	return vec4(outRGB, outA)
}
`

const liquidMetalFragmentSrc = `
func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := (dst.xy - imageDstOrigin()) / Resolution
	return metalColor(uv, 0.0, 0.0, 0.0)
}
`

const liquidMetalTiltFragmentSrc = `
func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := (dst.xy - imageDstOrigin()) / Resolution
	tiltAngle := (Tilt.x*0.5 + Tilt.y*0.25) * TiltInfluence
	tiltDiag := (Tilt.x*0.15 - Tilt.y*0.1) * TiltInfluence
	tiltBoost := (abs(Tilt.x)*0.3 + abs(Tilt.y)*0.2) * TiltInfluence
	return metalColor(uv, tiltAngle, tiltDiag, tiltBoost)
}
`

const liquidMetalShaderSrc = liquidMetalHeaderSrc +
	simplexNoiseKageSrc + liquidMetalBodySrc + liquidMetalFragmentSrc

const liquidMetalTiltShaderSrc = liquidMetalHeaderSrc + liquidMetalTiltUniformsSrc +
	perlinNoiseKageSrc + liquidMetalBodySrc + liquidMetalTiltFragmentSrc

// --- Lazy shader compilation (no sync.Once — glint is single-threaded) ---

var (
	liquidMetalShader     *ebiten.Shader
	liquidMetalTiltShader *ebiten.Shader
)

func ensureLiquidMetalShader() *ebiten.Shader {
	if liquidMetalShader == nil {
		s, err := ebiten.NewShader([]byte(liquidMetalShaderSrc))
		if err != nil {
			panic("glint: failed to compile liquid metal shader: " + err.Error())
		}
		liquidMetalShader = s
	}
	return liquidMetalShader
}

func ensureLiquidMetalTiltShader() *ebiten.Shader {
	if liquidMetalTiltShader == nil {
		s, err := ebiten.NewShader([]byte(liquidMetalTiltShaderSrc))
		if err != nil {
			panic("glint: failed to compile liquid metal tilt shader: " + err.Error())
		}
		liquidMetalTiltShader = s
	}
	return liquidMetalTiltShader
}

// --- LiquidMetal drawable ---

// LiquidMetal draws the liquid metal surface. Mutate Params freely between
// frames; the uniform bundle is rebuilt on every Draw from persistent
// buffers (no per-frame map or slice allocation).
type LiquidMetal struct {
	Params  LiquidMetalParams
	Variant Variant

	uniforms   map[string]any
	resolution [2]float32
	bgColor    [4]float32
	tintColor  [4]float32
	highlight  [3]float32
	shadow     [3]float32
	tilt       [2]float32
	shaderOp   ebiten.DrawRectShaderOptions
}

// NewLiquidMetal creates a liquid metal drawable with the given parameters.
func NewLiquidMetal(params LiquidMetalParams, variant Variant) *LiquidMetal {
	m := &LiquidMetal{
		Params:   params,
		Variant:  variant,
		uniforms: make(map[string]any, 17),
	}
	// Slice headers registered once; refreshUniforms writes in place.
	m.uniforms["Resolution"] = m.resolution[:]
	m.uniforms["BgColor"] = m.bgColor[:]
	m.uniforms["TintColor"] = m.tintColor[:]
	m.uniforms["Highlight"] = m.highlight[:]
	m.uniforms["Shadow"] = m.shadow[:]
	if variant == VariantTilt {
		m.uniforms["Tilt"] = m.tilt[:]
	}
	return m
}

// refreshUniforms rebuilds the uniform bundle from Params. Scalar float32
// boxing is unavoidable with Ebitengine's uniform API.
func (m *LiquidMetal) refreshUniforms() {
	p := &m.Params
	m.resolution[0] = float32(p.Width)
	m.resolution[1] = float32(p.Height)
	m.bgColor[0] = float32(p.Background.R)
	m.bgColor[1] = float32(p.Background.G)
	m.bgColor[2] = float32(p.Background.B)
	m.bgColor[3] = float32(p.Background.A)
	m.tintColor[0] = float32(p.Tint.R)
	m.tintColor[1] = float32(p.Tint.G)
	m.tintColor[2] = float32(p.Tint.B)
	m.tintColor[3] = float32(p.Tint.A)
	m.highlight[0] = float32(p.Metal.Highlight.R)
	m.highlight[1] = float32(p.Metal.Highlight.G)
	m.highlight[2] = float32(p.Metal.Highlight.B)
	m.shadow[0] = float32(p.Metal.Shadow.R)
	m.shadow[1] = float32(p.Metal.Shadow.G)
	m.shadow[2] = float32(p.Metal.Shadow.B)

	m.uniforms["Time"] = float32(p.Time)
	m.uniforms["TintAlpha"] = float32(p.TintAlpha)
	m.uniforms["Softness"] = float32(p.Softness)
	m.uniforms["Repetition"] = float32(p.Repetition)
	m.uniforms["ShiftRed"] = float32(p.ShiftRed)
	m.uniforms["ShiftBlue"] = float32(p.ShiftBlue)
	m.uniforms["Distortion"] = float32(p.Distortion)
	m.uniforms["Contour"] = float32(p.Contour)
	m.uniforms["Angle"] = float32(p.Angle)
	m.uniforms["ShapeSel"] = p.Shape.uniform()

	if m.Variant == VariantTilt {
		m.tilt[0] = float32(clamp(p.Tilt.X, -1, 1))
		m.tilt[1] = float32(clamp(p.Tilt.Y, -1, 1))
		m.uniforms["TiltInfluence"] = float32(p.TiltInfluence)
	}
}

// Draw renders the surface into dst with its top-left corner at (x, y).
func (m *LiquidMetal) Draw(dst *ebiten.Image, x, y float64) {
	var shader *ebiten.Shader
	if m.Variant == VariantTilt {
		shader = ensureLiquidMetalTiltShader()
	} else {
		shader = ensureLiquidMetalShader()
	}
	m.refreshUniforms()
	m.shaderOp.GeoM.Reset()
	m.shaderOp.GeoM.Translate(x, y)
	m.shaderOp.Uniforms = m.uniforms
	dst.DrawRectShader(int(m.Params.Width), int(m.Params.Height), shader, &m.shaderOp)
}

// --- CPU reference implementation ---

// renderPixel evaluates the shader math on the CPU at normalized
// coordinates (u, v). Returns non-premultiplied RGBA. Mirrors the Kage
// source; tests run against this path.
func (p *LiquidMetalParams) renderPixel(u, v float64, variant Variant) (r, g, b, a float64) {
	t := p.Time

	var tiltAngle, tiltDiag, tiltBoost float64
	if variant == VariantTilt {
		tx := clamp(p.Tilt.X, -1, 1)
		ty := clamp(p.Tilt.Y, -1, 1)
		tiltAngle = (tx*0.5 + ty*0.25) * p.TiltInfluence
		tiltDiag = (tx*0.15 - ty*0.1) * p.TiltInfluence
		tiltBoost = (math.Abs(tx)*0.3 + math.Abs(ty)*0.2) * p.TiltInfluence
	}

	e := sharpenContour(EdgeIntensity(u, v, t, p.Shape), p.Contour)

	var n float64
	if variant == VariantTilt {
		n = PerlinNoise2(u*3+t*0.3, v*3+t*0.2)
	} else {
		n = SimplexNoise2(u*3+t*0.3, v*3+t*0.2)
	}

	in := stripeInput{
		u: u, v: v, t: t,
		angle:      radians(p.Angle) + tiltAngle,
		repetition: p.Repetition,
		distortion: p.Distortion,
		edge:       e,
		noise:      n,
		shiftRed:   p.ShiftRed,
		shiftBlue:  p.ShiftBlue,
		tiltDiag:   tiltDiag,
		tiltBoost:  tiltBoost,
	}
	d := computeDispersion(in)
	posR, posG, posB := d.stripePositions()

	dx := u - 0.5
	dy := v - 0.5
	dc := math.Hypot(dx, dy)
	bump := math.Pow(clamp01(1-dc*1.2), mix(1.5, 3, clamp01(v)))

	blur := math.Max(p.Softness*0.5, 0.003)
	tintAmount := p.Tint.A * p.TintAlpha
	hi, sh := p.Metal.Highlight, p.Metal.Shadow
	r = compositeStripe(sh.R, hi.R, posR, defaultStripeWidths, blur, bump, p.Tint.R, tintAmount)
	g = compositeStripe(sh.G, hi.G, posG, defaultStripeWidths, blur, bump, p.Tint.G, tintAmount)
	b = compositeStripe(sh.B, hi.B, posB, defaultStripeWidths, blur, bump, p.Tint.B, tintAmount)

	// Rim shading and boundary cutoff.
	r = mix(r, sh.R, e*0.6)
	g = mix(g, sh.G, e*0.6)
	b = mix(b, sh.B, e*0.6)
	a = 1 - smoothstep(0.92, 1, e)

	// Composite over the background (non-premultiplied result).
	bg := p.Background
	outA := a + bg.A*(1-a)
	if outA > 0 {
		r = (r*a + bg.R*bg.A*(1-a)) / outA
		g = (g*a + bg.G*bg.A*(1-a)) / outA
		b = (b*a + bg.B*bg.A*(1-a)) / outA
	}
	return r, g, b, outA
}

// RenderPreview rasterizes the surface on the CPU into an RGBA image.
// Intended for thumbnails and golden-image testing, not per-frame use.
func (p *LiquidMetalParams) RenderPreview(w, h int, variant Variant) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			r, g, b, a := p.renderPixel(u, v, variant)
			off := img.PixOffset(x, y)
			img.Pix[off+0] = uint8(clamp01(r)*255 + 0.5)
			img.Pix[off+1] = uint8(clamp01(g)*255 + 0.5)
			img.Pix[off+2] = uint8(clamp01(b)*255 + 0.5)
			img.Pix[off+3] = uint8(clamp01(a)*255 + 0.5)
		}
	}
	return img
}
