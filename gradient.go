package glint

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sweep (conic) gradients: color varies by angle around a center point.
// Stops are either evenly spaced and blended (smooth) or doubled up so each
// color occupies a hard-edged equal arc segment (uniform).

// ColorStop pins a color at a fractional position around the sweep.
type ColorStop struct {
	Position float64 // in [0, 1], 0 = start angle
	Color    Color
}

// maxSweepStops is the shader-side stop array capacity.
const maxSweepStops = 16

// SmoothColorStops spreads colors evenly around the sweep: position i/(N-1)
// for N colors. A single color yields one stop at 0.
func SmoothColorStops(colors []Color) []ColorStop {
	n := len(colors)
	stops := make([]ColorStop, 0, n)
	for i, c := range colors {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		stops = append(stops, ColorStop{Position: pos, Color: c})
	}
	return stops
}

// UniformColorStops gives each color a hard-edged equal segment: each color
// appears twice, at i/N and (i+1)/N, creating a flat step per segment.
// Three colors produce six stops at [0, ⅓, ⅓, ⅔, ⅔, 1].
func UniformColorStops(colors []Color) []ColorStop {
	n := len(colors)
	stops := make([]ColorStop, 0, 2*n)
	for i, c := range colors {
		stops = append(stops,
			ColorStop{Position: float64(i) / float64(n), Color: c},
			ColorStop{Position: float64(i+1) / float64(n), Color: c},
		)
	}
	return stops
}

// ParseColors parses a list of CSS color strings. The first malformed entry
// aborts with a wrapped error.
func ParseColors(specs []string) ([]Color, error) {
	colors := make([]Color, 0, len(specs))
	for i, s := range specs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// buildStops converts a color list into sweep stops for the given mode,
// capped at the shader's stop capacity.
func buildStops(colors []Color, mode ColorMode) []ColorStop {
	if mode == ColorModeUniform {
		if len(colors) > maxSweepStops/2 {
			colors = colors[:maxSweepStops/2]
		}
		return UniformColorStops(colors)
	}
	if len(colors) > maxSweepStops {
		colors = colors[:maxSweepStops]
	}
	return SmoothColorStops(colors)
}

// --- Sweep gradient Kage shader ---

// The fragment walks the stop list and blends between the two stops
// bracketing the pixel's angle. Doubled stops (uniform mode) make the blend
// span zero, producing a hard edge. Output is premultiplied.
const sweepGradientShaderSrc = `//kage:unit pixels
package main

var Center vec2
var Rotation float
var StopCount float
var StopPositions [16]float
var StopColors [16]vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := dst.xy - imageDstOrigin() - Center
	angle := atan2(p.y, p.x) - Rotation
	t := fract(angle / 6.283185307179586)

	n := int(StopCount)
	c := StopColors[0]
	for i := 0; i < 15; i++ {
		if i+1 < n {
			p0 := StopPositions[i]
			p1 := StopPositions[i+1]
			if t >= p1 {
				c = StopColors[i+1]
			} else if t >= p0 && p1 > p0 {
				c = mix(StopColors[i], StopColors[i+1], (t-p0)/(p1-p0))
			}
		}
	}
	return vec4(c.rgb*c.a, c.a) * color.a
}
`

var sweepGradientShader *ebiten.Shader

func ensureSweepGradientShader() *ebiten.Shader {
	if sweepGradientShader == nil {
		s, err := ebiten.NewShader([]byte(sweepGradientShaderSrc))
		if err != nil {
			panic("glint: failed to compile sweep gradient shader: " + err.Error())
		}
		sweepGradientShader = s
	}
	return sweepGradientShader
}

// sweepUniforms holds the persistent uniform bundle for one sweep gradient
// draw site. Values are written in place; nothing reallocates per frame.
type sweepUniforms struct {
	uniforms  map[string]any
	center    [2]float32
	positions [maxSweepStops]float32
	colors    [maxSweepStops * 4]float32
}

func newSweepUniforms() *sweepUniforms {
	u := &sweepUniforms{uniforms: make(map[string]any, 5)}
	u.uniforms["Center"] = u.center[:]
	u.uniforms["StopPositions"] = u.positions[:]
	u.uniforms["StopColors"] = u.colors[:]
	return u
}

// set writes the center, rotation (radians), and stop list into the bundle.
func (u *sweepUniforms) set(cx, cy, rotation float64, stops []ColorStop) {
	if len(stops) > maxSweepStops {
		stops = stops[:maxSweepStops]
	}
	u.center[0] = float32(cx)
	u.center[1] = float32(cy)
	for i, s := range stops {
		u.positions[i] = float32(s.Position)
		u.colors[i*4+0] = float32(s.Color.R)
		u.colors[i*4+1] = float32(s.Color.G)
		u.colors[i*4+2] = float32(s.Color.B)
		u.colors[i*4+3] = float32(s.Color.A)
	}
	u.uniforms["Rotation"] = float32(rotation)
	u.uniforms["StopCount"] = float32(len(stops))
}
