package glint

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	css "github.com/mazznoer/csscolorparser"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ParseColor parses a CSS color string ("#F00", "#ff0000", "rgb(...)",
// named colors) into a Color.
func ParseColor(s string) (Color, error) {
	c, err := css.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}, nil
}

// MustParseColor is ParseColor for compile-time-known strings; it panics on
// malformed input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("glint: " + err.Error())
	}
	return c
}

// toRGBA converts to a premultiplied color.RGBA for ebiten.Image.Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Lerp linearly interpolates between c and other by t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: mix(c.R, other.R, t),
		G: mix(c.G, other.G, t),
		B: mix(c.B, other.B, t),
		A: mix(c.A, other.A, t),
	}
}

// RGB is an alpha-less color triple with components in [0, 1]. Used for the
// metal highlight/shadow presets, which are always opaque.
type RGB struct {
	R, G, B float64
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Shape selects the mask shape of the liquid metal surface.
type Shape uint8

const (
	ShapeFullFill  Shape = iota // edge rises near the rectangle border
	ShapeCircle                 // hard circular cutoff
	ShapeDaisy                  // six-lobed petal outline with animated wobble
	ShapeDiamond                // full-fill formula in a 45°-rotated frame
	ShapeMetaballs              // five orbiting blobs merged by threshold
)

// shapeCount is the size of the closed Shape set.
const shapeCount = 5

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeFullFill:
		return "full-fill"
	case ShapeCircle:
		return "circle"
	case ShapeDaisy:
		return "daisy"
	case ShapeDiamond:
		return "diamond"
	case ShapeMetaballs:
		return "metaballs"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Next returns the following shape, wrapping past the last one. Handy for
// cycling shapes in demos.
func (s Shape) Next() Shape {
	return (s + 1) % shapeCount
}

// uniform returns the float value handed to the shader's Shape uniform.
func (s Shape) uniform() float32 {
	if s >= shapeCount {
		return 0
	}
	return float32(s)
}

// ColorMode selects how gradient color stops are distributed around a sweep.
type ColorMode uint8

const (
	// ColorModeSmooth spreads the colors evenly and blends between them.
	ColorModeSmooth ColorMode = iota
	// ColorModeUniform gives each color a hard-edged equal arc segment.
	ColorModeUniform
)

// whitePixel is a 1x1 white image used for solid fills and as the mesh
// texture for geometry that carries its color in vertices. Created lazily
// so importing the package never touches the graphics backend.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
