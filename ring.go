package glint

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ring geometry: the boolean difference of an outer rounded rectangle and
// an inset inner rounded rectangle, producing a hollow border region. The
// construction is stateless and cached against its four inputs.

// arcSegments is the number of line segments used to flatten each quarter
// corner arc.
const arcSegments = 8

// RingGeometry fully determines a ring: the outer rounded rectangle at
// (0, 0, Width, Height, BorderRadius) and an inner rectangle inset by
// StrokeWidth on all sides with innerRadius = max(0, BorderRadius −
// StrokeWidth).
type RingGeometry struct {
	Width        float64
	Height       float64
	BorderRadius float64
	StrokeWidth  float64
}

// normalized clamps degenerate inputs: StrokeWidth to half the smaller
// dimension (so the inner rectangle can never go negative) and BorderRadius
// likewise. Negative inputs clamp to zero.
func (g RingGeometry) normalized() RingGeometry {
	half := math.Min(g.Width, g.Height) / 2
	g.StrokeWidth = clamp(g.StrokeWidth, 0, half)
	g.BorderRadius = clamp(g.BorderRadius, 0, half)
	return g
}

// OuterRect returns the outer rectangle (always anchored at the origin).
func (g RingGeometry) OuterRect() Rect {
	return Rect{X: 0, Y: 0, Width: g.Width, Height: g.Height}
}

// InnerRect returns the inner rectangle, inset by StrokeWidth on all sides.
func (g RingGeometry) InnerRect() Rect {
	n := g.normalized()
	return Rect{
		X:      n.StrokeWidth,
		Y:      n.StrokeWidth,
		Width:  n.Width - 2*n.StrokeWidth,
		Height: n.Height - 2*n.StrokeWidth,
	}
}

// InnerRadius returns the corner radius of the inner rectangle:
// max(0, BorderRadius − StrokeWidth).
func (g RingGeometry) InnerRadius() float64 {
	n := g.normalized()
	return math.Max(0, n.BorderRadius-n.StrokeWidth)
}

// Center returns the ring's centroid, the sweep gradient center.
func (g RingGeometry) Center() Vec2 {
	return Vec2{X: g.Width / 2, Y: g.Height / 2}
}

// appendRoundedRect appends the clockwise contour of a rounded rectangle to
// dst as a flattened polyline. The corner radius is clamped to half the
// smaller dimension.
func appendRoundedRect(dst []Vec2, r Rect, radius float64) []Vec2 {
	radius = clamp(radius, 0, math.Min(r.Width, r.Height)/2)
	if radius == 0 {
		return append(dst,
			Vec2{r.X, r.Y},
			Vec2{r.X + r.Width, r.Y},
			Vec2{r.X + r.Width, r.Y + r.Height},
			Vec2{r.X, r.Y + r.Height},
		)
	}

	// Corner arc centers, visited clockwise from the top-left.
	type corner struct {
		cx, cy, startAngle float64
	}
	corners := [4]corner{
		{r.X + r.Width - radius, r.Y + radius, -math.Pi / 2}, // top-right
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0}, // bottom-right
		{r.X + radius, r.Y + r.Height - radius, math.Pi / 2}, // bottom-left
		{r.X + radius, r.Y + radius, math.Pi},                // top-left
	}
	for _, c := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := c.startAngle + math.Pi/2*float64(i)/arcSegments
			dst = append(dst, Vec2{
				X: c.cx + radius*math.Cos(a),
				Y: c.cy + radius*math.Sin(a),
			})
		}
	}
	return dst
}

// contourBounds returns the axis-aligned bounding box of a point contour.
func contourBounds(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// contours returns the flattened outer and inner rounded-rect outlines.
// A fully collapsed inner rectangle yields a nil inner contour and the ring
// degenerates to a filled rounded rectangle.
func (g RingGeometry) contours() (outer, inner []Vec2) {
	n := g.normalized()
	outer = appendRoundedRect(nil, n.OuterRect(), n.BorderRadius)
	ir := n.InnerRect()
	if n.StrokeWidth <= 0 || ir.Width <= 0 || ir.Height <= 0 {
		return outer, nil
	}
	inner = appendRoundedRect(nil, ir, n.InnerRadius())
	return outer, inner
}

// ringMesh caches the tessellated ring triangles for one geometry. The two
// contours are appended as subpaths and filled even-odd, which subtracts
// the inner region from the outer.
type ringMesh struct {
	geo     RingGeometry
	valid   bool
	verts   []ebiten.Vertex
	indices []uint16
	bounds  Rect
}

// ensure rebuilds the mesh if the geometry changed since the last build.
func (m *ringMesh) ensure(geo RingGeometry) {
	geo = geo.normalized()
	if m.valid && m.geo == geo {
		return
	}
	m.geo = geo
	m.valid = true

	outer, inner := geo.contours()
	m.bounds = contourBounds(outer)

	var path vector.Path
	appendContour(&path, outer)
	if inner != nil {
		appendContour(&path, inner)
	}

	m.verts, m.indices = path.AppendVerticesAndIndicesForFilling(m.verts[:0], m.indices[:0])
	// Vertex colors act as a multiplier in the gradient shader; reset them
	// to opaque white and leave Src coordinates at zero (no source image).
	for i := range m.verts {
		m.verts[i].ColorR = 1
		m.verts[i].ColorG = 1
		m.verts[i].ColorB = 1
		m.verts[i].ColorA = 1
	}
}

// appendContour adds a closed polyline subpath to the vector path.
func appendContour(path *vector.Path, pts []Vec2) {
	if len(pts) == 0 {
		return
	}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
}
