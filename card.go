package glint

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Card animation experiments: a two-face flip card and an expanding card.
// Both are tween-driven with no internal clock — call Update with the frame
// delta, then Draw.

// FlipCard flips between a front and back face by animating horizontal
// scale through zero. The visible face swaps at the flip midpoint, where
// the card is edge-on and has zero width.
type FlipCard struct {
	Front, Back   *ebiten.Image
	Width, Height float64
	Duration      float64        // seconds per flip; default 0.6
	Easing        ease.TweenFunc // default ease.InOutCubic

	progress float64 // 0 = front facing, 1 = back facing
	tween    *gween.Tween
	imgOp    ebiten.DrawImageOptions
}

// NewFlipCard creates a flip card showing the front face. The card is drawn
// at Width×Height regardless of the face image sizes.
func NewFlipCard(front, back *ebiten.Image, width, height float64) *FlipCard {
	return &FlipCard{
		Front:    front,
		Back:     back,
		Width:    width,
		Height:   height,
		Duration: 0.6,
		Easing:   ease.InOutCubic,
	}
}

// Flip starts animating toward the other face. Flipping mid-animation
// reverses from the current progress, so rapid toggling never jumps.
func (f *FlipCard) Flip() {
	target := 1.0
	if f.progress > 0.5 {
		target = 0
	}
	dur := f.Duration
	if dur <= 0 {
		dur = 0.6
	}
	fn := f.Easing
	if fn == nil {
		fn = ease.InOutCubic
	}
	// Scale duration by remaining distance so partial flips keep speed.
	dist := math.Abs(target - f.progress)
	f.tween = gween.New(float32(f.progress), float32(target), float32(dur*dist+1e-6), fn)
}

// Update advances the flip animation by dt seconds.
func (f *FlipCard) Update(dt float64) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(float32(dt))
	f.progress = float64(v)
	if done {
		f.tween = nil
	}
}

// Progress returns the flip progress: 0 front, 1 back.
func (f *FlipCard) Progress() float64 {
	return f.progress
}

// ShowingBack reports whether the back face is currently visible.
func (f *FlipCard) ShowingBack() bool {
	return f.progress > 0.5
}

// Flipping reports whether a flip animation is in progress.
func (f *FlipCard) Flipping() bool {
	return f.tween != nil
}

// faceScale returns the horizontal scale for the current progress:
// |cos(π·progress)|, reaching zero edge-on at the midpoint.
func (f *FlipCard) faceScale() float64 {
	return math.Abs(math.Cos(math.Pi * f.progress))
}

// Draw renders the card with its top-left corner at (x, y).
func (f *FlipCard) Draw(dst *ebiten.Image, x, y float64) {
	face := f.Front
	if f.ShowingBack() {
		face = f.Back
	}
	if face == nil {
		return
	}

	sx := f.faceScale()
	if sx <= 0 {
		return
	}
	fw := float64(face.Bounds().Dx())
	fh := float64(face.Bounds().Dy())

	op := &f.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.GeoM.Scale(f.Width/fw*sx, f.Height/fh)
	// Keep the card centered while it narrows.
	op.GeoM.Translate(x+f.Width*(1-sx)/2, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(face, op)
}

// ExpandCard animates a content image between a collapsed and an expanded
// rectangle.
type ExpandCard struct {
	Content   *ebiten.Image
	Collapsed Rect
	Expanded  Rect
	Duration  float64        // seconds; default 0.35
	Easing    ease.TweenFunc // default ease.OutCubic

	progress float64 // 0 = collapsed, 1 = expanded
	tween    *gween.Tween
	imgOp    ebiten.DrawImageOptions
}

// NewExpandCard creates an expand card in the collapsed state.
func NewExpandCard(content *ebiten.Image, collapsed, expanded Rect) *ExpandCard {
	return &ExpandCard{
		Content:   content,
		Collapsed: collapsed,
		Expanded:  expanded,
		Duration:  0.35,
		Easing:    ease.OutCubic,
	}
}

// Toggle starts animating toward the other state.
func (e *ExpandCard) Toggle() {
	target := 1.0
	if e.progress > 0.5 {
		target = 0
	}
	dur := e.Duration
	if dur <= 0 {
		dur = 0.35
	}
	fn := e.Easing
	if fn == nil {
		fn = ease.OutCubic
	}
	dist := math.Abs(target - e.progress)
	e.tween = gween.New(float32(e.progress), float32(target), float32(dur*dist+1e-6), fn)
}

// Update advances the expand animation by dt seconds.
func (e *ExpandCard) Update(dt float64) {
	if e.tween == nil {
		return
	}
	v, done := e.tween.Update(float32(dt))
	e.progress = float64(v)
	if done {
		e.tween = nil
	}
}

// Bounds returns the current interpolated rectangle.
func (e *ExpandCard) Bounds() Rect {
	t := e.progress
	return Rect{
		X:      mix(e.Collapsed.X, e.Expanded.X, t),
		Y:      mix(e.Collapsed.Y, e.Expanded.Y, t),
		Width:  mix(e.Collapsed.Width, e.Expanded.Width, t),
		Height: mix(e.Collapsed.Height, e.Expanded.Height, t),
	}
}

// Expanded reports whether the card is closer to the expanded state.
func (e *ExpandCard) IsExpanded() bool {
	return e.progress > 0.5
}

// Draw stretches the content into the current bounds.
func (e *ExpandCard) Draw(dst *ebiten.Image) {
	if e.Content == nil {
		return
	}
	r := e.Bounds()
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	cw := float64(e.Content.Bounds().Dx())
	ch := float64(e.Content.Bounds().Dy())

	op := &e.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.GeoM.Scale(r.Width/cw, r.Height/ch)
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(e.Content, op)
}
