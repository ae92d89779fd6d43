package glint

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Device tilt is just another per-frame input: a (roll, pitch) pair
// normalized to [-1, 1], polled at a configurable interval and smoothed so
// the shader never sees sensor jitter. No concurrency is involved — sources
// are sampled synchronously from the update loop.

// TiltSource yields the current device orientation. Roll is rotation about
// the long axis (left/right), pitch about the short axis (toward/away).
// Implementations must return values in [-1, 1]; PolledTilt clamps anyway.
type TiltSource interface {
	Tilt() (roll, pitch float64)
}

// defaultTiltInterval matches a 60Hz sensor feed.
const defaultTiltInterval = 16 * time.Millisecond

// PolledTilt samples a TiltSource at a fixed interval and exponentially
// smooths toward the latest sample. Zero-value Interval and Smoothing get
// defaults on first Update.
type PolledTilt struct {
	Source    TiltSource
	Interval  time.Duration // sampling period; default 16ms
	Smoothing float64       // fraction of remaining distance covered per second; default 10

	elapsed     float64
	target      Vec2
	value       Vec2
	everSampled bool
}

// NewPolledTilt creates a sampler with the default interval and smoothing.
func NewPolledTilt(source TiltSource) *PolledTilt {
	return &PolledTilt{Source: source}
}

// Update advances the sampler by dt seconds, re-polling the source whenever
// the interval elapses.
func (p *PolledTilt) Update(dt float64) {
	if p.Source == nil {
		return
	}
	if p.Interval <= 0 {
		p.Interval = defaultTiltInterval
	}
	if p.Smoothing <= 0 {
		p.Smoothing = 10
	}

	p.elapsed += dt
	interval := p.Interval.Seconds()
	for p.elapsed >= interval {
		p.elapsed -= interval
		roll, pitch := p.Source.Tilt()
		p.target = Vec2{X: clamp(roll, -1, 1), Y: clamp(pitch, -1, 1)}
		if !p.everSampled {
			// First sample snaps; smoothing from a stale zero would bend
			// the pattern visibly on startup.
			p.value = p.target
			p.everSampled = true
		}
	}

	f := clamp01(p.Smoothing * dt)
	p.value.X = mix(p.value.X, p.target.X, f)
	p.value.Y = mix(p.value.Y, p.target.Y, f)
}

// Value returns the smoothed (roll, pitch) pair.
func (p *PolledTilt) Value() Vec2 {
	return p.value
}

// PointerTilt derives a fake tilt from the cursor position, mapping the
// window interior to [-1, 1] on both axes. Stands in for a real orientation
// sensor on desktop.
type PointerTilt struct {
	Width, Height float64
}

// Tilt implements TiltSource.
func (p PointerTilt) Tilt() (roll, pitch float64) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, 0
	}
	x, y := ebiten.CursorPosition()
	roll = clamp(float64(x)/p.Width*2-1, -1, 1)
	pitch = clamp(float64(y)/p.Height*2-1, -1, 1)
	return roll, pitch
}

// ConstantTilt is a fixed-orientation source, useful in tests and for
// still renders.
type ConstantTilt Vec2

// Tilt implements TiltSource.
func (c ConstantTilt) Tilt() (roll, pitch float64) {
	return clamp(c.X, -1, 1), clamp(c.Y, -1, 1)
}
