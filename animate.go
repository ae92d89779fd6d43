package glint

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Per-frame animation drivers. There is no global animation manager — users
// call Update themselves each tick with the frame delta in seconds.

// RotationDriver advances an angle at a fixed speed, looping mod 360.
// The angle progresses monotonically within each loop; Turns counts
// completed revolutions so callers can still observe total progression.
type RotationDriver struct {
	Speed float64 // degrees per second; negative spins the other way

	angle float64
	Turns int
}

// NewRotationDriver creates a driver spinning at the given speed.
func NewRotationDriver(degreesPerSecond float64) *RotationDriver {
	return &RotationDriver{Speed: degreesPerSecond}
}

// Update advances the angle by dt seconds.
func (r *RotationDriver) Update(dt float64) {
	r.angle += r.Speed * dt
	for r.angle >= 360 {
		r.angle -= 360
		r.Turns++
	}
	for r.angle < 0 {
		r.angle += 360
		r.Turns++
	}
}

// Angle returns the current angle in [0, 360).
func (r *RotationDriver) Angle() float64 {
	return r.angle
}

// PulseDriver ping-pongs a value between Min and Max on a fixed period,
// easing in and out at the turnaround points. Used for the glow opacity
// pulse.
type PulseDriver struct {
	Min, Max float64

	seq   *gween.Sequence
	value float64
}

// NewPulseDriver creates a pulse oscillating between min and max over one
// full period (min → max → min) of the given duration in seconds.
func NewPulseDriver(min, max, period float64) *PulseDriver {
	half := float32(period / 2)
	seq := gween.NewSequence(
		gween.New(float32(min), float32(max), half, ease.InOutSine),
		gween.New(float32(max), float32(min), half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	return &PulseDriver{Min: min, Max: max, seq: seq, value: min}
}

// Update advances the pulse by dt seconds.
func (p *PulseDriver) Update(dt float64) {
	v, _, _ := p.seq.Update(float32(dt))
	p.value = float64(v)
}

// Value returns the current pulse value, always within [Min, Max].
func (p *PulseDriver) Value() float64 {
	return clamp(p.value, p.Min, p.Max)
}

// Quantize floors a [0,1] progress value into discrete steps, producing the
// deliberately "laggy" stepped motion of the kinetic text demos. steps <= 1
// returns progress unchanged. The final step still reaches exactly 1.
func Quantize(progress float64, steps int) float64 {
	if steps <= 1 {
		return progress
	}
	progress = clamp01(progress)
	return math.Floor(progress*float64(steps)) / float64(steps)
}
