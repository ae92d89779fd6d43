package glint

import (
	"testing"
	"time"
)

// fakeTilt counts how often it is polled.
type fakeTilt struct {
	roll, pitch float64
	polls       int
}

func (f *fakeTilt) Tilt() (float64, float64) {
	f.polls++
	return f.roll, f.pitch
}

func TestPolledTiltIntervalGating(t *testing.T) {
	src := &fakeTilt{}
	p := &PolledTilt{Source: src, Interval: 10 * time.Millisecond}

	p.Update(0.005)
	if src.polls != 0 {
		t.Errorf("polled %d times before the interval elapsed", src.polls)
	}
	p.Update(0.005)
	if src.polls != 1 {
		t.Errorf("polls = %d after one full interval, want 1", src.polls)
	}

	// A long frame drains multiple intervals.
	p.Update(0.055)
	if src.polls != 6 {
		t.Errorf("polls = %d after 55ms more, want 6", src.polls)
	}
}

func TestPolledTiltFirstSampleSnaps(t *testing.T) {
	src := &fakeTilt{roll: 0.7, pitch: -0.4}
	p := &PolledTilt{Source: src, Interval: 10 * time.Millisecond}

	p.Update(0.01)
	v := p.Value()
	assertNearTol(t, "roll", v.X, 0.7, 1e-9)
	assertNearTol(t, "pitch", v.Y, -0.4, 1e-9)
}

func TestPolledTiltClampsSource(t *testing.T) {
	src := &fakeTilt{roll: 3, pitch: -2}
	p := &PolledTilt{Source: src, Interval: 10 * time.Millisecond}

	p.Update(0.01)
	v := p.Value()
	assertNear(t, "roll clamped", v.X, 1)
	assertNear(t, "pitch clamped", v.Y, -1)
}

func TestPolledTiltSmoothsTowardNewTarget(t *testing.T) {
	src := &fakeTilt{roll: 0, pitch: 0}
	p := NewPolledTilt(src)
	p.Update(0.016)

	src.roll = 1
	prev := p.Value().X
	for i := 0; i < 5; i++ {
		p.Update(0.016)
		cur := p.Value().X
		if cur <= prev {
			t.Fatalf("value not approaching target at step %d: %v <= %v", i, cur, prev)
		}
		if cur > 1 {
			t.Fatalf("value overshot target: %v", cur)
		}
		prev = cur
	}
	// It approaches but does not teleport.
	if prev > 0.99 {
		t.Errorf("smoothing too aggressive: reached %v in 5 frames", prev)
	}

	for i := 0; i < 200; i++ {
		p.Update(0.016)
	}
	assertNearTol(t, "converged roll", p.Value().X, 1, 0.01)
}

func TestPolledTiltNilSource(t *testing.T) {
	p := &PolledTilt{}
	p.Update(1)
	if v := p.Value(); v != (Vec2{}) {
		t.Errorf("nil source produced %v, want zero", v)
	}
}

func TestConstantTilt(t *testing.T) {
	roll, pitch := ConstantTilt{X: 0.25, Y: -0.5}.Tilt()
	assertNear(t, "roll", roll, 0.25)
	assertNear(t, "pitch", pitch, -0.5)

	roll, pitch = ConstantTilt{X: 5, Y: -5}.Tilt()
	assertNear(t, "roll clamped", roll, 1)
	assertNear(t, "pitch clamped", pitch, -1)
}

func TestPointerTiltDegenerateWindow(t *testing.T) {
	roll, pitch := PointerTilt{}.Tilt()
	assertNear(t, "roll", roll, 0)
	assertNear(t, "pitch", pitch, 0)
}
