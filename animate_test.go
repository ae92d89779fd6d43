package glint

import (
	"testing"
)

// --- Rotation ---

func TestRotationDriverAdvances(t *testing.T) {
	r := NewRotationDriver(90)
	r.Update(1)
	assertNear(t, "angle", r.Angle(), 90)
	if r.Turns != 0 {
		t.Errorf("Turns = %d, want 0", r.Turns)
	}
}

func TestRotationDriverWraps(t *testing.T) {
	r := NewRotationDriver(90)
	r.Update(4.5)
	assertNearTol(t, "angle", r.Angle(), 45, 1e-9)
	if r.Turns != 1 {
		t.Errorf("Turns = %d, want 1", r.Turns)
	}
}

func TestRotationDriverNegativeSpeed(t *testing.T) {
	r := NewRotationDriver(-90)
	r.Update(1)
	assertNear(t, "angle", r.Angle(), 270)
	if r.Turns != 1 {
		t.Errorf("Turns = %d, want 1", r.Turns)
	}
	if a := r.Angle(); a < 0 || a >= 360 {
		t.Errorf("angle %v outside [0, 360)", a)
	}
}

func TestRotationDriverManySmallSteps(t *testing.T) {
	r := NewRotationDriver(360)
	for i := 0; i < 600; i++ {
		r.Update(1.0 / 60)
		if a := r.Angle(); a < 0 || a >= 360 {
			t.Fatalf("angle %v outside [0, 360) after step %d", a, i)
		}
	}
	if r.Turns < 9 {
		t.Errorf("Turns = %d after 10 seconds at 360 deg/s", r.Turns)
	}
}

// --- Pulse ---

func TestPulseDriverStaysInBounds(t *testing.T) {
	p := NewPulseDriver(0.3, 0.9, 2)
	for i := 0; i < 500; i++ {
		p.Update(1.0 / 60)
		if v := p.Value(); v < 0.3-1e-6 || v > 0.9+1e-6 {
			t.Fatalf("value %v outside [0.3, 0.9] at step %d", v, i)
		}
	}
}

func TestPulseDriverHalfwayUp(t *testing.T) {
	// Quarter period is the midpoint of the rising half.
	p := NewPulseDriver(0.3, 0.9, 2)
	p.Update(0.5)
	assertNearTol(t, "value", p.Value(), 0.6, 1e-3)
}

func TestPulseDriverReturnsToMin(t *testing.T) {
	p := NewPulseDriver(0.3, 0.9, 2)
	rose := false
	for i := 0; i < 120; i++ {
		p.Update(1.0 / 60)
		if p.Value() > 0.85 {
			rose = true
		}
	}
	if !rose {
		t.Fatal("pulse never approached max during one period")
	}
	assertNearTol(t, "value after full period", p.Value(), 0.3, 0.02)
}

// --- Quantize ---

func TestQuantize(t *testing.T) {
	tests := []struct {
		progress float64
		steps    int
		want     float64
	}{
		{0.37, 0, 0.37},
		{0.37, 1, 0.37},
		{0, 4, 0},
		{0.1, 4, 0},
		{0.26, 4, 0.25},
		{0.5, 4, 0.5},
		{0.74, 4, 0.5},
		{0.99, 4, 0.75},
		{1, 4, 1},
		{1.5, 4, 1},
		{-0.5, 4, 0},
	}
	for _, tt := range tests {
		assertNear(t, "Quantize", Quantize(tt.progress, tt.steps), tt.want)
	}
}
