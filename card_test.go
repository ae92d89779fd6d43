package glint

import (
	"testing"
)

// Card tests run against the animation state only; faces stay nil so no
// rendering happens.

// --- FlipCard ---

func TestFlipCardInitialState(t *testing.T) {
	f := NewFlipCard(nil, nil, 100, 60)
	assertNear(t, "progress", f.Progress(), 0)
	if f.ShowingBack() {
		t.Error("new card must show the front")
	}
	if f.Flipping() {
		t.Error("new card must not be flipping")
	}
	assertNear(t, "faceScale", f.faceScale(), 1)
}

func TestFlipCardCompletes(t *testing.T) {
	f := NewFlipCard(nil, nil, 100, 60)
	f.Flip()
	if !f.Flipping() {
		t.Fatal("Flip did not start the animation")
	}
	f.Update(1)
	assertNear(t, "progress", f.Progress(), 1)
	if !f.ShowingBack() {
		t.Error("completed flip must show the back")
	}
	if f.Flipping() {
		t.Error("completed flip must stop animating")
	}
	assertNearTol(t, "faceScale", f.faceScale(), 1, 1e-6)
}

func TestFlipCardMidpointEdgeOn(t *testing.T) {
	f := NewFlipCard(nil, nil, 100, 60)
	f.Flip()
	f.Update(0.3)
	// Half the duration with a symmetric easing lands at the midpoint,
	// where the card is edge-on.
	assertNearTol(t, "progress", f.Progress(), 0.5, 0.01)
	assertNearTol(t, "faceScale", f.faceScale(), 0, 0.04)
}

func TestFlipCardReversesMidFlip(t *testing.T) {
	f := NewFlipCard(nil, nil, 100, 60)
	f.Flip()
	for f.Progress() <= 0.6 {
		f.Update(0.02)
	}
	mid := f.Progress()

	// Past the midpoint the visible face is the back, so flipping again
	// heads home to the front from wherever we are.
	f.Flip()
	f.Update(0.02)
	if f.Progress() >= mid {
		t.Fatalf("progress did not reverse: %v >= %v", f.Progress(), mid)
	}
	f.Update(1)
	assertNear(t, "progress", f.Progress(), 0)
	if f.ShowingBack() {
		t.Error("reversed flip must end on the front")
	}
}

func TestFlipCardRepeatedFlipKeepsDirection(t *testing.T) {
	// Before the midpoint the visible face is still the front, so a second
	// Flip keeps heading toward the back.
	f := NewFlipCard(nil, nil, 100, 60)
	f.Flip()
	f.Update(0.1)
	early := f.Progress()
	f.Flip()
	f.Update(1)
	if f.Progress() <= early {
		t.Fatalf("second flip reversed direction from %v", early)
	}
	assertNear(t, "progress", f.Progress(), 1)
}

// --- ExpandCard ---

func TestExpandCardInitialState(t *testing.T) {
	collapsed := Rect{X: 10, Y: 10, Width: 80, Height: 60}
	expanded := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	e := NewExpandCard(nil, collapsed, expanded)

	if e.IsExpanded() {
		t.Error("new card must start collapsed")
	}
	if e.Bounds() != collapsed {
		t.Errorf("Bounds() = %+v, want collapsed %+v", e.Bounds(), collapsed)
	}
}

func TestExpandCardBoundsLerp(t *testing.T) {
	e := NewExpandCard(nil,
		Rect{X: 10, Y: 20, Width: 80, Height: 60},
		Rect{X: 0, Y: 0, Width: 200, Height: 160},
	)
	e.progress = 0.5
	b := e.Bounds()
	assertNear(t, "X", b.X, 5)
	assertNear(t, "Y", b.Y, 10)
	assertNear(t, "Width", b.Width, 140)
	assertNear(t, "Height", b.Height, 110)
}

func TestExpandCardToggleRoundTrip(t *testing.T) {
	collapsed := Rect{X: 10, Y: 10, Width: 80, Height: 60}
	expanded := Rect{X: 0, Y: 0, Width: 200, Height: 150}
	e := NewExpandCard(nil, collapsed, expanded)

	e.Toggle()
	e.Update(1)
	if !e.IsExpanded() {
		t.Fatal("card did not expand")
	}
	if e.Bounds() != expanded {
		t.Errorf("Bounds() = %+v, want expanded %+v", e.Bounds(), expanded)
	}

	e.Toggle()
	e.Update(1)
	if e.IsExpanded() {
		t.Fatal("card did not collapse")
	}
	if e.Bounds() != collapsed {
		t.Errorf("Bounds() = %+v, want collapsed %+v", e.Bounds(), collapsed)
	}
}
