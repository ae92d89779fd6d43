package glint

import (
	"testing"
)

func TestMetalPresetGold(t *testing.T) {
	c := GetMetalColors(MetalGold, nil)
	assertNear(t, "highlight.R", c.Highlight.R, 1.0)
	assertNear(t, "highlight.G", c.Highlight.G, 0.84)
	assertNear(t, "highlight.B", c.Highlight.B, 0.0)
	assertNear(t, "shadow.R", c.Shadow.R, 0.40)
	assertNear(t, "shadow.G", c.Shadow.G, 0.25)
	assertNear(t, "shadow.B", c.Shadow.B, 0.0)
}

func TestMetalCustomWithoutColorsFallsBackToSilver(t *testing.T) {
	got := GetMetalColors(MetalCustom, nil)
	if got != metalPresets[MetalSilver] {
		t.Errorf("custom without colors = %+v, want silver %+v", got, metalPresets[MetalSilver])
	}
}

func TestMetalCustomWithColors(t *testing.T) {
	want := MetalColors{Highlight: RGB{0.9, 0.1, 0.2}, Shadow: RGB{0.1, 0.0, 0.05}}
	if got := GetMetalColors(MetalCustom, &want); got != want {
		t.Errorf("custom = %+v, want %+v", got, want)
	}
}

func TestMetalUnknownFallsBackToSilver(t *testing.T) {
	if got := GetMetalColors("unobtanium", nil); got != metalPresets[MetalSilver] {
		t.Errorf("unknown metal = %+v, want silver", got)
	}
}

func TestMetalNamesComplete(t *testing.T) {
	names := MetalNames()
	if len(names) != 9 {
		t.Fatalf("len(MetalNames()) = %d, want 9", len(names))
	}
	for _, n := range names {
		if n == MetalCustom {
			t.Error("MetalNames must not include custom")
		}
		if _, ok := metalPresets[n]; !ok {
			t.Errorf("preset %q missing from table", n)
		}
	}
}

func TestMetalPresetChannelsNormalized(t *testing.T) {
	for name, c := range metalPresets {
		for _, v := range []float64{
			c.Highlight.R, c.Highlight.G, c.Highlight.B,
			c.Shadow.R, c.Shadow.G, c.Shadow.B,
		} {
			if v < 0 || v > 1 {
				t.Errorf("preset %q has channel %v outside [0, 1]", name, v)
			}
		}
	}
}
