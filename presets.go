package glint

import "log"

// MetalColors is a highlight/shadow pair defining the stripe palette of a
// liquid metal surface. Immutable once created.
type MetalColors struct {
	Highlight RGB
	Shadow    RGB
}

// MetalName identifies a built-in metal preset.
type MetalName string

const (
	MetalSilver   MetalName = "silver"
	MetalGold     MetalName = "gold"
	MetalCopper   MetalName = "copper"
	MetalBronze   MetalName = "bronze"
	MetalRoseGold MetalName = "rose-gold"
	MetalChrome   MetalName = "chrome"
	MetalSteel    MetalName = "steel"
	MetalTitanium MetalName = "titanium"
	MetalObsidian MetalName = "obsidian"

	// MetalCustom requires caller-supplied colors; see GetMetalColors.
	MetalCustom MetalName = "custom"
)

// metalPresets is the fixed preset table.
var metalPresets = map[MetalName]MetalColors{
	MetalSilver:   {Highlight: RGB{0.98, 0.98, 1.0}, Shadow: RGB{0.36, 0.38, 0.42}},
	MetalGold:     {Highlight: RGB{1.0, 0.84, 0.0}, Shadow: RGB{0.40, 0.25, 0.0}},
	MetalCopper:   {Highlight: RGB{0.96, 0.64, 0.38}, Shadow: RGB{0.41, 0.19, 0.10}},
	MetalBronze:   {Highlight: RGB{0.85, 0.63, 0.33}, Shadow: RGB{0.32, 0.20, 0.07}},
	MetalRoseGold: {Highlight: RGB{0.93, 0.70, 0.65}, Shadow: RGB{0.44, 0.23, 0.20}},
	MetalChrome:   {Highlight: RGB{1.0, 1.0, 1.0}, Shadow: RGB{0.22, 0.24, 0.28}},
	MetalSteel:    {Highlight: RGB{0.82, 0.85, 0.88}, Shadow: RGB{0.25, 0.28, 0.33}},
	MetalTitanium: {Highlight: RGB{0.76, 0.73, 0.69}, Shadow: RGB{0.28, 0.26, 0.24}},
	MetalObsidian: {Highlight: RGB{0.45, 0.45, 0.50}, Shadow: RGB{0.04, 0.04, 0.06}},
}

// MetalPreset returns the colors of a built-in preset. Unknown names fall
// back to silver.
func MetalPreset(name MetalName) MetalColors {
	if c, ok := metalPresets[name]; ok && name != MetalCustom {
		return c
	}
	return metalPresets[MetalSilver]
}

// GetMetalColors resolves a metal name to its colors. For MetalCustom the
// caller must supply the colors; a nil custom falls back to silver with a
// warning since rendering plain silver is better than rendering nothing.
func GetMetalColors(name MetalName, custom *MetalColors) MetalColors {
	if name == MetalCustom {
		if custom != nil {
			return *custom
		}
		log.Printf("glint: metal %q requested without custom colors; using silver", name)
		return metalPresets[MetalSilver]
	}
	if c, ok := metalPresets[name]; ok {
		return c
	}
	log.Printf("glint: unknown metal %q; using silver", name)
	return metalPresets[MetalSilver]
}

// MetalNames returns the built-in preset names (excluding "custom") in a
// stable order.
func MetalNames() []MetalName {
	return []MetalName{
		MetalSilver, MetalGold, MetalCopper, MetalBronze, MetalRoseGold,
		MetalChrome, MetalSteel, MetalTitanium, MetalObsidian,
	}
}
