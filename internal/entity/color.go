package entity

import "slices"

type Color string

const (
	ColorOrange Color = "#FF5733"
	ColorGreen  Color = "#33FF57"
	ColorBlue   Color = "#3357FF"
	ColorPink   Color = "#FF33A1"
	ColorGold   Color = "#FFD700"
	ColorViolet Color = "#8A2BE2"

	NoColor Color = ""
)

// Palette is the fixed set of colors a hex can take.
var Palette = []Color{ColorOrange, ColorGreen, ColorBlue, ColorPink, ColorGold, ColorViolet}

func (that Color) IsValid() bool {
	return slices.Contains(Palette, that)
}
