package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/path-of-all-things/engine"
	"github.com/lixenwraith/path-of-all-things/particle"
)

// Palette in particle.RGB so content can be blended toward the background
var (
	RgbInk       = particle.Ink
	RgbGold      = particle.Gold
	RgbParchment = particle.OffWhite
	RgbDimGold   = particle.DimGold
	RgbMoss      = particle.RGB{R: 0x7d, G: 0x8c, B: 0x5f}
	RgbRust      = particle.RGB{R: 0xa8, G: 0x5a, B: 0x3c}
	RgbShadow    = particle.RGB{R: 0x1c, G: 0x18, B: 0x14}
	RgbFaint     = particle.RGB{R: 0x5a, G: 0x50, B: 0x44}
)

// Color converts a palette entry to a terminal color
func Color(c particle.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ToneColor maps a feedback tone to its color
func ToneColor(t engine.Tone) particle.RGB {
	switch t {
	case engine.ToneMoss:
		return RgbMoss
	case engine.ToneRust:
		return RgbRust
	default:
		return RgbParchment
	}
}
