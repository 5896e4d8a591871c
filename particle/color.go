package particle

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette colors
var (
	Gold     = RGB{R: 0xc4, G: 0xa8, B: 0x82}
	OffWhite = RGB{R: 0xe8, G: 0xe0, B: 0xd4}
	DimGold  = RGB{R: 0x8c, G: 0x7a, B: 0x5d}
	Ink      = RGB{R: 0x0d, G: 0x0b, B: 0x09}
)

// DefaultPalette is the ember palette, one color is picked per particle
var DefaultPalette = []RGB{Gold, OffWhite}

// Lerp blends a toward b, t is clamped to [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}
