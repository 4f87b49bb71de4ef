package overlay

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Palette used by the page overlay.
var (
	ColorPanel       = Color{1, 1, 1, 0.06}
	ColorAccent      = Color{0.2, 0.6, 0.9, 0.8}
	ColorTrack       = Color{1, 1, 1, 0.12}
	ColorFill        = Color{0.2, 0.6, 0.9, 0.9}
	ColorScrollThumb = Color{1, 1, 1, 0.25}
	ColorText        = Color{1, 1, 1, 0.85}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Fade scales the alpha by f.
func (c Color) Fade(f float32) Color {
	return Color{c.R, c.G, c.B, c.A * f}
}
