package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/wavebg/internal/wave"
	"github.com/Faultbox/wavebg/pkg/math"
)

// Color is an RGB colour with components in 0..1.
type Color struct {
	R, G, B float32
}

// ParseHexColor parses "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: float32(v>>16&0xff) / 255,
		G: float32(v>>8&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// Material describes how a mesh is drawn.
type Material struct {
	Color       Color
	Opacity     float32
	Transparent bool
	Wireframe   bool
}

// Mesh is the surface grid with its material and model transform.
type Mesh struct {
	Grid     *wave.Grid
	Material Material
	Model    math.Mat4
}
