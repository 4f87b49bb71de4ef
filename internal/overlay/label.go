package overlay

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// run is a horizontal span of lit font pixels.
type run struct {
	x, y, w int
}

// glyphRuns rasterizes text with the 7x13 bitmap font and merges lit pixels
// into horizontal runs.
func glyphRuns(text string) []run {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width == 0 {
		return nil
	}
	m := face.Metrics()
	height := m.Height.Ceil()

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)

	var runs []run
	for y := 0; y < height; y++ {
		start := -1
		for x := 0; x <= width; x++ {
			lit := x < width && img.AlphaAt(x, y).A >= 0x80
			switch {
			case lit && start < 0:
				start = x
			case !lit && start >= 0:
				runs = append(runs, run{start, y, x - start})
				start = -1
			}
		}
	}
	return runs
}

// labels caches glyph runs per string.
type labels map[string][]run

func (l labels) draw(p Painter, text string, x, y, scale float32, c Color) {
	runs, ok := l[text]
	if !ok {
		runs = glyphRuns(text)
		l[text] = runs
	}
	for _, r := range runs {
		p.FillRect(x+float32(r.x)*scale, y+float32(r.y)*scale, float32(r.w)*scale, scale, c)
	}
}

// LabelSize returns the drawn size of text at scale.
func LabelSize(text string, scale float32) (w, h float32) {
	face := basicfont.Face7x13
	return float32(font.MeasureString(face, text).Ceil()) * scale, float32(face.Metrics().Height.Ceil()) * scale
}
