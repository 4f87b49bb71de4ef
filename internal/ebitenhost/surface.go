package ebitenhost

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Faultbox/wavebg/internal/engine/camera"
	"github.com/Faultbox/wavebg/internal/engine/vecrender"
	"github.com/Faultbox/wavebg/internal/overlay"
	"github.com/Faultbox/wavebg/internal/scene"
)

// Surface projects the mesh on Render and strokes the result on Draw.
// It implements scene.Surface.
type Surface struct {
	width, height int
	ratio         float64
	antialias     bool

	projector vecrender.Projector
	segments  []vecrender.Segment
	stroke    color.NRGBA
}

// NewSurface creates an empty surface.
func NewSurface(antialias bool) *Surface {
	return &Surface{ratio: 1, antialias: antialias}
}

// SetSize sets the logical size the mesh is projected into.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetPixelRatio sets the device scale factor used for the stroke width.
func (s *Surface) SetPixelRatio(ratio float64) {
	if ratio > 0 {
		s.ratio = ratio
	}
}

// Render projects every edge of mesh through cam.
func (s *Surface) Render(mesh *scene.Mesh, cam *camera.PerspectiveCamera) error {
	if mesh == nil || mesh.Grid == nil {
		return errors.New("render: no mesh")
	}

	mvp := cam.ViewProjection().Mul(mesh.Model)
	g := mesh.Grid
	edges := g.Edges
	if !mesh.Material.Wireframe {
		edges = triangleEdges(g.Triangles)
	}
	s.segments = s.projector.Project(mvp, g.Positions, edges, float32(s.width), float32(s.height))

	alpha := float32(1)
	if mesh.Material.Transparent {
		alpha = mesh.Material.Opacity
	}
	c := mesh.Material.Color
	s.stroke = toNRGBA(overlay.Color{R: c.R, G: c.G, B: c.B, A: alpha})
	return nil
}

// Segments returns the edges projected by the last Render.
func (s *Surface) Segments() []vecrender.Segment {
	return s.segments
}

// Draw strokes the last projection onto dst.
func (s *Surface) Draw(dst *ebiten.Image) {
	w := float32(s.ratio)
	for _, seg := range s.segments {
		vector.StrokeLine(dst, seg.X0, seg.Y0, seg.X1, seg.Y1, w, s.stroke, s.antialias)
	}
}

// triangleEdges outlines each triangle; shared edges are drawn twice.
func triangleEdges(tris []uint32) []uint32 {
	out := make([]uint32, 0, len(tris)*2)
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		out = append(out, a, b, b, c, c, a)
	}
	return out
}

// painter fills overlay rectangles on an ebiten image.
type painter struct {
	dst *ebiten.Image
}

func (p painter) FillRect(x, y, w, h float32, c overlay.Color) {
	vector.DrawFilledRect(p.dst, x, y, w, h, toNRGBA(c), false)
}

func toNRGBA(c overlay.Color) color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
