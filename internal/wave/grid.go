// Package wave holds the tessellated surface and the ripple that moves it.
package wave

// Grid is a flat tessellated surface. Planar coordinates are fixed when the grid
// is built; only depth (z) changes afterwards.
type Grid struct {
	// Positions is a flat x,y,z array, one triplet per vertex, in row-major order
	// starting at the top-left corner.
	Positions []float32

	// Edges lists wireframe line segments as vertex index pairs.
	Edges []uint32

	// Triangles lists two triangles per cell as vertex index triplets.
	Triangles []uint32

	SegmentsX, SegmentsY int

	version uint64
}

// NewPlane tessellates a width x height plane centred on the origin into
// segX x segY cells lying in the XY plane.
func NewPlane(width, height float32, segX, segY int) *Grid {
	if segX < 1 {
		segX = 1
	}
	if segY < 1 {
		segY = 1
	}

	cols := segX + 1
	rows := segY + 1
	segW := width / float32(segX)
	segH := height / float32(segY)
	halfW := width / 2
	halfH := height / 2

	g := &Grid{
		Positions: make([]float32, 0, cols*rows*3),
		Edges:     make([]uint32, 0, (segX*segY*3+segX+segY)*2),
		Triangles: make([]uint32, 0, segX*segY*6),
		SegmentsX: segX,
		SegmentsY: segY,
	}

	for iy := 0; iy < rows; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*segW - halfW
			g.Positions = append(g.Positions, x, -y, 0)
		}
	}

	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)

			g.Triangles = append(g.Triangles, a, b, d, b, c, d)

			// Each cell owns its top, left and diagonal edge; the last column and
			// row close the right and bottom borders.
			g.Edges = append(g.Edges, a, d, a, b, b, d)
			if ix == segX-1 {
				g.Edges = append(g.Edges, d, c)
			}
			if iy == segY-1 {
				g.Edges = append(g.Edges, b, c)
			}
		}
	}

	return g
}

// Count returns the number of vertices.
func (g *Grid) Count() int {
	return len(g.Positions) / 3
}

// X returns the planar x coordinate of vertex i.
func (g *Grid) X(i int) float32 { return g.Positions[i*3] }

// Y returns the planar y coordinate of vertex i.
func (g *Grid) Y(i int) float32 { return g.Positions[i*3+1] }

// Z returns the depth of vertex i.
func (g *Grid) Z(i int) float32 { return g.Positions[i*3+2] }

// SetZ sets the depth of vertex i.
func (g *Grid) SetZ(i int, z float32) { g.Positions[i*3+2] = z }

// MarkDirty records that Positions changed since the last upload.
func (g *Grid) MarkDirty() { g.version++ }

// Version increases every time the grid is marked dirty. Renderers compare it
// with the version they last uploaded.
func (g *Grid) Version() uint64 { return g.version }
