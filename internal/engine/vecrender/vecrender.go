// Package vecrender projects the wireframe on the CPU into 2D line segments for
// hosts that draw with vector primitives instead of a GPU pipeline.
package vecrender

import (
	"github.com/Faultbox/wavebg/pkg/math"
)

// Segment is a line in screen pixels, origin top-left.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

type screenPoint struct {
	x, y    float32
	visible bool
	outcode uint8
}

const (
	outLeft uint8 = 1 << iota
	outRight
	outTop
	outBottom
)

// Projector converts grid edges to screen segments. It keeps scratch buffers
// between frames and is not safe for concurrent use.
type Projector struct {
	points   []screenPoint
	segments []Segment
}

// ToScreen projects p through mvp into a width x height viewport. ok is false
// for points behind the camera or outside the depth range.
func ToScreen(mvp math.Mat4, p math.Vec3, width, height float32) (x, y float32, ok bool) {
	ndc, ok := mvp.MulVec4(math.Point(p)).PerspectiveDivide()
	if !ok || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, false
	}
	return (ndc.X + 1) / 2 * width, (1 - ndc.Y) / 2 * height, true
}

// Project maps every edge of a position/edge list to a segment. Edges with an
// endpoint that cannot be projected, or with both endpoints beyond the same
// viewport side, are dropped. The returned slice is reused by the next call.
func (pr *Projector) Project(mvp math.Mat4, positions []float32, edges []uint32, width, height float32) []Segment {
	n := len(positions) / 3
	if cap(pr.points) < n {
		pr.points = make([]screenPoint, n)
	}
	pr.points = pr.points[:n]

	for i := range pr.points {
		p := math.Vec3{X: positions[i*3], Y: positions[i*3+1], Z: positions[i*3+2]}
		x, y, ok := ToScreen(mvp, p, width, height)
		pr.points[i] = screenPoint{x: x, y: y, visible: ok, outcode: outcode(x, y, width, height)}
	}

	pr.segments = pr.segments[:0]
	for i := 0; i+1 < len(edges); i += 2 {
		a, b := pr.points[edges[i]], pr.points[edges[i+1]]
		if !a.visible || !b.visible || a.outcode&b.outcode != 0 {
			continue
		}
		pr.segments = append(pr.segments, Segment{a.x, a.y, b.x, b.y})
	}
	return pr.segments
}

func outcode(x, y, width, height float32) uint8 {
	var c uint8
	if x < 0 {
		c |= outLeft
	} else if x > width {
		c |= outRight
	}
	if y < 0 {
		c |= outTop
	} else if y > height {
		c |= outBottom
	}
	return c
}
