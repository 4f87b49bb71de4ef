package wave

import "testing"

func TestNewPlaneVertexCount(t *testing.T) {
	tests := []struct {
		segX, segY int
		want       int
	}{
		{1, 1, 4},
		{2, 3, 12},
		{100, 100, 101 * 101},
	}

	for _, tt := range tests {
		g := NewPlane(10, 10, tt.segX, tt.segY)
		if got := g.Count(); got != tt.want {
			t.Errorf("NewPlane(%d, %d).Count() = %d, want %d", tt.segX, tt.segY, got, tt.want)
		}
	}
}

func TestNewPlaneLayout(t *testing.T) {
	g := NewPlane(2000, 2000, 100, 100)

	// First vertex is the top-left corner.
	if g.X(0) != -1000 || g.Y(0) != 1000 || g.Z(0) != 0 {
		t.Errorf("vertex 0 = (%v, %v, %v), want (-1000, 1000, 0)", g.X(0), g.Y(0), g.Z(0))
	}

	// Last vertex is the bottom-right corner.
	last := g.Count() - 1
	if g.X(last) != 1000 || g.Y(last) != -1000 {
		t.Errorf("last vertex = (%v, %v), want (1000, -1000)", g.X(last), g.Y(last))
	}

	// Row-major: vertex 1 is one segment to the right.
	if g.X(1) != -980 || g.Y(1) != 1000 {
		t.Errorf("vertex 1 = (%v, %v), want (-980, 1000)", g.X(1), g.Y(1))
	}

	center := 50*101 + 50
	if g.X(center) != 0 || g.Y(center) != 0 {
		t.Errorf("center vertex = (%v, %v), want (0, 0)", g.X(center), g.Y(center))
	}
}

func TestNewPlaneEdgesAreUnique(t *testing.T) {
	g := NewPlane(4, 4, 3, 2)

	want := (3*2*3 + 3 + 2) * 2
	if len(g.Edges) != want {
		t.Fatalf("len(Edges) = %d, want %d", len(g.Edges), want)
	}

	seen := make(map[[2]uint32]bool)
	for i := 0; i < len(g.Edges); i += 2 {
		a, b := g.Edges[i], g.Edges[i+1]
		if a > b {
			a, b = b, a
		}
		key := [2]uint32{a, b}
		if seen[key] {
			t.Errorf("duplicate edge %v", key)
		}
		seen[key] = true
		if int(b) >= g.Count() {
			t.Errorf("edge %v references vertex out of range", key)
		}
	}

	// Every triangle side must be drawn.
	for i := 0; i < len(g.Triangles); i += 3 {
		tri := g.Triangles[i : i+3]
		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			if !seen[[2]uint32{a, b}] {
				t.Errorf("triangle side (%d, %d) missing from wireframe", a, b)
			}
		}
	}
}

func TestNewPlaneClampsSegments(t *testing.T) {
	g := NewPlane(1, 1, 0, -3)
	if g.SegmentsX != 1 || g.SegmentsY != 1 || g.Count() != 4 {
		t.Errorf("expected a single cell, got %dx%d with %d vertices", g.SegmentsX, g.SegmentsY, g.Count())
	}
}

func TestMarkDirty(t *testing.T) {
	g := NewPlane(1, 1, 1, 1)
	v := g.Version()
	g.MarkDirty()
	if g.Version() != v+1 {
		t.Errorf("Version() = %d after MarkDirty, want %d", g.Version(), v+1)
	}
}
