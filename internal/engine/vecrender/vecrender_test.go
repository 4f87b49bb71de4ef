package vecrender

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/wavebg/internal/engine/camera"
	"github.com/Faultbox/wavebg/internal/wave"
	"github.com/Faultbox/wavebg/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

func TestToScreen(t *testing.T) {
	proj := math.Perspective(gomath.Pi/2, 1, 1, 100)

	tests := []struct {
		name   string
		p      math.Vec3
		wantX  float32
		wantY  float32
		wantOK bool
	}{
		{"center", math.Vec3{Z: -10}, 50, 50, true},
		{"right edge", math.Vec3{X: 10, Z: -10}, 100, 50, true},
		{"top edge", math.Vec3{Y: 10, Z: -10}, 50, 0, true},
		{"behind eye", math.Vec3{Z: 10}, 0, 0, false},
		{"beyond far", math.Vec3{Z: -200}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ToScreen(proj, tt.p, 100, 100)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (!near(x, tt.wantX) || !near(y, tt.wantY)) {
				t.Errorf("got (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProjectDropsHiddenEdges(t *testing.T) {
	proj := math.Perspective(gomath.Pi/2, 1, 1, 100)
	positions := []float32{
		0, 0, -10,   // 0: center
		5, 0, -10,   // 1: right of center
		0, 0, 10,    // 2: behind the eye
		-30, 0, -10, // 3: off the left side
		-40, 0, -10, // 4: further off the left side
	}
	edges := []uint32{
		0, 1,
		0, 2,
		3, 4,
		3, 1,
	}

	var pr Projector
	segs := pr.Project(proj, positions, edges, 100, 100)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(segs), segs)
	}
	if !near(segs[0].X0, 50) || !near(segs[0].X1, 75) {
		t.Errorf("first segment = %+v", segs[0])
	}
	if !near(segs[1].X0, -100) || !near(segs[1].X1, 75) {
		t.Errorf("crossing segment = %+v", segs[1])
	}
}

func TestProjectReusesBuffers(t *testing.T) {
	g := wave.NewPlane(2000, 2000, 8, 8)
	cam := camera.NewPerspectiveCamera(75, 16.0/9.0, 0.1, 1000)
	cam.Position = math.Vec3{Y: 10, Z: 100}
	cam.Pitch = -gomath.Pi / 8
	mvp := cam.ViewProjection().Mul(math.RotateX(-gomath.Pi / 2))

	var pr Projector
	first := pr.Project(mvp, g.Positions, g.Edges, 1280, 720)
	if len(first) == 0 {
		t.Fatal("no visible edges from the default camera")
	}
	if len(first) > len(g.Edges)/2 {
		t.Fatalf("%d segments from %d edges", len(first), len(g.Edges)/2)
	}

	second := pr.Project(mvp, g.Positions, g.Edges, 1280, 720)
	if len(second) != len(first) {
		t.Errorf("second pass gave %d segments, first %d", len(second), len(first))
	}
	if &second[0] != &first[0] {
		t.Error("segment buffer was reallocated")
	}
}
