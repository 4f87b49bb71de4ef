package ebitenhost

import (
	"image/color"
	"testing"

	"github.com/Faultbox/wavebg/internal/config"
	"github.com/Faultbox/wavebg/internal/overlay"
	"github.com/Faultbox/wavebg/internal/scene"
)

func TestToNRGBA(t *testing.T) {
	tests := []struct {
		in   overlay.Color
		want color.NRGBA
	}{
		{overlay.Color{R: 1, G: 0, B: 0, A: 1}, color.NRGBA{R: 255, A: 255}},
		{overlay.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.2}, color.NRGBA{R: 128, G: 128, B: 128, A: 51}},
		{overlay.Color{R: 2, G: -1, B: 0, A: 0}, color.NRGBA{R: 255}},
	}
	for _, tt := range tests {
		if got := toNRGBA(tt.in); got != tt.want {
			t.Errorf("toNRGBA(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestTriangleEdges(t *testing.T) {
	got := triangleEdges([]uint32{0, 1, 2, 1, 3, 2})
	want := []uint32{0, 1, 1, 2, 2, 0, 1, 3, 3, 2, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("got %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSurfaceRender(t *testing.T) {
	cfg := config.Default()
	cfg.Plane.Segments = 10

	s := NewSurface(false)
	ctx, err := scene.Init(cfg, scene.Viewport{Width: 800, Height: 600, PixelRatio: 2}, s)
	if err != nil {
		t.Fatal(err)
	}
	if s.width != 800 || s.height != 600 || s.ratio != 2 {
		t.Errorf("surface = %dx%d @%v", s.width, s.height, s.ratio)
	}

	if err := s.Render(ctx.Mesh, ctx.Camera); err != nil {
		t.Fatal(err)
	}
	if len(s.Segments()) == 0 {
		t.Error("no segments projected")
	}
	// #808080 at opacity 0.2
	want := color.NRGBA{R: 128, G: 128, B: 128, A: 51}
	if s.stroke != want {
		t.Errorf("stroke = %+v, want %+v", s.stroke, want)
	}

	if err := s.Render(nil, ctx.Camera); err == nil {
		t.Error("expected error for nil mesh")
	}
}
