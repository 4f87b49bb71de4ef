package host

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/wavebg/internal/config"
	"github.com/Faultbox/wavebg/internal/engine/camera"
	"github.com/Faultbox/wavebg/internal/engine/loop"
	"github.com/Faultbox/wavebg/internal/overlay"
	"github.com/Faultbox/wavebg/internal/reveal"
	"github.com/Faultbox/wavebg/internal/scene"
)

type nullSurface struct {
	renders int
	err     error
}

func (s *nullSurface) SetSize(width, height int) {}

func (s *nullSurface) Render(mesh *scene.Mesh, cam *camera.PerspectiveCamera) error {
	s.renders++
	return s.err
}

type countingPainter int

func (c *countingPainter) FillRect(x, y, w, h float32, col overlay.Color) { *c++ }

type stepClock struct{ t float64 }

func (c *stepClock) Now() float64 { return c.t }

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Plane.Segments = 4
	return cfg
}

func TestNewPageDefault(t *testing.T) {
	cfg := smallConfig()
	p, err := NewPage(cfg, 720)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}

	if !p.Controller.Revealed("home") {
		t.Error("home not revealed at startup")
	}
	if got, want := p.Source.Observed(), len(p.Doc.Sections)-1; got != want {
		t.Errorf("observed %d sections, want %d", got, want)
	}
}

func TestNewPageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	doc := `
sections:
  - id: home
    height: 500
  - id: skills
    height: 500
    children:
      - id: go
        class: progress-bar
        data:
          progress: "60"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := smallConfig()
	cfg.Reveal.PageFile = path
	p, err := NewPage(cfg, 500)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}

	p.Scroll(500 / cfg.Reveal.ScrollStep)
	p.Update(0)

	if !p.Controller.Revealed("skills") {
		t.Fatal("skills not revealed after scrolling to it")
	}
	bar := p.Doc.QueryClass("progress-bar")[0]
	if bar.Style.WidthCSS() != "60%" {
		t.Errorf("bar width = %q, want 60%%", bar.Style.WidthCSS())
	}
}

func TestNewPageErrors(t *testing.T) {
	cfg := smallConfig()
	cfg.Reveal.PageFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := NewPage(cfg, 720); err == nil {
		t.Error("expected error for missing page file")
	}

	cfg = smallConfig()
	cfg.Progress.Easing = "bounce-around"
	if _, err := NewPage(cfg, 720); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestPageResizeAndDraw(t *testing.T) {
	p, err := NewPage(smallConfig(), 720)
	if err != nil {
		t.Fatal(err)
	}

	p.Resize(0)
	if got := p.Source.ViewportHeight(); got != 720 {
		t.Errorf("zero resize changed height to %v", got)
	}
	p.Resize(900)
	if got := p.Source.ViewportHeight(); got != 900 {
		t.Errorf("viewport height = %v, want 900", got)
	}

	// let the home fade finish
	p.Update(1)
	var c countingPainter
	p.Draw(&c, 1280, 900)
	if c == 0 {
		t.Error("nothing drawn")
	}
}

func TestNewSceneNoSurface(t *testing.T) {
	_, _, err := NewScene(smallConfig(), scene.Viewport{Width: 800, Height: 600}, nil)
	if !errors.Is(err, scene.ErrNoSurface) {
		t.Errorf("err = %v, want ErrNoSurface", err)
	}
}

func TestFrameTick(t *testing.T) {
	cfg := smallConfig()
	cfg.Reveal.Fade = time.Second

	surface := &nullSurface{}
	_, anim, err := NewScene(cfg, scene.Viewport{Width: 800, Height: 600}, surface)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPage(cfg, 600)
	if err != nil {
		t.Fatal(err)
	}

	clock := &stepClock{t: 5}
	sched := loop.New(clock, FrameTick(p, anim))

	home := p.Doc.Section("home")
	if err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if a := p.Overlay.Alpha(home); a != 0 {
		t.Errorf("first frame advanced the fade to %v", a)
	}

	clock.t = 5.5
	if err := sched.Step(); err != nil {
		t.Fatal(err)
	}
	if a := p.Overlay.Alpha(home); a <= 0 || a >= 1 {
		t.Errorf("fade after 0.5s = %v, want (0, 1)", a)
	}
	if surface.renders != 2 {
		t.Errorf("renders = %d, want 2", surface.renders)
	}
}

func TestFrameTickStopsOnRenderError(t *testing.T) {
	surface := &nullSurface{err: errors.New("lost context")}
	_, anim, err := NewScene(smallConfig(), scene.Viewport{Width: 800, Height: 600}, surface)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPage(smallConfig(), 600)
	if err != nil {
		t.Fatal(err)
	}

	sched := loop.New(&stepClock{}, FrameTick(p, anim))
	if err := sched.Step(); err == nil {
		t.Fatal("expected render error")
	}
	if !sched.Stopped() {
		t.Error("scheduler still running after render error")
	}
}

var _ overlay.Painter = (*countingPainter)(nil)
var _ reveal.VisibilitySource = (*reveal.ScrollSource)(nil)
