// Package ebitenhost runs the wave background as an Ebiten game.
package ebitenhost

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/config"
	"github.com/Faultbox/wavebg/internal/engine/loop"
	"github.com/Faultbox/wavebg/internal/engine/snapshot"
	"github.com/Faultbox/wavebg/internal/host"
	"github.com/Faultbox/wavebg/internal/logger"
	"github.com/Faultbox/wavebg/internal/scene"
)

const pageLines = 10

var background = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff}

// Game implements ebiten.Game.
type Game struct {
	surface *Surface
	scene   *scene.Context
	page    *host.Page
	sched   *loop.Scheduler
	err     error
	lastW   int
	lastH   int
	log     *zap.Logger

	shots    *snapshot.Capture
	wantShot bool
}

// New builds the scene and page at the configured window size.
func New(cfg *config.Config, clock loop.Clock) (*Game, error) {
	g := &Game{
		surface: NewSurface(cfg.Window.Antialias),
		lastW:   cfg.Window.Width,
		lastH:   cfg.Window.Height,
		log:     logger.Named("ebiten"),
		shots:   snapshot.New(cfg.Window.ScreenshotDir, "wavebg"),
	}

	vp := scene.Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height, PixelRatio: 1}
	ctx, anim, err := host.NewScene(cfg, vp, g.surface)
	if err != nil {
		return nil, fmt.Errorf("failed to init scene: %w", err)
	}
	g.scene = ctx

	g.page, err = host.NewPage(cfg, cfg.Window.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to build page: %w", err)
	}

	g.sched = loop.New(clock, host.FrameTick(g.page, anim))
	return g, nil
}

// Stop ends the game at the next update.
func (g *Game) Stop() {
	g.sched.Stop()
}

// Update handles input and steps one frame.
func (g *Game) Update() error {
	if g.sched.Stopped() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.page.Scroll(scrollLines())
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.wantShot = true
	}

	if err := g.sched.Step(); err != nil {
		g.err = err
		return ebiten.Termination
	}
	return nil
}

func scrollLines() float64 {
	_, dy := ebiten.Wheel()
	lines := -dy
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		lines++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		lines--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		lines += pageLines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		lines -= pageLines
	}
	return lines
}

// Draw paints the wireframe and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.surface.Draw(screen)
	vp := g.scene.Viewport()
	g.page.Draw(painter{dst: screen}, vp.Width, vp.Height)

	if g.wantShot {
		g.wantShot = false
		g.screenshot(screen)
	}
}

func (g *Game) screenshot(screen *ebiten.Image) {
	b := screen.Bounds()
	pixels := make([]byte, b.Dx()*b.Dy()*4)
	screen.ReadPixels(pixels)
	path, err := g.shots.SavePixels(pixels, b.Dx(), b.Dy(), false)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Layout reports window size changes to the scene and keeps a 1:1 logical
// screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(width, height int) {
	g.lastW = width
	g.lastH = height
	g.scene.Resize(width, height)
	g.page.Resize(height)
	g.log.Debug("layout changed", zap.Int("width", width), zap.Int("height", height))
}

// Run opens the window and blocks until the game ends or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	g, err := New(cfg, loop.NewMonotonicClock())
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		g.Stop()
	}()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	tps := cfg.Window.FPSLimit
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetTPS(tps)

	logger.Info("starting ebiten game",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("tps", tps),
	)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if g.err != nil {
		return g.err
	}
	logger.Info("ebiten game stopped", zap.Uint64("frames", g.sched.Frames()))
	return nil
}
