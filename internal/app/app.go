// Package app runs the wave background in an SDL2 window with OpenGL.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/config"
	"github.com/Faultbox/wavebg/internal/engine/input"
	"github.com/Faultbox/wavebg/internal/engine/loop"
	"github.com/Faultbox/wavebg/internal/engine/renderer"
	"github.com/Faultbox/wavebg/internal/engine/snapshot"
	"github.com/Faultbox/wavebg/internal/engine/window"
	"github.com/Faultbox/wavebg/internal/host"
	"github.com/Faultbox/wavebg/internal/logger"
	"github.com/Faultbox/wavebg/internal/scene"
)

// pageLines is how many scroll steps PageUp/PageDown move.
const pageLines = 10

// App is the windowed host.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene    *scene.Context
	animator *scene.Animator
	page     *host.Page
	sched    *loop.Scheduler
	shots    *snapshot.Capture
}

// New opens the window and builds the scene and page.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{cfg: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		PixelRatio: a.window.PixelRatio(),
		Background: [4]float32{0.04, 0.04, 0.06, 1},
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, a.animator, err = host.NewScene(cfg, scene.Viewport{
		Width:      width,
		Height:     height,
		PixelRatio: a.window.PixelRatio(),
	}, a.renderer)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to init scene: %w", err)
	}

	a.page, err = host.NewPage(cfg, height)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build page: %w", err)
	}

	a.input = input.New()
	a.shots = snapshot.New(cfg.Window.ScreenshotDir, "wavebg")
	a.sched = loop.New(loop.NewMonotonicClock(), host.FrameTick(a.page, a.animator))

	logger.Info("app initialized")
	return a, nil
}

// Run drives one frame per display refresh until the window closes, ESC is
// pressed, ctx is cancelled or a frame fails.
func (a *App) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		a.sched.Stop()
	}()

	// Without vsync the swap does not block, so frames are paced here.
	var pace *time.Ticker
	if !a.window.VSync() {
		pace = time.NewTicker(loop.Interval(a.cfg.Window.FPSLimit))
		defer pace.Stop()
	}

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop", zap.Bool("vsync", a.window.VSync()))

	for !a.sched.Stopped() {
		if a.input.Update() {
			a.sched.Stop()
			break
		}
		a.handleEvents()

		if err := a.sched.Step(); err != nil {
			return fmt.Errorf("frame error: %w", err)
		}

		vp := a.scene.Viewport()
		a.page.Draw(a.renderer.Overlay(), vp.Width, vp.Height)
		a.renderer.Flush()

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.screenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Uint64("frames", a.sched.Frames()))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if pace != nil {
			select {
			case <-pace.C:
			case <-ctx.Done():
			}
		}
	}

	logger.Info("frame loop stopped", zap.Uint64("frames", a.sched.Frames()))
	return nil
}

func (a *App) handleEvents() {
	events := a.input.Events()
	for _, event := range events {
		if event.Type == input.EventWindowResize {
			a.scene.Resize(event.Width, event.Height)
			a.renderer.SetPixelRatio(a.window.PixelRatio())
			a.page.Resize(event.Height)
		}
	}
	a.page.Scroll(input.ScrollLines(events, pageLines))
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SavePixels(pixels, w, h, true)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Stop asks the frame loop to exit after the current frame.
func (a *App) Stop() {
	if a.sched != nil {
		a.sched.Stop()
	}
}

// Close releases the renderer and window.
func (a *App) Close() {
	logger.Info("closing app")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
