// Package host wires the scene, the reveal controller and the overlay together
// for the window hosts.
package host

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/config"
	"github.com/Faultbox/wavebg/internal/logger"
	"github.com/Faultbox/wavebg/internal/overlay"
	"github.com/Faultbox/wavebg/internal/reveal"
	"github.com/Faultbox/wavebg/internal/scene"
	"github.com/Faultbox/wavebg/internal/wave"
)

// NewScene initializes the scene context on surface and binds an animator to it.
func NewScene(cfg *config.Config, vp scene.Viewport, surface scene.Surface) (*scene.Context, *scene.Animator, error) {
	ctx, err := scene.Init(cfg, vp, surface)
	if err != nil {
		return nil, nil, err
	}
	anim, err := scene.NewAnimator(ctx, wave.Params{
		Amplitude: cfg.Wave.Amplitude,
		Frequency: cfg.Wave.Frequency,
	})
	if err != nil {
		return nil, nil, err
	}
	return ctx, anim, nil
}

// Page is the scrolled document: its layout, the visibility source watching it,
// the controller that reveals sections and the overlay that draws them.
type Page struct {
	Doc        *reveal.Page
	Source     *reveal.ScrollSource
	Controller *reveal.Controller
	Progress   *reveal.ProgressAnimator
	Overlay    *overlay.Overlay

	scrollStep float64
}

// NewPage loads the configured page (or the built-in one) and attaches the
// controller to a scroll source sized to viewportHeight.
func NewPage(cfg *config.Config, viewportHeight int) (*Page, error) {
	doc, err := loadDoc(cfg.Reveal.PageFile)
	if err != nil {
		return nil, err
	}

	easing, err := reveal.Easing(cfg.Progress.Easing)
	if err != nil {
		return nil, fmt.Errorf("progress easing: %w", err)
	}

	rc := cfg.Reveal
	p := &Page{
		Doc:        doc,
		Source:     reveal.NewScrollSource(rc.Threshold, float64(viewportHeight), doc.Height()),
		Progress:   reveal.NewProgressAnimator(doc.QueryClass(rc.ProgressClass), rc.ProgressAttr, cfg.Progress.Duration, easing),
		scrollStep: rc.ScrollStep,
	}
	p.Controller = reveal.NewController(reveal.OptionsFromConfig(rc), doc, p.Progress)
	p.Overlay = overlay.New(doc, p.Source, rc.ProgressClass, rc.Fade)
	p.Overlay.Watch(p.Controller)
	p.Controller.Attach(p.Source)

	logger.Info("page ready",
		zap.Int("sections", len(doc.Sections)),
		zap.Float64("height", doc.Height()),
		zap.Int("observed", p.Source.Observed()),
	)
	return p, nil
}

func loadDoc(path string) (*reveal.Page, error) {
	if path == "" {
		return reveal.DefaultPage(), nil
	}
	doc, err := reveal.LoadPage(path)
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	return doc, nil
}

// Scroll moves the viewport by lines scroll steps.
func (p *Page) Scroll(lines float64) {
	if lines != 0 {
		p.Source.ScrollBy(lines * p.scrollStep)
	}
}

// Resize changes the viewport height.
func (p *Page) Resize(height int) {
	if height > 0 {
		p.Source.Resize(float64(height))
	}
}

// Update delivers pending visibility entries and advances tweens by dt seconds.
func (p *Page) Update(dt float32) {
	p.Source.Poll()
	p.Progress.Update(dt)
	p.Overlay.Update(dt)
}

// Draw paints the overlay for a width x height viewport.
func (p *Page) Draw(painter overlay.Painter, width, height int) {
	p.Overlay.Draw(painter, float32(width), float32(height))
}
