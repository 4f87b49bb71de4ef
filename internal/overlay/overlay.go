// Package overlay draws the page sections and progress bars over the background.
package overlay

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/wavebg/internal/reveal"
)

// Painter fills axis-aligned rectangles in screen pixels, origin top-left.
type Painter interface {
	FillRect(x, y, w, h float32, c Color)
}

// Scroller reports the document offset at the top of the viewport.
type Scroller interface {
	ScrollY() float64
}

// Layout constants in pixels.
const (
	margin     = 48
	sectionGap = 24
	accentW    = 4
	barInset   = 32
	barTop     = 64
	barPitch   = 40
	barHeight  = 10
	thumbW     = 6

	titleTop   = 20
	titleScale = 2
	barLabel   = 16 // bar label sits this far above its track
)

// Overlay renders a page with per-section fade-in.
type Overlay struct {
	page          *reveal.Page
	scroll        Scroller
	progressClass string
	fade          float32

	alpha  map[*reveal.Element]float32
	tween  map[*reveal.Element]*gween.Tween
	labels labels
}

// New creates an overlay for page. fade is the section fade duration; zero
// switches sections instantly.
func New(page *reveal.Page, scroll Scroller, progressClass string, fade time.Duration) *Overlay {
	return &Overlay{
		page:          page,
		scroll:        scroll,
		progressClass: progressClass,
		fade:          float32(fade.Seconds()),
		alpha:         make(map[*reveal.Element]float32),
		tween:         make(map[*reveal.Element]*gween.Tween),
		labels:        make(labels),
	}
}

// Watch follows the controller's reveal transitions.
func (o *Overlay) Watch(ctrl *reveal.Controller) {
	ctrl.OnChange(o.sectionChanged)
}

func (o *Overlay) sectionChanged(s *reveal.Element, revealed bool) {
	to := float32(0)
	if revealed {
		to = 1
	}
	if o.fade <= 0 {
		o.alpha[s] = to
		delete(o.tween, s)
		return
	}
	o.tween[s] = gween.New(o.alpha[s], to, o.fade, ease.OutQuad)
}

// Update advances section fades by dt seconds.
func (o *Overlay) Update(dt float32) {
	for s, tw := range o.tween {
		v, done := tw.Update(dt)
		o.alpha[s] = v
		if done {
			delete(o.tween, s)
		}
	}
}

// Alpha returns the current opacity factor of section s.
func (o *Overlay) Alpha(s *reveal.Element) float32 {
	return o.alpha[s]
}

// Draw paints every section intersecting a width x height viewport.
func (o *Overlay) Draw(p Painter, width, height float32) {
	scrollY := float32(o.scroll.ScrollY())
	panelW := width - 2*margin
	if panelW <= 0 {
		return
	}

	for _, s := range o.page.Sections {
		a := o.alpha[s]
		if a <= 0 {
			continue
		}
		y := float32(s.Top) - scrollY + sectionGap/2
		h := float32(s.Height) - sectionGap
		if h <= 0 || y+h < 0 || y > height {
			continue
		}

		p.FillRect(margin, y, panelW, h, ColorPanel.Fade(a))
		p.FillRect(margin, y, accentW, h, ColorAccent.Fade(a))
		if s.Label != "" {
			o.labels.draw(p, s.Label, margin+barInset, y+titleTop, titleScale, ColorText.Fade(a))
		}
		o.drawBars(p, s, margin+barInset, y+barTop, panelW-2*barInset, a)
	}

	o.drawScrollbar(p, width, height, scrollY)
}

func (o *Overlay) drawBars(p Painter, s *reveal.Element, x, y, w, a float32) {
	if w <= 0 {
		return
	}
	row := 0
	for _, child := range s.Children {
		if !child.Class.Contains(o.progressClass) {
			continue
		}
		by := y + float32(row)*barPitch
		if child.Label != "" {
			o.labels.draw(p, child.Label, x, by-barLabel, 1, ColorText.Fade(a))
		}
		p.FillRect(x, by, w, barHeight, ColorTrack.Fade(a))
		if child.Style.HasWidth && child.Style.Width > 0 {
			p.FillRect(x, by, w*float32(child.Style.Width)/100, barHeight, ColorFill.Fade(a))
		}
		row++
	}
}

func (o *Overlay) drawScrollbar(p Painter, width, height, scrollY float32) {
	total := float32(o.page.Height())
	if total <= height || total <= 0 {
		return
	}
	thumbH := height * height / total
	thumbY := scrollY / total * height
	p.FillRect(width-thumbW-2, thumbY, thumbW, thumbH, ColorScrollThumb)
}
