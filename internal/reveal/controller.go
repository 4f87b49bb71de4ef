package reveal

import (
	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/config"
	"github.com/Faultbox/wavebg/internal/logger"
)

// Options configures a Controller.
type Options struct {
	HomeID            string
	SkillsID          string
	Threshold         float64
	VisibleClass      string
	Retrigger         bool // hide sections again when they drop below the threshold
	UnobserveOnReveal bool // stop watching a section once it is revealed
}

// OptionsFromConfig copies the reveal settings out of cfg.
func OptionsFromConfig(cfg config.RevealConfig) Options {
	return Options{
		HomeID:            cfg.HomeID,
		SkillsID:          cfg.SkillsID,
		Threshold:         cfg.Threshold,
		VisibleClass:      cfg.VisibleClass,
		Retrigger:         cfg.Retrigger,
		UnobserveOnReveal: cfg.UnobserveOnReveal,
	}
}

// ChangeFunc is told when a section's visible class is added or removed.
type ChangeFunc func(section *Element, revealed bool)

// Controller owns the visible/hidden state of every section.
//
// Every section starts hidden except the home section. A section becomes
// revealed on an entry that meets the threshold and, unless Retrigger is set,
// stays revealed.
type Controller struct {
	opts     Options
	page     *Page
	progress *ProgressAnimator
	source   VisibilitySource
	onChange []ChangeFunc
}

// NewController creates a controller for page. progress may be nil.
func NewController(opts Options, page *Page, progress *ProgressAnimator) *Controller {
	return &Controller{
		opts:     opts,
		page:     page,
		progress: progress,
	}
}

// OnChange registers fn for reveal and hide transitions.
func (c *Controller) OnChange(fn ChangeFunc) {
	c.onChange = append(c.onChange, fn)
}

// Attach reveals the home section and registers every other section with src.
func (c *Controller) Attach(src VisibilitySource) {
	c.source = src
	src.OnChange(c.Handle)

	for _, s := range c.page.Sections {
		if s.ID == c.opts.HomeID {
			c.reveal(s)
			continue
		}
		src.Observe(s)
	}
}

// Handle applies a batch of visibility entries.
func (c *Controller) Handle(entries []Entry) {
	for _, e := range entries {
		if e.Target == nil {
			continue
		}
		if Meets(e.Ratio, c.opts.Threshold) {
			c.reveal(e.Target)
			if e.Target.ID == c.opts.SkillsID && c.progress != nil {
				c.progress.Animate()
			}
			if c.opts.UnobserveOnReveal && c.source != nil {
				c.source.Unobserve(e.Target)
			}
			continue
		}
		if c.opts.Retrigger {
			c.hide(e.Target)
		}
	}
}

// Revealed reports whether the section with id carries the visible class.
func (c *Controller) Revealed(id string) bool {
	s := c.page.Section(id)
	return s != nil && s.Class.Contains(c.opts.VisibleClass)
}

func (c *Controller) reveal(s *Element) {
	if !s.Class.Add(c.opts.VisibleClass) {
		return
	}
	logger.Debug("section revealed", zap.String("section", s.ID))
	for _, fn := range c.onChange {
		fn(s, true)
	}
}

func (c *Controller) hide(s *Element) {
	if !s.Class.Remove(c.opts.VisibleClass) {
		return
	}
	logger.Debug("section hidden", zap.String("section", s.ID))
	for _, fn := range c.onChange {
		fn(s, false)
	}
}
