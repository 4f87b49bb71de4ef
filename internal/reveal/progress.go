package reveal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/logger"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
}

// Easing looks up an easing function by name. An empty name is linear.
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// ProgressAnimator sets each progress bar's width to its target percentage.
// With a zero duration the width is assigned at once; otherwise it is tweened
// and Update must be called every frame.
type ProgressAnimator struct {
	bars     []*Element
	attr     string
	duration float32
	easing   ease.TweenFunc

	tweens map[*Element]*gween.Tween
}

// NewProgressAnimator animates bars, reading targets from the data attribute attr.
func NewProgressAnimator(bars []*Element, attr string, duration time.Duration, easing ease.TweenFunc) *ProgressAnimator {
	if easing == nil {
		easing = ease.Linear
	}
	return &ProgressAnimator{
		bars:     bars,
		attr:     attr,
		duration: float32(duration.Seconds()),
		easing:   easing,
		tweens:   make(map[*Element]*gween.Tween),
	}
}

// Target parses a bar's target percentage, clamped to 0..100.
func Target(el *Element, attr string) (float64, error) {
	raw, ok := el.Data[attr]
	if !ok {
		return 0, fmt.Errorf("element %q has no data-%s", el.ID, attr)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "%"), 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("element %q data-%s=%q: not a number", el.ID, attr, raw)
	}
	return math.Min(100, math.Max(0, v)), nil
}

// Animate moves every bar toward its target. Calling it again does not restart
// bars that are already tweening or already at their target.
func (p *ProgressAnimator) Animate() {
	for _, bar := range p.bars {
		target, err := Target(bar, p.attr)
		if err != nil {
			logger.Warn("skipping progress bar", zap.Error(err))
			continue
		}

		if p.duration <= 0 {
			bar.Style.Width = target
			bar.Style.HasWidth = true
			continue
		}

		if _, running := p.tweens[bar]; running {
			continue
		}
		if bar.Style.HasWidth && bar.Style.Width == target {
			continue
		}
		p.tweens[bar] = gween.New(float32(bar.Style.Width), float32(target), p.duration, p.easing)
		bar.Style.HasWidth = true
	}
}

// Update advances running tweens by dt seconds.
func (p *ProgressAnimator) Update(dt float32) {
	for bar, tw := range p.tweens {
		v, done := tw.Update(dt)
		bar.Style.Width = float64(v)
		if done {
			if target, err := Target(bar, p.attr); err == nil {
				bar.Style.Width = target
			}
			delete(p.tweens, bar)
		}
	}
}

// Active reports whether any bar is still tweening.
func (p *ProgressAnimator) Active() bool {
	return len(p.tweens) > 0
}
