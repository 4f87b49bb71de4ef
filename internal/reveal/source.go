package reveal

import "math"

// Entry reports how much of an element is inside the viewport.
type Entry struct {
	Target *Element
	Ratio  float64 // visible fraction of the element's area, 0..1
}

// Handler receives a batch of entries. Order within a batch is not meaningful.
type Handler func(entries []Entry)

// VisibilitySource reports elements crossing a visibility threshold.
type VisibilitySource interface {
	Observe(el *Element)
	Unobserve(el *Element)
	OnChange(h Handler)
}

// Meets reports whether ratio counts as visible for threshold. A zero threshold
// still needs some overlap.
func Meets(ratio, threshold float64) bool {
	return ratio > 0 && ratio >= threshold
}

type observation struct {
	el        *Element
	above     bool
	delivered bool
}

// ScrollSource tracks a vertical viewport over a laid out page and reports
// observed sections when their visibility crosses the threshold. Entries are
// delivered from Poll, never from Scroll or Resize directly.
type ScrollSource struct {
	threshold float64
	viewport  float64
	content   float64
	scrollY   float64
	observed  []*observation
	handler   Handler
}

// NewScrollSource creates a source over content of the given height seen
// through a viewport of the given height.
func NewScrollSource(threshold, viewportHeight, contentHeight float64) *ScrollSource {
	return &ScrollSource{
		threshold: threshold,
		viewport:  viewportHeight,
		content:   contentHeight,
	}
}

// Observe starts tracking el. The next Poll delivers its current state.
func (s *ScrollSource) Observe(el *Element) {
	for _, o := range s.observed {
		if o.el == el {
			return
		}
	}
	s.observed = append(s.observed, &observation{el: el})
}

// Unobserve stops tracking el.
func (s *ScrollSource) Unobserve(el *Element) {
	for i, o := range s.observed {
		if o.el == el {
			s.observed = append(s.observed[:i], s.observed[i+1:]...)
			return
		}
	}
}

// OnChange sets the batch handler.
func (s *ScrollSource) OnChange(h Handler) {
	s.handler = h
}

// Observed returns the number of tracked elements.
func (s *ScrollSource) Observed() int {
	return len(s.observed)
}

// ScrollY returns the current scroll offset.
func (s *ScrollSource) ScrollY() float64 {
	return s.scrollY
}

// ViewportHeight returns the current viewport height.
func (s *ScrollSource) ViewportHeight() float64 {
	return s.viewport
}

// ScrollBy moves the viewport by dy, clamped to the content.
func (s *ScrollSource) ScrollBy(dy float64) {
	s.ScrollTo(s.scrollY + dy)
}

// ScrollTo moves the viewport top to y, clamped to the content.
func (s *ScrollSource) ScrollTo(y float64) {
	maxY := math.Max(0, s.content-s.viewport)
	s.scrollY = math.Min(math.Max(0, y), maxY)
}

// Resize changes the viewport height and re-clamps the scroll offset.
func (s *ScrollSource) Resize(viewportHeight float64) {
	s.viewport = viewportHeight
	s.ScrollTo(s.scrollY)
}

// Ratio returns the visible fraction of el at the current scroll offset.
func (s *ScrollSource) Ratio(el *Element) float64 {
	top := el.Top
	bottom := el.Top + el.Height
	viewTop := s.scrollY
	viewBottom := s.scrollY + s.viewport

	if el.Height <= 0 {
		if top >= viewTop && top < viewBottom {
			return 1
		}
		return 0
	}

	overlap := math.Min(bottom, viewBottom) - math.Max(top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return math.Min(1, overlap/el.Height)
}

// Poll delivers one batch for every observed element that is new or whose
// visibility crossed the threshold since the last delivery. It returns the
// number of entries delivered.
func (s *ScrollSource) Poll() int {
	var batch []Entry
	for _, o := range s.observed {
		ratio := s.Ratio(o.el)
		above := Meets(ratio, s.threshold)
		if o.delivered && above == o.above {
			continue
		}
		o.delivered = true
		o.above = above
		batch = append(batch, Entry{Target: o.el, Ratio: ratio})
	}

	if len(batch) > 0 && s.handler != nil {
		s.handler(batch)
	}
	return len(batch)
}
