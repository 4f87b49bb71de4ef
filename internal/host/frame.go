package host

import (
	"github.com/Faultbox/wavebg/internal/engine/loop"
	"github.com/Faultbox/wavebg/internal/scene"
)

// FrameTick returns the per-frame tick shared by the hosts: the page advances by
// the time since the previous frame, then the animator displaces and renders
// the wave at t.
func FrameTick(page *Page, anim *scene.Animator) loop.TickFunc {
	var last float64
	first := true
	return func(t float64) error {
		dt := t - last
		if first {
			dt = 0
			first = false
		}
		last = t
		page.Update(float32(dt))
		return anim.Tick(t)
	}
}
