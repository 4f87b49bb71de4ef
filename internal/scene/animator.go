package scene

import (
	"fmt"

	"github.com/Faultbox/wavebg/internal/wave"
)

// Animator displaces the surface once per frame and submits it for rendering.
type Animator struct {
	ctx    *Context
	params wave.Params
	frames uint64
}

// NewAnimator binds an animator to ctx.
func NewAnimator(ctx *Context, params wave.Params) (*Animator, error) {
	if err := ctx.Baseline.Check(ctx.Mesh.Grid); err != nil {
		return nil, err
	}
	return &Animator{ctx: ctx, params: params}, nil
}

// Tick recomputes every vertex depth for time t (seconds), marks the grid dirty
// and renders the scene.
func (a *Animator) Tick(t float64) error {
	a.params.Displace(a.ctx.Mesh.Grid, a.ctx.Baseline, t)
	a.frames++

	if err := a.ctx.Surface.Render(a.ctx.Mesh, a.ctx.Camera); err != nil {
		return fmt.Errorf("render frame %d: %w", a.frames, err)
	}
	return nil
}

// Frames returns the number of ticks run so far.
func (a *Animator) Frames() uint64 {
	return a.frames
}
