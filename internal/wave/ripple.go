package wave

import (
	"errors"
	"fmt"
	"math"
)

// ErrBaselineMismatch is returned when a baseline does not belong to the grid.
var ErrBaselineMismatch = errors.New("baseline length does not match grid")

// Params are the ripple coefficients: the height of each term and the spatial
// frequency in radians per world unit.
type Params struct {
	Amplitude float64
	Frequency float64
}

// DefaultParams returns the stock ripple: 2 units per term at 0.05 rad/unit.
func DefaultParams() Params {
	return Params{Amplitude: 2, Frequency: 0.05}
}

// Depth returns the displaced depth of a vertex at (x, y) with the given
// baseline at time t (seconds). It carries no state between calls.
func (p Params) Depth(baseline, x, y, t float64) float64 {
	return baseline +
		math.Sin(x*p.Frequency+t)*p.Amplitude +
		math.Cos(y*p.Frequency+t)*p.Amplitude
}

// Baseline holds each vertex's un-animated depth in vertex order.
type Baseline []float32

// CaptureBaseline copies the current depth of every vertex.
func CaptureBaseline(g *Grid) Baseline {
	b := make(Baseline, g.Count())
	for i := range b {
		b[i] = g.Z(i)
	}
	return b
}

// Check reports whether b can drive g.
func (b Baseline) Check(g *Grid) error {
	if len(b) != g.Count() {
		return fmt.Errorf("%w: %d baseline values for %d vertices", ErrBaselineMismatch, len(b), g.Count())
	}
	return nil
}

// Displace recomputes every vertex depth of g for time t and marks g dirty.
// The baseline is only read. Callers are expected to have run Check once.
func (p Params) Displace(g *Grid, base Baseline, t float64) {
	for i, z0 := range base {
		z := p.Depth(float64(z0), float64(g.X(i)), float64(g.Y(i)), t)
		g.SetZ(i, float32(z))
	}
	g.MarkDirty()
}
