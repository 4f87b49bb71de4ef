// Package loop runs the per-frame tick for hosts that do not own a refresh callback.
package loop

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/logger"
)

// Clock returns monotonic seconds since an arbitrary epoch.
type Clock interface {
	Now() float64
}

// MonotonicClock measures seconds since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the elapsed seconds.
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// TickFunc is called once per frame with the current clock sample.
type TickFunc func(t float64) error

// Scheduler calls a tick once per frame until stopped.
// Stop may be called from any goroutine; everything else belongs to the loop's goroutine.
type Scheduler struct {
	clock   Clock
	tick    TickFunc
	stopped atomic.Bool
	frames  uint64
	last    float64
}

// New creates a scheduler for tick.
func New(clock Clock, tick TickFunc) *Scheduler {
	return &Scheduler{clock: clock, tick: tick}
}

// Step runs one frame. It is a no-op once the scheduler is stopped. A tick error
// stops the scheduler.
func (s *Scheduler) Step() error {
	if s.stopped.Load() {
		return nil
	}

	t := s.clock.Now()
	if t < s.last {
		t = s.last
	}
	s.last = t

	if err := s.tick(t); err != nil {
		s.Stop()
		return fmt.Errorf("frame %d: %w", s.frames, err)
	}
	s.frames++
	return nil
}

// Run steps once per interval until ctx is done, Stop is called or a tick fails.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Debug("frame loop started", zap.Duration("interval", interval))
	defer func() {
		logger.Debug("frame loop stopped", zap.Uint64("frames", s.frames))
	}()

	for !s.stopped.Load() {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-ticker.C:
			if err := s.Step(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stop sets the cancellation flag.
func (s *Scheduler) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (s *Scheduler) Stopped() bool {
	return s.stopped.Load()
}

// Frames returns the number of completed frames.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Interval converts a frame rate to a tick interval, defaulting to 60 Hz.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
