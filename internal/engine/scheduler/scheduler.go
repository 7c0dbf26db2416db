// Package scheduler runs the plotting engine: a single-goroutine event loop
// that turns queued input into sampling passes and frames.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports"
	"go.trai.ch/graf/internal/engine/sampler"
	"go.trai.ch/graf/internal/engine/viewport"
)

// Scheduler is the redraw loop. Front-end events are queued and coalesced;
// the loop goroutine drains whatever is pending, applies it in arrival
// order, then runs at most one sampling pass and hands the frame to the
// renderer. A burst of events therefore costs a single redraw reflecting the
// final state, and intermediate frames are simply never produced.
//
// Scheduler implements ports.Controller.
type Scheduler struct {
	compiler ports.Compiler
	cache    ports.SampleCache
	logger   ports.Logger
	tracer   ports.Tracer
	sampler  *sampler.Sampler
	view     *viewport.Controller

	mu      sync.Mutex
	pending []func()

	// wake holds at most one token: any number of marks between passes
	// collapse into one wakeup.
	wake chan struct{}

	// renderer and expr belong to the loop goroutine.
	renderer ports.Renderer
	expr     ports.CompiledExpression
}

var _ ports.Controller = (*Scheduler)(nil)

// NewScheduler creates the engine loop. The initial view spans the
// configured plot bounds at the default pixel grid; the front-end is
// expected to Resize once it knows the real one.
func NewScheduler(
	cfg domain.Config,
	compiler ports.Compiler,
	cache ports.SampleCache,
	logger ports.Logger,
	tracer ports.Tracer,
) *Scheduler {
	s := &Scheduler{
		compiler: compiler,
		cache:    cache,
		logger:   logger,
		tracer:   tracer,
		sampler:  sampler.NewSampler(cfg.Sampler, cache),
		wake:     make(chan struct{}, 1),
	}

	view := domain.Viewport{
		XMin:   cfg.Plot.XMin,
		XMax:   cfg.Plot.XMax,
		YMin:   cfg.Plot.YMin,
		YMax:   cfg.Plot.YMax,
		Width:  domain.DefaultPlotWidth,
		Height: domain.DefaultPlotHeight,
	}
	s.view = viewport.NewController(cfg.Input, view, s.markDirty)
	return s
}

// Run drives the loop until ctx is canceled. All compiling, sampling and
// frame publishing happens here, one pass per wakeup; the Controller methods
// only queue work.
func (s *Scheduler) Run(ctx context.Context, renderer ports.Renderer) error {
	s.renderer = renderer
	defer s.view.Stop()

	// First frame before any input, so the front-end is never empty.
	s.pass(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
			for _, apply := range s.take() {
				apply()
			}
			s.pass(ctx)
		}
	}
}

// SubmitExpression queues a switch to the given expression text. Malformed
// text is reported through the renderer and the current curve stays.
func (s *Scheduler) SubmitExpression(text string) {
	s.enqueue(func() { s.swapExpression(text) })
}

// ClearPlot queues removal of the current expression and its cached samples.
func (s *Scheduler) ClearPlot() {
	s.enqueue(s.clearPlot)
}

// Pan queues a drag of the view by a pixel delta.
func (s *Scheduler) Pan(dxPixels, dyPixels float64) {
	s.enqueue(func() { s.view.Pan(dxPixels, dyPixels) })
}

// NudgeView queues an arrow-key pan in the given direction.
func (s *Scheduler) NudgeView(xDirection, yDirection int) {
	s.enqueue(func() { s.view.Nudge(xDirection, yDirection) })
}

// WheelZoom queues a zoom tick anchored at the given pixel position.
func (s *Scheduler) WheelZoom(col, row float64, in bool) {
	s.enqueue(func() { s.view.WheelZoom(col, row, in) })
}

// KeyZoom queues a zoom about the view center.
func (s *Scheduler) KeyZoom(in bool) {
	s.enqueue(func() { s.view.KeyZoom(in) })
}

// SetBounds queues an explicit bounds change. Invalid bounds are reported
// through the renderer and the previous view is kept.
func (s *Scheduler) SetBounds(xMin, xMax, yMin, yMax float64) {
	s.enqueue(func() { s.applyBounds(xMin, xMax, yMin, yMax) })
}

// ResetView queues a restore of the default bounds.
func (s *Scheduler) ResetView() {
	s.enqueue(s.view.Reset)
}

// Resize queues an adaptation to a new pixel grid.
func (s *Scheduler) Resize(width, height int) {
	s.enqueue(func() { s.view.Resize(width, height) })
}

// enqueue queues an event for the loop goroutine and wakes it.
func (s *Scheduler) enqueue(apply func()) {
	s.mu.Lock()
	s.pending = append(s.pending, apply)
	s.mu.Unlock()
	s.markDirty()
}

// take returns the queued events, oldest first.
func (s *Scheduler) take() []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.pending
	s.pending = nil
	return pending
}

// markDirty wakes the loop without ever blocking the caller.
func (s *Scheduler) markDirty() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) swapExpression(text string) {
	compiled, err := s.compiler.Compile(text)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("rejected expression %q: %v", text, err))
		s.renderer.OnInputError(text, err)
		return
	}

	// Samples of the replaced expression can never be served again; drop
	// them now instead of waiting for eviction. Resubmitting the same text
	// keeps the cache warm.
	if s.expr != nil && s.expr.ID() != compiled.ID() {
		s.cache.Invalidate(s.expr.ID())
	}
	s.expr = compiled
}

func (s *Scheduler) clearPlot() {
	if s.expr == nil {
		return
	}
	s.cache.Invalidate(s.expr.ID())
	s.expr = nil
}

func (s *Scheduler) applyBounds(xMin, xMax, yMin, yMax float64) {
	if err := s.view.SetBounds(xMin, xMax, yMin, yMax); err != nil {
		input := fmt.Sprintf("x:[%g, %g] y:[%g, %g]", xMin, xMax, yMin, yMax)
		s.renderer.OnInputError(input, err)
	}
}

// pass samples the current state and hands one frame to the renderer.
// Quality follows the interaction state: coarse while the view is moving,
// refined once it has settled. The settle callback re-marks the loop dirty,
// so a refined frame always follows the last coarse one.
func (s *Scheduler) pass(ctx context.Context) {
	view, mode := s.view.Snapshot()
	quality := domain.QualityRefined
	if mode == viewport.ModeInteracting {
		quality = domain.QualityCoarse
	}

	_, span := s.tracer.Start(ctx, "pass."+quality.String())
	defer span.End()

	frame := domain.Frame{
		View:    view,
		Samples: domain.SampleSet{Quality: quality},
	}
	if s.expr != nil {
		before := s.cache.Stats()
		started := time.Now()
		frame.Samples = s.sampler.Sample(view, s.expr, quality)
		after := s.cache.Stats()

		frame.Expr = s.expr.Source()
		frame.ID = s.expr.ID()
		frame.Stats = domain.FrameStats{
			Points:      frame.Samples.Len(),
			CacheHits:   after.Hits - before.Hits,
			CacheMisses: after.Misses - before.Misses,
			Elapsed:     time.Since(started),
		}
	}

	span.SetAttribute("expr", frame.Expr)
	span.SetAttribute("points", frame.Stats.Points)
	span.SetAttribute("cache_hit_rate", frame.Stats.HitRate())
	s.renderer.OnFrame(frame)
}
