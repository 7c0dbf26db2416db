package domain

import "time"

// FrameStats carries per-pass measurements for the status line and trace
// spans.
type FrameStats struct {
	// Points is the number of samples in the pass, gap markers included.
	Points int

	// CacheHits and CacheMisses count sample cache lookups during the pass.
	CacheHits   uint64
	CacheMisses uint64

	// Elapsed is the wall time of the sampling pass.
	Elapsed time.Duration
}

// HitRate returns the cache hit ratio of the pass in [0, 1], or 0 when no
// lookups happened.
func (s FrameStats) HitRate() float64 {
	total := s.CacheHits + s.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(total)
}

// Frame is one complete plotting result: what to draw, where, and how good
// it is. Frames are immutable once published; the engine hands them to the
// renderer and never touches them again.
type Frame struct {
	// Expr is the source text of the plotted expression, empty when no
	// expression is active.
	Expr string

	// ID identifies the compiled expression the samples belong to.
	ID ExprID

	// View is the viewport the samples were taken over.
	View Viewport

	// Samples is the evaluated curve, tagged coarse or refined.
	Samples SampleSet

	// Stats describes the pass that produced the frame.
	Stats FrameStats
}

// Settled reports whether the frame is a refined, final rendering of its
// viewport rather than an interaction-time preview.
func (f Frame) Settled() bool { return f.Samples.Quality == QualityRefined }
