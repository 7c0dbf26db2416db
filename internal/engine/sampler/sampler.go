// Package sampler evaluates expressions over a viewport: coarsely while the
// view is moving, adaptively once it has settled.
package sampler

import (
	"math"

	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports"
)

// sharpTurn is the pixel-space direction change, in radians, above which
// neighbouring sample intervals are considered to bend and get subdivided.
const sharpTurn = 0.2

// Sampler produces the sample sets frames are drawn from. Every evaluation
// goes through the sample cache, so repeated passes over an unchanged view
// are mostly lookups.
type Sampler struct {
	cfg   domain.SamplerConfig
	cache ports.SampleCache
}

// NewSampler creates a sampler with the given tuning.
func NewSampler(cfg domain.SamplerConfig, cache ports.SampleCache) *Sampler {
	return &Sampler{cfg: cfg, cache: cache}
}

// Sample evaluates expr across the viewport at the requested quality.
//
// The base pass takes one sample per pixel column, fenceposts included, so a
// coarse set has Width+1 points. The refined pass additionally subdivides
// intervals where the curve bends sharply at screen scale and bisects around
// defined/undefined boundaries, capped by the configured recursion depth and
// point budget. Points are strictly increasing in X; undefined, infinite and
// overflowed evaluations appear as gap markers.
//
// Every probe is snapped to the cache's evaluation grid before lookup, so
// each point is the expression's true value at its own X and a warm cache
// reproduces a cold pass exactly. Sampling is deterministic: the same
// viewport, expression and configuration produce the same set.
func (s *Sampler) Sample(view domain.Viewport, expr ports.CompiledExpression, quality domain.Quality) domain.SampleSet {
	step := view.PixelStep()

	base := make([]domain.SamplePoint, 0, view.Width+1)
	for col := 0; col <= view.Width; col++ {
		base = append(base, s.sampleAt(expr, domain.GridSnap(view.ColumnToX(float64(col)), step), step))
	}

	if quality == domain.QualityCoarse {
		return domain.SampleSet{Quality: domain.QualityCoarse, Points: base}
	}
	return domain.SampleSet{Quality: domain.QualityRefined, Points: s.refine(view, expr, base)}
}

// sampleAt evaluates one point through the cache and classifies the result.
func (s *Sampler) sampleAt(expr ports.CompiledExpression, x, step float64) domain.SamplePoint {
	y := s.cache.GetOrCompute(expr, x, step)
	if math.IsNaN(y) || math.IsInf(y, 0) || math.Abs(y) > s.cfg.OverflowLimit {
		return domain.GapAt(x)
	}
	return domain.SamplePoint{X: x, Y: y}
}

// refine runs the settled pass over a base set: midpoint subdivision where
// the direction between neighbouring intervals changes sharply, bisection
// where the curve crosses into undefined territory. The budget counts every
// inserted point; once spent, remaining intervals keep their base sampling.
func (s *Sampler) refine(view domain.Viewport, expr ports.CompiledExpression, base []domain.SamplePoint) []domain.SamplePoint {
	budget := int(s.cfg.PointBudgetFactor*float64(view.Width)) - len(base)
	if budget <= 0 || len(base) < 2 {
		return base
	}

	// Pixels per data unit, to judge slopes at screen scale.
	pxX := float64(view.Width) / view.XSpan()
	pxY := float64(view.Height) / view.YSpan()

	angles := intervalAngles(base, pxX, pxY)
	step := view.PixelStep()

	out := make([]domain.SamplePoint, 0, len(base)+budget)
	for i := range len(base) - 1 {
		out = append(out, base[i])

		p0, p1 := base[i], base[i+1]
		switch {
		case p0.Gap() != p1.Gap():
			out = s.bisect(out, expr, p0, p1, step/2, s.cfg.RefineDepth, &budget)
		case !p0.Gap() && bendsAt(angles, i):
			out = s.subdivide(out, expr, p0, p1, step/2, pxX, pxY, s.cfg.RefineDepth, &budget)
		}
	}
	return append(out, base[len(base)-1])
}

// subdivide appends points strictly between p0 and p1 while the curve keeps
// bending at screen scale, halving the cache step with each level so deeper
// probes land in their own buckets.
func (s *Sampler) subdivide(
	out []domain.SamplePoint,
	expr ports.CompiledExpression,
	p0, p1 domain.SamplePoint,
	step, pxX, pxY float64,
	depth int,
	budget *int,
) []domain.SamplePoint {
	if depth <= 0 || *budget <= 0 {
		return out
	}
	x := domain.GridSnap(p0.X+(p1.X-p0.X)/2, step)
	if x <= p0.X || x >= p1.X {
		return out
	}

	mid := s.sampleAt(expr, x, step)
	*budget--

	if mid.Gap() {
		// An undefined pocket inside a defined interval. Keep the gap so no
		// line is drawn across it.
		return append(out, mid)
	}
	if turn(angleOf(p0, mid, pxX, pxY), angleOf(mid, p1, pxX, pxY)) <= sharpTurn {
		return append(out, mid)
	}

	out = s.subdivide(out, expr, p0, mid, step/2, pxX, pxY, depth-1, budget)
	out = append(out, mid)
	return s.subdivide(out, expr, mid, p1, step/2, pxX, pxY, depth-1, budget)
}

// bisect narrows the boundary between a defined point and a gap, keeping
// every probe so the drawn segment reaches as close to the edge as the depth
// allows.
func (s *Sampler) bisect(
	out []domain.SamplePoint,
	expr ports.CompiledExpression,
	p0, p1 domain.SamplePoint,
	step float64,
	depth int,
	budget *int,
) []domain.SamplePoint {
	if depth <= 0 || *budget <= 0 {
		return out
	}
	x := domain.GridSnap(p0.X+(p1.X-p0.X)/2, step)
	if x <= p0.X || x >= p1.X {
		return out
	}

	mid := s.sampleAt(expr, x, step)
	*budget--

	if mid.Gap() == p0.Gap() {
		// The boundary lies in the right half.
		out = append(out, mid)
		return s.bisect(out, expr, mid, p1, step/2, depth-1, budget)
	}
	// The boundary lies in the left half.
	out = s.bisect(out, expr, p0, mid, step/2, depth-1, budget)
	return append(out, mid)
}

// angleOf returns the pixel-space direction of the segment from a to b.
func angleOf(a, b domain.SamplePoint, pxX, pxY float64) float64 {
	return math.Atan2((b.Y-a.Y)*pxY, (b.X-a.X)*pxX)
}

// turn returns the absolute direction change between two angles, in [0, pi].
func turn(a, b float64) float64 {
	d := math.Abs(b - a)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// intervalAngles returns the pixel-space direction of every base interval,
// NaN where either endpoint is a gap.
func intervalAngles(base []domain.SamplePoint, pxX, pxY float64) []float64 {
	angles := make([]float64, len(base)-1)
	for i := range angles {
		if base[i].Gap() || base[i+1].Gap() {
			angles[i] = math.NaN()
			continue
		}
		angles[i] = angleOf(base[i], base[i+1], pxX, pxY)
	}
	return angles
}

// bendsAt reports whether interval i turns sharply against either neighbour.
func bendsAt(angles []float64, i int) bool {
	a := angles[i]
	if math.IsNaN(a) {
		return false
	}
	if i > 0 && !math.IsNaN(angles[i-1]) && turn(angles[i-1], a) > sharpTurn {
		return true
	}
	if i+1 < len(angles) && !math.IsNaN(angles[i+1]) && turn(a, angles[i+1]) > sharpTurn {
		return true
	}
	return false
}
