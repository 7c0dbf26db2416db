package domain

import (
	"iter"
	"math"
)

// Quality describes how thoroughly a sample set covers the viewport.
type Quality int

const (
	// QualityCoarse is the fast pass used while the view is moving:
	// one sample per pixel column, no refinement.
	QualityCoarse Quality = iota

	// QualityRefined is the settled pass: the coarse grid plus adaptive
	// subdivision near sharp features and gap boundaries.
	QualityRefined
)

// String returns the lowercase name of the quality level.
func (q Quality) String() string {
	switch q {
	case QualityCoarse:
		return "coarse"
	case QualityRefined:
		return "refined"
	default:
		return "unknown"
	}
}

// SamplePoint is a single evaluated point of the curve. A NaN Y marks a gap:
// the function is undefined (or overflowed) at X and nothing may be drawn
// through it.
type SamplePoint struct {
	X float64
	Y float64
}

// Gap reports whether the point is a gap marker rather than a drawable value.
func (p SamplePoint) Gap() bool { return math.IsNaN(p.Y) }

// GapAt returns a gap marker at the given x.
func GapAt(x float64) SamplePoint {
	return SamplePoint{X: x, Y: math.NaN()}
}

// SampleSet is the ordered result of one sampling pass. Points are strictly
// increasing in X; gap markers split the curve into segments.
type SampleSet struct {
	Quality Quality
	Points  []SamplePoint
}

// Len returns the number of points, gap markers included.
func (s SampleSet) Len() int { return len(s.Points) }

// Gaps returns the number of gap markers.
func (s SampleSet) Gaps() int {
	n := 0
	for _, p := range s.Points {
		if p.Gap() {
			n++
		}
	}
	return n
}

// Segments iterates the maximal gap-free runs of the sample set, in order.
// Each yielded slice aliases the underlying points and is never empty.
// A renderer draws lines within a segment and nothing across segments.
func (s SampleSet) Segments() iter.Seq[[]SamplePoint] {
	return func(yield func([]SamplePoint) bool) {
		start := -1
		for i, p := range s.Points {
			if p.Gap() {
				if start >= 0 && !yield(s.Points[start:i]) {
					return
				}
				start = -1
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			yield(s.Points[start:])
		}
	}
}
