package domain

import "math"

// maxGridPos bounds the bucket index of a grid position; beyond it the
// int64 arithmetic of cache keys would overflow.
const maxGridPos = float64(1 << 62)

// GridStep returns the evaluation grid implied by a pixel step: the largest
// power of two not above it. Power-of-two grids nest across zoom levels, so
// neighbouring views and refinement levels share cached samples. Returns 0
// when the step is unusable.
func GridStep(step float64) float64 {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return 0
	}
	_, exp := math.Frexp(step)
	return math.Ldexp(1, exp-1)
}

// GridSnap moves x to the center of its bucket on the grid implied by step.
// Every x inside a bucket maps to the same center, which is where the
// expression actually gets evaluated. Unusable steps and positions too far
// from the origin leave x unchanged.
func GridSnap(x, step float64) float64 {
	gs := GridStep(step)
	if gs == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	pos := x / gs
	if math.Abs(pos) >= maxGridPos {
		return x
	}
	return math.Round(pos) * gs
}
