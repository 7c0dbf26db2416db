package ports

import "go.trai.ch/graf/internal/core/domain"

// CacheStats is a snapshot of sample cache counters.
type CacheStats struct {
	// Hits and Misses count lookups since the cache was created.
	Hits   uint64
	Misses uint64
	// Evictions counts entries dropped to stay under the ceiling.
	Evictions uint64
	// Entries is the current number of cached samples.
	Entries int
}

// SampleCache memoizes expression evaluations at pixel granularity.
// Lookups quantize x to the bucket implied by step, so repeated passes over
// an unchanged view hit instead of re-evaluating. Keys are scoped by the
// expression identity: entries can never be served for a different
// expression, only evicted for space.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type SampleCache interface {
	// GetOrCompute returns the cached sample for x at the given pixel step,
	// computing and storing it on a miss. The returned value is the
	// expression evaluated at the center of x's bucket, so a bucket always
	// maps to one value regardless of which x inside it was asked for.
	GetOrCompute(expr CompiledExpression, x, step float64) float64

	// Invalidate drops every cached sample belonging to the expression.
	Invalidate(id domain.ExprID)

	// Clear drops all cached samples.
	Clear()

	// Stats returns a snapshot of the cache counters.
	Stats() CacheStats
}
