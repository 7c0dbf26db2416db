// Package cache implements the in-memory sample cache. Lookups are bucketed
// at pixel granularity so that interactive redraws of an unchanged region
// reuse earlier evaluations instead of recomputing them.
package cache

import (
	"math"
	"sync"

	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports"
)

// key addresses one cached sample. The step is carried as a power-of-two
// exponent; together with the bucket index it pins the exact x the sample
// was evaluated at, so a key can never map to two values.
type key struct {
	id      domain.ExprID
	stepExp int
	bucket  int64
}

// Cache implements ports.SampleCache with FIFO eviction. It is safe for
// concurrent use, although the engine drives it from a single goroutine.
type Cache struct {
	mu      sync.Mutex
	entries map[key]float64
	order   []key
	head    int
	max     int

	hits      uint64
	misses    uint64
	evictions uint64
}

var _ ports.SampleCache = (*Cache)(nil)

// New creates a Cache with the configured entry ceiling.
func New(cfg domain.CacheConfig) *Cache {
	max := cfg.MaxEntries
	if max <= 0 {
		max = domain.DefaultCacheCeiling
	}
	return &Cache{
		entries: make(map[key]float64, min(max, 4096)),
		max:     max,
	}
}

// GetOrCompute returns the sample for x's bucket at the given step,
// evaluating the expression at the bucket center on a miss. Degenerate
// inputs (non-positive step, NaN x, coordinates beyond bucket range) bypass
// the cache and evaluate directly.
func (c *Cache) GetOrCompute(expr ports.CompiledExpression, x, step float64) float64 {
	k, center, ok := bucketKey(expr.ID(), x, step)
	if !ok {
		return expr.EvalAt(x)
	}

	c.mu.Lock()
	if y, hit := c.entries[k]; hit {
		c.hits++
		c.mu.Unlock()
		return y
	}
	c.misses++
	c.mu.Unlock()

	// Evaluate outside the lock; purity makes a racing duplicate harmless.
	y := expr.EvalAt(center)

	c.mu.Lock()
	c.insert(k, y)
	c.mu.Unlock()
	return y
}

// Invalidate drops every entry belonging to the expression.
func (c *Cache) Invalidate(id domain.ExprID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.id == id {
			delete(c.entries, k)
		}
	}
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[key]float64, min(c.max, 4096))
	c.order = c.order[:0]
	c.head = 0
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() ports.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ports.CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Entries:   len(c.entries),
	}
}

// insert stores an entry and evicts in insertion order past the ceiling.
// Must hold c.mu.
func (c *Cache) insert(k key, y float64) {
	if _, exists := c.entries[k]; exists {
		c.entries[k] = y
		return
	}
	c.entries[k] = y
	c.order = append(c.order, k)

	for len(c.entries) > c.max && c.head < len(c.order) {
		victim := c.order[c.head]
		c.head++
		// Invalidated entries leave stale order slots behind; skip them.
		if _, live := c.entries[victim]; live {
			delete(c.entries, victim)
			c.evictions++
		}
	}

	// Compact the drained prefix once it dominates the slice.
	if c.head > len(c.order)/2 && c.head > 1024 {
		c.order = append(c.order[:0], c.order[c.head:]...)
		c.head = 0
	}
}

// bucketKey quantizes x to a bucket index on the power-of-two grid implied
// by step. The returned center is the exact evaluation point for the bucket.
func bucketKey(id domain.ExprID, x, step float64) (key, float64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return key{}, 0, false
	}
	qstep := domain.GridStep(step)
	if qstep == 0 {
		return key{}, 0, false
	}

	pos := x / qstep
	const maxBucket = 1 << 62
	if pos >= maxBucket || pos <= -maxBucket {
		return key{}, 0, false
	}
	_, exp := math.Frexp(qstep)
	bucket := int64(math.Round(pos))
	return key{id: id, stepExp: exp, bucket: bucket}, float64(bucket) * qstep, true
}
