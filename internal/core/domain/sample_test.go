package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graf/internal/core/domain"
)

func points(ys ...float64) []domain.SamplePoint {
	pts := make([]domain.SamplePoint, len(ys))
	for i, y := range ys {
		pts[i] = domain.SamplePoint{X: float64(i), Y: y}
	}
	return pts
}

func TestSampleSet_Segments(t *testing.T) {
	gap := math.NaN()

	tests := []struct {
		name     string
		points   []domain.SamplePoint
		wantLens []int
	}{
		{
			name:     "No gaps is one segment",
			points:   points(1, 2, 3, 4),
			wantLens: []int{4},
		},
		{
			name:     "Gap in the middle splits",
			points:   points(1, 2, gap, 3, 4),
			wantLens: []int{2, 2},
		},
		{
			name:     "Leading and trailing gaps are dropped",
			points:   points(gap, 1, 2, gap),
			wantLens: []int{2},
		},
		{
			name:     "Consecutive gaps collapse",
			points:   points(1, gap, gap, gap, 2),
			wantLens: []int{1, 1},
		},
		{
			name:     "All gaps yields nothing",
			points:   points(gap, gap),
			wantLens: nil,
		},
		{
			name:     "Empty set yields nothing",
			points:   nil,
			wantLens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := domain.SampleSet{Points: tt.points}

			var lens []int
			for seg := range set.Segments() {
				require.NotEmpty(t, seg)
				for _, p := range seg {
					assert.False(t, p.Gap())
				}
				lens = append(lens, len(seg))
			}
			assert.Equal(t, tt.wantLens, lens)
		})
	}
}

func TestSampleSet_Gaps(t *testing.T) {
	set := domain.SampleSet{Points: []domain.SamplePoint{
		{X: 0, Y: 1},
		domain.GapAt(1),
		{X: 2, Y: 2},
		domain.GapAt(3),
	}}

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, 2, set.Gaps())
	assert.True(t, set.Points[1].Gap())
	assert.False(t, set.Points[2].Gap())
}

func TestQuality_String(t *testing.T) {
	assert.Equal(t, "coarse", domain.QualityCoarse.String())
	assert.Equal(t, "refined", domain.QualityRefined.String())
	assert.Equal(t, "unknown", domain.Quality(42).String())
}

func TestFrameStats_HitRate(t *testing.T) {
	assert.Zero(t, domain.FrameStats{}.HitRate())
	assert.InDelta(t, 0.75, domain.FrameStats{CacheHits: 3, CacheMisses: 1}.HitRate(), 1e-12)
}

func TestExprID_String(t *testing.T) {
	assert.Equal(t, "00000000000000ff", domain.ExprID(255).String())
	assert.Len(t, domain.ExprID(math.MaxUint64).String(), 16)
}
