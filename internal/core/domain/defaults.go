package domain

import "time"

const (
	// DefaultXMin and friends are the bounds of the standard view.
	DefaultXMin = -10.0
	DefaultXMax = 10.0
	DefaultYMin = -10.0
	DefaultYMax = 10.0

	// MinSpan is the smallest data-space extent an axis may be zoomed to.
	MinSpan = 0.1

	// MaxSpan is the largest data-space extent an axis may be zoomed to.
	MaxSpan = 1e12

	// DefaultNudgeFraction is the fraction of the visible span an arrow key
	// pans by.
	DefaultNudgeFraction = 0.1

	// DefaultWheelZoomStep is the fraction of the visible span one wheel
	// tick removes (zoom in) or adds (zoom out).
	DefaultWheelZoomStep = 0.1

	// DefaultKeyZoomFactor is the factor a keyboard zoom divides (in) or
	// multiplies (out) the visible span by.
	DefaultKeyZoomFactor = 2.0

	// DefaultRefineDepth caps the recursive subdivision depth of the
	// refined sampling pass.
	DefaultRefineDepth = 3

	// DefaultPointBudgetFactor bounds a refined pass to this multiple of
	// the coarse point count.
	DefaultPointBudgetFactor = 2.0

	// DefaultCacheCeiling is the maximum number of entries the sample
	// cache holds before evicting.
	DefaultCacheCeiling = 65536

	// DefaultOverflowLimit is the magnitude beyond which a sample is
	// treated as overflowed and becomes a gap.
	DefaultOverflowLimit = 1e9

	// DefaultSettleWindow is how long the view must stay still before the
	// refined pass runs.
	DefaultSettleWindow = 120 * time.Millisecond

	// DefaultWatchDebounce is how long the formula file watcher waits for
	// write bursts to end before reloading.
	DefaultWatchDebounce = 250 * time.Millisecond

	// DefaultRenderCols and DefaultRenderRows are the terminal cell grid
	// used when the output size cannot be detected.
	DefaultRenderCols = 80
	DefaultRenderRows = 24

	// DefaultPlotWidth and DefaultPlotHeight are the pixel grid used before
	// the first size report from the front-end arrives.
	DefaultPlotWidth  = 160
	DefaultPlotHeight = 96
)
