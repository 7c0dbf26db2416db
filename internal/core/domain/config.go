package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// SamplerConfig tunes the adaptive sampling passes.
type SamplerConfig struct {
	// RefineDepth caps recursive subdivision in the refined pass.
	RefineDepth int
	// PointBudgetFactor bounds a refined pass to this multiple of the
	// coarse point count.
	PointBudgetFactor float64
	// OverflowLimit is the magnitude beyond which samples become gaps.
	OverflowLimit float64
}

// CacheConfig tunes the sample cache.
type CacheConfig struct {
	// MaxEntries is the eviction ceiling.
	MaxEntries int
}

// InputConfig tunes interaction behavior.
type InputConfig struct {
	// SettleWindow is the quiescence period before the refined pass.
	SettleWindow time.Duration
	// NudgeFraction is the per-arrow-key pan as a fraction of the span.
	NudgeFraction float64
	// WheelZoomStep is the span fraction one wheel tick changes.
	WheelZoomStep float64
	// KeyZoomFactor is the span factor for keyboard zoom.
	KeyZoomFactor float64
	// WatchDebounce is the quiet period before a changed formula file is
	// reloaded.
	WatchDebounce time.Duration
}

// PlotConfig sets the initial view and curve appearance.
type PlotConfig struct {
	XMin  float64
	XMax  float64
	YMin  float64
	YMax  float64
	Color string
}

// ExprConfig restricts and extends the expression language.
type ExprConfig struct {
	// Functions, when non-empty, restricts the callable functions to the
	// named subset of the built-in whitelist.
	Functions []string
	// Constants adds named constants on top of the built-in ones.
	Constants map[string]float64
}

// Config is the complete runtime configuration.
type Config struct {
	Sampler SamplerConfig
	Cache   CacheConfig
	Input   InputConfig
	Plot    PlotConfig
	Expr    ExprConfig
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		Sampler: SamplerConfig{
			RefineDepth:       DefaultRefineDepth,
			PointBudgetFactor: DefaultPointBudgetFactor,
			OverflowLimit:     DefaultOverflowLimit,
		},
		Cache: CacheConfig{
			MaxEntries: DefaultCacheCeiling,
		},
		Input: InputConfig{
			SettleWindow:  DefaultSettleWindow,
			NudgeFraction: DefaultNudgeFraction,
			WheelZoomStep: DefaultWheelZoomStep,
			KeyZoomFactor: DefaultKeyZoomFactor,
			WatchDebounce: DefaultWatchDebounce,
		},
		Plot: PlotConfig{
			XMin: DefaultXMin,
			XMax: DefaultXMax,
			YMin: DefaultYMin,
			YMax: DefaultYMax,
		},
	}
}

// Validate checks every tunable for sanity. It returns ErrConfigInvalid
// annotated with the offending field.
func (c Config) Validate() error {
	fail := func(field string, value any) error {
		return zerr.With(zerr.With(ErrConfigInvalid, "field", field), "value", value)
	}

	if c.Sampler.RefineDepth < 0 || c.Sampler.RefineDepth > 16 {
		return fail("sampler.refine_depth", c.Sampler.RefineDepth)
	}
	if c.Sampler.PointBudgetFactor < 1 {
		return fail("sampler.point_budget_factor", c.Sampler.PointBudgetFactor)
	}
	if c.Sampler.OverflowLimit <= 0 {
		return fail("sampler.overflow_limit", c.Sampler.OverflowLimit)
	}
	if c.Cache.MaxEntries <= 0 {
		return fail("cache.max_entries", c.Cache.MaxEntries)
	}
	if c.Input.SettleWindow <= 0 {
		return fail("input.settle_ms", c.Input.SettleWindow)
	}
	if c.Input.NudgeFraction <= 0 || c.Input.NudgeFraction > 1 {
		return fail("input.nudge_fraction", c.Input.NudgeFraction)
	}
	if c.Input.WheelZoomStep <= 0 || c.Input.WheelZoomStep >= 1 {
		return fail("input.wheel_zoom_step", c.Input.WheelZoomStep)
	}
	if c.Input.KeyZoomFactor <= 1 {
		return fail("input.key_zoom_factor", c.Input.KeyZoomFactor)
	}
	if c.Input.WatchDebounce <= 0 {
		return fail("input.watch_debounce_ms", c.Input.WatchDebounce)
	}
	if c.Plot.XMin >= c.Plot.XMax || c.Plot.XMax-c.Plot.XMin < MinSpan {
		return fail("plot.x", [2]float64{c.Plot.XMin, c.Plot.XMax})
	}
	if c.Plot.YMin >= c.Plot.YMax || c.Plot.YMax-c.Plot.YMin < MinSpan {
		return fail("plot.y", [2]float64{c.Plot.YMin, c.Plot.YMax})
	}
	return nil
}
