package config

// File mirrors the structure of the graf.yaml configuration file. Pointer
// fields distinguish an absent key from an explicit zero, so a partial file
// overlays the defaults key by key.
type File struct {
	Plot    *PlotDTO    `yaml:"plot"`
	Sampler *SamplerDTO `yaml:"sampler"`
	Cache   *CacheDTO   `yaml:"cache"`
	Input   *InputDTO   `yaml:"input"`
	Expr    *ExprDTO    `yaml:"expr"`
}

// PlotDTO sets the initial view and curve appearance.
type PlotDTO struct {
	XMin  *float64 `yaml:"x_min"`
	XMax  *float64 `yaml:"x_max"`
	YMin  *float64 `yaml:"y_min"`
	YMax  *float64 `yaml:"y_max"`
	Color string   `yaml:"color"`
}

// SamplerDTO tunes the sampling passes.
type SamplerDTO struct {
	RefineDepth       *int     `yaml:"refine_depth"`
	PointBudgetFactor *float64 `yaml:"point_budget_factor"`
	OverflowLimit     *float64 `yaml:"overflow_limit"`
}

// CacheDTO tunes the sample cache.
type CacheDTO struct {
	MaxEntries *int `yaml:"max_entries"`
}

// InputDTO tunes interaction behavior. Durations are in milliseconds.
type InputDTO struct {
	SettleMs        *int     `yaml:"settle_ms"`
	NudgeFraction   *float64 `yaml:"nudge_fraction"`
	WheelZoomStep   *float64 `yaml:"wheel_zoom_step"`
	KeyZoomFactor   *float64 `yaml:"key_zoom_factor"`
	WatchDebounceMs *int     `yaml:"watch_debounce_ms"`
}

// ExprDTO restricts and extends the expression language.
type ExprDTO struct {
	Functions []string           `yaml:"functions"`
	Constants map[string]float64 `yaml:"constants"`
}
