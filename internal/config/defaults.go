package config

// Default values applied to unset fields.  MinArticleLength of 11 matches the
// segmentation rule that article bodies of 10 runes or fewer are noise.
const (
	DefaultMinArticleLength  = 11
	DefaultMaxKeywords       = 10
	DefaultMaxTextLength     = 2_000_000
	DefaultBatchConcurrency  = 4
	DefaultDescriptionWindow = 500
)

// ApplyDefaults fills in platform defaults for every unset field of cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Processing.MinArticleLength == 0 {
		cfg.Processing.MinArticleLength = DefaultMinArticleLength
	}
	if cfg.Processing.MaxKeywords == 0 {
		cfg.Processing.MaxKeywords = DefaultMaxKeywords
	}
	if cfg.Processing.MaxTextLength == 0 {
		cfg.Processing.MaxTextLength = DefaultMaxTextLength
	}
	if cfg.Processing.BatchConcurrency == 0 {
		cfg.Processing.BatchConcurrency = DefaultBatchConcurrency
	}
	if cfg.Processing.DescriptionWindow == 0 {
		cfg.Processing.DescriptionWindow = DefaultDescriptionWindow
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "mizan"
	}
}

// NewDefault returns a Config populated entirely with defaults.
func NewDefault() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
