// Package config defines all configuration structures for the
// Mizan-Intelligence document processing core.  No I/O or parsing logic lives
// here — only plain data types and validation.
package config

import "fmt"

// ProcessingConfig holds tunables for the extraction pipeline.
type ProcessingConfig struct {
	// MinArticleLength is the minimum article body length, in runes, for an
	// article to be retained.  Shorter matches are treated as noise (stray
	// heading matches).
	MinArticleLength int `mapstructure:"min_article_length"`

	// MaxKeywords caps the keyword list produced per article.
	MaxKeywords int `mapstructure:"max_keywords"`

	// MaxTextLength bounds the amount of extracted text passed into the
	// segmentation passes; 0 means unbounded.
	MaxTextLength int `mapstructure:"max_text_length"`

	// BatchConcurrency is the worker count used by the concurrent batch
	// variant.  The sequential batch API ignores it.
	BatchConcurrency int `mapstructure:"batch_concurrency"`

	// DescriptionWindow is the leading character window scanned for the
	// law-source description sentence.
	DescriptionWindow int `mapstructure:"description_window"`
}

// LogConfig carries logger construction parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"

	// OutputPaths lists zap sink URLs or file paths; "stdout"/"stderr" are
	// special values.  Defaults to ["stdout"].
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig controls the prometheus registry.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the root configuration object.
type Config struct {
	Processing ProcessingConfig `mapstructure:"processing"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Processing.MinArticleLength < 1 {
		return fmt.Errorf("config: processing.min_article_length must be positive, got %d", c.Processing.MinArticleLength)
	}
	if c.Processing.MaxKeywords < 1 {
		return fmt.Errorf("config: processing.max_keywords must be positive, got %d", c.Processing.MaxKeywords)
	}
	if c.Processing.MaxTextLength < 0 {
		return fmt.Errorf("config: processing.max_text_length must not be negative, got %d", c.Processing.MaxTextLength)
	}
	if c.Processing.BatchConcurrency < 1 {
		return fmt.Errorf("config: processing.batch_concurrency must be positive, got %d", c.Processing.BatchConcurrency)
	}
	if c.Processing.DescriptionWindow < 1 {
		return fmt.Errorf("config: processing.description_window must be positive, got %d", c.Processing.DescriptionWindow)
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: log.format must be \"json\" or \"console\", got %q", c.Log.Format)
	}
	return nil
}
