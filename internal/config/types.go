package config

import "time"

// Config holds the generator and rendering defaults used by the CLI.
type Config struct {
	Count       int           `yaml:"count,omitempty" toml:"count,omitempty"`
	MinDiff     float64       `yaml:"min_diff,omitempty" toml:"min_diff,omitempty"`
	MaxDiff     float64       `yaml:"max_diff,omitempty" toml:"max_diff,omitempty"`
	Sampler     string        `yaml:"sampler,omitempty" toml:"sampler,omitempty"`
	MaxAttempts int           `yaml:"max_attempts,omitempty" toml:"max_attempts,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
	Hex         bool          `yaml:"hex,omitempty" toml:"hex,omitempty"`
	Seeds       []string      `yaml:"seeds,omitempty" toml:"seeds,omitempty"`
	LogLevel    string        `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	Swatch      SwatchConfig  `yaml:"swatch,omitempty" toml:"swatch,omitempty"`
}

// SwatchConfig controls palette image rendering.
type SwatchConfig struct {
	Columns   int     `yaml:"columns,omitempty" toml:"columns,omitempty"`
	Cell      int     `yaml:"cell,omitempty" toml:"cell,omitempty"`
	Labels    *bool   `yaml:"labels,omitempty" toml:"labels,omitempty"`
	LabelSize float64 `yaml:"label_size,omitempty" toml:"label_size,omitempty"`
}

// ShowLabels reports whether swatches are labelled, defaulting to true.
func (s SwatchConfig) ShowLabels() bool {
	return s.Labels == nil || *s.Labels
}
