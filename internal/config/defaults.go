package config

import "chromacraft/palette"

// DefaultCount is the palette size when none is given.
const DefaultCount = 10

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Count:       DefaultCount,
		MinDiff:     palette.DefaultMinDiff,
		MaxDiff:     palette.DefaultMaxDiff,
		Sampler:     palette.SamplerUniform,
		MaxAttempts: palette.DefaultMaxAttempts,
		LogLevel:    "warn",
		Swatch: SwatchConfig{
			Columns:   6,
			Cell:      90,
			LabelSize: 10,
		},
	}
}
