package plotter

import (
	"fmt"

	"chromacraft/palette"
)

const (
	seriesSaturation = 0.7
	seriesValue      = 0.9
	// seriesAttempts keeps chart rendering snappy; Spaced takes over beyond it.
	seriesAttempts = 20000
)

// seriesColors returns n pairwise distinguishable colors for chart series.
// Bright hues are sampled at fixed saturation and value so lines stay
// readable on white. If the band cannot be met (many series, large minDiff)
// evenly spaced hues are used instead.
func seriesColors(n int, minDiff float64, sampler string) palette.Palette {
	if n <= 0 {
		return nil
	}
	if minDiff <= 0 {
		minDiff = palette.DefaultMinDiff
	}

	s := palette.HSV(nil, seriesSaturation, seriesValue)
	if sampler != "" {
		named, err := palette.SamplerByName(sampler, nil)
		if err != nil {
			fmt.Printf("Warning: %v, using default series colors.\n", err)
		} else {
			s = named
		}
	}

	cols, err := palette.Generate(n,
		palette.WithMinDiff(minDiff),
		palette.WithSampler(s),
		palette.WithMaxAttempts(seriesAttempts),
	)
	if err != nil {
		fmt.Printf("Warning: could not generate %d distinguishable series colors (%v), falling back to spaced hues.\n", n, err)
		return palette.Spaced(n, seriesSaturation, seriesValue)
	}
	return cols
}
