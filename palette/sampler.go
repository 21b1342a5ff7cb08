package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Sampler produces one candidate color per call. The generator places no
// constraint on the distribution.
type Sampler func() Color

// Sampler names accepted by SamplerByName.
const (
	SamplerUniform = "uniform"
	SamplerHSV     = "hsv"
	SamplerHappy   = "happy"
	SamplerWarm    = "warm"
)

// SamplerNames lists the built-in samplers in a stable order.
var SamplerNames = []string{SamplerUniform, SamplerHSV, SamplerHappy, SamplerWarm}

// float01 draws from r, or from the global source when r is nil.
func float01(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64()
	}
	return r.Float64()
}

// Uniform draws each channel independently and uniformly from [0, 1).
func Uniform(r *rand.Rand) Sampler {
	return func() Color {
		return Color{R: float01(r), G: float01(r), B: float01(r)}
	}
}

// HSV draws a uniformly random hue at fixed saturation and value.
func HSV(r *rand.Rand, s, v float64) Sampler {
	return func() Color {
		red, green, blue := hsv2rgb(float01(r), s, v)
		return Color{R: red, G: green, B: blue}
	}
}

// Happy draws bright, saturated colors from a restricted HSV range.
func Happy(r *rand.Rand) Sampler {
	return func() Color {
		c := colorful.Hsv(float01(r)*360.0, 0.7+float01(r)*0.3, 0.6+float01(r)*0.3)
		return Color{R: c.R, G: c.G, B: c.B}
	}
}

// Warm draws dark, warm colors from a restricted HSV range.
func Warm(r *rand.Rand) Sampler {
	return func() Color {
		c := colorful.Hsv(float01(r)*360.0, 0.5+float01(r)*0.3, 0.3+float01(r)*0.3)
		return Color{R: c.R, G: c.G, B: c.B}
	}
}

// SamplerByName resolves one of SamplerNames. An empty name means uniform.
func SamplerByName(name string, r *rand.Rand) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SamplerUniform:
		return Uniform(r), nil
	case SamplerHSV:
		return HSV(r, 0.7, 0.9), nil
	case SamplerHappy:
		return Happy(r), nil
	case SamplerWarm:
		return Warm(r), nil
	}
	return nil, InvalidArgument("sampler", fmt.Sprintf("unknown sampler %q (want one of %s)", name, strings.Join(SamplerNames, ", ")))
}

// Spaced returns n colors with evenly spaced hues at fixed saturation and
// value. It never fails, which makes it a fallback when Generate does.
func Spaced(n int, s, v float64) Palette {
	cols := make(Palette, 0, n)
	for i := 0; i < n; i++ {
		h := float64(i) / float64(n)
		r, g, b := hsv2rgb(h, s, v)
		cols = append(cols, Color{R: r, G: g, B: b})
	}
	return cols
}

// hsv2rgb converts HSV color values to RGB. h is in [0, 1).
func hsv2rgb(h, s, v float64) (float64, float64, float64) {
	var r, g, b float64
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return r, g, b
}
