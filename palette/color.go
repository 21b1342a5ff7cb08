package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with each channel normally in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r" toml:"r"`
	G float64 `json:"g" yaml:"g" toml:"g"`
	B float64 `json:"b" yaml:"b" toml:"b"`
}

// RGB is shorthand for Color{r, g, b}.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Hex renders the color as "#rrggbb". Each channel is scaled to [0, 255] and
// truncated, so the conversion is lossy and one-way.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

// String makes Color satisfy fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

// Luma is the Rec. 601 luma of the color, used to pick readable text on it.
func (c Color) Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// RGBA implements image/color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(channel8(c.R))
	g = uint32(channel8(c.G))
	b = uint32(channel8(c.B))
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// FromColor converts any image/color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
}

// ParseColor accepts "#rrggbb", "#rgb" or a comma separated "r,g,b" triple of
// floats.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			// expand #rgb so both forms share the length check below
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil || len(s) != 7 {
			return Color{}, InvalidArgument("color", fmt.Sprintf("%q is not a hex color", s))
		}
		return Color{R: c.R, G: c.G, B: c.B}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, InvalidArgument("color", fmt.Sprintf("%q: expected #rrggbb or r,g,b", s))
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, InvalidArgument("color", fmt.Sprintf("%q: channel %d is not a number", s, i))
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// channel8 clamps to [0, 1] and truncates to a byte.
func channel8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}

// Palette is an ordered list of colors in acceptance order.
type Palette []Color

// Hex returns the "#rrggbb" form of every color.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Valid reports whether every pair of colors lies within [minDiff, maxDiff].
func (p Palette) Valid(minDiff, maxDiff float64) bool {
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			d := Distance(p[i], p[j])
			if d < minDiff || d > maxDiff {
				return false
			}
		}
	}
	return true
}
