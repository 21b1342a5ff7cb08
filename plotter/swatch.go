package plotter

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"chromacraft/palette"
)

// SwatchOptions holds the configuration for rendering a palette grid.
type SwatchOptions struct {
	Columns    int      `json:"columns"`    // Max swatches per row (default 6)
	Cell       int      `json:"cell"`       // Swatch edge in pixels (default 90)
	Spacing    float64  `json:"spacing"`    // Row pitch relative to Cell, leaves room for labels (default 1.2)
	ShowLabels bool     `json:"labels"`     // Label each swatch
	Labels     []string `json:"names"`      // Custom labels, one per color (default: hex strings)
	LabelSize  float64  `json:"labelSize"`  // Label font size in points (default 10)
	Background string   `json:"background"` // Background hex color (default white)
}

// DefaultSwatchOptions returns labelled swatches in rows of six.
func DefaultSwatchOptions() SwatchOptions {
	return SwatchOptions{
		Columns:    6,
		Cell:       90,
		Spacing:    1.2,
		ShowLabels: true,
		LabelSize:  10,
	}
}

func (o *SwatchOptions) applyDefaults() {
	def := DefaultSwatchOptions()
	if o.Columns <= 0 {
		o.Columns = def.Columns
	}
	if o.Cell <= 0 {
		o.Cell = def.Cell
	}
	if o.Spacing < 1 {
		o.Spacing = def.Spacing
	}
	if o.LabelSize <= 0 {
		o.LabelSize = def.LabelSize
	}
}

// calculateLayout returns the grid shape for n swatches.
func calculateLayout(n, maxCols int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	cols = min(n, maxCols)
	rows = (n + cols - 1) / cols
	return rows, cols
}

// labelFace loads the embedded Go font at the given size.
func labelFace(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// textColor picks black or white, whichever reads better on bg.
func textColor(bg palette.Color) color.Color {
	if bg.Luma() > 0.5 {
		return color.Black
	}
	return color.White
}

// PlotPalette renders p as a grid of swatches, optionally labelled with each
// color's hex string or the caller's labels. Labels sit in the band above
// each swatch.
func PlotPalette(p palette.Palette, opts SwatchOptions) (image.Image, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("no colors to plot")
	}
	if opts.Labels != nil && len(opts.Labels) != len(p) {
		return nil, fmt.Errorf("got %d labels for %d colors", len(opts.Labels), len(p))
	}
	opts.applyDefaults()

	bg := palette.RGB(1, 1, 1)
	if opts.Background != "" {
		c, err := palette.ParseColor(opts.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		bg = c
	}

	rows, cols := calculateLayout(len(p), opts.Columns)
	cell := float64(opts.Cell)
	pitch := cell * opts.Spacing
	band := pitch - cell

	w := cols * opts.Cell
	h := int(math.Ceil(float64(rows) * pitch))
	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()

	if opts.ShowLabels {
		face, err := labelFace(opts.LabelSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
	}

	for i, c := range p {
		row := i / cols
		col := i % cols
		x := float64(col) * cell
		y := float64(row) * pitch

		dc.SetColor(c)
		dc.DrawRectangle(x, y+band, cell, cell)
		dc.Fill()

		if !opts.ShowLabels {
			continue
		}
		label := c.Hex()
		if opts.Labels != nil {
			label = opts.Labels[i]
		}
		dc.SetColor(textColor(bg))
		if band > 0 {
			dc.DrawStringAnchored(label, x+cell/2, y+band/2, 0.5, 0.5)
		} else {
			// no room above: write on the swatch itself
			dc.SetColor(textColor(c))
			dc.DrawStringAnchored(label, x+cell/2, y+band+cell/2, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}
