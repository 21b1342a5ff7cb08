package plotter

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"chromacraft/palette"
)

// PlotOptions holds the configuration for generating the plot.
type PlotOptions struct {
	Columns  []string `json:"columns"`           // Columns to plot
	MaxRange float64  `json:"maxRange"`          // Max X value, plot points <= this (optional, <= 0 means no limit)
	Size     string   `json:"size,omitempty"`    // Output image size as "WIDTHxHEIGHT" string (e.g., "800x600")
	Width    int      `json:"width"`             // Output image width (overridden by Size if provided)
	Height   int      `json:"height"`            // Output image height (overridden by Size if provided)
	Skip     int      `json:"skip"`              // Data thinning (plot every Nth point, default=1)
	XData    bool     `json:"xdata"`             // When true, CSV has X-axis values in first column
	XScale   string   `json:"xscale,omitempty"`  // Map X values to range "START,END" (optional)
	Title    string   `json:"title"`             // Graph title
	MinDiff  float64  `json:"minDiff"`           // Minimum RGB distance between series colors (default 0.2)
	Sampler  string   `json:"sampler,omitempty"` // Candidate sampler for series colors (default bright hues)
}

// DefaultPlotOptions returns the defaults used when a field is left empty.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:   768,
		Height:  512,
		Skip:    1,
		Title:   "Scatter Plot from CSV",
		MinDiff: palette.DefaultMinDiff,
	}
}

// ApplySize parses Size ("WIDTHxHEIGHT") into Width and Height. Malformed or
// non-positive values leave the current dimensions in place.
func (o *PlotOptions) ApplySize() {
	if o.Size == "" {
		return
	}
	wh := strings.Split(o.Size, "x")
	if len(wh) != 2 {
		fmt.Printf("Warning: Invalid format for 'size' option ('%s'), keeping %dx%d.\n", o.Size, o.Width, o.Height)
		return
	}
	w, errW := strconv.Atoi(wh[0])
	h, errH := strconv.Atoi(wh[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		fmt.Printf("Warning: Invalid values in 'size' option ('%s'), keeping %dx%d.\n", o.Size, o.Width, o.Height)
		return
	}
	o.Width, o.Height = w, h
}

func (o *PlotOptions) applyDefaults() {
	o.ApplySize()
	def := DefaultPlotOptions()
	if o.Skip < 1 {
		o.Skip = def.Skip
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Title == "" {
		o.Title = def.Title
	}
	if o.MinDiff <= 0 {
		o.MinDiff = def.MinDiff
	}
}

// table is the parsed CSV with a guaranteed X column at index 0.
type table struct {
	header []string
	rows   [][]string
}

// series names a plotted column and where it lives in the table.
type series struct {
	name string
	idx  int
}

// bounds is the X display range and the Y data range.
type bounds struct {
	origXMin, origXMax float64
	plotXMin, plotXMax float64
	yMin, yMax         float64
	scaled             bool
}

// GeneratePlot generates a line/scatter plot image from CSV data and options.
// It returns a base64 encoded PNG string and an error if any occurred.
func GeneratePlot(csvData string, opts PlotOptions) (string, error) {
	img, err := RenderPlot(csvData, opts)
	if err != nil {
		return "", err
	}
	return EncodeBase64PNG(img)
}

// RenderPlot draws the plot described by opts. Each series gets its own
// color from a distinguishable palette.
func RenderPlot(csvData string, opts PlotOptions) (image.Image, error) {
	opts.applyDefaults()
	if len(opts.Columns) == 0 {
		return nil, fmt.Errorf("no columns specified to plot")
	}

	tbl, err := readTable(csvData, opts.XData)
	if err != nil {
		return nil, err
	}

	plotted := tbl.resolve(opts.Columns)
	if len(plotted) == 0 {
		return nil, fmt.Errorf("none of the specified columns were found in the CSV")
	}

	rows, err := selectRows(tbl.rows, opts.MaxRange, opts.Skip)
	if err != nil {
		return nil, err
	}

	b, err := computeBounds(rows, plotted, opts.XScale)
	if err != nil {
		return nil, err
	}

	w, h := opts.Width, opts.Height
	margin := 60.0
	usableW := float64(w) - 2*margin
	usableH := float64(h) - 2*margin
	if usableW <= 0 || usableH <= 0 {
		return nil, fmt.Errorf("image size too small for margins")
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	drawAxes(dc, b, margin, usableW, usableH)

	colors := seriesColors(len(plotted), opts.MinDiff, opts.Sampler)
	for i, s := range plotted {
		points := project(rows, s.idx, b, margin, usableW, usableH, w, h)
		drawSeries(dc, points, colors[i])
	}
	drawLegend(dc, plotted, colors, float64(w)-margin+10, margin)

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(opts.Title, float64(w)/2, 25, 0.5, 0.5)

	return dc.Image(), nil
}

// readTable parses the CSV. Without xdata a sequential X column is prepended.
func readTable(csvData string, xdata bool) (*table, error) {
	records, err := csv.NewReader(strings.NewReader(csvData)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows found in CSV")
	}

	tbl := &table{header: records[0], rows: records[1:]}
	if !xdata {
		tbl.header = append([]string{"_generated_x_"}, tbl.header...)
		for i := range tbl.rows {
			tbl.rows[i] = append([]string{strconv.Itoa(i + 1)}, tbl.rows[i]...)
		}
	} else if len(tbl.header) == 0 || len(tbl.rows[0]) == 0 {
		return nil, fmt.Errorf("csv requires at least one column when xdata is true")
	}
	return tbl, nil
}

// resolve maps column names to indexes, skipping unknown ones.
func (t *table) resolve(columns []string) []series {
	index := make(map[string]int, len(t.header))
	for i, h := range t.header {
		index[h] = i
	}

	var out []series
	for _, name := range columns {
		idx, ok := index[name]
		if !ok {
			fmt.Printf("Warning: Column '%s' not found in CSV header, skipping.\n", name)
			continue
		}
		out = append(out, series{name: name, idx: idx})
	}
	return out
}

// selectRows applies the X range filter, then keeps every skip-th row.
func selectRows(rows [][]string, maxRange float64, skip int) ([][]string, error) {
	filtered := rows
	if maxRange > 0 {
		filtered = nil
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			x, err := strconv.ParseFloat(row[0], 64)
			if err == nil && x <= maxRange {
				filtered = append(filtered, row)
			}
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no data points remain after filtering by range")
	}

	var thinned [][]string
	for i := 0; i < len(filtered); i += skip {
		thinned = append(thinned, filtered[i])
	}
	return thinned, nil
}

func cell(row []string, idx int) (float64, bool) {
	if len(row) <= idx {
		return 0, false
	}
	v, err := strconv.ParseFloat(row[idx], 64)
	return v, err == nil
}

func computeBounds(rows [][]string, plotted []series, xscale string) (bounds, error) {
	b := bounds{origXMin: math.Inf(1), origXMax: math.Inf(-1), yMin: math.Inf(1), yMax: math.Inf(-1)}

	for _, row := range rows {
		if x, ok := cell(row, 0); ok {
			b.origXMin = math.Min(b.origXMin, x)
			b.origXMax = math.Max(b.origXMax, x)
		}
	}
	if b.origXMin > b.origXMax {
		return b, fmt.Errorf("could not determine valid X-axis range from data")
	}
	if b.origXMin == b.origXMax {
		b.origXMax = b.origXMin + 1.0
	}

	b.plotXMin, b.plotXMax = b.origXMin, b.origXMax
	if xscale != "" {
		parts := strings.Split(xscale, ",")
		s, errS := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		var e float64
		errE := fmt.Errorf("missing end")
		if len(parts) == 2 {
			e, errE = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		}
		if errS == nil && errE == nil && e > s {
			b.plotXMin, b.plotXMax = s, e
			b.scaled = true
		} else {
			fmt.Println("Warning: Invalid xscale format or range, using original data range.")
		}
	}

	found := false
	for _, s := range plotted {
		for _, row := range rows {
			if y, ok := cell(row, s.idx); ok {
				b.yMin = math.Min(b.yMin, y)
				b.yMax = math.Max(b.yMax, y)
				found = true
			}
		}
	}
	if !found {
		return b, fmt.Errorf("no valid numeric data found in the specified Y columns")
	}
	if b.yMin == b.yMax {
		b.yMax = b.yMin + 1.0
	}
	return b, nil
}

func drawAxes(dc *gg.Context, b bounds, margin, usableW, usableH float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	const ticks = 5
	grid := color.RGBA{200, 200, 200, 255}

	dc.SetLineWidth(1.5)
	dc.DrawLine(margin, h-margin, w-margin, h-margin)
	dc.DrawLine(margin, margin, margin, h-margin)
	dc.Stroke()

	for i := 0; i <= ticks; i++ {
		ratio := float64(i) / ticks

		tx := margin + ratio*usableW
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.DrawLine(tx, h-margin, tx, h-margin+5)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", b.plotXMin+ratio*(b.plotXMax-b.plotXMin)), tx, h-margin+15, 0.5, 0)

		ty := h - margin - ratio*usableH
		dc.DrawLine(margin-5, ty, margin, ty)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", b.yMin+ratio*(b.yMax-b.yMin)), margin-10, ty, 1, 0.5)

		if i > 0 && i < ticks {
			dc.SetColor(grid)
			dc.SetLineWidth(0.5)
			dc.DrawLine(tx, margin, tx, h-margin)
			dc.DrawLine(margin, ty, w-margin, ty)
			dc.Stroke()
		}
	}
}

// project maps a column's values to screen coordinates, dropping points that
// fall outside the drawable area.
func project(rows [][]string, idx int, b bounds, margin, usableW, usableH float64, w, h int) [][2]float64 {
	points := make([][2]float64, 0, len(rows))
	for _, row := range rows {
		x, okX := cell(row, 0)
		y, okY := cell(row, idx)
		if !okX || !okY {
			continue
		}
		if b.scaled {
			x = b.plotXMin + ((x-b.origXMin)/(b.origXMax-b.origXMin))*(b.plotXMax-b.plotXMin)
		}

		xx := margin + ((x-b.plotXMin)/(b.plotXMax-b.plotXMin))*usableW
		yy := float64(h) - margin - ((y-b.yMin)/(b.yMax-b.yMin))*usableH

		if xx >= margin-1 && xx <= float64(w)-margin+1 && yy >= margin-1 && yy <= float64(h)-margin+1 {
			points = append(points, [2]float64{xx, yy})
		}
	}
	return points
}

func drawSeries(dc *gg.Context, points [][2]float64, c palette.Color) {
	if len(points) == 0 {
		return
	}
	dc.SetColor(c)
	dc.SetLineWidth(1)
	for i := 1; i < len(points); i++ {
		dc.DrawLine(points[i-1][0], points[i-1][1], points[i][0], points[i][1])
	}
	dc.Stroke()

	const pointRadius = 2.5
	for _, p := range points {
		dc.DrawCircle(p[0], p[1], pointRadius)
		dc.Fill()
	}
}

func drawLegend(dc *gg.Context, plotted []series, colors palette.Palette, x, y float64) {
	if len(plotted) == 0 {
		return
	}
	const (
		boxSize  = 10.0
		vSpacing = 18.0
		hPadding = 10.0
		vPadding = 5.0
	)

	maxTextWidth := 0.0
	for _, s := range plotted {
		if tw, _ := dc.MeasureString(s.name); tw > maxTextWidth {
			maxTextWidth = tw
		}
	}
	width := hPadding*2 + boxSize + 5 + maxTextWidth
	height := vPadding*2 + float64(len(plotted))*vSpacing - (vSpacing - boxSize)

	dc.SetColor(color.RGBA{255, 255, 255, 200})
	dc.DrawRectangle(x, y, width, height)
	dc.FillPreserve()
	dc.SetColor(color.Gray{100})
	dc.SetLineWidth(0.5)
	dc.Stroke()

	cy := y + vPadding
	for i, s := range plotted {
		dc.SetColor(colors[i])
		dc.DrawRectangle(x+hPadding, cy, boxSize, boxSize)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawStringAnchored(s.name, x+hPadding+boxSize+5, cy+boxSize/2, 0, 0.5)
		cy += vSpacing
	}
}
