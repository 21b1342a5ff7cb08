package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"chromacraft/internal/config"
	"chromacraft/palette"
	"chromacraft/plotter"
)

// generateFlags are the palette parameters shared by the root and swatch
// commands. A flag only overrides the config when it was set explicitly.
type generateFlags struct {
	minDiff     float64
	maxDiff     float64
	seeds       []string
	sampler     string
	maxAttempts int
	timeout     time.Duration
}

func (f *generateFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.minDiff, "min-diff", palette.DefaultMinDiff, "minimum RGB distance between any two colors, in (0, 1.732]")
	fs.Float64Var(&f.maxDiff, "max-diff", palette.DefaultMaxDiff, "maximum RGB distance between any two colors")
	fs.StringArrayVar(&f.seeds, "seed", nil, "start from this color, as #rrggbb or r,g,b (repeatable)")
	fs.StringVar(&f.sampler, "sampler", palette.SamplerUniform, fmt.Sprintf("candidate distribution: %v", palette.SamplerNames))
	fs.IntVar(&f.maxAttempts, "max-attempts", palette.DefaultMaxAttempts, "give up after this many rejections in a row (negative: never)")
	fs.DurationVar(&f.timeout, "timeout", 0, "give up after this long (0: no limit)")
}

// request is a fully resolved generation request.
type request struct {
	count       int
	minDiff     float64
	maxDiff     float64
	seeds       palette.Palette
	sampler     string
	maxAttempts int
	timeout     time.Duration
}

// resolveRequest layers flags over the config. args may hold the palette size.
func resolveRequest(cfg config.Config, fs *pflag.FlagSet, f *generateFlags, args []string) (request, error) {
	req := request{
		count:       cfg.Count,
		minDiff:     cfg.MinDiff,
		maxDiff:     cfg.MaxDiff,
		sampler:     cfg.Sampler,
		maxAttempts: cfg.MaxAttempts,
		timeout:     cfg.Timeout,
	}

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return request{}, palette.InvalidArgument("n", fmt.Sprintf("%q is not an integer", args[0]))
		}
		req.count = n
	}
	if fs.Changed("min-diff") {
		req.minDiff = f.minDiff
	}
	if fs.Changed("max-diff") {
		req.maxDiff = f.maxDiff
	}
	if fs.Changed("sampler") {
		req.sampler = f.sampler
	}
	if fs.Changed("max-attempts") {
		req.maxAttempts = f.maxAttempts
	}
	if fs.Changed("timeout") {
		req.timeout = f.timeout
	}

	seeds := cfg.Seeds
	if fs.Changed("seed") {
		seeds = f.seeds
	}
	for _, s := range seeds {
		c, err := palette.ParseColor(s)
		if err != nil {
			return request{}, fmt.Errorf("seed: %w", err)
		}
		req.seeds = append(req.seeds, c)
	}

	return req, nil
}

// generate runs the generator for req, logging progress through logger.
func generate(ctx context.Context, req request, logger *zap.Logger) (palette.Palette, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if req.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.timeout)
		defer cancel()
	}

	sampler, err := palette.SamplerByName(req.sampler, nil)
	if err != nil {
		return nil, err
	}

	progress := newProgress(logger, req.count)
	start := time.Now()
	p, err := palette.GenerateContext(ctx, req.count,
		palette.WithMinDiff(req.minDiff),
		palette.WithMaxDiff(req.maxDiff),
		palette.WithSeeds(req.seeds...),
		palette.WithSampler(sampler),
		palette.WithMaxAttempts(req.maxAttempts),
		palette.WithObserver(progress),
	)
	if err != nil {
		logger.Warn("generation failed",
			zap.Int("accepted", progress.accepted),
			zap.Int("rejected", progress.rejected),
			zap.Error(err))
		return nil, err
	}

	logger.Info("generated palette",
		zap.Int("size", len(p)),
		zap.Int("seeds", len(req.seeds)),
		zap.Int("rejected", progress.rejected),
		zap.Duration("elapsed", time.Since(start)))
	return p, nil
}

// outputFlags control how the root command presents the palette.
type outputFlags struct {
	hex     bool
	format  string
	preview bool
	swatch  string
}

func (f *outputFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.hex, "hex", false, "print colors as #rrggbb instead of r g b")
	fs.StringVarP(&f.format, "output", "o", "text", "output format: text or json")
	fs.BoolVar(&f.preview, "preview", false, "also print colored swatches to the terminal")
	fs.StringVar(&f.swatch, "swatch", "", "also render the palette to this .png or .bmp file")
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, gen *generateFlags, out *outputFlags, args []string) error {
	req, err := resolveRequest(opts.cfg, cmd.Flags(), gen, args)
	if err != nil {
		return err
	}
	hex := opts.cfg.Hex
	if cmd.Flags().Changed("hex") {
		hex = out.hex
	}

	p, err := generate(cmd.Context(), req, opts.logger)
	if err != nil {
		return err
	}

	if out.swatch != "" {
		if err := writeSwatch(out.swatch, p, swatchOptions(opts.cfg.Swatch), opts.logger); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if out.preview {
		fmt.Fprintln(w, renderPreview(p, opts.cfg.Swatch.Columns))
	}
	return writePalette(w, p, hex, out.format)
}

// writePalette prints p as text (one color per line) or JSON.
func writePalette(w io.Writer, p palette.Palette, hex bool, format string) error {
	switch format {
	case "", "text":
		for _, c := range p {
			if hex {
				fmt.Fprintln(w, c.Hex())
			} else {
				fmt.Fprintf(w, "%.4f %.4f %.4f\n", c.R, c.G, c.B)
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if hex {
			return enc.Encode(map[string][]string{"colors": p.Hex()})
		}
		return enc.Encode(map[string]palette.Palette{"colors": p})
	}
	return palette.InvalidArgument("output", fmt.Sprintf("unknown format %q (want text or json)", format))
}

func swatchOptions(sc config.SwatchConfig) plotter.SwatchOptions {
	opts := plotter.DefaultSwatchOptions()
	if sc.Columns > 0 {
		opts.Columns = sc.Columns
	}
	if sc.Cell > 0 {
		opts.Cell = sc.Cell
	}
	if sc.LabelSize > 0 {
		opts.LabelSize = sc.LabelSize
	}
	opts.ShowLabels = sc.ShowLabels()
	return opts
}

func writeSwatch(path string, p palette.Palette, opts plotter.SwatchOptions, logger *zap.Logger) error {
	img, err := plotter.PlotPalette(p, opts)
	if err != nil {
		return err
	}
	if err := plotter.WriteImage(path, img); err != nil {
		return err
	}
	logger.Info("wrote swatch", zap.String("path", path), zap.Int("colors", len(p)))
	return nil
}
