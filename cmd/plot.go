package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chromacraft/plotter"
)

func newPlotCmd(opts *rootOptions) *cobra.Command {
	po := plotter.DefaultPlotOptions()
	var outPath string

	cmd := &cobra.Command{
		Use:   "plot FILE.csv",
		Short: "Plot CSV columns with distinguishable series colors",
		Long: `Plot one or more CSV columns as connected points. Every series gets its own
color from a distinguishable palette. Use "-" to read the CSV from stdin.`,
		Example: `  chromacraft plot data.csv --columns temp,humidity -o chart.png
  chromacraft plot data.csv --columns load --xdata --xscale 0,60 --size 1024x600 -o load.bmp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			img, err := plotter.RenderPlot(string(data), po)
			if err != nil {
				return err
			}
			if err := plotter.WriteImage(outPath, img); err != nil {
				return err
			}
			opts.logger.Info("wrote plot", zap.String("path", outPath), zap.Strings("columns", po.Columns))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&po.Columns, "columns", nil, "columns to plot (comma separated)")
	f.StringVar(&po.Title, "title", po.Title, "graph title")
	f.StringVar(&po.Size, "size", "", "image size as WIDTHxHEIGHT")
	f.IntVar(&po.Width, "width", po.Width, "image width in pixels")
	f.IntVar(&po.Height, "height", po.Height, "image height in pixels")
	f.IntVar(&po.Skip, "skip", po.Skip, "plot every Nth row")
	f.BoolVar(&po.XData, "xdata", false, "first CSV column holds the X values")
	f.StringVar(&po.XScale, "xscale", "", "map X values to START,END")
	f.Float64Var(&po.MaxRange, "max-range", 0, "drop rows with X above this (0: keep all)")
	f.Float64Var(&po.MinDiff, "min-diff", po.MinDiff, "minimum RGB distance between series colors")
	f.StringVar(&po.Sampler, "sampler", "", "series color sampler (default bright hues)")
	f.StringVarP(&outPath, "out", "o", "", "output image (.png or .bmp)")
	_ = cmd.MarkFlagRequired("columns")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return data, nil
}
