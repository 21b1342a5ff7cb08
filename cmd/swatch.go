package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSwatchCmd(opts *rootOptions) *cobra.Command {
	gen := &generateFlags{}
	var (
		outPath   string
		columns   int
		cell      int
		noLabels  bool
		labelSize float64
		names     []string
	)

	cmd := &cobra.Command{
		Use:   "swatch [n]",
		Short: "Render a palette as a grid of swatches",
		Long: `Generate n distinguishable colors and render them as a grid of swatches,
each labelled with its hex code (or a name given with --names). The image
format follows the output file extension: .png or .bmp.`,
		Example: `  chromacraft swatch 24 -o palette.png
  chromacraft swatch 3 --names Red,Green,Blue --columns 3 -o rgb.bmp`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := resolveRequest(opts.cfg, cmd.Flags(), gen, args)
			if err != nil {
				return err
			}

			so := swatchOptions(opts.cfg.Swatch)
			if cmd.Flags().Changed("columns") {
				so.Columns = columns
			}
			if cmd.Flags().Changed("cell") {
				so.Cell = cell
			}
			if cmd.Flags().Changed("label-size") {
				so.LabelSize = labelSize
			}
			if noLabels {
				so.ShowLabels = false
			}
			if len(names) > 0 {
				so.Labels = names
				so.ShowLabels = true
			}

			p, err := generate(cmd.Context(), req, opts.logger)
			if err != nil {
				return err
			}
			if err := writeSwatch(outPath, p, so, opts.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d colors to %s\n", len(p), outPath)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(p.Hex(), " "))
			return nil
		},
	}

	gen.register(cmd.Flags())
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output image (.png or .bmp)")
	cmd.Flags().IntVar(&columns, "columns", 6, "swatches per row")
	cmd.Flags().IntVar(&cell, "cell", 90, "swatch size in pixels")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "do not label swatches")
	cmd.Flags().Float64Var(&labelSize, "label-size", 10, "label font size in points")
	cmd.Flags().StringSliceVar(&names, "names", nil, "comma separated labels, one per color")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
