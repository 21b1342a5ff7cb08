package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chromacraft/internal/config"
	"chromacraft/internal/logging"
)

// rootOptions carries state shared by every command: the persistent flags and
// what they resolve to once parsed.
type rootOptions struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

// setup loads the configuration and builds the logger. It runs before every
// command.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = o.logLevel
	}
	logger, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: logging.Nop()}
	gen := &generateFlags{}
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "chromacraft [n]",
		Short: "Generate pairwise distinguishable colors",
		Long: `chromacraft generates n colors whose pairwise RGB distance lies within a
configurable band, for labelling chart series and other categorical data.

Candidates are drawn at random and kept only if they are far enough from
(and, optionally, close enough to) every color already chosen. n defaults
to 10.`,
		Example: `  chromacraft
  chromacraft 24 --min-diff 0.25 --max-diff 1.2 --hex
  chromacraft 8 --seed "#1f77b4" --sampler happy --preview
  chromacraft 12 --swatch palette.png`,
		Args:    cobra.MaximumNArgs(1),
		Version: "dev",
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. an infeasible distance band)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen, out, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/chromacraft/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	gen.register(cmd.Flags())
	out.register(cmd.Flags())

	cmd.AddCommand(newSwatchCmd(opts))
	cmd.AddCommand(newPlotCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "chromacraft version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of chromacraft",
		Args:  cobra.NoArgs,
		// no config needed to report the version
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chromacraft version %s\n", cmd.Root().Version)
		},
	}
}
