// Command lvmst computes minimum spanning trees of weighted graphs stored as
// comma-separated adjacency matrices.
//
//	lvmst build graph.csv                  # Prim from vertex 0, MST matrix on stdout
//	lvmst build --method kruskal -o t.csv graph.csv
//	lvmst build --format edges - < graph.csv
//	lvmst validate graph.csv
//	lvmst config init lvmst.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvmst/internal/config"
	"github.com/katalvlaran/lvmst/matrix"
)

// stdinArg makes commands read the matrix from standard input.
const stdinArg = "-"

// app carries state shared by the subcommands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer

	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger // preset by tests; otherwise built from cfg
}

func main() {
	root := newRootCmd(&app{stdin: os.Stdin, stdout: os.Stdout})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvmst:", err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvmst",
		Short: "Minimum spanning trees over dense weight matrices",
		Long: `lvmst reads an n×n symmetric weight matrix (CSV, 0 = no edge) and
writes the adjacency matrix of a minimum spanning tree.

Settings come from the YAML file given by --config, then LVMST_* environment
variables, then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(newBuildCmd(a), newValidateCmd(a), newConfigCmd(a))

	return rootCmd
}

// init loads configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.logger != nil {
		return nil
	}

	logger, err := newLogger(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// newLogger builds a production zap logger writing to stderr.
// verbose forces debug level regardless of the configured level.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = lc.Encoding
	if lc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}

// readMatrix loads the CSV matrix named by path, "-" meaning stdin.
func (a *app) readMatrix(path string) (*matrix.Dense, error) {
	if path == stdinArg {
		return matrix.ReadCSV(a.stdin)
	}

	return matrix.LoadCSV(path)
}
