package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmst/internal/config"
	"github.com/katalvlaran/lvmst/matrix"
	"github.com/katalvlaran/lvmst/prim_kruskal"
)

// buildFlags mirror the config fields they override.
type buildFlags struct {
	method  string
	root    int
	epsilon float64
	format  string
	output  string
}

func newBuildCmd(a *app) *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build [file.csv|-]",
		Short: "Compute the minimum spanning tree of a weight matrix",
		Long: `Reads an n×n weight matrix and writes its minimum spanning tree.

Formats:
  matrix  n×n CSV adjacency matrix holding only the tree edges (default)
  edges   one "from,to,weight" line per tree edge, then "# total <weight>"

A disconnected graph is an error; no partial tree is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyBuildFlags(cmd, a.cfg, f)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.runBuild(args[0], f.output)
		},
	}

	cmd.Flags().StringVar(&f.method, "method", prim_kruskal.MethodPrim, "MST algorithm: prim or kruskal")
	cmd.Flags().IntVar(&f.root, "root", prim_kruskal.DefaultRoot, "Prim start vertex")
	cmd.Flags().Float64Var(&f.epsilon, "eps", matrix.DefaultEpsilon, "symmetry tolerance")
	cmd.Flags().StringVar(&f.format, "format", config.FormatMatrix, "output format: matrix or edges")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

// applyBuildFlags copies explicitly set flags over the loaded configuration.
func applyBuildFlags(cmd *cobra.Command, cfg *config.Config, f buildFlags) {
	if cmd.Flags().Changed("method") {
		cfg.Method = f.method
	}
	if cmd.Flags().Changed("root") {
		cfg.Root = f.root
	}
	if cmd.Flags().Changed("eps") {
		cfg.Epsilon = f.epsilon
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = f.format
	}
}

func (a *app) runBuild(input, output string) error {
	start := time.Now()

	g, err := a.readMatrix(input)
	if err != nil {
		return err
	}
	a.logger.Debug("matrix loaded", zap.String("input", input), zap.Int("vertices", g.Rows()))

	tree, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(a.cfg.Method),
		prim_kruskal.WithRoot(a.cfg.Root),
		prim_kruskal.WithEpsilon(a.cfg.Epsilon),
		prim_kruskal.WithLogger(a.logger),
	)
	if err != nil {
		a.logger.Warn("mst failed", zap.String("input", input), zap.Error(err))
		return err
	}

	edges := prim_kruskal.TreeEdges(tree)
	a.logger.Info("mst built",
		zap.String("method", a.cfg.Method),
		zap.Int("vertices", tree.Rows()),
		zap.Int("edges", len(edges)),
		zap.Float64("total_weight", prim_kruskal.TotalWeight(tree)),
		zap.Duration("elapsed", time.Since(start)))

	write := func(w io.Writer) error {
		if a.cfg.Format == config.FormatEdges {
			return writeEdges(w, edges)
		}

		return matrix.WriteCSV(w, tree)
	}
	if output == "" {
		return write(a.stdout)
	}

	return createOutput(output, write)
}

// createOutput creates path, runs write on it and reports the first of the
// write and close errors.
func createOutput(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	if err = write(file); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// writeEdges prints one "from,to,weight" line per edge and a total footer.
func writeEdges(w io.Writer, edges []prim_kruskal.Edge) error {
	var total float64
	for _, e := range edges {
		total += e.Weight
		if _, err := fmt.Fprintf(w, "%d,%d,%s\n", e.From, e.To, formatWeight(e.Weight)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# total %s\n", formatWeight(total))

	return err
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
