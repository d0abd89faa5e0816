package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmst/matrix"
)

func newValidateCmd(a *app) *cobra.Command {
	var epsilon float64

	cmd := &cobra.Command{
		Use:   "validate [file.csv|-]",
		Short: "Check that a file holds a valid undirected weight matrix",
		Long: `Checks shape, finiteness, non-negative weights, zero diagonal and
symmetry within --eps. Connectivity is not checked; build reports it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("eps") {
				a.cfg.Epsilon = epsilon
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.readMatrix(args[0])
			if err != nil {
				return err
			}
			if err := matrix.ValidateWeightedGraph(g, matrix.WithEpsilon(a.cfg.Epsilon)); err != nil {
				a.logger.Debug("validation failed", zap.String("input", args[0]), zap.Error(err))
				return err
			}

			_, err = fmt.Fprintf(a.stdout, "ok: %d vertices\n", g.Rows())

			return err
		},
	}
	cmd.Flags().Float64Var(&epsilon, "eps", matrix.DefaultEpsilon, "symmetry tolerance")

	return cmd
}
