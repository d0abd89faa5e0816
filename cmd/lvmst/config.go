package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lvmst configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "Write the effective configuration as YAML",
		Long: `Writes the settings in effect (defaults, then --config, then LVMST_*
environment variables) to path, creating parent directories. The file can be
passed back with --config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Save(args[0]); err != nil {
				return err
			}
			a.logger.Debug("config written", zap.String("path", args[0]))
			_, err := fmt.Fprintf(a.stdout, "wrote %s\n", args[0])

			return err
		},
	})

	return cmd
}
