package main

import (
	"github.com/lerenn/orphans/cmd/orphans/internal/cli"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write the default configuration file",
		Long: `Write the default orphans configuration to the config path.
A .toml config path writes the TOML form of the defaults.

Flags:
  --force   Overwrite an existing configuration without confirmation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.Init(cli.NewDependencies(), force, cmd.OutOrStdout())
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration without confirmation")

	return initCmd
}
