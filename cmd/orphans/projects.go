package main

import (
	"github.com/lerenn/orphans/cmd/orphans/internal/cli"
	"github.com/spf13/cobra"
)

func createProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects [solution]",
		Short: "List the member projects of a solution",
		Long: `List the resolved manifest path of every buildable project of a solution.

Examples:
  orphans projects
  orphans projects MySolution.sln`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var solution string
			if len(args) == 1 {
				solution = args[0]
			}
			return cli.ListProjects(cli.NewDependencies(), solution, cmd.OutOrStdout())
		},
	}
}
