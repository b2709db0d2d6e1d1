package main

import (
	"github.com/lerenn/orphans/cmd/orphans/internal/cli"
	"github.com/spf13/cobra"
)

func createScanCmd() *cobra.Command {
	var opts cli.ScanOpts

	scanCmd := &cobra.Command{
		Use:   "scan [solution]",
		Short: "Report source files not declared by their project",
		Long: `Scan every project of a solution and report the source files that are present
on disk but missing from the project manifest. Without a solution argument the
current directory is searched for a single .sln file.

Examples:
  orphans scan
  orphans scan MySolution.sln --format json
  orphans scan MySolution.sln --project App --fail-on-found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Solution = args[0]
			}
			return cli.Scan(cli.NewDependencies(), opts, cmd.OutOrStdout())
		},
	}

	scanCmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Report format: text, json or plain")
	scanCmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Only scan the project with this name")
	scanCmd.Flags().BoolVar(&opts.Pick, "pick", false, "Choose the project to scan interactively")
	scanCmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "Stop at the first project that cannot be scanned")
	scanCmd.Flags().BoolVar(&opts.FailOnFound, "fail-on-found", false, "Exit with an error when unused files are found")

	return scanCmd
}
