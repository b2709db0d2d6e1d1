// Package main provides the command-line interface for the orphans application.
package main

import (
	"log"

	"github.com/lerenn/orphans/cmd/orphans/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orphans",
		Short: "Find source files missing from their project manifests",
		Long: `Orphans reads a solution file, walks every member project directory and ` +
			`reports the source files that exist on disk but are not compiled by their project.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "",
		"Specify a custom config file path (default ~/.orphans/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&cli.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(createScanCmd(), createProjectsCmd(), createInitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
