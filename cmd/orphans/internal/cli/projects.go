package cli

import (
	"fmt"
	"io"

	"github.com/lerenn/orphans/pkg/dependencies"
)

// ListProjects writes the manifest path of every buildable member project to w.
func ListProjects(deps *dependencies.Dependencies, solutionArg string, w io.Writer) error {
	cfg, err := LoadConfig(deps)
	if err != nil {
		return err
	}

	baseDir, solutionFile, err := ResolveSolution(deps, solutionArg)
	if err != nil {
		return err
	}

	projects, err := deps.NewFinder(cfg).Projects(baseDir, solutionFile)
	if err != nil {
		return err
	}

	if Quiet {
		return nil
	}
	for _, project := range projects {
		if _, err := fmt.Fprintln(w, project.Path); err != nil {
			return err
		}
	}
	return nil
}
