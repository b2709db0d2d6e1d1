package cli

import (
	"fmt"
	"io"

	"github.com/lerenn/orphans/pkg/dependencies"
	"github.com/lerenn/orphans/pkg/report"
)

// ScanOpts contains the options of a solution scan.
type ScanOpts struct {
	// Solution is the solution file; empty means search the working directory.
	Solution string
	// Format overrides the configured report format when set.
	Format string
	// Project restricts the scan to the members with this name.
	Project string
	// Pick lets the user choose the project to scan.
	Pick bool
	// FailFast stops at the first failing project when set.
	FailFast bool
	// FailOnFound turns any reported file into an error.
	FailOnFound bool
}

// Scan scans a solution and writes the report to w.
func Scan(deps *dependencies.Dependencies, opts ScanOpts, w io.Writer) error {
	cfg, err := LoadConfig(deps)
	if err != nil {
		return err
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.FailFast {
		cfg.FailFast = true
	}

	renderer, err := report.New(cfg.Format)
	if err != nil {
		return err
	}

	baseDir, solutionFile, err := ResolveSolution(deps, opts.Solution)
	if err != nil {
		return err
	}

	finder := deps.NewFinder(cfg)
	projects, err := finder.Projects(baseDir, solutionFile)
	if err != nil {
		return err
	}

	if opts.Project != "" {
		if projects, err = FilterProjects(projects, opts.Project); err != nil {
			return err
		}
	}
	if opts.Pick {
		if projects, err = PickProject(deps, projects); err != nil {
			return err
		}
	}

	result, scanErr := finder.FindInProjects(projects)
	if !Quiet {
		if err := renderer.Render(w, result); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if scanErr != nil {
		return scanErr
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanFailed, err)
	}
	if opts.FailOnFound && len(result.Unused()) > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrOrphansFound, len(result.Unused()))
	}
	return nil
}
