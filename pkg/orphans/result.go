package orphans

import (
	"errors"

	"github.com/lerenn/orphans/pkg/solution"
)

// ProjectResult holds the outcome of scanning one member project.
type ProjectResult struct {
	Project solution.Project
	Unused  []string
	Err     error
}

// Result holds the outcome of scanning a solution, in solution order.
type Result struct {
	Projects []ProjectResult
}

// Unused returns every unused source file of the solution, in order.
func (r Result) Unused() []string {
	var unused []string
	for _, project := range r.Projects {
		unused = append(unused, project.Unused...)
	}
	return unused
}

// Err joins the errors of every failed project, or returns nil.
func (r Result) Err() error {
	var errs []error
	for _, project := range r.Projects {
		if project.Err != nil {
			errs = append(errs, project.Err)
		}
	}
	return errors.Join(errs...)
}

// Failed returns the projects that could not be scanned, in solution order.
func (r Result) Failed() []ProjectResult {
	var failed []ProjectResult
	for _, project := range r.Projects {
		if project.Err != nil {
			failed = append(failed, project)
		}
	}
	return failed
}
