package orphans

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/orphans/pkg/solution"
)

// Projects returns the member projects the finder would scan.
func (f *realFinder) Projects(baseDir, solutionFile string) ([]solution.Project, error) {
	if solutionFile == "" {
		return nil, ErrNoSolution
	}
	return f.parser.Projects(baseDir, solutionFile)
}

// FindInSolution scans every member project and collects the results in solution order.
// A failing project is recorded in its ProjectResult and the scan moves on,
// unless fail_fast is set.
func (f *realFinder) FindInSolution(baseDir, solutionFile string) (Result, error) {
	projects, err := f.Projects(baseDir, solutionFile)
	if err != nil {
		return Result{}, err
	}
	return f.FindInProjects(projects)
}

// FindInProjects scans the given projects and collects the results in order.
func (f *realFinder) FindInProjects(projects []solution.Project) (Result, error) {
	result := Result{Projects: make([]ProjectResult, 0, len(projects))}
	for _, project := range projects {
		projectResult := f.scan(project)
		result.Projects = append(result.Projects, projectResult)

		if projectResult.Err != nil && f.Config.FailFast {
			return result, projectResult.Err
		}
	}
	return result, nil
}

// scan runs the detector on one project manifest.
func (f *realFinder) scan(project solution.Project) ProjectResult {
	f.VerbosePrint("Scanning project %s (%s)", project.Name, project.Path)

	unused, err := f.detector.FindUnused(filepath.Dir(project.Path), filepath.Base(project.Path))
	if err != nil {
		f.VerbosePrint("Project %s failed: %v", project.Name, err)
		return ProjectResult{
			Project: project,
			Err:     fmt.Errorf("%w: %s: %w", ErrProjectFailed, project.Name, err),
		}
	}

	return ProjectResult{Project: project, Unused: unused}
}
