package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/orphans/pkg/dependencies"
	"github.com/lerenn/orphans/pkg/orphans"
	"github.com/lerenn/orphans/pkg/prompt"
	"github.com/lerenn/orphans/pkg/solution"
)

// solutionPattern finds solution manifests in the working directory.
const solutionPattern = "*.sln"

// ResolveSolution splits the solution argument into its directory and file name.
// Without an argument, the working directory is searched; several matches are
// offered for selection unless output is quiet.
func ResolveSolution(deps *dependencies.Dependencies, arg string) (string, string, error) {
	if arg == "" {
		found, err := findSolution(deps)
		if err != nil {
			return "", "", err
		}
		arg = found
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve solution path %s: %w", arg, err)
	}

	deps.Logger.Logf("Using solution %s", abs)
	return filepath.Dir(abs), filepath.Base(abs), nil
}

func findSolution(deps *dependencies.Dependencies) (string, error) {
	matches, err := deps.FS.Glob(solutionPattern)
	if err != nil {
		return "", fmt.Errorf("failed to search for solution files: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no %s file in the current directory", orphans.ErrNoSolution, solutionPattern)
	case 1:
		return matches[0], nil
	}

	if Quiet {
		return "", fmt.Errorf("%w: %s", ErrMultipleSolutions, strings.Join(matches, ", "))
	}

	choices := make([]prompt.Choice, 0, len(matches))
	for _, match := range matches {
		choices = append(choices, prompt.Choice{Kind: prompt.KindSolution, Name: match})
	}

	choice, err := deps.Prompt.PromptSelect("Choose a solution", choices)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMultipleSolutions, err)
	}
	return choice.Name, nil
}

// FilterProjects keeps the projects whose name matches, ignoring case.
func FilterProjects(projects []solution.Project, name string) ([]solution.Project, error) {
	var filtered []solution.Project
	for _, project := range projects {
		if strings.EqualFold(project.Name, name) {
			filtered = append(filtered, project)
		}
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotInSolution, name)
	}
	return filtered, nil
}

// PickProject lets the user choose one project of the solution.
func PickProject(deps *dependencies.Dependencies, projects []solution.Project) ([]solution.Project, error) {
	choices := make([]prompt.Choice, 0, len(projects))
	for _, project := range projects {
		choices = append(choices, prompt.Choice{
			Kind:   prompt.KindProject,
			Name:   project.Name,
			Detail: project.RelativePath,
		})
	}

	choice, err := deps.Prompt.PromptSelect("Choose a project", choices)
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		if project.Name == choice.Name && project.RelativePath == choice.Detail {
			return []solution.Project{project}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotInSolution, choice.Name)
}
