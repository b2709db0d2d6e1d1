package solution

// ProjectPaths returns the absolute manifest path of every buildable member project.
func (p *realParser) ProjectPaths(baseDir, solutionFile string) ([]string, error) {
	projects, err := p.Projects(baseDir, solutionFile)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(projects))
	for _, project := range projects {
		paths = append(paths, project.Path)
	}
	return paths, nil
}
