package solution

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/orphans/internal/base"
)

// maxLineSize bounds a single manifest line.
const maxLineSize = 1024 * 1024

const utf8BOM = "\ufeff"

// Projects returns the buildable member projects of the solution, in declaration order.
// Lines that do not declare a project are skipped, as are members whose path
// does not name a configured project manifest type.
func (p *realParser) Projects(baseDir, solutionFile string) ([]Project, error) {
	path := filepath.Join(baseDir, solutionFile)
	p.VerbosePrint("Reading solution %s", path)

	file, err := p.FS.Open(path)
	if err != nil {
		if p.FS.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", ErrSolutionNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSolutionRead, err)
	}
	defer func() { _ = file.Close() }()

	var projects []Project
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		project, ok := parseProjectLine(scanner.Text())
		if !ok {
			continue
		}

		if !base.ContainsFold(project.RelativePath, p.Config.ProjectExtensions) {
			p.VerbosePrint("Skipping solution member %s (%s)", project.Name, project.RelativePath)
			continue
		}

		project.Path, err = p.FS.ResolvePath(baseDir, project.RelativePath)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolutionRead, err)
	}

	p.VerbosePrint("Found %d project(s) in %s", len(projects), path)
	return projects, nil
}

// parseProjectLine extracts a project declaration from a single manifest line.
func parseProjectLine(line string) (Project, bool) {
	line = strings.TrimPrefix(line, utf8BOM)
	if len(line) < len(projectLinePrefix) || !strings.EqualFold(line[:len(projectLinePrefix)], projectLinePrefix) {
		return Project{}, false
	}

	groups := projectLine.FindStringSubmatch(line)
	if groups == nil {
		return Project{}, false
	}

	return Project{
		TypeGUID:     groups[1],
		Name:         groups[2],
		RelativePath: groups[3],
		GUID:         groups[4],
	}, true
}
