// Package solution reads solution manifests and resolves their member projects.
package solution

import (
	"regexp"

	"github.com/lerenn/orphans/internal/base"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
)

//go:generate mockgen -source=solution.go -destination=mocks/solution.gen.go -package=mocks

// projectLinePrefix marks a line that may declare a project.
const projectLinePrefix = "project("

// projectLine matches Project("<type-guid>") = "<name>", "<relative-path>", "<project-guid>".
var projectLine = regexp.MustCompile(`(?i)^Project\("([^"]*)"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"\s*$`)

// Project is one member project declared in a solution manifest.
type Project struct {
	TypeGUID     string `json:"type_guid"`
	Name         string `json:"name"`
	RelativePath string `json:"relative_path"`
	GUID         string `json:"guid"`
	// Path is the absolute path of the project manifest.
	Path string `json:"path"`
}

// Parser interface provides solution manifest parsing.
type Parser interface {
	// Projects returns the buildable member projects of the solution, in declaration order.
	Projects(baseDir, solutionFile string) ([]Project, error)
	// ProjectPaths returns the absolute manifest path of every buildable member project.
	ProjectPaths(baseDir, solutionFile string) ([]string, error)
}

type realParser struct {
	*base.Base
}

// NewParserParams contains parameters for creating a new Parser instance.
type NewParserParams struct {
	FS     fs.FS
	Config config.Config
	Logger logger.Logger
}

// NewParser creates a new Parser instance.
func NewParser(params NewParserParams) Parser {
	return &realParser{
		Base: base.NewBase(base.NewBaseParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		}),
	}
}
