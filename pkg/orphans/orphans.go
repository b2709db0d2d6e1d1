// Package orphans finds the source files of every project in a solution that
// their project manifests never declare.
package orphans

import (
	"iter"

	"github.com/lerenn/orphans/internal/base"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/detector"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
	"github.com/lerenn/orphans/pkg/solution"
)

//go:generate mockgen -source=orphans.go -destination=mocks/orphans.gen.go -package=mocks

// Finder interface provides solution wide unused source file detection.
type Finder interface {
	// Projects returns the member projects the finder would scan.
	Projects(baseDir, solutionFile string) ([]solution.Project, error)
	// FindInSolution scans every member project and collects the results in solution order.
	FindInSolution(baseDir, solutionFile string) (Result, error)
	// FindInProjects scans the given projects and collects the results in order.
	FindInProjects(projects []solution.Project) (Result, error)
	// All lazily yields the unused source files of every member project.
	All(baseDir, solutionFile string) iter.Seq2[string, error]
}

type realFinder struct {
	*base.Base
	parser   solution.Parser
	detector detector.Detector
}

// NewFinderParams contains parameters for creating a new Finder instance.
// Parser and Detector default to the file system backed implementations.
type NewFinderParams struct {
	FS       fs.FS
	Config   config.Config
	Logger   logger.Logger
	Parser   solution.Parser
	Detector detector.Detector
}

// NewFinder creates a new Finder instance.
func NewFinder(params NewFinderParams) Finder {
	parser := params.Parser
	if parser == nil {
		parser = solution.NewParser(solution.NewParserParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		})
	}

	det := params.Detector
	if det == nil {
		det = detector.NewDetector(detector.NewDetectorParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		})
	}

	return &realFinder{
		Base: base.NewBase(base.NewBaseParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		}),
		parser:   parser,
		detector: det,
	}
}
