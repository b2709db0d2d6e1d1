// Package detector finds the source files of a project that its manifest never declares.
package detector

import (
	"github.com/lerenn/orphans/internal/base"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
	"github.com/lerenn/orphans/pkg/project"
	"github.com/lerenn/orphans/pkg/sourcetree"
)

//go:generate mockgen -source=detector.go -destination=mocks/detector.gen.go -package=mocks

// Detector interface provides unused source file detection for a single project.
type Detector interface {
	// FindUnused returns the source files below projectDir that manifestFile does not declare.
	FindUnused(projectDir, manifestFile string) ([]string, error)
}

type realDetector struct {
	*base.Base
	enumerator sourcetree.Enumerator
	reader     project.Reader
}

// NewDetectorParams contains parameters for creating a new Detector instance.
// Enumerator and Reader default to the file system backed implementations.
type NewDetectorParams struct {
	FS         fs.FS
	Config     config.Config
	Logger     logger.Logger
	Enumerator sourcetree.Enumerator
	Reader     project.Reader
}

// NewDetector creates a new Detector instance.
func NewDetector(params NewDetectorParams) Detector {
	enumerator := params.Enumerator
	if enumerator == nil {
		enumerator = sourcetree.NewEnumerator(sourcetree.NewEnumeratorParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		})
	}

	reader := params.Reader
	if reader == nil {
		reader = project.NewReader(project.NewReaderParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		})
	}

	return &realDetector{
		Base: base.NewBase(base.NewBaseParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		}),
		enumerator: enumerator,
		reader:     reader,
	}
}
