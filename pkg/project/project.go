// Package project reads the compiled source declarations of project manifests.
package project

import (
	"github.com/lerenn/orphans/internal/base"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
)

//go:generate mockgen -source=project.go -destination=mocks/project.gen.go -package=mocks

// MSBuildNamespace is the XML namespace of classic project manifests.
const MSBuildNamespace = "http://schemas.microsoft.com/developer/msbuild/2003"

// Reader interface provides access to a project manifest's declared sources.
type Reader interface {
	// DeclaredIncludes returns the absolute paths of every Compile item declared by the manifest.
	DeclaredIncludes(projectDir, manifestFile string) ([]string, error)
}

type realReader struct {
	*base.Base
}

// NewReaderParams contains parameters for creating a new Reader instance.
type NewReaderParams struct {
	FS     fs.FS
	Config config.Config
	Logger logger.Logger
}

// NewReader creates a new Reader instance.
func NewReader(params NewReaderParams) Reader {
	return &realReader{
		Base: base.NewBase(base.NewBaseParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		}),
	}
}
