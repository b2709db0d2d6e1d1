// Package sourcetree enumerates the source files physically present under a project directory.
package sourcetree

import (
	"github.com/lerenn/orphans/internal/base"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
	ignore "github.com/sabhiram/go-gitignore"
)

//go:generate mockgen -source=sourcetree.go -destination=mocks/sourcetree.gen.go -package=mocks

// Enumerator interface provides candidate source file discovery.
type Enumerator interface {
	// Candidates returns every source file below projectDir, outside excluded and ignored directories.
	Candidates(projectDir string) ([]string, error)
}

type realEnumerator struct {
	*base.Base
	ignore *ignore.GitIgnore
}

// NewEnumeratorParams contains parameters for creating a new Enumerator instance.
type NewEnumeratorParams struct {
	FS     fs.FS
	Config config.Config
	Logger logger.Logger
}

// NewEnumerator creates a new Enumerator instance.
func NewEnumerator(params NewEnumeratorParams) Enumerator {
	return &realEnumerator{
		Base: base.NewBase(base.NewBaseParams{
			FS:     params.FS,
			Config: params.Config,
			Logger: params.Logger,
		}),
		ignore: ignore.CompileIgnoreLines(params.Config.IgnorePatterns...),
	}
}
