// Package dependencies provides a centralized dependency container for the orphans application.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
	"github.com/lerenn/orphans/pkg/orphans"
	"github.com/lerenn/orphans/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrPromptMissing = errors.New("prompt dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Config config.Manager
	Logger logger.Logger
	Prompt prompt.Prompter
	// Finder overrides the finder built from the loaded configuration.
	Finder orphans.Finder
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
		// Config needs a path and is set via WithConfig
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithFinder sets the finder and returns the instance for chaining.
func (d *Dependencies) WithFinder(finder orphans.Finder) *Dependencies {
	d.Finder = finder
	return d
}

// NewFinder returns the configured finder, or builds one for cfg.
func (d *Dependencies) NewFinder(cfg config.Config) orphans.Finder {
	if d.Finder != nil {
		return d.Finder
	}
	return orphans.NewFinder(orphans.NewFinderParams{
		FS:     d.FS,
		Config: cfg,
		Logger: d.Logger,
	})
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
