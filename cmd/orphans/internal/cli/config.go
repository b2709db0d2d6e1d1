// Package cli provides common configuration and utility functions for the orphans CLI.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/dependencies"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
	"github.com/lerenn/orphans/pkg/report"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// NoColor disables styled output.
	NoColor bool
)

// DefaultConfigPath is used when no config path is given.
var DefaultConfigPath = filepath.Join("~", ".orphans", "config.yaml")

// GetConfigPath returns the config file path selected by the global flags.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return DefaultConfigPath
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager(fs fs.FS) config.Manager {
	return config.NewManager(fs, GetConfigPath())
}

// NewDependencies creates the dependencies selected by the global flags.
func NewDependencies() *dependencies.Dependencies {
	if NoColor {
		report.SetNoColor()
	}

	deps := dependencies.New()
	deps.WithConfig(NewConfigManager(deps.FS))
	if Verbose && !Quiet {
		deps.WithLogger(logger.NewDefaultLogger())
	}
	return deps
}

// LoadConfig loads the configuration, falling back to defaults when no file exists.
func LoadConfig(deps *dependencies.Dependencies) (config.Config, error) {
	if err := deps.Validate(); err != nil {
		return config.Config{}, err
	}

	cfg, err := deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	deps.Logger.Logf("Using configuration from %s", deps.Config.GetConfigPath())
	return cfg, nil
}
