package config

import (
	"fmt"
	"strings"
)

// Report formats understood by the scan command.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatPlain = "plain"
)

// Config represents the application configuration.
type Config struct {
	// SourceExtensions lists the file suffixes treated as compiled sources.
	SourceExtensions []string `yaml:"source_extensions" toml:"source_extensions"`
	// ProjectExtensions lists the suffixes identifying buildable project manifests in a solution.
	ProjectExtensions []string `yaml:"project_extensions" toml:"project_extensions"`
	// ExcludedDirs lists the build-output directory names never scanned.
	ExcludedDirs []string `yaml:"excluded_dirs" toml:"excluded_dirs"`
	// IgnorePatterns holds gitignore-style patterns, relative to each project directory.
	IgnorePatterns []string `yaml:"ignore_patterns" toml:"ignore_patterns"`
	// CaseSensitive disables case folding when comparing declared and on-disk paths.
	CaseSensitive bool `yaml:"case_sensitive" toml:"case_sensitive"`
	// FailFast stops a solution scan at the first failing project.
	FailFast bool `yaml:"fail_fast" toml:"fail_fast"`
	// Format is the default report format.
	Format string `yaml:"format" toml:"format"`
}

// DefaultConfig returns the built-in configuration for C# solutions.
func DefaultConfig() Config {
	return Config{
		SourceExtensions:  []string{".cs"},
		ProjectExtensions: []string{".csproj"},
		ExcludedDirs:      []string{"bin", "obj"},
		IgnorePatterns:    []string{},
		CaseSensitive:     false,
		FailFast:          false,
		Format:            FormatText,
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if len(c.SourceExtensions) == 0 {
		return ErrNoSourceExtensions
	}
	if err := validateExtensions(c.SourceExtensions); err != nil {
		return err
	}

	if len(c.ProjectExtensions) == 0 {
		return ErrNoProjectExtensions
	}
	if err := validateExtensions(c.ProjectExtensions); err != nil {
		return err
	}

	for _, dir := range c.ExcludedDirs {
		if dir == "" || strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("%w: %q", ErrInvalidExcludedDir, dir)
		}
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatPlain:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownReportFormat, c.Format)
	}

	return nil
}

func validateExtensions(extensions []string) error {
	for _, ext := range extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}
	return nil
}
