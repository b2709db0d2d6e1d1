// Package config provides configuration management functionality for the orphans application.
package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound    = errors.New("configuration file not found")
	ErrConfigFileParse   = errors.New("failed to parse config file")
	ErrUnsupportedFormat = errors.New("unsupported config file format (use .yaml, .yml or .toml)")

	// Configuration validation errors.
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrNoSourceExtensions  = errors.New("source_extensions cannot be empty")
	ErrNoProjectExtensions = errors.New("project_extensions cannot be empty")
	ErrInvalidExtension    = errors.New("extensions must start with a dot")
	ErrInvalidExcludedDir  = errors.New("excluded_dirs entries must be plain directory names")
	ErrUnknownReportFormat = errors.New("unknown report format")
)
