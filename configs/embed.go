// Package configs provides embedded configuration files for the orphans application.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration file content written by "orphans init".
//
//go:embed default.yaml
var DefaultConfigYAML []byte
