package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolvePath resolves a relative path against a base directory.
// Backslash separators in relativePath are accepted on every platform,
// since solution and project manifests are written with them.
func (f *realFS) ResolvePath(baseDir, relativePath string) (string, error) {
	// Handle empty paths
	if baseDir == "" {
		return "", fmt.Errorf("%w: base path cannot be empty", ErrPathResolution)
	}
	if relativePath == "" {
		return "", fmt.Errorf("%w: relative path cannot be empty", ErrPathResolution)
	}

	relativePath = ToNative(relativePath)

	// If relativePath is already absolute, return it as-is
	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath), nil
	}

	// Resolve relative path from base directory and clean "." or ".." components
	cleanPath := filepath.Clean(filepath.Join(baseDir, relativePath))

	// Convert to absolute path
	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, cleanPath, err)
	}

	return absPath, nil
}

// ToNative converts both slash styles of a manifest path to the OS separator.
func ToNative(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
}
