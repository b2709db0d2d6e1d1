// Package fs provides the file system operations used to read solutions, project manifests and source trees.
package fs

import (
	"io"
	"os"
)

//go:generate mockgen -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for solution and project scanning.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Open opens a file for streaming reads. The caller must close it.
	Open(path string) (io.ReadCloser, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Glob finds files matching the pattern.
	Glob(pattern string) ([]string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)

	// ResolvePath resolves a relative path against a base directory into a clean absolute path.
	ResolvePath(baseDir, relativePath string) (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
