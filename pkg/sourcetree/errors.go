package sourcetree

import "errors"

// Error definitions for sourcetree package.
var (
	ErrProjectDirNotFound = errors.New("project directory not found")
	ErrNotDirectory       = errors.New("project path is not a directory")
	ErrReadDir            = errors.New("failed to read directory")
)
