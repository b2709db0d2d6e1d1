package solution

import "errors"

// Error definitions for solution package.
var (
	ErrSolutionNotFound = errors.New("solution file not found")
	ErrSolutionRead     = errors.New("failed to read solution file")
)
