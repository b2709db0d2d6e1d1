package orphans

import "errors"

// Error definitions for orphans package.
var (
	ErrNoSolution    = errors.New("no solution file given")
	ErrProjectFailed = errors.New("project scan failed")
)
