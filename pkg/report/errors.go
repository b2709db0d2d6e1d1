package report

import "errors"

// Error definitions for report package.
var (
	ErrUnknownFormat = errors.New("unknown report format")
)
