package project

import "errors"

// Error definitions for project package.
var (
	// Manifest access errors.
	ErrManifestNotFound = errors.New("project manifest not found")
	ErrManifestRead     = errors.New("failed to read project manifest")

	// Manifest parsing errors.
	ErrManifestParse        = errors.New("failed to parse project manifest")
	ErrNoRootElement        = errors.New("document has no root element")
	ErrMultipleRootElements = errors.New("document has more than one root element")
	ErrContentOutsideRoot   = errors.New("text content outside the root element")
)
