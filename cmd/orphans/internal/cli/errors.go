package cli

import "errors"

// Error definitions for cli package.
var (
	// Configuration loading errors.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")

	// Scan errors.
	ErrOrphansFound         = errors.New("unused source files found")
	ErrMultipleSolutions    = errors.New("several solution files found, pass one explicitly")
	ErrProjectNotInSolution = errors.New("project not found in solution")
	ErrScanFailed           = errors.New("some projects could not be scanned")

	// Initialization errors.
	ErrInitCancelled = errors.New("initialization cancelled by user")
)
