// Package base provides base functionality and error definitions.
package base

import "errors"

// Error definitions for base package.
var (
	// ErrFSMissing is returned when a component is built without a file system.
	ErrFSMissing = errors.New("file system is required")
)

// Validate checks that the base has what every scanning component needs.
func (b *Base) Validate() error {
	if b.FS == nil {
		return ErrFSMissing
	}
	return nil
}
