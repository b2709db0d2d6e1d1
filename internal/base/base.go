// Package base provides common functionality for the scanning components.
package base

import (
	"fmt"
	"strings"

	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/lerenn/orphans/pkg/logger"
)

// Base provides common functionality for scanning components.
type Base struct {
	FS     fs.FS
	Config config.Config
	Logger logger.Logger
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS     fs.FS
	Config config.Config
	Logger logger.Logger
}

// NewBase creates a new Base instance.
// A nil logger is replaced by a noop logger.
func NewBase(params NewBaseParams) *Base {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &Base{
		FS:     params.FS,
		Config: params.Config,
		Logger: l,
	}
}

// VerbosePrint logs a formatted message through the configured logger.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	b.Logger.Logf("%s", fmt.Sprintf(msg, args...))
}

// HasSuffixFold reports whether name ends with one of the suffixes, ignoring case.
func HasSuffixFold(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

// ContainsFold reports whether s contains one of the markers, ignoring case.
func ContainsFold(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, marker := range markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
