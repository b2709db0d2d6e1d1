// Package report renders scan results for the command line.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/orphans"
	"github.com/muesli/termenv"
)

// Renderer writes a scan result in one output format.
type Renderer interface {
	Render(w io.Writer, result orphans.Result) error
}

// New returns the renderer for the given format.
func New(format string) (Renderer, error) {
	switch format {
	case config.FormatText:
		return textRenderer{}, nil
	case config.FormatJSON:
		return jsonRenderer{}, nil
	case config.FormatPlain:
		return plainRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SetNoColor disables terminal styling of the text format.
func SetNoColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
