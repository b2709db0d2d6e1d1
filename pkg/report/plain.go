package report

import (
	"fmt"
	"io"

	"github.com/lerenn/orphans/pkg/orphans"
)

type plainRenderer struct{}

// Render writes one unused file per line and nothing else.
func (plainRenderer) Render(w io.Writer, result orphans.Result) error {
	for _, path := range result.Unused() {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}
	return nil
}
