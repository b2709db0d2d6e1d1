package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ to the user's home directory.
// Only the current user's home is supported: "~name" is returned unchanged.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(homeDir, ToNative(path[1:])), nil
}
