//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_IsNotExist(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()

	// Missing manifest
	_, err := fs.ReadFile(filepath.Join(dir, "Missing.csproj"))
	assert.Error(t, err)
	assert.True(t, fs.IsNotExist(err))

	// Missing project directory
	_, err = fs.ReadDir(filepath.Join(dir, "Missing"))
	assert.True(t, fs.IsNotExist(err))

	// Existing file
	existing := filepath.Join(dir, "App.csproj")
	require.NoError(t, os.WriteFile(existing, []byte("<Project/>"), 0644))
	_, err = fs.ReadFile(existing)
	assert.NoError(t, err)
	assert.False(t, fs.IsNotExist(err))
}
