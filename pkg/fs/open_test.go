//go:build integration

package fs

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Open(t *testing.T) {
	fs := NewFS()
	solution := filepath.Join(t.TempDir(), "App.sln")
	content := "Microsoft Visual Studio Solution File, Format Version 12.00\r\n"
	require.NoError(t, os.WriteFile(solution, []byte(content), 0644))

	// Test streaming an existing file
	rc, err := fs.Open(solution)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.NoError(t, rc.Close())
	assert.Equal(t, content, string(data))

	// Test opening a non-existing file
	_, err = fs.Open(filepath.Join(t.TempDir(), "Missing.sln"))
	assert.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
}
