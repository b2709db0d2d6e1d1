//go:build integration

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Integration(t *testing.T) {
	projectDir := t.TempDir()

	manifest := "\ufeff" + `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="15.0" DefaultTargets="Build" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup>
    <Compile Include="Program.cs" />
    <Compile Include="Models\User.cs" />
  </ItemGroup>
</Project>
`
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "App.csproj"), []byte(manifest), 0644))

	reader := NewReader(NewReaderParams{
		FS:     fs.NewFS(),
		Config: config.DefaultConfig(),
	})

	includes, err := reader.DeclaredIncludes(projectDir, "App.csproj")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(projectDir, "Program.cs"),
		filepath.Join(projectDir, "Models", "User.cs"),
	}, includes)
}

func TestReader_Integration_MissingManifest(t *testing.T) {
	reader := NewReader(NewReaderParams{
		FS:     fs.NewFS(),
		Config: config.DefaultConfig(),
	})

	_, err := reader.DeclaredIncludes(t.TempDir(), "Missing.csproj")
	assert.ErrorIs(t, err, ErrManifestNotFound)
}
