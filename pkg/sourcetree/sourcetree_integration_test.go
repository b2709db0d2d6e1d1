//go:build integration

package sourcetree

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("// "+f), 0644))
	}
}

func TestEnumerator_Integration(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"App.csproj",
		"Program.cs",
		"Models/User.cs",
		"Models/Readme.txt",
		"bin/Debug/Compiled.cs",
		"obj/Debug/AssemblyInfo.cs",
		"Bin/Release/Other.cs",
		"Nested/obj/Temp.cs",
		"Generated/Proxy.cs",
		"Views/Main.xaml",
	)

	cfg := config.DefaultConfig()
	cfg.IgnorePatterns = []string{"Generated/**"}
	enumerator := NewEnumerator(NewEnumeratorParams{FS: fs.NewFS(), Config: cfg})

	candidates, err := enumerator.Candidates(root)
	require.NoError(t, err)

	sort.Strings(candidates)
	assert.Equal(t, []string{
		filepath.Join(root, "Models", "User.cs"),
		filepath.Join(root, "Program.cs"),
	}, candidates)
}

func TestEnumerator_Integration_ProjectUnderExcludedAncestor(t *testing.T) {
	for _, ancestor := range []string{"bin", "BIN", "obj"} {
		t.Run(ancestor, func(t *testing.T) {
			projectDir := filepath.Join(t.TempDir(), "build", ancestor, "App")
			writeFiles(t, projectDir, "Program.cs", filepath.Join("Models", "User.cs"))

			enumerator := NewEnumerator(NewEnumeratorParams{FS: fs.NewFS(), Config: config.DefaultConfig()})

			candidates, err := enumerator.Candidates(projectDir)
			require.NoError(t, err)
			assert.Empty(t, candidates)
		})
	}
}

func TestEnumerator_Integration_SymlinkedDirectoryNotFollowed(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFiles(t, root, "Program.cs")
	writeFiles(t, outside, "Shared.cs")

	if err := os.Symlink(outside, filepath.Join(root, "Linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	enumerator := NewEnumerator(NewEnumeratorParams{FS: fs.NewFS(), Config: config.DefaultConfig()})

	candidates, err := enumerator.Candidates(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Program.cs")}, candidates)
}

func TestEnumerator_Integration_Errors(t *testing.T) {
	enumerator := NewEnumerator(NewEnumeratorParams{FS: fs.NewFS(), Config: config.DefaultConfig()})

	root := t.TempDir()
	_, err := enumerator.Candidates(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, ErrProjectDirNotFound)

	writeFiles(t, root, "File.cs")
	_, err = enumerator.Candidates(filepath.Join(root, "File.cs"))
	assert.ErrorIs(t, err, ErrNotDirectory)
}
