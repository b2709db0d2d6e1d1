//go:build integration

package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFS_ResolvePath(t *testing.T) {
	fs := NewFS()
	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "src", "App")

	tests := []struct {
		name         string
		baseDir      string
		relativePath string
		expected     string
		expectError  bool
	}{
		{
			name:         "Simple relative path",
			baseDir:      baseDir,
			relativePath: "App.sln",
			expected:     filepath.Join(baseDir, "App.sln"),
		},
		{
			name:         "Backslash separated project path",
			baseDir:      baseDir,
			relativePath: `src\App\App.csproj`,
			expected:     filepath.Join(baseDir, "src", "App", "App.csproj"),
		},
		{
			name:         "Forward slash separated project path",
			baseDir:      baseDir,
			relativePath: "src/App/App.csproj",
			expected:     filepath.Join(baseDir, "src", "App", "App.csproj"),
		},
		{
			name:         "Parent directory components",
			baseDir:      projectDir,
			relativePath: `..\Shared\Shared.csproj`,
			expected:     filepath.Join(baseDir, "src", "Shared", "Shared.csproj"),
		},
		{
			name:         "Dot components",
			baseDir:      baseDir,
			relativePath: "./src/./App",
			expected:     projectDir,
		},
		{
			name:         "Absolute path returned as-is",
			baseDir:      baseDir,
			relativePath: projectDir,
			expected:     projectDir,
		},
		{
			name:         "Empty base path",
			baseDir:      "",
			relativePath: "App.sln",
			expectError:  true,
		},
		{
			name:         "Empty relative path",
			baseDir:      baseDir,
			relativePath: "",
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := fs.ResolvePath(tt.baseDir, tt.relativePath)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrPathResolution)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, resolved)
		})
	}
}

func TestToNative(t *testing.T) {
	assert.Equal(t, filepath.Join("App", "Sub", "Foo.cs"), ToNative(`App\Sub\Foo.cs`))
	assert.Equal(t, filepath.Join("App", "Sub", "Foo.cs"), ToNative("App/Sub/Foo.cs"))
	assert.Equal(t, "Foo.cs", ToNative("Foo.cs"))
}
