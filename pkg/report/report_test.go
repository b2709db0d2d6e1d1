//go:build unit

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/orphans"
	"github.com/lerenn/orphans/pkg/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() orphans.Result {
	appDir := filepath.Join("/work", "App")
	return orphans.Result{Projects: []orphans.ProjectResult{
		{
			Project: solution.Project{Name: "App", RelativePath: `App\App.csproj`, Path: filepath.Join(appDir, "App.csproj")},
			Unused:  []string{filepath.Join(appDir, "Baz.cs"), filepath.Join(appDir, "Sub", "Old.cs")},
		},
		{
			Project: solution.Project{Name: "Lib", RelativePath: `Lib\Lib.csproj`, Path: filepath.Join("/work", "Lib", "Lib.csproj")},
		},
		{
			Project: solution.Project{Name: "Gone", RelativePath: `Gone\Gone.csproj`, Path: filepath.Join("/work", "Gone", "Gone.csproj")},
			Err:     errors.New("project directory not found"),
		},
	}}
}

func render(t *testing.T, format string, result orphans.Result) string {
	t.Helper()
	SetNoColor()

	renderer, err := New(format)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, result))
	return buf.String()
}

func TestNew_UnknownFormat(t *testing.T) {
	renderer, err := New("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Nil(t, renderer)
}

func TestTextRenderer(t *testing.T) {
	output := render(t, config.FormatText, sampleResult())

	assert.Contains(t, output, `App App\App.csproj`)
	assert.Contains(t, output, "  Baz.cs\n")
	assert.Contains(t, output, "  "+filepath.Join("Sub", "Old.cs")+"\n")
	assert.Contains(t, output, "  no unused source files\n")
	assert.Contains(t, output, "  error: project directory not found\n")
	assert.Contains(t, output, "2 unused source file(s) in 3 project(s), 1 failed\n")
}

func TestTextRenderer_Empty(t *testing.T) {
	output := render(t, config.FormatText, orphans.Result{})
	assert.Equal(t, "0 unused source file(s) in 0 project(s)\n", output)
}

func TestJSONRenderer(t *testing.T) {
	output := render(t, config.FormatJSON, sampleResult())

	var decoded jsonReport
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))

	assert.Equal(t, 2, decoded.Unused)
	assert.Equal(t, 1, decoded.Failed)
	require.Len(t, decoded.Projects, 3)
	assert.Equal(t, "App", decoded.Projects[0].Name)
	assert.Len(t, decoded.Projects[0].Unused, 2)
	assert.Equal(t, []string{}, decoded.Projects[1].Unused)
	assert.Equal(t, "project directory not found", decoded.Projects[2].Error)
}

func TestPlainRenderer(t *testing.T) {
	output := render(t, config.FormatPlain, sampleResult())

	expected := filepath.Join("/work", "App", "Baz.cs") + "\n" +
		filepath.Join("/work", "App", "Sub", "Old.cs") + "\n"
	assert.Equal(t, expected, output)
}

func TestRelativeTo(t *testing.T) {
	dir := filepath.Join("/work", "App")

	assert.Equal(t, "Foo.cs", relativeTo(dir, filepath.Join(dir, "Foo.cs")))
	assert.Equal(t, filepath.Join("/work", "Other.cs"), relativeTo(dir, filepath.Join("/work", "Other.cs")))
}
