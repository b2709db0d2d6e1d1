package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/orphans/pkg/orphans"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

type textRenderer struct{}

// Render writes one block per project followed by a summary line.
// Unused files are shown relative to their project directory.
func (textRenderer) Render(w io.Writer, result orphans.Result) error {
	var b strings.Builder

	for _, project := range result.Projects {
		b.WriteString(boldStyle.Render(project.Project.Name))
		b.WriteString(" ")
		b.WriteString(faintStyle.Render(project.Project.RelativePath))
		b.WriteString("\n")

		switch {
		case project.Err != nil:
			b.WriteString("  " + errorStyle.Render("error: "+project.Err.Error()) + "\n")
		case len(project.Unused) == 0:
			b.WriteString("  " + successStyle.Render("no unused source files") + "\n")
		default:
			projectDir := filepath.Dir(project.Project.Path)
			for _, path := range project.Unused {
				b.WriteString("  " + warningStyle.Render(relativeTo(projectDir, path)) + "\n")
			}
		}
	}

	b.WriteString(summary(result) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func summary(result orphans.Result) string {
	unused := len(result.Unused())
	text := fmt.Sprintf("%d unused source file(s) in %d project(s)", unused, len(result.Projects))
	if failed := len(result.Failed()); failed > 0 {
		return errorStyle.Render(fmt.Sprintf("%s, %d failed", text, failed))
	}
	if unused > 0 {
		return warningStyle.Render(text)
	}
	return successStyle.Render(text)
}

func relativeTo(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
