package report

import (
	"encoding/json"
	"io"

	"github.com/lerenn/orphans/pkg/orphans"
)

type jsonReport struct {
	Projects []jsonProject `json:"projects"`
	Unused   int           `json:"unused"`
	Failed   int           `json:"failed"`
}

type jsonProject struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Unused []string `json:"unused"`
	Error  string   `json:"error,omitempty"`
}

type jsonRenderer struct{}

// Render writes the result as an indented JSON document.
func (jsonRenderer) Render(w io.Writer, result orphans.Result) error {
	report := jsonReport{
		Projects: make([]jsonProject, 0, len(result.Projects)),
		Unused:   len(result.Unused()),
		Failed:   len(result.Failed()),
	}

	for _, project := range result.Projects {
		entry := jsonProject{
			Name:   project.Project.Name,
			Path:   project.Project.Path,
			Unused: project.Unused,
		}
		if entry.Unused == nil {
			entry.Unused = []string{}
		}
		if project.Err != nil {
			entry.Error = project.Err.Error()
		}
		report.Projects = append(report.Projects, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
