package detector

import (
	"path"
	"strings"
)

// FindUnused returns the source files below projectDir that manifestFile does not declare.
// Candidates keep their on-disk spelling and order; each file is reported once.
func (d *realDetector) FindUnused(projectDir, manifestFile string) ([]string, error) {
	candidates, err := d.enumerator.Candidates(projectDir)
	if err != nil {
		return nil, err
	}

	includes, err := d.reader.DeclaredIncludes(projectDir, manifestFile)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]struct{}, len(includes))
	for _, include := range includes {
		declared[NormalizeKey(include, d.Config.CaseSensitive)] = struct{}{}
	}

	var unused []string
	reported := make(map[string]struct{})
	for _, candidate := range candidates {
		key := NormalizeKey(candidate, d.Config.CaseSensitive)
		if _, ok := declared[key]; ok {
			continue
		}
		if _, ok := reported[key]; ok {
			continue
		}
		reported[key] = struct{}{}
		unused = append(unused, candidate)
	}

	d.VerbosePrint("%d of %d source file(s) in %s are not declared", len(unused), len(candidates), projectDir)
	return unused, nil
}

// NormalizeKey returns the comparison key of a path: forward slashes, cleaned,
// and lower cased unless caseSensitive is set.
func NormalizeKey(p string, caseSensitive bool) string {
	key := path.Clean(strings.ReplaceAll(p, `\`, "/"))
	if !caseSensitive {
		key = strings.ToLower(key)
	}
	return key
}
