package sourcetree

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/lerenn/orphans/internal/base"
)

// Candidates returns every source file below projectDir, outside excluded and ignored directories.
// A project whose own path crosses an excluded directory has no candidates.
func (e *realEnumerator) Candidates(projectDir string) ([]string, error) {
	e.VerbosePrint("Enumerating source files in %s", projectDir)

	exists, err := e.FS.Exists(projectDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDir, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProjectDirNotFound, projectDir)
	}

	isDir, err := e.FS.IsDir(projectDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDir, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, projectDir)
	}

	if segment, ok := e.excludedSegment(projectDir); ok {
		e.VerbosePrint("Skipping %s: inside excluded directory %s", projectDir, segment)
		return nil, nil
	}

	var candidates []string
	if err := e.walk(projectDir, "", &candidates); err != nil {
		return nil, err
	}

	e.VerbosePrint("Found %d source file(s) in %s", len(candidates), projectDir)
	return candidates, nil
}

// walk collects candidates from dir, whose slash form path relative to the project is rel.
func (e *realEnumerator) walk(dir, rel string, candidates *[]string) error {
	entries, err := e.FS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadDir, dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := path.Join(rel, name)

		if entry.IsDir() {
			if e.isExcludedDir(name) || e.ignore.MatchesPath(entryRel) {
				e.VerbosePrint("Skipping directory %s", entryRel)
				continue
			}
			if err := e.walk(filepath.Join(dir, name), entryRel, candidates); err != nil {
				return err
			}
			continue
		}

		if !base.HasSuffixFold(name, e.Config.SourceExtensions) || e.ignore.MatchesPath(entryRel) {
			continue
		}
		*candidates = append(*candidates, filepath.Join(dir, name))
	}

	return nil
}

func (e *realEnumerator) isExcludedDir(name string) bool {
	for _, excluded := range e.Config.ExcludedDirs {
		if strings.EqualFold(name, excluded) {
			return true
		}
	}
	return false
}

// excludedSegment reports the first segment of dir that names an excluded directory.
func (e *realEnumerator) excludedSegment(dir string) (string, bool) {
	for _, segment := range strings.Split(filepath.ToSlash(filepath.Clean(dir)), "/") {
		if segment != "" && e.isExcludedDir(segment) {
			return segment, true
		}
	}
	return "", false
}
