package project

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/orphans/pkg/fs"
)

// DeclaredIncludes returns the absolute paths of every Compile item declared by the manifest.
// Include values are joined to projectDir the same way on-disk candidates are.
// A manifest outside the msbuild namespace declares nothing.
func (r *realReader) DeclaredIncludes(projectDir, manifestFile string) ([]string, error) {
	path := filepath.Join(projectDir, manifestFile)
	r.VerbosePrint("Reading project manifest %s", path)

	data, err := r.FS.ReadFile(path)
	if err != nil {
		if r.FS.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w", ErrManifestNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrManifestRead, err)
	}

	items, err := compileItems(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifestParse, path, err)
	}

	includes := make([]string, 0, len(items))
	for _, item := range items {
		includes = append(includes, filepath.Join(projectDir, fs.ToNative(item)))
	}

	r.VerbosePrint("Found %d declared compile item(s) in %s", len(includes), path)
	return includes, nil
}
