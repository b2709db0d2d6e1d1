package orphans

import "iter"

// All lazily yields the unused source files of every member project.
// A project is scanned only once the previous one has been consumed. A solution
// failure or a project failure is yielded as ("", err); iteration continues past
// project failures unless fail_fast is set.
func (f *realFinder) All(baseDir, solutionFile string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		projects, err := f.Projects(baseDir, solutionFile)
		if err != nil {
			yield("", err)
			return
		}

		for _, project := range projects {
			result := f.scan(project)
			if result.Err != nil {
				if !yield("", result.Err) || f.Config.FailFast {
					return
				}
				continue
			}

			for _, path := range result.Unused {
				if !yield(path, nil) {
					return
				}
			}
		}
	}
}
