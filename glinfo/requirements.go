package glinfo

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/chill-nemesis/glad-cmake-python-fix/loader"
)

// Requirements declares what a machine class must provide for the smoke run
// to pass. Loaded from a TOML manifest:
//
//	min_version = "3.3"
//	extensions = ["GL_ARB_vertex_array_object"]
type Requirements struct {
	MinVersion string   `toml:"min_version"`
	Extensions []string `toml:"extensions"`
}

// LoadRequirements decodes a manifest file.
func LoadRequirements(path string) (*Requirements, error) {
	var reqs Requirements
	if _, err := toml.DecodeFile(path, &reqs); err != nil {
		return nil, fmt.Errorf("failed to read requirements manifest: %w", err)
	}
	return &reqs, nil
}

// Check validates a report against the manifest. The first unmet requirement
// aborts, matching the run's first-failure discipline.
func (q *Requirements) Check(r *Report) error {
	if q.MinVersion != "" {
		min, err := loader.ParseVersion(q.MinVersion)
		if err != nil {
			return fmt.Errorf("requirements manifest: %w", err)
		}
		if r.VersionCode < min {
			return fmt.Errorf("requirement not met: version code %d < %d", r.VersionCode, min)
		}
	}
	for _, name := range q.Extensions {
		if !r.HasExtension(name) {
			return fmt.Errorf("requirement not met: extension %s is not advertised", name)
		}
	}
	return nil
}
