package dispatch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/idelchi/devkit/internal/walk"
)

// DefaultManifest is the marker file identifying a package root.
const DefaultManifest = "package.json"

type manifest struct {
	Name                 string            `json:"name"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
}

func (m manifest) references(pkg string) bool {
	if m.Name == pkg {
		return true
	}

	for _, deps := range []map[string]string{
		m.Dependencies,
		m.DevDependencies,
		m.PeerDependencies,
		m.OptionalDependencies,
	} {
		if _, ok := deps[pkg]; ok {
			return true
		}
	}

	return false
}

// ManifestMatcher selects directories that contain the manifest file and
// reference pkg in it, either as the package name or as a dependency.
// With an empty pkg it returns nil, which qualifies every directory.
func ManifestMatcher(file, pkg string, logger walk.Logger) walk.Matcher {
	if pkg == "" {
		return nil
	}

	if file == "" {
		file = DefaultManifest
	}

	return func(dir string) bool {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			return false
		}

		var m manifest
		if err := json.Unmarshal(data, &m); err != nil {
			if logger != nil {
				logger.Printf("skipping %s: parsing %s: %v", dir, file, err)
			}

			return false
		}

		return m.references(pkg)
	}
}
