package walk

// DefaultIgnored lists directory names the exec walker never enters:
// version-control metadata, dependency caches and build output.
//
//nolint:gochecknoglobals // Config constant
var DefaultIgnored = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"bower_components",
	"vendor",
	"dist",
	"build",
	"out",
	"target",
	"coverage",
	".next",
	".cache",
}

// IgnoreSet is a set of directory base names to skip.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds a set from names. Empty names are dropped.
func NewIgnoreSet(names ...string) IgnoreSet {
	set := make(IgnoreSet, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}

		set[name] = struct{}{}
	}

	return set
}

// Contains reports whether name is ignored. A nil set ignores nothing.
func (s IgnoreSet) Contains(name string) bool {
	_, ok := s[name]

	return ok
}
