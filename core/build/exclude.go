package build

import (
	"path/filepath"
	"strings"
)

// privateNames are never built or served from the project root.
var privateNames = map[string]struct{}{
	"node_modules":  {},
	"moodbank.yaml": {},
	"moodbank.yml":  {},
	"moodbank.json": {},
}

// sqliteExts mark database files; journal siblings carry one of these
// followed by a sqliteSuffixes entry.
var (
	sqliteExts     = []string{".db", ".sqlite", ".sqlite3"}
	sqliteSuffixes = []string{"-journal", "-wal", "-shm"}
)

// Private reports whether a single path element names something that must
// stay out of the build and the dev server: dot-entries, node_modules,
// moodbank config files and sqlite databases with their journals.
func Private(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return true
	}
	if _, ok := privateNames[name]; ok {
		return true
	}
	base := strings.ToLower(name)
	for _, suffix := range sqliteSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}
	for _, ext := range sqliteExts {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

// PrivatePath reports whether any element of the slash-separated rel path
// is Private.
func PrivatePath(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if Private(part) {
			return true
		}
	}
	return false
}

// PathSet holds absolute, cleaned paths.
type PathSet map[string]struct{}

// NewPathSet resolves paths to absolute form. Empty entries are dropped.
func NewPathSet(paths []string) PathSet {
	set := make(PathSet, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		set[filepath.Clean(abs)] = struct{}{}
	}
	return set
}

// Has reports whether path, once made absolute, is in the set.
func (s PathSet) Has(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := s[filepath.Clean(abs)]
	return ok
}
