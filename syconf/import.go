package syconf

import (
	"os"
	"path/filepath"
)

// dirOf returns the directory a file path lives in, for resolving imports
// relative to it.
func dirOf(path string) string {
	return filepath.Dir(path)
}

// resolveImport locates and reads the file an `import "path"` expression
// refers to. Relative paths are resolved against the directory of the
// source the import appears in; a source built with NewStringSource has no
// such directory, so a relative import from it is a DomainError, not a
// silent fallback to the process's working directory.
func resolveImport(src *Source, loc Location, path string) (absPath, text string) {
	if !filepath.IsAbs(path) {
		if src.dir == "" {
			panicErr(DomainError, loc, "cannot resolve relative import %q: source has no file path", path)
		}
		path = filepath.Join(src.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panicErr(DomainError, loc, "import %q: %v", path, err)
	}
	return path, string(data)
}
