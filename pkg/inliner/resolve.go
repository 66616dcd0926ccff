// File: pkg/inliner/resolve.go
package inliner

import (
	"os"
	"path/filepath"
)

// Resolve finds the file an include directive refers to.
// Quoted names are tried relative to dir first; when that fails, and always for
// angled names, searchDirs are tried in order. The first existing candidate wins.
// An absolute name is used as is wherever it is tried.
func Resolve(name string, angled bool, dir string, searchDirs []string) (string, bool) {
	if !angled {
		candidate := joinPath(dir, name)
		if exists(candidate) {
			return candidate, true
		}
	}

	for _, searchDir := range searchDirs {
		candidate := joinPath(searchDir, name)
		if exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// joinPath appends name to dir without cleaning the result, so paths shown
// in diagnostics keep the spelling of the directives that produced them.
func joinPath(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

// parentDir strips the last element of path without cleaning what is left.
// It returns "" for a bare file name.
func parentDir(path string) string {
	vol := len(filepath.VolumeName(path))
	i := len(path) - 1
	for i >= vol && !os.IsPathSeparator(path[i]) {
		i--
	}
	switch {
	case i < vol:
		return path[:vol]
	case i == vol:
		return path[:i+1]
	default:
		return path[:i]
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// canonicalPath returns the absolute, symlink-free identity of path used for
// cycle detection.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
