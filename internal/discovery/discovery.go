// Package discovery lists the Python source files a run will feed into the
// extraction pipeline. Matching is glob based with an ignore list, and
// files whose name starts with a double underscore (module machinery such
// as __init__.py) are always skipped.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// privateFilePrefix marks Python module-machinery files that carry no
// class declarations worth diagramming.
const privateFilePrefix = "__"

// compiledPattern keeps the pattern text next to its compiled glob so
// ignore checks can re-derive directory variants.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery walks a root directory and returns source files matching the
// include patterns while skipping ignored paths.
type Discovery struct {
	rootDir        string
	sourcePatterns []compiledPattern
	ignorePatterns []compiledPattern
}

// New compiles the given include and ignore glob patterns for rootDir.
func New(rootDir string, sourcePatterns, ignorePatterns []string) (*Discovery, error) {
	d := &Discovery{rootDir: rootDir}

	for _, pattern := range sourcePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.sourcePatterns = append(d.sourcePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Files walks the root and returns matching source files in walk order.
// Unreadable subtrees surface as an error; the caller decides whether the
// run continues.
func (d *Discovery) Files() ([]string, error) {
	files := []string{}

	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		if strings.HasPrefix(filepath.Base(path), privateFilePrefix) {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.shouldIgnore(relPath) {
			return nil
		}

		if d.matchesAny(relPath, d.sourcePatterns) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// shouldIgnore checks the path against the ignore patterns, including the
// directory form: a path under "venv" matches an ignore pattern "venv/**".
func (d *Discovery) shouldIgnore(relPath string) bool {
	if d.matchesAny(relPath, d.ignorePatterns) {
		return true
	}
	return d.matchesAny(relPath+"/**", d.ignorePatterns)
}

// matchesAny reports whether the path matches any compiled pattern. A
// root-level path (no slash) is also tried against patterns with their
// leading "**/" removed, so "**/*.py" matches "main.py" as expected.
func (d *Discovery) matchesAny(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if simplified, ok := strings.CutPrefix(cp.pattern, "**/"); ok {
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
