package depgraph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
	log "github.com/sirupsen/logrus"
)

var (
	importPattern     = regexp.MustCompile(`^import +(.+)`)
	fromImportPattern = regexp.MustCompile(`^from +([\w.]+) +import\b`)
)

// Graph is a directed module dependency graph. Vertices are modules keyed
// by their dotted path; insertion order is tracked so diagrams list
// modules in file order.
type Graph struct {
	modules graph.Graph[string, Module]
	order   []string
}

// Build scans every file's import lines and links the file's module to
// each dependency that resolves to a module inside rootDir. Unreadable
// files are reported and skipped; the remaining files still contribute.
func Build(files []string, rootDir string) (*Graph, error) {
	g := &Graph{
		modules: graph.New(Module.ID, graph.Directed()),
	}

	var errs []error
	for _, path := range files {
		module := moduleForPath(rootDir, path)
		g.addModule(module)

		data, err := os.ReadFile(path)
		if err != nil {
			log.WithFields(log.Fields{"file": path}).Warn("skipping unreadable file: ", err)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		for _, dep := range scanImports(strings.Split(string(data), "\n"), rootDir) {
			if dep.ID() == module.ID() {
				continue
			}
			g.addModule(dep)
			// Duplicate edges are fine, the graph keeps one.
			_ = g.modules.AddEdge(module.ID(), dep.ID())
		}
	}

	return g, errors.Join(errs...)
}

// Modules returns the graph's modules in insertion order.
func (g *Graph) Modules() []Module {
	modules := make([]Module, 0, len(g.order))
	for _, id := range g.order {
		if m, err := g.modules.Vertex(id); err == nil {
			modules = append(modules, m)
		}
	}
	return modules
}

// DependenciesOf returns the modules the given module imports, ordered by
// dotted path for stable output.
func (g *Graph) DependenciesOf(m Module) []Module {
	adjacency, err := g.modules.AdjacencyMap()
	if err != nil {
		return nil
	}

	targets := adjacency[m.ID()]
	ids := make([]string, 0, len(targets))
	for id := range targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	deps := make([]Module, 0, len(ids))
	for _, id := range ids {
		if dep, err := g.modules.Vertex(id); err == nil {
			deps = append(deps, dep)
		}
	}
	return deps
}

func (g *Graph) addModule(m Module) {
	if err := g.modules.AddVertex(m); err == nil {
		g.order = append(g.order, m.ID())
	}
}

// moduleForPath derives the module identity of a source file from its
// location relative to the project root.
func moduleForPath(rootDir, path string) Module {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var packages []string
	if rel, err := filepath.Rel(rootDir, filepath.Dir(path)); err == nil && rel != "." {
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			if part != "" {
				packages = append(packages, part)
			}
		}
	}

	return Module{Name: name, Packages: packages}
}

// scanImports collects the project-internal modules referenced by import
// statements. External imports (anything whose first path segment does not
// exist under rootDir) are dropped.
func scanImports(lines []string, rootDir string) []Module {
	seen := make(map[string]bool)
	var deps []Module

	add := func(target string) {
		module, ok := resolveModule(target, rootDir)
		if !ok || seen[module.ID()] {
			return
		}
		seen[module.ID()] = true
		deps = append(deps, module)
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if m := fromImportPattern.FindStringSubmatch(trimmed); m != nil {
			add(m[1])
			continue
		}
		if m := importPattern.FindStringSubmatch(trimmed); m != nil {
			// "import a, b" names several targets on one line.
			for _, target := range strings.Split(m[1], ",") {
				add(strings.TrimSpace(strings.Split(strings.TrimSpace(target), " ")[0]))
			}
		}
	}

	return deps
}

// resolveModule walks the dotted import path against the filesystem,
// keeping each segment that exists as a package directory or module file
// under rootDir. An import whose first segment resolves to neither is
// external.
func resolveModule(target, rootDir string) (Module, bool) {
	current := rootDir
	var kept []string

	for _, part := range strings.Split(target, ".") {
		asFile := filepath.Join(current, part+".py")
		current = filepath.Join(current, part)

		if !isDir(current) && !isFile(asFile) {
			break
		}
		kept = append(kept, part)
	}

	if len(kept) == 0 {
		return Module{}, false
	}
	return Module{Name: kept[len(kept)-1], Packages: kept[:len(kept)-1]}, true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
