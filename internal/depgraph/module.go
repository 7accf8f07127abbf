// Package depgraph builds a directed dependency graph between the modules
// of a Python project by scanning import lines, and renders it as a
// PlantUML component diagram with modules grouped into their packages.
// Like the class-diagram pipeline it is line oriented: imports are matched
// by pattern, not parsed.
package depgraph

import "strings"

// Module identifies one Python module: its file stem plus the package
// directories between the project root and the file.
type Module struct {
	Name     string
	Packages []string
}

// ID returns the dotted path used as the module's graph key.
func (m Module) ID() string {
	if len(m.Packages) == 0 {
		return m.Name
	}
	return strings.Join(m.Packages, ".") + "." + m.Name
}
