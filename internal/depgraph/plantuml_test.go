package depgraph

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Dependency Diagram Rendering:
// - Output is wrapped in @startuml/@enduml with the style header
// - Modules nest inside package blocks under the root package
// - Each dependency renders as a colored arrow, colors cycling per
//   source module

func TestDiagram_PackageTreeAndEdges(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeSource(t, filepath.Join(root, "app.py"), "import utils\nfrom pkg.helper import Helper\n")
	writeSource(t, filepath.Join(root, "utils.py"), "")
	writeSource(t, filepath.Join(root, "pkg", "helper.py"), "")

	g, err := Build([]string{
		filepath.Join(root, "app.py"),
		filepath.Join(root, "utils.py"),
		filepath.Join(root, "pkg", "helper.py"),
	}, root)
	require.NoError(t, err)

	lines := Diagram(g, "myproject")

	assert.Equal(t, "@startuml", lines[0])
	assert.Equal(t, "@enduml", lines[len(lines)-1])
	assert.Contains(t, lines, "skinparam packageStyle rectangle")
	assert.Contains(t, lines, "left to right direction")

	// Tree: modules grouped under the root package, pkg nested inside.
	assert.Contains(t, lines, `package "myproject" {`)
	assert.Contains(t, lines, `    ["app"]`)
	assert.Contains(t, lines, `    ["utils"]`)
	assert.Contains(t, lines, `    package "pkg" {`)
	assert.Contains(t, lines, `        ["helper"]`)

	// Edges from app, targets sorted by dotted path, colors cycling.
	assert.Contains(t, lines, `["app"] -[#1f77b4]-> ["helper"]`)
	assert.Contains(t, lines, `["app"] -[#ff7f0e]-> ["utils"]`)
}

func TestDiagram_EmptyGraph(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	g, err := Build(nil, root)
	require.NoError(t, err)

	lines := Diagram(g, "empty")
	assert.Equal(t, "@startuml", lines[0])
	assert.Equal(t, "@enduml", lines[len(lines)-1])
	assert.Contains(t, lines, `["empty"]`)
}

func TestTreeNode_InsertAndRender(t *testing.T) {
	t.Parallel()

	tree := newTreeNode("root")
	tree.insert([]string{"a"})
	tree.insert([]string{"pkg", "b"})
	tree.insert([]string{"pkg", "c"})

	assert.Equal(t, []string{
		`package "root" {`,
		`    ["a"]`,
		`    package "pkg" {`,
		`        ["b"]`,
		`        ["c"]`,
		"    }",
		"}",
	}, tree.render(0))
}

func TestDiagram_WritesNoOrphanEdgeBlocks(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeSource(t, filepath.Join(root, "single.py"), "import os\n")

	g, err := Build([]string{filepath.Join(root, "single.py")}, root)
	require.NoError(t, err)

	for _, line := range Diagram(g, "p") {
		assert.NotContains(t, line, "-[")
	}
}
