package depgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Dependency Graph Building:
// - Module identity is the file stem plus its package directories
// - import and from-import lines link the file's module to project
//   modules
// - Comma-separated imports on one line name several targets
// - External imports (no matching directory or file under the root)
//   are dropped
// - Self imports are dropped
// - Modules keep file order; dependencies are sorted by dotted path
// - Unreadable files are reported but do not fail the build

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestModule_ID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "utils", Module{Name: "utils"}.ID())
	assert.Equal(t, "pkg.sub.helper", Module{Name: "helper", Packages: []string{"pkg", "sub"}}.ID())
}

func TestBuild_LinksInternalImports(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeSource(t, filepath.Join(root, "app.py"), "import os\nimport utils\nfrom pkg.helper import Helper\n")
	writeSource(t, filepath.Join(root, "utils.py"), "import json\n")
	writeSource(t, filepath.Join(root, "pkg", "helper.py"), "import utils\n")

	g, err := Build([]string{
		filepath.Join(root, "app.py"),
		filepath.Join(root, "utils.py"),
		filepath.Join(root, "pkg", "helper.py"),
	}, root)
	require.NoError(t, err)

	var ids []string
	for _, m := range g.Modules() {
		ids = append(ids, m.ID())
	}
	// app first, then its dependencies in scan order, then the
	// remaining files.
	assert.Equal(t, []string{"app", "utils", "pkg.helper"}, ids)

	deps := g.DependenciesOf(Module{Name: "app"})
	require.Len(t, deps, 2)
	assert.Equal(t, "pkg.helper", deps[0].ID())
	assert.Equal(t, "utils", deps[1].ID())

	// os and json are external and never become vertices.
	deps = g.DependenciesOf(Module{Name: "utils"})
	assert.Empty(t, deps)
}

func TestBuild_CommaSeparatedImports(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeSource(t, filepath.Join(root, "app.py"), "import alpha, beta\n")
	writeSource(t, filepath.Join(root, "alpha.py"), "")
	writeSource(t, filepath.Join(root, "beta.py"), "")

	g, err := Build([]string{filepath.Join(root, "app.py")}, root)
	require.NoError(t, err)

	deps := g.DependenciesOf(Module{Name: "app"})
	require.Len(t, deps, 2)
	assert.Equal(t, "alpha", deps[0].ID())
	assert.Equal(t, "beta", deps[1].ID())
}

func TestBuild_SelfImportDropped(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeSource(t, filepath.Join(root, "app.py"), "import app\n")

	g, err := Build([]string{filepath.Join(root, "app.py")}, root)
	require.NoError(t, err)

	assert.Empty(t, g.DependenciesOf(Module{Name: "app"}))
}

func TestBuild_UnreadableFileReported(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeSource(t, filepath.Join(root, "good.py"), "")
	missing := filepath.Join(root, "missing.py")

	g, err := Build([]string{filepath.Join(root, "good.py"), missing}, root)
	require.Error(t, err)

	// The readable file still contributes its vertex.
	require.Len(t, g.Modules(), 2)
	assert.Equal(t, "good", g.Modules()[0].ID())
}

func TestResolveModule_PartialPathKeepsExistingSegments(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeSource(t, filepath.Join(root, "pkg", "helper.py"), "")

	// The trailing symbol does not exist on disk; resolution keeps the
	// segments that do.
	m, ok := resolveModule("pkg.helper.Thing", root)
	require.True(t, ok)
	assert.Equal(t, "pkg.helper", m.ID())

	_, ok = resolveModule("requests", root)
	assert.False(t, ok)
}
