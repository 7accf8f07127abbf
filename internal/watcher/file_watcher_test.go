package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for File Watching:
// - A write to a matching file is delivered after the debounce window
// - A burst of writes is delivered as one batch
// - Files with other extensions are filtered out
// - Stop terminates the watch goroutine

func collectBatch(t *testing.T, ch <-chan []string) []string {
	t.Helper()
	select {
	case files := <-ch:
		return files
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch callback")
		return nil
	}
}

func TestWatcher_DeliversChangedFiles(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	fw, err := New(root, []string{".py"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []string, 1)
	fw.Start(ctx, func(files []string) {
		batches <- files
	})

	target := filepath.Join(root, "module.py")
	require.NoError(t, os.WriteFile(target, []byte("class A:\n    pass\n"), 0o644))

	files := collectBatch(t, batches)
	assert.Equal(t, []string{target}, files)

	require.NoError(t, fw.Stop())
}

func TestWatcher_BatchesBurstsAndFiltersExtensions(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	fw, err := New(root, []string{".py"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches := make(chan []string, 1)
	fw.Start(ctx, func(files []string) {
		batches <- files
	})

	first := filepath.Join(root, "a.py")
	second := filepath.Join(root, "b.py")
	require.NoError(t, os.WriteFile(first, []byte("class A:\n    pass\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("class B:\n    pass\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	files := collectBatch(t, batches)
	assert.ElementsMatch(t, []string{first, second}, files)

	require.NoError(t, fw.Stop())
}
