// Package watcher drives watch mode: it observes a project tree through
// fsnotify and reports batches of changed source files after a debounce
// quiet period, so bursts of editor writes trigger one regeneration.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

const debounceTime = 500 * time.Millisecond

// FileWatcher watches a directory tree for changes to files with the
// configured extensions.
type FileWatcher struct {
	watcher    *fsnotify.Watcher
	extensions map[string]bool

	accumulated   map[string]bool
	accumulatedMu sync.Mutex

	debounceTimer *time.Timer
	timerMu       sync.Mutex

	callback func(files []string)
	doneCh   chan struct{}
}

// New creates a watcher over rootDir, recursively registering every
// subdirectory. extensions lists the file suffixes to report, e.g.
// []string{".py"}.
func New(rootDir string, extensions []string) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	extMap := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extMap[ext] = true
	}

	fw := &FileWatcher{
		watcher:     w,
		extensions:  extMap,
		accumulated: make(map[string]bool),
		doneCh:      make(chan struct{}),
	}

	if err := fw.addRecursively(rootDir); err != nil {
		w.Close()
		return nil, err
	}

	return fw, nil
}

// Start begins watching and invokes callback with the batch of changed
// files after each debounce window. It returns immediately; watching
// stops when ctx is cancelled.
func (fw *FileWatcher) Start(ctx context.Context, callback func(files []string)) {
	fw.callback = callback
	go fw.watch(ctx)
}

// Stop closes the watcher and waits for the watch goroutine to exit.
func (fw *FileWatcher) Stop() error {
	err := fw.watcher.Close()
	<-fw.doneCh
	return err
}

func (fw *FileWatcher) watch(ctx context.Context) {
	defer close(fw.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watch error: ", err)
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	// New directories must be registered to keep the watch recursive.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fw.addRecursively(event.Name); err != nil {
				log.Warn("failed to watch new directory: ", err)
			}
			return
		}
	}

	if !fw.extensions[filepath.Ext(event.Name)] {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	fw.accumulatedMu.Lock()
	fw.accumulated[event.Name] = true
	fw.accumulatedMu.Unlock()

	fw.resetDebounce()
}

// resetDebounce restarts the quiet-period timer; the callback fires only
// once events stop arriving for debounceTime.
func (fw *FileWatcher) resetDebounce() {
	fw.timerMu.Lock()
	defer fw.timerMu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(debounceTime, fw.flush)
}

func (fw *FileWatcher) flush() {
	fw.accumulatedMu.Lock()
	files := make([]string, 0, len(fw.accumulated))
	for file := range fw.accumulated {
		files = append(files, file)
	}
	fw.accumulated = make(map[string]bool)
	fw.accumulatedMu.Unlock()

	if len(files) > 0 && fw.callback != nil {
		fw.callback(files)
	}
}

func (fw *FileWatcher) addRecursively(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fw.watcher.Add(path)
		}
		return nil
	})
}
