// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It recursively watches a project directory,
// filters out excluded files and directories, and debounces rapid events
// (editors often trigger multiple writes per save).
package fsnotify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/corey/codemap/internal/config"
	"github.com/fsnotify/fsnotify"
)

// debounceInterval suppresses repeat events for the same file.
const debounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify. Exclusion filtering
// follows the same configuration the traversal uses, so watch mode never
// reacts to files the map would not list.
type Watcher struct {
	cfg     *config.Config
	fw      *fsnotify.Watcher
	root    string
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file system watcher with the given configuration.
func NewWatcher(cfg *config.Config) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		cfg:  cfg,
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring projectPath recursively.
// onChange is called with the absolute path of each changed file.
func (w *Watcher) Watch(projectPath string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return err
	}
	w.root = absPath

	// Walk and add all non-excluded directories
	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if info.IsDir() {
			if path != absPath && w.cfg.ExcludedDir(info.Name()) {
				return filepath.SkipDir
			}
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Debounce state: track last event time per file
	debounce := make(map[string]time.Time)
	var dmu sync.Mutex

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name

				// For Create events, add new directories to the watch list
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(path); err == nil && info.IsDir() {
						if !w.cfg.ExcludedDir(info.Name()) {
							w.fw.Add(path)
						}
					}
				}

				if w.excluded(path) {
					continue
				}

				// Debounce: skip if we've seen this file recently
				dmu.Lock()
				last, seen := debounce[path]
				now := time.Now()
				if seen && now.Sub(last) < debounceInterval {
					dmu.Unlock()
					continue
				}
				debounce[path] = now
				dmu.Unlock()

				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					onChange(path)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

// excluded reports whether a changed path should not trigger onChange:
// excluded file names, or any excluded directory among the path components
// below the watch root.
func (w *Watcher) excluded(path string) bool {
	if w.cfg.ExcludedFile(filepath.Base(path)) {
		return true
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return true
	}
	parts := strings.Split(rel, string(filepath.Separator))
	for _, part := range parts[:len(parts)-1] {
		if w.cfg.ExcludedDir(part) {
			return true
		}
	}
	return false
}
