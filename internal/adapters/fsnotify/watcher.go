// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches a single markdown file (through its parent directory, so editors that
// save by rename are still seen) or the files directly inside one directory, filters
// out editor noise, and debounces rapid events (editors often trigger multiple writes
// per save).
package fsnotify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/corey/textkit/internal/ports"
)

// File names/suffixes that never trigger onChange.
var ignoreSuffixes = []string{
	".DS_Store",
	".swp",
	".swx",
	".tmp",
	"~",
}

// DebounceInterval is how long a file must stay quiet before onChange fires.
// A burst of writes (truncate, then write) yields one callback with the final content.
const DebounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. For a file, only that file's events fire
// onChange; for a directory, events of files directly inside it fire.
// onChange receives the absolute path of the changed file.
func (w *Watcher) Watch(path string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}

	dir := absPath
	target := ""
	if !info.IsDir() {
		dir = filepath.Dir(absPath)
		target = absPath
	}
	if err := w.fw.Add(dir); err != nil {
		return err
	}

	// Pending callback per file, reset on every new event.
	pending := make(map[string]*time.Timer)

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				changed := event.Name

				if target != "" && changed != target {
					continue
				}
				if shouldIgnorePath(changed) {
					continue
				}
				// Removed or renamed-away files have nothing left to render.
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if fi, err := os.Stat(changed); err != nil || fi.IsDir() {
					continue
				}

				if t, ok := pending[changed]; ok {
					t.Reset(DebounceInterval)
					continue
				}
				pending[changed] = time.AfterFunc(DebounceInterval, func() {
					select {
					case <-w.done:
					default:
						onChange(changed)
					}
				})

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				for _, t := range pending {
					t.Stop()
				}
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

// shouldIgnorePath returns true if the file path should not trigger onChange.
func shouldIgnorePath(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".#") {
		return true
	}
	for _, suffix := range ignoreSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}
