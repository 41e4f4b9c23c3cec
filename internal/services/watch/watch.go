// Package watch reloads the dashboard when a local document source changes.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/j-veylop/costboard/internal/logger"
	"github.com/j-veylop/costboard/internal/services/loader"
)

// DefaultDebounce coalesces the burst of events an editor or atomic rename
// produces into one change.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a fixed set of files.
type Watcher struct {
	mu            sync.Mutex
	watcher       *fsnotify.Watcher
	files         map[string]bool
	changes       chan struct{}
	stopChan      chan struct{}
	debounceTimer *time.Timer
	debounce      time.Duration
	closeOnce     sync.Once
}

// LocalFiles returns the files the loader would read for sources, resolved
// the same way. http(s) sources are skipped.
func LocalFiles(sources ...string) []string {
	var files []string
	for _, src := range sources {
		if name, ok := loader.LocalPath(src); ok {
			files = append(files, name)
		}
	}
	return files
}

// New starts watching the directories of files. The directories are watched
// rather than the files so that replace-by-rename writes are seen.
func New(files []string, debounce time.Duration) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no local files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool, len(files)),
		changes:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
		debounce: debounce,
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			if closeErr := fw.Close(); closeErr != nil {
				logger.Error("failed to close watcher", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go w.watchLoop()
	return w, nil
}

// Changes delivers one value per debounced burst of changes. Bursts that
// arrive while a value is pending are merged into it.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher error", "error", err)

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounce, w.emit)
}

func (w *Watcher) emit() {
	select {
	case <-w.stopChan:
		return
	default:
	}

	select {
	case w.changes <- struct{}{}:
		logger.Debug("document source changed")
	default:
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stopChan)

		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()

		err = w.watcher.Close()
	})
	return err
}
