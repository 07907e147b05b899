package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single file and invokes a callback with its path
// after changes settle. The locale slot is written atomically via rename,
// so create/rename events count as changes alongside writes.
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	debounceDelay time.Duration
	onChange      func(path string)
	stopCh        chan struct{}
}

// New creates a watcher for path. onChange receives the watched path.
func New(path string, debounceDelay time.Duration, onChange func(path string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &Watcher{
		watcher:       fsWatcher,
		path:          path,
		debounceDelay: debounceDelay,
		onChange:      onChange,
		stopCh:        make(chan struct{}),
	}, nil
}

// Start watches the file's directory so atomic replace (tmp+rename) is
// observed even when the inode changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch dir: %w", err)
	}
	go w.watchLoop()
	return nil
}

func (w *Watcher) Stop() error {
	close(w.stopCh)
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounceDelay, func() {
				w.onChange(w.path)
			})

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}
