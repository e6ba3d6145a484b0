package config

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/thorn-jmh/errorst"

	"gsgen/pkg/logger"
)

// Watcher reports writes to a set of files.
type Watcher struct {
	watcher   *fsnotify.Watcher
	callbacks []func(path string)
	mu        sync.RWMutex
	watched   map[string]bool
	closeOnce sync.Once
}

func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorst.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		watcher: fsWatcher,
		watched: make(map[string]bool),
	}, nil
}

// Add watches path. The parent directory is watched so that files replaced
// by editors keep being reported.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errorst.Wrap(err, "failed to resolve path <%s>", path)
	}
	if err := w.watcher.Add(filepath.Dir(absPath)); err != nil {
		return errorst.Wrap(err, "failed to watch <%s>", path)
	}
	w.mu.Lock()
	w.watched[absPath] = true
	w.mu.Unlock()
	return nil
}

// OnChange registers a callback invoked with the absolute path of a changed file.
func (w *Watcher) OnChange(callback func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run dispatches events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.mu.RLock()
			watched := w.watched[event.Name]
			w.mu.RUnlock()
			if !watched || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("file changed", "path", event.Name, "op", event.Op.String())
			w.notifyCallbacks(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) notifyCallbacks(path string) {
	w.mu.RLock()
	callbacks := make([]func(string), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()
	for _, callback := range callbacks {
		if callback != nil {
			callback(path)
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var closeErr error
	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			closeErr = errorst.Wrap(err, "failed to close watcher")
		}
	})
	return closeErr
}
