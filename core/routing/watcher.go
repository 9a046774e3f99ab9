package routing

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the routing config when its file changes on disk, so edits
// take effect without restarting.
type Watcher struct {
	inner  *fsnotify.Watcher
	path   string
	engine *Engine
	logger *zap.Logger
	done   chan struct{}
}

// WatchConfig watches the config file at path and swaps the engine's config
// on every write. The containing directory is watched, not the file itself,
// so editors that replace the file atomically are still seen.
func WatchConfig(path string, engine *Engine, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	inner, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := inner.Add(filepath.Dir(path)); err != nil {
		inner.Close()
		return nil, err
	}

	w := &Watcher{
		inner:  inner,
		path:   path,
		engine: engine,
		logger: logger,
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.inner.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.engine.SetConfig(Load(w.path, w.logger))
			w.logger.Info("routing config reloaded", zap.String("path", w.path))
		case err, ok := <-w.inner.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", zap.Error(err))
		}
	}
}

// Close stops watching and waits for the reload loop to exit.
func (w *Watcher) Close() error {
	err := w.inner.Close()
	<-w.done
	return err
}
