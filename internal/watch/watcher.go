// Package watch reruns an action when a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits for a burst of events to settle.
const DefaultDebounce = 100 * time.Millisecond

// FileWatcher calls onChange after the watched file is written, created or
// renamed into place. The parent directory is watched so editors that
// replace the file on save are still seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context) error
	logger   *zap.Logger
}

// NewFileWatcher creates a watcher for path.
func NewFileWatcher(path string, onChange func(ctx context.Context) error, logger *zap.Logger) *FileWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileWatcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   logger,
	}
}

// SetDebounce changes the settle delay.
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.debounce = d
}

// Run watches until ctx is cancelled. Errors from onChange are logged and
// do not stop the watcher.
func (fw *FileWatcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(fw.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	fw.logger.Info("watching", zap.String("path", fw.path))

	d := newDebouncer(fw.debounce, func() {
		if err := fw.onChange(ctx); err != nil {
			fw.logger.Warn("change handler failed", zap.String("path", fw.path), zap.Error(err))
		}
	})
	defer d.stop()

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fw.logger.Debug("file changed", zap.String("path", event.Name), zap.Stringer("op", event.Op))
				d.trigger()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("watch error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}

// debouncer runs fn once per burst of triggers.
type debouncer struct {
	mu       sync.Mutex
	duration time.Duration
	timer    *time.Timer
	fn       func()
	stopped  bool
}

func newDebouncer(d time.Duration, fn func()) *debouncer {
	return &debouncer{duration: d, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
