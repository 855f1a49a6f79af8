package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/macropower/pagebar/pkg/log"
)

// DefaultDebounce is how long [Watcher] waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives the result of each reload.
type ReloadFunc func(c *Config, err error)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onReload ReloadFunc
	path     string
	opts     []LoaderOpt
	debounce time.Duration
}

// NewWatcher watches the directory containing path, so that editors which
// replace files by renaming are picked up.
func NewWatcher(path string, onReload ReloadFunc, opts ...LoaderOpt) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	err = fw.Add(filepath.Dir(absPath))
	if err != nil {
		_ = fw.Close()

		return nil, fmt.Errorf("add path to watcher: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		onReload: onReload,
		path:     absPath,
		opts:     opts,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce changes the settle delay. Zero reloads on every event.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run handles events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	logger := log.FromContext(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if evt.Name != w.path || evt.Has(fsnotify.Chmod) {
				continue
			}

			logger.DebugContext(ctx, "config file event", slog.String("event", evt.String()))

			if w.debounce <= 0 {
				w.reload(ctx)

				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case <-fire:
			fire = nil

			w.reload(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			logger.ErrorContext(ctx, "watch config", slog.Any("error", err))
			w.onReload(nil, fmt.Errorf("watch config: %w", err))
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	l, err := NewLoaderFromFile(w.path, w.opts...)
	if err != nil {
		w.onReload(nil, err)

		return
	}

	c, err := l.Load()
	if err != nil {
		log.FromContext(ctx).WarnContext(ctx, "reload config", slog.Any("error", err))
		w.onReload(nil, err)

		return
	}

	log.FromContext(ctx).InfoContext(ctx, "reloaded config", slog.String("path", w.path))
	w.onReload(c, nil)
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}
