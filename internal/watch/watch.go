// Package watch reports changes to a fixed set of files.
//
// Editors often save by writing a temporary file and renaming it over the
// original, so the watcher follows the parent directories and filters
// events by file name.
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

// DefaultDebounce collapses bursts of events for the same file.
const DefaultDebounce = 200 * time.Millisecond

// Change says that a watched file was written, created or replaced.
type Change struct {
	Path string
}

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	Logger   *zap.Logger
}

// Watcher delivers debounced Change values on a buffered channel.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	delay   time.Duration
	changes chan Change

	mu     sync.Mutex
	files  map[string]bool
	dirs   map[string]bool
	timers map[string]*time.Timer

	started  bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a watcher for paths. Empty paths are skipped.
func New(paths []string, opts Options) (*Watcher, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		logger:  opts.Logger,
		delay:   opts.Debounce,
		changes: make(chan Change, 8),
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		timers:  make(map[string]*time.Timer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	if err := w.Set(paths); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Set replaces the watched files. Directories no longer needed are
// released; on error the previous set stays in effect.
func (w *Watcher) Set(paths []string) error {
	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	var added []string
	for dir := range dirs {
		if w.dirs[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			for _, d := range added {
				_ = w.watcher.Remove(d)
			}
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		added = append(added, dir)
	}
	for dir := range w.dirs {
		if !dirs[dir] {
			_ = w.watcher.Remove(dir)
		}
	}
	for name, t := range w.timers {
		if !files[name] {
			t.Stop()
			delete(w.timers, name)
		}
	}
	w.files, w.dirs = files, dirs
	w.logger.Debug("Watching files", zap.Int("files", len(files)), zap.Int("dirs", len(dirs)))
	return nil
}

// Changes is the channel of debounced file changes.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Start runs the event loop until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.started = true
	w.logger.Info("Started file watcher")
	go w.loop(ctx)
}

// Stop ends the event loop and releases the underlying watcher.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
		if w.started {
			<-w.doneCh
		}

		w.mu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	name := filepath.Clean(ev.Name)
	if !w.files[name] {
		return
	}
	if t, ok := w.timers[name]; ok {
		t.Stop()
	}
	w.timers[name] = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		delete(w.timers, name)
		watched := w.files[name]
		w.mu.Unlock()
		if !watched {
			return
		}
		w.emit(Change{Path: name})
	})
}

// emit drops the change when the consumer is behind; one pending change
// per file is enough to trigger a reload.
func (w *Watcher) emit(c Change) {
	select {
	case w.changes <- c:
		w.logger.Debug("File changed", zap.String("path", c.Path))
	case <-w.stopCh:
	default:
		w.logger.Debug("Dropped file change", zap.String("path", c.Path))
	}
}
