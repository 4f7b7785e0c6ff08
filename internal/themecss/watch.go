package themecss

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Invalidator is notified when theme files change. *palette.Store
// implements it.
type Invalidator interface {
	Invalidate()
}

// WatchConfig configures a Watcher.
type WatchConfig struct {
	// Debounce delays invalidation until changes settle. Zero uses
	// DefaultDebounce.
	Debounce time.Duration
	Logger   hclog.Logger
	// OnChange is called after each invalidation with the changed file.
	OnChange func(path string)
}

// Watcher invalidates a palette store when stylesheets change.
type Watcher struct {
	target  Invalidator
	watcher *fsnotify.Watcher
	config  WatchConfig
	logger  hclog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches dirs for .css changes. Directories that cannot be
// watched are logged and skipped; at least one must succeed.
func NewWatcher(dirs []string, target Invalidator, config WatchConfig) (*Watcher, error) {
	if config.Logger == nil {
		config.Logger = hclog.NewNullLogger()
	}
	if config.Debounce == 0 {
		config.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		target:  target,
		watcher: fw,
		config:  config,
		logger:  config.Logger.Named("watch"),
	}

	watched := 0
	seen := make(map[string]bool)
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := fw.Add(dir); err != nil {
			w.logger.Warn("failed to watch directory", "path", dir, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		fw.Close()
		return nil, fmt.Errorf("no watchable directories among %v", dirs)
	}

	w.logger.Debug("watching stylesheets", "directories", watched, "debounce", config.Debounce)
	return w, nil
}

// WatchDirs returns the directories holding the given files.
func WatchDirs(files []string, root string) []string {
	dirs := []string{root}
	for _, f := range files {
		dirs = append(dirs, filepath.Dir(f))
	}
	return dirs
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", "error", err)

		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".css") {
		return
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.Contains(base, "~") {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.debounce(func() {
		w.logger.Debug("stylesheet changed", "path", event.Name, "op", event.Op.String())
		w.target.Invalidate()
		if w.config.OnChange != nil {
			w.config.OnChange(event.Name)
		}
	})
}

// debounce collapses bursts of events into one invalidation.
func (w *Watcher) debounce(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.config.Debounce, fn)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
