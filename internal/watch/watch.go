// Package watch implements cowel watch's recompile-on-save loop: a
// debounced fsnotify watcher over a single source file, grounded on
// the teacher's internal/core/mangle_watcher.go (struct shape,
// Start/Stop lifecycle, debounce-ticker event loop).
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/eisenwave/cowel-sub001/internal/logging"
)

// Watcher recompiles a single file every time it changes, debouncing
// rapid successive writes (editors often save in more than one
// filesystem event).
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	onChange    func()
	debounceDur time.Duration
	pending     bool
	lastEvent   time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// New creates a Watcher for path that calls onChange after every
// settled burst of writes. debounce <= 0 falls back to 300ms.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &Watcher{
		watcher:     fsw,
		path:        path,
		onChange:    onChange,
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching path's parent directory (fsnotify watches
// directories, not bare files, so renames/recreates by an editor's
// atomic-save still fire) and spawns the event loop. Non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		logging.CLI("watch: failed to watch directory %s: %v", dir, err)
		return err
	}
	logging.CLI("watch: watching %s for changes to %s", dir, filepath.Base(w.path))

	go w.run(ctx)
	return nil
}

// Stop halts the event loop and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	target := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = true
			w.lastEvent = time.Now()
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.CLI("watch: fsnotify error: %v", err)
		case <-ticker.C:
			w.maybeFire()
		}
	}
}

func (w *Watcher) maybeFire() {
	w.mu.Lock()
	fire := w.pending && time.Since(w.lastEvent) >= w.debounceDur
	if fire {
		w.pending = false
	}
	w.mu.Unlock()

	if fire {
		w.onChange()
	}
}
