// Package watch monitors the viewed file for on-disk changes (follow mode).
//
// The watcher runs on its own goroutine and only invokes the notify
// callback; it never touches viewer state. The application wires the
// callback to post a synthetic refresh event into the terminal event queue,
// so the reload itself happens on the event-loop goroutine.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the write bursts editors produce when saving.
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors a single file and reports changes through a callback.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string // absolute path of the watched file
	notify   func()
	debounce time.Duration

	closeCh   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher for the file at path and starts it. The notify
// callback fires on the watcher goroutine after each (debounced) change.
//
// The parent directory is watched rather than the file itself: editors
// commonly replace files by rename, which would silently detach a direct
// file watch.
func New(path string, notify func(), opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		notify:   notify,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(w.debounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(w.debounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			w.notify()

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next successful
			// change still triggers a reload.
		}
	}
}

// relevant reports whether the event concerns the watched file's content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
