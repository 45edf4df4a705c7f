package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"cartesian-plane/internal/profile"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change event before
// a profile is reloaded. Editors often write a file in several steps.
const DefaultDebounce = 150 * time.Millisecond

// ProfileWatcher reloads a profile file whenever it changes on disk.
// The directory is watched rather than the file itself so that editors
// which save by renaming a temporary file over the original are seen.
type ProfileWatcher struct {
	path     string
	debounce time.Duration

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	onChange func(*profile.Profile, error)
}

// NewProfileWatcher creates a watcher for the profile at path. A debounce
// of zero or less uses DefaultDebounce.
func NewProfileWatcher(path string, debounce time.Duration) (*ProfileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profile path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ProfileWatcher{path: abs, debounce: debounce}, nil
}

// OnChange sets the callback invoked after each reload with the loaded
// profile and any load error, as returned by profile.LoadFile. The
// callback runs on the watcher goroutine.
func (w *ProfileWatcher) OnChange(callback func(*profile.Profile, error)) {
	w.mu.Lock()
	w.onChange = callback
	w.mu.Unlock()
}

// Path returns the absolute path being watched.
func (w *ProfileWatcher) Path() string {
	return w.path
}

// Start begins watching in a background goroutine.
func (w *ProfileWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return errors.New("profile watcher already started")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.done = make(chan struct{})
	go w.watchLoop(fw, w.stopCh, w.done)
	log.Debug("Watching profile", "path", w.path)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit. It is safe
// to call Stop on a watcher that is not running.
func (w *ProfileWatcher) Stop() {
	w.mu.Lock()
	fw, stopCh, done := w.watcher, w.stopCh, w.done
	w.watcher = nil
	w.mu.Unlock()
	if fw == nil {
		return
	}

	close(stopCh)
	fw.Close()
	<-done
}

func (w *ProfileWatcher) watchLoop(fw *fsnotify.Watcher, stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-stopCh:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.Warn("Profile watcher error", "path", w.path, "error", err)
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *ProfileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *ProfileWatcher) reload() {
	p, err := profile.LoadFile(w.path)
	log.Debug("Profile changed", "path", w.path, "error", err)

	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback != nil {
		callback(p, err)
	}
}
