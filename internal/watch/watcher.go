package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"aetherfm/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher follows a single directory and reports, after a quiet period,
// that its contents changed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration

	// Directory paths are delivered here once events settle
	changes chan string

	stopChan chan struct{}
	done     chan struct{}

	mutex  sync.RWMutex
	dir    string
	closed bool
}

// New creates a watcher and starts its event loop. Nothing is watched
// until Follow is called.
func New(debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce < 0 {
		debounce = 0
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		debounce:  debounce,
		changes:   make(chan string, 10),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Follow replaces the watched directory with dir.
func (w *Watcher) Follow(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return fmt.Errorf("watcher is closed")
	}
	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		// The old directory may already be gone.
		_ = w.fsWatcher.Remove(w.dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Debug("Watching directory")
	return nil
}

// Directory returns the directory currently followed.
func (w *Watcher) Directory() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Changes delivers the followed directory each time its contents settle
// after a change. The channel is closed by Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the event loop and closes the Changes channel.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return nil
	}
	w.closed = true
	close(w.stopChan)
	w.mutex.Unlock()

	err := w.fsWatcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			dir := w.Directory()
			if dir == "" || filepath.Dir(event.Name) != dir {
				continue
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			pending = dir
			if w.debounce == 0 {
				w.emit(pending)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if pending == w.Directory() {
				w.emit(pending)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("directory", w.Directory())).ErrorWithStack(err, "fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) emit(dir string) {
	select {
	case w.changes <- dir:
	default:
		log.LogWithFields(log.F("directory", dir)).Debug("change already pending, dropped event")
	}
}
