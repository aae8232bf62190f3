// Package watch reports changes to individual files, such as the config file
// and images placed on layers.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is the window in which repeated events for one file collapse.
const Debounce = 100 * time.Millisecond

// Watcher watches the directories of its files, since editors often replace
// a file by renaming over it, and forwards events for the files it was given.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]bool
}

// New starts watching paths. More can be added later with Add.
func New(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
	}
	for _, p := range paths {
		if err := w.Add(p); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	go w.run()
	return w, nil
}

// Add starts reporting changes to path. Adding a path twice is a no-op.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[abs] {
		return nil
	}
	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Remove stops reporting changes to path. The directory stays watched.
func (w *Watcher) Remove(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	delete(w.files, abs)
	w.mu.Unlock()
}

// Drain returns the files changed since the last call without blocking.
// Each file appears once.
func (w *Watcher) Drain() []string {
	var out []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return out
			}
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		default:
			return out
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.watched(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < Debounce {
				continue
			}
			last[event.Name] = now
			abs, _ := filepath.Abs(event.Name)
			select {
			case w.Events <- abs:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
