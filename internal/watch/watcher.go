// Package watch implements the live --watch mode: a small bubbletea
// program re-rendering the status lines on a clock tick and whenever
// the repository's git directory changes.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chmouel/statline/internal/log"
	"github.com/fsnotify/fsnotify"
)

// Debounce is the minimum interval between event-driven refreshes.
const Debounce = 600 * time.Millisecond

// Watcher coalesces fsnotify events from the git common directory into
// a single refresh channel.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	events      chan struct{}
	done        chan struct{}
	paths       map[string]struct{}
	roots       []string
	lastRefresh time.Time
	started     bool
}

// NewWatcher returns an unstarted watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Start watches the git common directory and its refs and logs trees.
func (w *Watcher) Start(commonDir string) error {
	if w.started || commonDir == "" {
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	w.started = true
	w.watcher = fsw
	w.events = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.paths = make(map[string]struct{})
	w.roots = []string{
		filepath.Join(commonDir, "refs"),
		filepath.Join(commonDir, "logs"),
	}

	w.addDir(commonDir)
	for _, root := range w.roots {
		w.addTree(root)
	}

	go w.run()
	return nil
}

// Stop shuts the watcher down. The events channel closes once the
// event loop drains, releasing any blocked receiver.
func (w *Watcher) Stop() {
	if !w.started {
		return
	}
	close(w.done)
	w.started = false
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

// Events returns the coalesced refresh channel, nil when not started.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// ShouldRefresh applies the debounce window to event-driven refreshes.
func (w *Watcher) ShouldRefresh(now time.Time) bool {
	if !w.lastRefresh.IsZero() && now.Sub(w.lastRefresh) < Debounce {
		return false
	}
	w.lastRefresh = now
	return true
}

func (w *Watcher) run() {
	// Closed here rather than in Stop so signal can never race a send
	// against the close.
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(event.Name)
			}
			w.signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// maybeWatchNewDir registers directories created under a watch root,
// so new refs subtrees keep producing events.
func (w *Watcher) maybeWatchNewDir(path string) {
	for _, root := range w.roots {
		if path == root || filepathHasPrefix(path, root) {
			w.addDir(path)
			return
		}
	}
}

func filepathHasPrefix(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !filepath.IsAbs(rel) && rel != "." && !hasDotDotPrefix(rel)
}

func hasDotDotPrefix(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}

func (w *Watcher) addDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.paths[path]; ok {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		log.Printf("watcher add failed for %s: %v", path, err)
		return
	}
	w.paths[path] = struct{}{}
}

func (w *Watcher) addTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		w.addDir(path)
		return nil
	})
}
