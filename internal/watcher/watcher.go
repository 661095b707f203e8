package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"committolearn/internal/logs"

	"github.com/fsnotify/fsnotify"
)

// DefaultWindow is the quiet period before a change batch is reported
const DefaultWindow = 500 * time.Millisecond

// Watcher reports changes below a set of content roots. Each root is
// watched recursively and directories created later are picked up.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
}

// New creates a Watcher over roots; onChange runs once per debounced batch
// with the changed paths. Missing roots are skipped.
func New(roots []string, window time.Duration, onChange func([]string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if window <= 0 {
		window = DefaultWindow
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		debouncer: NewDebouncer(window, onChange),
	}

	for _, root := range roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			logs.Logger.Printf("Not watching %s: not a directory", root)
			continue
		}
		if err := w.addTree(root); err != nil {
			fsWatcher.Close()
			return nil, err
		}
	}

	return w, nil
}

// WatchList returns the directories currently watched
func (w *Watcher) WatchList() []string {
	return w.fsWatcher.WatchList()
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// Run handles events until ctx is done, then flushes pending changes and
// releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()
	defer w.debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			logs.Logger.Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				logs.Logger.Printf("Error watching new directory %s: %v", event.Name, err)
			}
		}
	}

	logs.Logger.Printf("Change detected: %s (%s)", event.Name, event.Op)
	w.debouncer.Add(event.Name)
}
