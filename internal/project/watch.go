package project

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change represents a detected change to a project artifact.
type Change struct {
	// Path is the absolute path that changed.
	Path string
}

// Watcher monitors the project's artifact directories (generated source,
// config assets, scenes) using fsnotify. Events are debounced so a burst of
// writes from one install produces a single change notification.
type Watcher struct {
	Changes <-chan Change

	changes chan Change
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher over the project's artifact directories.
func NewWatcher(p *Project) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}

	for _, d := range []string{"modules", "assets/config", "assets/scenes"} {
		if p.FolderExists(d) {
			if err := fw.Add(p.Resolve(d)); err != nil {
				fw.Close()
				return nil, err
			}
		}
	}

	go w.loop()
	return w, nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per path.
	const debounce = 200 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for path := range pending {
					w.emit(path)
				}
				return
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(path)
					delete(pending, path)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next poll catches up.
		}
	}
}

func (w *Watcher) emit(path string) {
	select {
	case w.changes <- Change{Path: path}:
	default:
		// Drop if the consumer is behind; status re-renders are cheap.
	}
}
