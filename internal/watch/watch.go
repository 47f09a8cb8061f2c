// Package watch reports edits to a single input file so a solver can rerun
// when the puzzle input changes.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before a change is reported.
const debounce = 100 * time.Millisecond

// Change is a settled edit to the watched file.
type Change struct {
	File    string `json:"file"`
	Removed bool   `json:"removed,omitempty"` // the file no longer exists
}

// Watcher monitors one file through its parent directory, so editors that
// save by rename are still seen.
type Watcher struct {
	File    string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	started bool
	watcher *fsnotify.Watcher
}

// New creates a watcher for the file at path. The file need not exist yet.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	ch := make(chan Change, 1)
	return &Watcher{
		File:    abs,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.File)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.File), err)
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	if w.started {
		<-w.done // Wait for loop to exit
	}
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.File {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event retries.
		}
	}
}

// emit reports a change without blocking. An unread change already covers
// this one, so a full channel drops it.
func (w *Watcher) emit() {
	_, err := os.Stat(w.File)
	change := Change{File: w.File, Removed: os.IsNotExist(err)}
	select {
	case w.changes <- change:
	default:
	}
}
