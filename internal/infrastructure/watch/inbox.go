// Package watch provides the document inbox: a directory watched for new
// project documents, each analyzed once its writes settle.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// documentExtensions are the file types the inbox accepts.
var documentExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// IsDocument reports whether the path looks like an analyzable document.
func IsDocument(path string) bool {
	return documentExtensions[strings.ToLower(filepath.Ext(path))]
}

// PathDebouncer coalesces rapid events per path: the callback fires once a
// path has been quiet for the configured window. Distinct paths debounce
// independently so one busy file cannot starve another.
type PathDebouncer struct {
	window   time.Duration
	callback func(path string)

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewPathDebouncer creates a per-path debouncer.
func NewPathDebouncer(window time.Duration, callback func(path string)) *PathDebouncer {
	return &PathDebouncer{
		window:   window,
		callback: callback,
		timers:   make(map[string]*time.Timer),
	}
}

// Trigger (re)starts the quiet-window timer for a path.
func (d *PathDebouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[path]; ok {
		t.Stop()
	}
	d.timers[path] = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()
		d.callback(path)
	})
}

// Stop cancels all pending callbacks.
func (d *PathDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for path, t := range d.timers {
		t.Stop()
		delete(d.timers, path)
	}
}

// InboxWatcher watches one directory for incoming documents.
type InboxWatcher struct {
	watcher    *fsnotify.Watcher
	debounce   time.Duration
	onDocument func(path string)
}

// NewInboxWatcher creates a watcher that invokes onDocument for every
// document that appears (and settles) in the watched directory.
func NewInboxWatcher(debounce time.Duration, onDocument func(path string)) (*InboxWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &InboxWatcher{
		watcher:    w,
		debounce:   debounce,
		onDocument: onDocument,
	}, nil
}

// Watch adds the inbox directory.
func (w *InboxWatcher) Watch(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *InboxWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := NewPathDebouncer(w.debounce, func(path string) {
		if w.onDocument != nil {
			w.onDocument(path)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !IsDocument(event.Name) {
				continue
			}
			debouncer.Trigger(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
