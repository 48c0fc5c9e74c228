// Package watcher re-runs work when a watched document changes on disk,
// with debouncing so editor save bursts trigger one run instead of many.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// ChangeHandler runs after the debounce window closes. The path is the
// watched document.
type ChangeHandler func(path string)

// DocumentWatcher watches a single document file for writes.
//
// The parent directory is watched rather than the file itself so the
// watch survives editors that replace the file on save.
type DocumentWatcher struct {
	path     string
	delay    time.Duration
	watcher  *fsnotify.Watcher
	handlers []ChangeHandler
	mutex    sync.Mutex
	timer    *time.Timer
}

// New creates a watcher for one document with the given debounce delay.
func New(path string, delay time.Duration) (*DocumentWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve watch path")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	return &DocumentWatcher{
		path:    abs,
		delay:   delay,
		watcher: fsw,
	}, nil
}

// AddHandler registers a handler invoked after each settled change.
func (w *DocumentWatcher) AddHandler(handler ChangeHandler) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Run processes events until the context is cancelled or the underlying
// watcher closes.
func (w *DocumentWatcher) Run(ctx context.Context) error {
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.bump()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watch events")
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *DocumentWatcher) Close() error {
	return w.watcher.Close()
}

func (w *DocumentWatcher) relevant(event fsnotify.Event) bool {
	if event.Name != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// bump restarts the debounce window; the handlers fire once it elapses
// with no further events.
func (w *DocumentWatcher) bump() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		w.mutex.Lock()
		handlers := make([]ChangeHandler, len(w.handlers))
		copy(handlers, w.handlers)
		w.mutex.Unlock()

		for _, handler := range handlers {
			handler(w.path)
		}
	})
}

func (w *DocumentWatcher) stopTimer() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
