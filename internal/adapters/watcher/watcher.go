package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/graf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher implements formula file watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	window    time.Duration

	path      string
	debouncer *Debouncer
	fired     chan ports.WatchEvent
	events    chan ports.WatchEvent
}

// NewWatcher creates a watcher that delivers one event per save burst.
func NewWatcher(window time.Duration, logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		window:    window,
		fired:     make(chan ports.WatchEvent, eventChannelBuffer),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given formula file. The file's parent directory
// is watched rather than the file itself: editors that save by renaming a
// temporary file over the target would otherwise detach the watch on the
// first save.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve watch path")
	}
	w.path = abs
	w.debouncer = NewDebouncer(w.window, w.enqueue)

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch formula file"), "path", abs)
	}

	// Start processing events in a goroutine.
	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced events for the watched file.
// The iterator ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// enqueue hands a debounced event to processEvents. Only processEvents
// sends on the public channel, so closing it on shutdown stays safe even
// when a late debounce timer fires.
func (w *Watcher) enqueue(event ports.WatchEvent) {
	select {
	case w.fired <- event:
	default:
	}
}

// processEvents filters raw fsnotify traffic down to debounced events for
// the watched file.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return

		case event := <-w.fired:
			select {
			case w.events <- event:
			case <-ctx.Done():
				return
			}

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if watchEvent := w.convertEvent(event); watchEvent != nil {
				w.debouncer.Add(*watchEvent)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Log and continue; a transient notify error must not end the watch.
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent, dropping
// traffic for unrelated files in the watched directory.
func (w *Watcher) convertEvent(event fsnotify.Event) *ports.WatchEvent {
	if filepath.Clean(event.Name) != w.path {
		return nil
	}

	if event.Op&fsnotify.Write == fsnotify.Write {
		return &ports.WatchEvent{
			Path:      w.path,
			Operation: ports.OpWrite,
		}
	}

	if event.Op&fsnotify.Create == fsnotify.Create {
		return &ports.WatchEvent{
			Path:      w.path,
			Operation: ports.OpCreate,
		}
	}

	if event.Op&fsnotify.Remove == fsnotify.Remove {
		return &ports.WatchEvent{
			Path:      w.path,
			Operation: ports.OpRemove,
		}
	}

	if event.Op&fsnotify.Rename == fsnotify.Rename {
		return &ports.WatchEvent{
			Path:      w.path,
			Operation: ports.OpRename,
		}
	}

	return nil
}
