// Package watcher observes the formula file behind watch mode and turns
// editor write bursts into single reload events.
package watcher

import (
	"sync"
	"time"

	"go.trai.ch/graf/internal/core/ports"
)

// Debouncer coalesces rapid file events into one notification per burst.
// Within a burst the most recent event wins, so the callback always sees
// the file's final state.
type Debouncer struct {
	mu       sync.Mutex
	pending  *ports.WatchEvent
	timer    *time.Timer
	window   time.Duration
	callback func(event ports.WatchEvent)
}

// NewDebouncer creates a new debouncer with the given quiet window and callback.
func NewDebouncer(window time.Duration, callback func(event ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the quiet window.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = &event

	// Reset the timer if it exists, or create a new one.
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the quiet window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	// Check if there's anything to deliver (protects against a race with Flush).
	if d.pending == nil {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	event := *d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	// Deliver asynchronously to keep the timer goroutine free.
	if d.callback != nil {
		go d.callback(event)
	}
}

// Flush immediately delivers the pending event, if any. This method blocks
// until the callback completes, making it suitable for graceful shutdown
// scenarios where delivery must finish before proceeding.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than delivering twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	if d.pending == nil {
		d.mu.Unlock()
		return
	}
	event := *d.pending
	d.pending = nil
	d.mu.Unlock()

	// Call the callback synchronously (blocks until complete).
	if d.callback != nil {
		d.callback(event)
	}
}
