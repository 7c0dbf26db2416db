package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graf/internal/adapters/watcher"
	"go.trai.ch/graf/internal/core/ports"
)

func TestNewDebouncer(t *testing.T) {
	tests := []struct {
		name     string
		window   time.Duration
		callback func(ports.WatchEvent)
	}{
		{
			name:     "with callback",
			window:   100 * time.Millisecond,
			callback: func(ports.WatchEvent) {},
		},
		{
			name:     "with nil callback",
			window:   50 * time.Millisecond,
			callback: nil,
		},
		{
			name:     "with zero window",
			window:   0,
			callback: func(ports.WatchEvent) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := watcher.NewDebouncer(tt.window, tt.callback)
			require.NotNil(t, d)
		})
	}
}

func TestDebouncer_Add_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(event ports.WatchEvent) {
			callCount++
			received = event
		})

		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})

		// Advance time past the quiet window
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, "/plots/formula.fx", received.Path)
		assert.Equal(t, ports.OpWrite, received.Operation)
	})
}

func TestDebouncer_Add_BurstCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(event ports.WatchEvent) {
			callCount++
			received = event
		})

		// A rename-over save produces several events within one window.
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpRename})
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpCreate})
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		// One delivery, carrying the file's final state.
		require.Equal(t, 1, callCount)
		assert.Equal(t, ports.OpWrite, received.Operation)
	})
}

func TestDebouncer_Add_LatestEventWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var received ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(event ports.WatchEvent) {
			received = event
		})

		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpRemove})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, ports.OpRemove, received.Operation)
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var mu sync.Mutex

		d := watcher.NewDebouncer(100*time.Millisecond, func(ports.WatchEvent) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		// First add starts the timer
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})
		time.Sleep(50 * time.Millisecond)

		// Second add resets the timer
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})
		time.Sleep(50 * time.Millisecond)

		// At this point (100ms from first add), if the timer wasn't reset,
		// the callback would have fired. But it should not have fired yet.
		synctest.Wait()
		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		// Wait for the reset timer to fire
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_Flush_Immediate(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(event ports.WatchEvent) {
			callCount++
			received = event
		})

		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})

		// Flush immediately, before the timer fires
		d.Flush()

		// Callback should have been called synchronously
		require.Equal(t, 1, callCount)
		assert.Equal(t, ports.OpWrite, received.Operation)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func(ports.WatchEvent) {
		callCount++
	})

	// Flush without anything pending
	d.Flush()

	// Callback should not have been called
	assert.Equal(t, 0, callCount)
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(50*time.Millisecond, func(ports.WatchEvent) {
			callCount++
		})

		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})

		// Wait for the timer to fire
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)

		// Flush after the timer already fired - should not call again
		d.Flush()

		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		// Should not panic when adding events
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpRemove})

		// Wait for the timer
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		// Flush should also not panic
		d.Flush()
	})
}

func TestDebouncer_Add_AfterFlush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(event ports.WatchEvent) {
			callCount++
			received = event
		})

		// First burst
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpCreate})
		d.Flush()

		require.Equal(t, 1, callCount)
		assert.Equal(t, ports.OpCreate, received.Operation)

		// Second burst after the flush
		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 2, callCount)
		assert.Equal(t, ports.OpWrite, received.Operation)
	})
}

func TestDebouncer_Flush_ClearsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func(ports.WatchEvent) {
			callCount++
		})

		d.Add(ports.WatchEvent{Path: "/plots/formula.fx", Operation: ports.OpWrite})
		d.Flush()

		require.Equal(t, 1, callCount)

		// Wait for the original timer - should not trigger another call
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 1, callCount)
	})
}
