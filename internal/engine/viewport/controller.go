// Package viewport tracks the visible region of the plane and the
// interaction state machine that decides when refined sampling may run.
package viewport

import (
	"sync"
	"time"

	"go.trai.ch/graf/internal/core/domain"
)

// Mode is the interaction state of the view.
type Mode string

const (
	// ModeIdle indicates no gesture is in flight and refined sampling may run.
	ModeIdle Mode = "Idle"
	// ModeInteracting indicates the view is moving; only coarse sampling
	// should run until the settle window elapses.
	ModeInteracting Mode = "Interacting"
)

// Controller owns the viewport and its Interacting/Idle state machine.
// Gestures (pan, nudge, zoom, resize) move the view and re-arm a quiescence
// timer; once no gesture arrives for the settle window the controller
// transitions back to idle and invokes the settle callback. Discrete changes
// (typed bounds, reset) skip the window and settle immediately.
//
// All methods are safe for concurrent use.
type Controller struct {
	window   time.Duration
	nudge    float64
	wheel    float64
	keyZoom  float64
	onSettle func()

	mu    sync.Mutex
	view  domain.Viewport
	mode  Mode
	timer *time.Timer
	gen   uint64 // invalidates settle timers superseded by later changes
}

// NewController creates a controller over the given initial view. The
// onSettle callback fires once per quiescence, from the timer goroutine; it
// may be nil.
func NewController(cfg domain.InputConfig, view domain.Viewport, onSettle func()) *Controller {
	return &Controller{
		window:   cfg.SettleWindow,
		nudge:    cfg.NudgeFraction,
		wheel:    cfg.WheelZoomStep,
		keyZoom:  cfg.KeyZoomFactor,
		onSettle: onSettle,
		view:     view,
		mode:     ModeIdle,
	}
}

// View returns a snapshot of the current viewport.
func (c *Controller) View() domain.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Mode returns the current interaction state.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Settled reports whether the view is idle.
func (c *Controller) Settled() bool {
	return c.Mode() == ModeIdle
}

// Snapshot returns the viewport and interaction state as one consistent read.
func (c *Controller) Snapshot() (domain.Viewport, Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view, c.mode
}

// Pan shifts the view by a pixel delta, the drag gesture.
func (c *Controller) Pan(dxPixels, dyPixels float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.Pan(dxPixels, dyPixels)
	c.touch()
}

// Nudge shifts the view by the configured fraction of the visible span in
// the given direction (-1, 0 or 1 per axis).
func (c *Controller) Nudge(xDirection, yDirection int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.Nudge(float64(xDirection)*c.nudge, float64(yDirection)*c.nudge)
	c.touch()
}

// WheelZoom zooms one wheel tick at the given pixel position. The data point
// under the cursor stays under the cursor.
func (c *Controller) WheelZoom(col, row float64, in bool) {
	scale := 1 + c.wheel
	if in {
		scale = 1 - c.wheel
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.ZoomAt(col, row, scale)
	c.touch()
}

// KeyZoom zooms about the view center by the configured keyboard factor.
func (c *Controller) KeyZoom(in bool) {
	scale := c.keyZoom
	if in {
		scale = 1 / c.keyZoom
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.ZoomAbout(scale)
	c.touch()
}

// Resize adapts the view to a new pixel grid. Size changes arrive in bursts
// while a terminal is being resized, so they count as a gesture. Degenerate
// sizes are ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.WithSize(width, height)
	c.touch()
}

// SetBounds replaces the data-space bounds. Invalid bounds are rejected with
// the validation error and the previous view is kept. A successful change
// settles immediately: typed bounds are not a gesture.
func (c *Controller) SetBounds(xMin, xMax, yMin, yMax float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.view.WithBounds(xMin, xMax, yMin, yMax)
	if err := next.Validate(); err != nil {
		return err
	}
	c.view = next
	c.land()
	return nil
}

// Reset restores the default bounds and settles immediately.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.Reset()
	c.land()
}

// Stop halts the settle timer. Used on shutdown; the controller stays usable
// but no pending settle fires.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// touch records a gesture: the view is moving and refinement must wait for
// the settle window. Called with the lock held.
func (c *Controller) touch() {
	c.mode = ModeInteracting
	c.gen++
	gen := c.gen

	// Reset the timer if it exists, or create a new one.
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.window, func() { c.settle(gen) })
}

// land records a discrete change: the view is final and refinement may run
// right away. Called with the lock held.
func (c *Controller) land() {
	c.mode = ModeIdle
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// settle is called when the settle window expires. A timer that lost the
// race against a newer gesture carries a stale generation and must not end
// the newer interaction early.
func (c *Controller) settle(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.mode != ModeInteracting {
		c.mu.Unlock()
		return
	}
	c.mode = ModeIdle
	c.timer = nil
	c.mu.Unlock()

	if c.onSettle != nil {
		c.onSettle()
	}
}
