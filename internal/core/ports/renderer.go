package ports

import (
	"context"

	"go.trai.ch/graf/internal/core/domain"
)

// Renderer is the abstraction for output rendering.
// It decouples the plotting engine from presentation logic, allowing the
// same frame stream to drive either a rich TUI or plain one-shot output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new frames and prepare
	// for shutdown. It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnFrame delivers a completed plotting pass. Frames arrive in order;
	// a coarse frame may be followed by a refined frame of the same view.
	// The renderer keeps the last frame and draws it however it likes.
	OnFrame(frame domain.Frame)

	// OnInputError reports rejected input: a malformed expression or
	// invalid bounds. The previously rendered frame stays valid and the
	// renderer should keep showing it alongside the error.
	OnInputError(input string, err error)
}
