package tui

import "go.trai.ch/graf/internal/core/domain"

// MsgFrame delivers a completed sampling pass to the UI loop.
type MsgFrame struct {
	Frame domain.Frame
}

// MsgInputError reports input the engine rejected. The last frame stays on
// screen; the reason is surfaced on the status line until the next edit.
type MsgInputError struct {
	Input string
	Err   error
}
