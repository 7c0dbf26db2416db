// Package tui provides the interactive plotting front-end: an expression
// field, a braille plot pane and a status line, wired to the engine loop
// through ports.Controller.
package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/graf/internal/adapters/canvas"
	"go.trai.ch/graf/internal/core/ports"
	"go.trai.ch/graf/internal/ui/style"
)

const expressionLimit = 256

// NewModel creates a TUI model bound to the given engine controller.
// plotColor overrides the default curve color when non-empty.
func NewModel(controller ports.Controller, plotColor string, w io.Writer) Model {
	if w == nil {
		w = os.Stdout
	}

	out := NewOutput(w)
	lipgloss.SetColorProfile(out.Profile)

	input := textinput.New()
	input.Prompt = "f(x) = "
	input.PromptStyle = promptStyle
	input.Placeholder = "sin(x) / x"
	input.CharLimit = expressionLimit
	input.Focus()

	return Model{
		Input:      input,
		Controller: controller,
		Canvas:     canvas.New().WithCurveColor(plotColor),
		Focus:      FocusInput,
		PaletteIdx: paletteIndex(plotColor),
	}
}

// paletteIndex finds the palette slot matching a configured color so that
// cycling continues from it; unknown colors start the cycle at the default.
func paletteIndex(color string) int {
	for i, c := range style.PlotPalette {
		if strings.EqualFold(string(c), color) {
			return i
		}
	}
	return 0
}
