// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Azure  = lipgloss.Color("#4A9EFF")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// PlotPalette holds the curve colors in cycling order. The first entry is
// the default curve color.
var PlotPalette = []lipgloss.Color{
	Azure,
	lipgloss.Color("#F97583"),
	lipgloss.Color("#85E89D"),
	lipgloss.Color("#FFAB70"),
	lipgloss.Color("#B392F0"),
	lipgloss.Color("#79B8FF"),
	lipgloss.Color("#FFEA7F"),
	lipgloss.Color("#F692CE"),
	lipgloss.Color("#56D4DD"),
	lipgloss.Color("#D1D5DA"),
}

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)
