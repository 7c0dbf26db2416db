package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/graf/internal/ui/style"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(style.Azure).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate)

	tickStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	exprStyle = lipgloss.NewStyle().
			Foreground(style.White)

	settledStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	refiningStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
