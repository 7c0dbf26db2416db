package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/graf/internal/ui/style"
)

const statusSep = "  "

// View renders the UI.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}
	if m.CanvasCols < canvasColsMin || m.CanvasRows < canvasRowsMin {
		return "Terminal too small"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.inputBar(),
		m.plotPane(),
		m.statusBar(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) inputBar() string {
	return " " + m.Input.View()
}

//nolint:gocritic // hugeParam ignored
func (m *Model) plotPane() string {
	pane := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.yGutter(),
		borderStyle.Render(m.canvasContent()),
	)
	return pane + "\n" + m.xLabels()
}

//nolint:gocritic // hugeParam ignored
func (m *Model) canvasContent() string {
	if !m.HasFrame || m.Canvas == nil {
		return lipgloss.Place(
			m.CanvasCols, m.CanvasRows,
			lipgloss.Center, lipgloss.Center,
			statusStyle.Render("waiting for the engine"),
		)
	}
	return fitBlock(m.Canvas.Render(m.Frame), m.CanvasCols, m.CanvasRows)
}

// fitBlock pads rendered rows out to the pane size; a frame sampled before
// the latest resize keeps the layout stable until its replacement arrives.
func fitBlock(s string, cols, rows int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if pad := cols - lipgloss.Width(line); pad > 0 {
			lines[i] = line + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(lines, "\n")
}

// yGutter labels the vertical extent of the view: YMax next to the top
// canvas row, YMin next to the bottom one.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) yGutter() string {
	lines := make([]string, m.CanvasRows+borderRows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", yGutterCols)
	}
	if m.HasFrame {
		lines[1] = gutterLabel(m.Frame.View.YMax)
		lines[len(lines)-2] = gutterLabel(m.Frame.View.YMin)
	}
	return strings.Join(lines, "\n")
}

// gutterLabel right-aligns a tick value in the gutter, one space off the
// border.
func gutterLabel(v float64) string {
	label := formatTick(v)
	if len(label) > yGutterCols-1 {
		label = label[:yGutterCols-1]
	}
	return strings.Repeat(" ", yGutterCols-1-len(label)) + tickStyle.Render(label) + " "
}

//nolint:gocritic // hugeParam ignored
func (m *Model) xLabels() string {
	if !m.HasFrame {
		return ""
	}
	left := formatTick(m.Frame.View.XMin)
	right := formatTick(m.Frame.View.XMax)
	gap := m.CanvasCols + borderCols - len(left) - len(right)
	if gap < 1 {
		return ""
	}
	return strings.Repeat(" ", yGutterCols) +
		tickStyle.Render(left) + strings.Repeat(" ", gap) + tickStyle.Render(right)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) statusBar() string {
	return lipgloss.NewStyle().MaxWidth(m.Width).Render(" " + m.statusLine())
}

//nolint:gocritic // hugeParam ignored
func (m *Model) statusLine() string {
	if m.InputError != "" {
		return errorStyle.Render(fmt.Sprintf("%s %s: %s", style.Cross, m.ErrInput, m.InputError))
	}
	if !m.HasFrame {
		return statusStyle.Render("waiting for the engine")
	}

	segments := []string{m.qualityTag(), m.boundsTag()}
	if m.Frame.Expr != "" {
		s := m.Frame.Stats
		segments = append(segments,
			statusStyle.Render(fmt.Sprintf("%d pts", s.Points)),
			statusStyle.Render(fmt.Sprintf("%.0f%% cache", s.HitRate()*100)),
			statusStyle.Render(s.Elapsed.Round(10*time.Microsecond).String()),
		)
	}
	segments = append(segments, hintStyle.Render(m.hint()))
	return strings.Join(segments, statusSep)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) qualityTag() string {
	if m.Frame.Expr == "" {
		return statusStyle.Render("no expression")
	}
	icon := refiningStyle.Render(style.Dot)
	if m.Frame.Settled() {
		icon = settledStyle.Render(style.Check)
	}
	return icon + " " + exprStyle.Render(m.Frame.Expr)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) boundsTag() string {
	v := m.Frame.View
	return statusStyle.Render(fmt.Sprintf("x:[%s, %s] y:[%s, %s]",
		formatTick(v.XMin), formatTick(v.XMax), formatTick(v.YMin), formatTick(v.YMax)))
}

//nolint:gocritic // hugeParam ignored
func (m *Model) hint() string {
	if m.Focus == FocusInput {
		return "enter plot · tab navigate"
	}
	return "tab edit · +/- zoom · r reset · q quit"
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
