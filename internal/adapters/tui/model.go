package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/graf/internal/adapters/canvas"
	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports"
	"go.trai.ch/graf/internal/ui/style"
)

// Focus identifies which zone consumes key events.
type Focus string

const (
	// FocusInput routes keys to the expression field.
	FocusInput Focus = "Input"
	// FocusPlot routes keys to view navigation.
	FocusPlot Focus = "Plot"
)

// Cell layout of the screen: one row for the expression field, one for the
// status line, and the plot pane in between. The pane itself spends a gutter
// on y tick labels, a border around the canvas and a row of x tick labels.
const (
	chromeRows  = 2
	xLabelRows  = 1
	yGutterCols = 8
	borderCols  = 2
	borderRows  = 2

	canvasColsMin = 4
	canvasRowsMin = 2

	inputChromeCols = 12
	inputWidthMin   = 16
)

// Model is the interactive plotting UI. Every gesture is forwarded into the
// engine loop through the Controller; the engine answers with MsgFrame or
// MsgInputError and the model only draws what it last received. It never
// samples anything itself.
type Model struct {
	Input      textinput.Model
	Controller ports.Controller
	Canvas     *canvas.Canvas

	Frame    domain.Frame
	HasFrame bool
	Focus    Focus

	// ErrInput/InputError hold the last rejected input and the reason,
	// empty while the last submission was accepted.
	ErrInput   string
	InputError string

	Width  int
	Height int

	// CanvasCols/CanvasRows is the cell size of the canvas area; the pixel
	// grid handed to the engine is this scaled by the braille cell.
	CanvasCols int
	CanvasRows int

	PaletteIdx int

	dragging bool
	dragX    int
	dragY    int
}

// Init starts the cursor blink.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case MsgFrame:
		m.Frame = msg.Frame
		m.HasFrame = true

	case MsgInputError:
		m.ErrInput = msg.Input
		m.InputError = errorText(msg.Err)
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m, m.toggleFocus()
	}

	if m.Focus == FocusPlot {
		return m.updatePlotKey(msg)
	}
	return m.updateInputKey(msg)
}

func (m *Model) updateInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if text := strings.TrimSpace(m.Input.Value()); text != "" && m.Controller != nil {
			m.Controller.SubmitExpression(text)
		}
		m.clearError()
		return m, nil
	case "esc":
		m.Focus = FocusPlot
		m.Input.Blur()
		return m, nil
	}

	// An edit supersedes whatever was last rejected.
	m.clearError()
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

//nolint:cyclop // one case per key binding
func (m *Model) updatePlotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "e", "/":
		m.Focus = FocusInput
		return m, m.Input.Focus()
	case "left", "h":
		m.nudge(-1, 0)
	case "right", "l":
		m.nudge(1, 0)
	case "up", "k":
		m.nudge(0, 1)
	case "down", "j":
		m.nudge(0, -1)
	case "+", "=":
		m.zoom(true)
	case "-", "_":
		m.zoom(false)
	case "0", "r":
		if m.Controller != nil {
			m.Controller.ResetView()
		}
	case "c":
		if m.Controller != nil {
			m.Controller.ClearPlot()
		}
		m.clearError()
	case "]":
		m.cyclePalette(1)
	case "[":
		m.cyclePalette(-1)
	}
	return m, nil
}

// updateMouse maps wheel ticks and drags through the cell geometry into
// engine gestures. Wheel zoom anchors at the dot under the pointer; a drag
// pans by the dot delta since the last motion event.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	if m.Controller == nil {
		return
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.wheel(msg.X, msg.Y, true)
	case msg.Button == tea.MouseButtonWheelDown:
		m.wheel(msg.X, msg.Y, false)
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionMotion && m.dragging:
		dx := float64(msg.X-m.dragX) * canvas.CellWidth
		dy := float64(msg.Y-m.dragY) * canvas.CellHeight
		m.dragX, m.dragY = msg.X, msg.Y
		if dx != 0 || dy != 0 {
			m.Controller.Pan(dx, dy)
		}
	}
}

func (m *Model) wheel(x, y int, in bool) {
	if px, py, ok := m.plotPixel(x, y); ok {
		m.Controller.WheelZoom(px, py, in)
	}
}

// plotPixel maps a terminal cell position to plot pixel coordinates at the
// cell center. ok is false outside the canvas area.
func (m *Model) plotPixel(x, y int) (px, py float64, ok bool) {
	col := x - m.plotOriginCol()
	row := y - m.plotOriginRow()
	if col < 0 || col >= m.CanvasCols || row < 0 || row >= m.CanvasRows {
		return 0, 0, false
	}
	px = float64(col*canvas.CellWidth) + float64(canvas.CellWidth)/2
	py = float64(row*canvas.CellHeight) + float64(canvas.CellHeight)/2
	return px, py, true
}

// plotOriginCol is the terminal column of the first canvas cell: past the
// tick gutter and the left border.
func (m *Model) plotOriginCol() int { return yGutterCols + 1 }

// plotOriginRow is the terminal row of the first canvas cell: below the
// expression field and the top border.
func (m *Model) plotOriginRow() int { return 2 }

func (m *Model) resize(width, height int) {
	m.Width, m.Height = width, height
	m.CanvasCols = width - yGutterCols - borderCols
	m.CanvasRows = height - chromeRows - borderRows - xLabelRows

	m.Input.Width = width - inputChromeCols
	if m.Input.Width < inputWidthMin {
		m.Input.Width = inputWidthMin
	}

	if m.Controller != nil && m.CanvasCols > 0 && m.CanvasRows > 0 {
		m.Controller.Resize(m.CanvasCols*canvas.CellWidth, m.CanvasRows*canvas.CellHeight)
	}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.Focus == FocusPlot {
		m.Focus = FocusInput
		return m.Input.Focus()
	}
	m.Focus = FocusPlot
	m.Input.Blur()
	return nil
}

func (m *Model) nudge(xDirection, yDirection int) {
	if m.Controller != nil {
		m.Controller.NudgeView(xDirection, yDirection)
	}
}

func (m *Model) zoom(in bool) {
	if m.Controller != nil {
		m.Controller.KeyZoom(in)
	}
}

func (m *Model) cyclePalette(step int) {
	if m.Canvas == nil {
		return
	}
	n := len(style.PlotPalette)
	m.PaletteIdx = ((m.PaletteIdx+step)%n + n) % n
	m.Canvas.WithCurveColor(string(style.PlotPalette[m.PaletteIdx]))
}

func (m *Model) clearError() {
	m.ErrInput = ""
	m.InputError = ""
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
