package tui_test

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graf/internal/adapters/tui"
	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestModel_Update(t *testing.T) {
	// Helper to initialize a fresh model with a strict controller mock.
	initModel := func(t *testing.T) (*tui.Model, *mocks.MockController) {
		t.Helper()
		controller := mocks.NewMockController(gomock.NewController(t))
		m := tui.NewModel(controller, "", io.Discard)
		return &m, controller
	}

	// Helper to size the model; geometry below assumes 80x24.
	sized := func(t *testing.T, m *tui.Model, controller *mocks.MockController) *tui.Model {
		t.Helper()
		controller.EXPECT().Resize(140, 76)
		m, _ = updateModel(m, tea.WindowSizeMsg{Width: 80, Height: 24})
		return m
	}

	t.Run("Window Resizing", func(t *testing.T) {
		m, controller := initModel(t)

		// 8 gutter + 2 border cells horizontally, 2 chrome + 2 border +
		// 1 label row vertically; the engine grid is cells times 2x4 dots.
		controller.EXPECT().Resize(140, 76)
		m, _ = updateModel(m, tea.WindowSizeMsg{Width: 80, Height: 24})

		assert.Equal(t, 70, m.CanvasCols)
		assert.Equal(t, 19, m.CanvasRows)
		assert.Positive(t, m.Input.Width)
	})

	t.Run("Degenerate Resize", func(t *testing.T) {
		m, _ := initModel(t)

		// Too small for a canvas: the engine must not be resized to a
		// non-positive grid (strict mock, no expectation).
		m, _ = updateModel(m, tea.WindowSizeMsg{Width: 10, Height: 4})
		assert.LessOrEqual(t, m.CanvasCols, 0)
	})

	t.Run("Submit Expression", func(t *testing.T) {
		m, controller := initModel(t)

		controller.EXPECT().SubmitExpression("sin(x)")
		m.Input.SetValue("  sin(x)  ")
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, tui.FocusInput, m.Focus, "submitting keeps the input focused")
	})

	t.Run("Submit Empty Is NoOp", func(t *testing.T) {
		m, _ := initModel(t)

		m.Input.SetValue("   ")
		_, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})
	})

	t.Run("Focus Toggle", func(t *testing.T) {
		m, _ := initModel(t)
		require.True(t, m.Input.Focused())

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, tui.FocusPlot, m.Focus)
		assert.False(t, m.Input.Focused())

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, tui.FocusInput, m.Focus)
		assert.True(t, m.Input.Focused())
	})

	t.Run("Esc Leaves The Input", func(t *testing.T) {
		m, _ := initModel(t)

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, tui.FocusPlot, m.Focus)

		// Enter from the plot refocuses the input.
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, tui.FocusInput, m.Focus)
		assert.True(t, m.Input.Focused())
	})

	t.Run("Plot Navigation", func(t *testing.T) {
		m, controller := initModel(t)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})

		controller.EXPECT().NudgeView(-1, 0)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyLeft})

		controller.EXPECT().NudgeView(1, 0)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})

		controller.EXPECT().NudgeView(0, 1)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})

		controller.EXPECT().NudgeView(0, -1)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

		controller.EXPECT().KeyZoom(true)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})

		controller.EXPECT().KeyZoom(false)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})

		controller.EXPECT().ResetView().Times(2)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})

		controller.EXPECT().ClearPlot()
		_, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	})

	t.Run("Quit Commands", func(t *testing.T) {
		m, _ := initModel(t)

		// ctrl+c quits from either focus zone.
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())

		// q quits only while navigating; in the input it is just a rune.
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		assert.Equal(t, "q", m.Input.Value())

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})

	t.Run("Frame Delivery", func(t *testing.T) {
		m, _ := initModel(t)

		frame := domain.Frame{
			Expr: "x",
			View: domain.DefaultViewport(40, 16),
			Samples: domain.SampleSet{
				Quality: domain.QualityRefined,
				Points:  []domain.SamplePoint{{X: 0, Y: 0}},
			},
		}
		m, _ = updateModel(m, tui.MsgFrame{Frame: frame})

		assert.True(t, m.HasFrame)
		assert.Equal(t, "x", m.Frame.Expr)
		assert.True(t, m.Frame.Settled())
	})

	t.Run("Input Error", func(t *testing.T) {
		m, _ := initModel(t)

		m, _ = updateModel(m, tui.MsgInputError{Input: "2x +* 3", Err: zerr.New("unexpected operator")})
		assert.Equal(t, "2x +* 3", m.ErrInput)
		assert.Equal(t, "unexpected operator", m.InputError)

		// The next edit clears the stale rejection.
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
		assert.Empty(t, m.InputError)
		assert.Equal(t, "a", m.Input.Value())
	})

	t.Run("Palette Cycle", func(t *testing.T) {
		m, _ := initModel(t)
		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyTab})
		require.Equal(t, 0, m.PaletteIdx)

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
		assert.Equal(t, 1, m.PaletteIdx)

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
		assert.Equal(t, 0, m.PaletteIdx)

		m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
		assert.Equal(t, 9, m.PaletteIdx, "cycling wraps around")
	})

	t.Run("Mouse Wheel", func(t *testing.T) {
		m, controller := initModel(t)
		m = sized(t, m, controller)

		// Cell (12, 6) is canvas cell (3, 4); its center dot is (7, 18).
		controller.EXPECT().WheelZoom(7.0, 18.0, true)
		m, _ = updateModel(m, tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})

		controller.EXPECT().WheelZoom(7.0, 18.0, false)
		m, _ = updateModel(m, tea.MouseMsg{X: 12, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

		// Outside the canvas area nothing is forwarded.
		_, _ = updateModel(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	})

	t.Run("Mouse Drag", func(t *testing.T) {
		m, controller := initModel(t)
		m = sized(t, m, controller)

		m, _ = updateModel(m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

		controller.EXPECT().Pan(4.0, 4.0)
		m, _ = updateModel(m, tea.MouseMsg{X: 22, Y: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

		controller.EXPECT().Pan(-2.0, 0.0)
		m, _ = updateModel(m, tea.MouseMsg{X: 21, Y: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

		// After release, motion no longer pans.
		m, _ = updateModel(m, tea.MouseMsg{X: 21, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
		_, _ = updateModel(m, tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	})
}

// Helpers.

func updateModel(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*tui.Model), cmd
}
