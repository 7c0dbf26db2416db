package canvas_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graf/internal/adapters/canvas"
	"go.trai.ch/graf/internal/core/domain"
)

// offsetView is an 8x8 pixel view away from both axes, so fixtures stay
// free of axis dots.
func offsetView() domain.Viewport {
	return domain.Viewport{XMin: 1, XMax: 9, YMin: 1, YMax: 9, Width: 8, Height: 8}
}

func frameWith(view domain.Viewport, points ...domain.SamplePoint) domain.Frame {
	return domain.Frame{
		View: view,
		Samples: domain.SampleSet{
			Quality: domain.QualityRefined,
			Points:  points,
		},
	}
}

func TestCanvas_RenderDiagonal(t *testing.T) {
	c := canvas.New()

	got := c.Render(frameWith(offsetView(),
		domain.SamplePoint{X: 1, Y: 9},
		domain.SamplePoint{X: 9, Y: 1},
	))

	g := goldie.New(t)
	g.Assert(t, "canvas_diagonal", []byte(got))
}

func TestCanvas_GapSplitsRuns(t *testing.T) {
	c := canvas.New()

	// A flat line with a hole at x=5: no dot may bridge the two segments.
	got := c.Render(frameWith(offsetView(),
		domain.SamplePoint{X: 1, Y: 5},
		domain.SamplePoint{X: 4, Y: 5},
		domain.GapAt(5),
		domain.SamplePoint{X: 6, Y: 5},
		domain.SamplePoint{X: 9, Y: 5},
	))

	g := goldie.New(t)
	g.Assert(t, "canvas_gap", []byte(got))
}

func TestCanvas_Axes(t *testing.T) {
	c := canvas.New()

	view := domain.Viewport{XMin: -4, XMax: 4, YMin: -4, YMax: 4, Width: 8, Height: 8}
	got := c.Render(frameWith(view))

	g := goldie.New(t)
	g.Assert(t, "canvas_axes", []byte(got))
}

func TestCanvas_SinglePointSegment(t *testing.T) {
	c := canvas.New()

	got := c.Render(frameWith(offsetView(), domain.SamplePoint{X: 5, Y: 5}))

	assert.Equal(t, "    \n  ⠁ ", got)
}

func TestCanvas_AsymptoteStaysBounded(t *testing.T) {
	c := canvas.New()

	// Clamped overflow samples sit far outside the view; clipping must keep
	// the output at the viewport's cell size.
	view := domain.Viewport{XMin: -2, XMax: 2, YMin: -10, YMax: 10, Width: 40, Height: 40}
	got := c.Render(frameWith(view,
		domain.SamplePoint{X: -2, Y: -0.5},
		domain.SamplePoint{X: -0.2, Y: -5},
		domain.SamplePoint{X: -0.1, Y: -10},
		domain.SamplePoint{X: -0.05, Y: -1e9},
		domain.GapAt(0),
		domain.SamplePoint{X: 0.05, Y: 1e9},
		domain.SamplePoint{X: 0.1, Y: 10},
		domain.SamplePoint{X: 0.2, Y: 5},
		domain.SamplePoint{X: 2, Y: 0.5},
	))

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 10)
	for i, line := range lines {
		assert.Equal(t, 20, utf8.RuneCountInString(line), "line %d width", i)
	}
	assert.NotEqual(t, strings.Repeat(" ", 20), lines[0], "rising branch should reach the top row")
	assert.NotEqual(t, strings.Repeat(" ", 20), lines[9], "falling branch should reach the bottom row")
}

func TestCanvas_EmptyFrame(t *testing.T) {
	c := canvas.New()

	view := domain.DefaultViewport(domain.DefaultPlotWidth, domain.DefaultPlotHeight)
	got := c.Render(frameWith(view))

	lines := strings.Split(got, "\n")
	require.Len(t, lines, domain.DefaultPlotHeight/canvas.CellHeight)
	for _, line := range lines {
		assert.Equal(t, domain.DefaultPlotWidth/canvas.CellWidth, utf8.RuneCountInString(line))
	}
	assert.Contains(t, got, "⠁", "axes should still be drawn")
}

func TestCanvas_TooSmallViewport(t *testing.T) {
	c := canvas.New()

	got := c.Render(frameWith(domain.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1, Width: 1, Height: 1}))
	assert.Empty(t, got)
}

func TestCanvas_WithCurveColor(t *testing.T) {
	plain := canvas.New().Render(frameWith(offsetView(),
		domain.SamplePoint{X: 1, Y: 9},
		domain.SamplePoint{X: 9, Y: 1},
	))
	colored := canvas.New().WithCurveColor("#FF0000").Render(frameWith(offsetView(),
		domain.SamplePoint{X: 1, Y: 9},
		domain.SamplePoint{X: 9, Y: 1},
	))

	// Color profiles are inert without a TTY; the dot layout must not change.
	assert.Equal(t, plain, colored)
}
