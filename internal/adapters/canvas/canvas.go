// Package canvas rasterizes sample sets into colored braille text. Each
// terminal cell packs a 2x4 block of plot pixels, so a frame rendered at
// WxH pixels occupies (W/2)x(H/4) cells.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/ui/style"
)

// CellWidth and CellHeight are the plot pixels per terminal cell.
const (
	CellWidth  = 2
	CellHeight = 4
)

const brailleBase rune = 0x2800

// brailleBits maps an in-cell (dx, dy) dot position to its bit in the
// braille pattern block. See the Braille Patterns Unicode chart: the
// left column carries bits 0,1,2,6 top to bottom, the right 3,4,5,7.
var brailleBits = [CellWidth][CellHeight]rune{
	{1 << 0, 1 << 1, 1 << 2, 1 << 6},
	{1 << 3, 1 << 4, 1 << 5, 1 << 7},
}

// Canvas renders frames as braille text with the curve and axes styled
// separately. Construct with New.
type Canvas struct {
	curve lipgloss.Style
	axis  lipgloss.Style
}

// New returns a Canvas using the default palette.
func New() *Canvas {
	return &Canvas{
		curve: lipgloss.NewStyle().Foreground(style.Azure),
		axis:  lipgloss.NewStyle().Foreground(style.Slate),
	}
}

// WithCurveColor overrides the curve color. An empty string keeps the
// default.
func (c *Canvas) WithCurveColor(color string) *Canvas {
	if color != "" {
		c.curve = c.curve.Foreground(lipgloss.Color(color))
	}
	return c
}

// Render rasterizes the frame onto its viewport's pixel grid and returns
// the rows joined by newlines. Lines are drawn only within gap-free
// segments; nothing is interpolated across a gap.
func (c *Canvas) Render(frame domain.Frame) string {
	view := frame.View
	if view.Width < CellWidth || view.Height < CellHeight {
		return ""
	}

	curve := newBitmap(view.Width, view.Height)
	axes := newBitmap(view.Width, view.Height)

	drawAxes(axes, view)
	for seg := range frame.Samples.Segments() {
		drawSegment(curve, view, seg)
	}

	return c.compose(curve, axes)
}

// bitmap is a dot grid at braille resolution. Row 0 is the top.
type bitmap struct {
	w, h int
	dots []bool
}

func newBitmap(w, h int) *bitmap {
	return &bitmap{w: w, h: h, dots: make([]bool, w*h)}
}

func (b *bitmap) set(x, y int) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.dots[y*b.w+x] = true
}

func (b *bitmap) at(x, y int) bool {
	return b.dots[y*b.w+x]
}

// drawAxes draws dotted zero-axis lines for whichever axes cross the view.
func drawAxes(b *bitmap, view domain.Viewport) {
	if view.YMin <= 0 && view.YMax >= 0 {
		y := clampIndex(math.Round(view.YToRow(0)), b.h)
		for x := 0; x < b.w; x += 2 {
			b.set(x, y)
		}
	}
	if view.XMin <= 0 && view.XMax >= 0 {
		x := clampIndex(math.Round(view.XToColumn(0)), b.w)
		for y := 0; y < b.h; y += 2 {
			b.set(x, y)
		}
	}
}

func clampIndex(v float64, limit int) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i >= limit {
		return limit - 1
	}
	return i
}

func drawSegment(b *bitmap, view domain.Viewport, seg []domain.SamplePoint) {
	px := view.XToColumn(seg[0].X)
	py := view.YToRow(seg[0].Y)

	if len(seg) == 1 {
		b.set(clampIndex(math.Round(px), b.w), clampIndex(math.Round(py), b.h))
		return
	}

	for i := 1; i < len(seg); i++ {
		nx := view.XToColumn(seg[i].X)
		ny := view.YToRow(seg[i].Y)
		drawLine(b, px, py, nx, ny)
		px, py = nx, ny
	}
}

// drawLine clips the segment to the grid in float space first, so samples
// far outside the view (clamped asymptote values) never inflate the
// integer walk, then rasterizes with Bresenham.
func drawLine(b *bitmap, x0, y0, x1, y1 float64) {
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, float64(b.w-1), float64(b.h-1))
	if !ok {
		return
	}

	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	e := dx + dy

	for {
		b.set(ix0, iy0)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}
		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

// clipLine is Liang-Barsky against [0, xMax] x [0, yMax]. The last return
// is false when the segment lies entirely outside.
func clipLine(x0, y0, x1, y1, xMax, yMax float64) (float64, float64, float64, float64, bool) {
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0

	for _, e := range [4][2]float64{
		{-dx, x0},
		{dx, xMax - x0},
		{-dy, y0},
		{dy, yMax - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// compose folds the two bitmaps into styled text. A braille cell has a
// single color, so cells containing any curve dot take the curve style and
// axis-only cells the axis style.
func (c *Canvas) compose(curve, axes *bitmap) string {
	cols := curve.w / CellWidth
	rows := curve.h / CellHeight

	var sb strings.Builder
	run := make([]rune, 0, cols)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		var runStyle *lipgloss.Style
		run = run[:0]
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runStyle == nil {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(runStyle.Render(string(run)))
			}
			run = run[:0]
		}

		for col := 0; col < cols; col++ {
			r, st := c.cellAt(curve, axes, col, row)
			if st != runStyle {
				flush()
				runStyle = st
			}
			run = append(run, r)
		}
		flush()
	}

	return sb.String()
}

func (c *Canvas) cellAt(curve, axes *bitmap, col, row int) (rune, *lipgloss.Style) {
	var bits rune
	onCurve := false

	for dx := 0; dx < CellWidth; dx++ {
		for dy := 0; dy < CellHeight; dy++ {
			x := col*CellWidth + dx
			y := row*CellHeight + dy
			if curve.at(x, y) {
				bits |= brailleBits[dx][dy]
				onCurve = true
			} else if axes.at(x, y) {
				bits |= brailleBits[dx][dy]
			}
		}
	}

	if bits == 0 {
		return ' ', nil
	}
	if onCurve {
		return brailleBase + bits, &c.curve
	}
	return brailleBase + bits, &c.axis
}
