package ports

// Controller is the input side of the plotting engine. Front-ends call it
// from their own event loops; every method is non-blocking and safe for
// concurrent use. Calls are not applied immediately: the engine batches
// whatever arrived since its last pass and applies it as one state change,
// so a burst of interactions yields a single redraw reflecting the final
// state.
//
//go:generate mockgen -source=controller.go -destination=mocks/mock_controller.go -package=mocks
type Controller interface {
	// SubmitExpression replaces the plotted expression with the given
	// text. Malformed text is reported through the renderer and leaves
	// the current curve untouched.
	SubmitExpression(text string)

	// ClearPlot removes the current expression and its curve.
	ClearPlot()

	// Pan shifts the view by a pixel delta, the drag gesture.
	Pan(dxPixels, dyPixels float64)

	// NudgeView shifts the view by a fraction of the visible span per
	// axis, the arrow-key gesture. The engine scales the configured nudge
	// fraction by the given direction (-1, 0 or 1).
	NudgeView(xDirection, yDirection int)

	// WheelZoom zooms one wheel tick at the given pixel position, keeping
	// the data point under the cursor fixed.
	WheelZoom(col, row float64, in bool)

	// KeyZoom zooms about the view center by the configured keyboard
	// factor.
	KeyZoom(in bool)

	// SetBounds replaces the data-space bounds of the view. Invalid
	// bounds are reported through the renderer and the previous view is
	// kept.
	SetBounds(xMin, xMax, yMin, yMax float64)

	// ResetView restores the default bounds.
	ResetView()

	// Resize adapts the view to a new pixel grid.
	Resize(width, height int)
}
