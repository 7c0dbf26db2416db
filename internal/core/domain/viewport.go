package domain

import "math"

// Viewport describes the visible region of the plane and the pixel grid it is
// rendered onto. Bounds are in data space, Width and Height in pixels.
// Viewport is a value type; all operations return a new Viewport.
type Viewport struct {
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64
	Width  int
	Height int
}

// DefaultViewport returns the standard [-10, 10] x [-10, 10] view at the
// given pixel size.
func DefaultViewport(width, height int) Viewport {
	return Viewport{
		XMin:   DefaultXMin,
		XMax:   DefaultXMax,
		YMin:   DefaultYMin,
		YMax:   DefaultYMax,
		Width:  width,
		Height: height,
	}
}

// Validate reports whether the viewport describes a drawable region.
// Bounds must be finite and ordered, spans at least MinSpan, and the pixel
// grid non-empty.
func (v Viewport) Validate() error {
	for _, b := range []float64{v.XMin, v.XMax, v.YMin, v.YMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return ErrInvalidBounds
		}
	}
	if v.XMin >= v.XMax || v.YMin >= v.YMax {
		return ErrInvalidBounds
	}
	if v.XSpan() < MinSpan || v.YSpan() < MinSpan {
		return ErrSpanTooSmall
	}
	if v.Width <= 0 || v.Height <= 0 {
		return ErrInvalidSize
	}
	return nil
}

// XSpan returns the horizontal extent in data units.
func (v Viewport) XSpan() float64 { return v.XMax - v.XMin }

// YSpan returns the vertical extent in data units.
func (v Viewport) YSpan() float64 { return v.YMax - v.YMin }

// PixelStep returns the data-space width of one pixel column.
func (v Viewport) PixelStep() float64 { return v.XSpan() / float64(v.Width) }

// ColumnToX maps a (fractional) pixel column to its data-space x value.
func (v Viewport) ColumnToX(col float64) float64 {
	return v.XMin + col/float64(v.Width)*v.XSpan()
}

// XToColumn maps a data-space x value to its (fractional) pixel column.
func (v Viewport) XToColumn(x float64) float64 {
	return (x - v.XMin) / v.XSpan() * float64(v.Width)
}

// RowToY maps a (fractional) pixel row to its data-space y value.
// Row 0 is the top of the grid.
func (v Viewport) RowToY(row float64) float64 {
	return v.YMax - row/float64(v.Height)*v.YSpan()
}

// YToRow maps a data-space y value to its (fractional) pixel row.
func (v Viewport) YToRow(y float64) float64 {
	return (v.YMax - y) / v.YSpan() * float64(v.Height)
}

// Contains reports whether the data-space point (x, y) lies inside the view.
func (v Viewport) Contains(x, y float64) bool {
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}

// Pan shifts the view by a pixel delta. Screen y grows downward, so a
// positive dy moves the view down in data space.
func (v Viewport) Pan(dxPixels, dyPixels float64) Viewport {
	dx := -dxPixels / float64(v.Width) * v.XSpan()
	dy := dyPixels / float64(v.Height) * v.YSpan()
	v.XMin += dx
	v.XMax += dx
	v.YMin += dy
	v.YMax += dy
	return v
}

// Nudge shifts the view by a fraction of the visible span on each axis.
func (v Viewport) Nudge(xFraction, yFraction float64) Viewport {
	dx := xFraction * v.XSpan()
	dy := yFraction * v.YSpan()
	v.XMin += dx
	v.XMax += dx
	v.YMin += dy
	v.YMax += dy
	return v
}

// ZoomAt scales both spans by scale, keeping the data-space point under the
// given pixel position fixed on screen. Spans are clamped to
// [MinSpan, MaxSpan]; an axis already at a clamp is left unchanged.
func (v Viewport) ZoomAt(col, row, scale float64) Viewport {
	anchorX := v.ColumnToX(col)
	anchorY := v.RowToY(row)
	ratioX := col / float64(v.Width)
	ratioY := row / float64(v.Height)

	if span, ok := clampSpan(v.XSpan() * scale); ok {
		v.XMin = anchorX - ratioX*span
		v.XMax = v.XMin + span
	}
	if span, ok := clampSpan(v.YSpan() * scale); ok {
		v.YMax = anchorY + ratioY*span
		v.YMin = v.YMax - span
	}
	return v
}

// ZoomAbout scales both spans by scale about the view center.
func (v Viewport) ZoomAbout(scale float64) Viewport {
	return v.ZoomAt(float64(v.Width)/2, float64(v.Height)/2, scale)
}

// WithSize returns the viewport resized to a new pixel grid, keeping the
// data-space bounds.
func (v Viewport) WithSize(width, height int) Viewport {
	v.Width = width
	v.Height = height
	return v
}

// WithBounds returns the viewport with new data-space bounds, keeping the
// pixel grid.
func (v Viewport) WithBounds(xMin, xMax, yMin, yMax float64) Viewport {
	v.XMin = xMin
	v.XMax = xMax
	v.YMin = yMin
	v.YMax = yMax
	return v
}

// Reset returns the viewport restored to the default bounds, keeping the
// pixel grid.
func (v Viewport) Reset() Viewport {
	return DefaultViewport(v.Width, v.Height)
}

// clampSpan restricts a span to [MinSpan, MaxSpan]. The second return is
// false when the requested span is unusable (NaN or non-positive).
func clampSpan(span float64) (float64, bool) {
	if math.IsNaN(span) || span <= 0 {
		return 0, false
	}
	if span < MinSpan {
		return MinSpan, true
	}
	if span > MaxSpan {
		return MaxSpan, true
	}
	return span, true
}
