package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graf/internal/core/domain"
)

func TestViewport_Validate(t *testing.T) {
	tests := []struct {
		name    string
		view    domain.Viewport
		wantErr error
	}{
		{
			name: "Default view is valid",
			view: domain.DefaultViewport(400, 200),
		},
		{
			name:    "Inverted x bounds",
			view:    domain.Viewport{XMin: 5, XMax: -5, YMin: -10, YMax: 10, Width: 400, Height: 200},
			wantErr: domain.ErrInvalidBounds,
		},
		{
			name:    "Equal y bounds",
			view:    domain.Viewport{XMin: -10, XMax: 10, YMin: 3, YMax: 3, Width: 400, Height: 200},
			wantErr: domain.ErrInvalidBounds,
		},
		{
			name:    "NaN bound",
			view:    domain.Viewport{XMin: math.NaN(), XMax: 10, YMin: -10, YMax: 10, Width: 400, Height: 200},
			wantErr: domain.ErrInvalidBounds,
		},
		{
			name:    "Infinite bound",
			view:    domain.Viewport{XMin: -10, XMax: math.Inf(1), YMin: -10, YMax: 10, Width: 400, Height: 200},
			wantErr: domain.ErrInvalidBounds,
		},
		{
			name:    "Span below minimum",
			view:    domain.Viewport{XMin: 0, XMax: 0.01, YMin: -10, YMax: 10, Width: 400, Height: 200},
			wantErr: domain.ErrSpanTooSmall,
		},
		{
			name:    "Zero width",
			view:    domain.Viewport{XMin: -10, XMax: 10, YMin: -10, YMax: 10, Width: 0, Height: 200},
			wantErr: domain.ErrInvalidSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.view.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestViewport_Mapping(t *testing.T) {
	v := domain.Viewport{XMin: -2, XMax: 2, YMin: -1, YMax: 1, Width: 400, Height: 100}

	assert.InDelta(t, 4.0/400, v.PixelStep(), 1e-12)
	assert.InDelta(t, -2, v.ColumnToX(0), 1e-12)
	assert.InDelta(t, 2, v.ColumnToX(400), 1e-12)
	assert.InDelta(t, 0, v.ColumnToX(200), 1e-12)

	// Row 0 is the top of the grid.
	assert.InDelta(t, 1, v.RowToY(0), 1e-12)
	assert.InDelta(t, -1, v.RowToY(100), 1e-12)

	// Round trips.
	for _, col := range []float64{0, 17, 199.5, 400} {
		assert.InDelta(t, col, v.XToColumn(v.ColumnToX(col)), 1e-9)
	}
	for _, row := range []float64{0, 33, 50.25, 100} {
		assert.InDelta(t, row, v.YToRow(v.RowToY(row)), 1e-9)
	}
}

func TestViewport_Pan(t *testing.T) {
	v := domain.DefaultViewport(400, 200)

	// Dragging 40 pixels to the right moves the view left by a tenth of the
	// span on x; dragging 20 pixels down moves it up on y.
	panned := v.Pan(40, 20)

	assert.InDelta(t, -12, panned.XMin, 1e-12)
	assert.InDelta(t, 8, panned.XMax, 1e-12)
	assert.InDelta(t, -8, panned.YMin, 1e-12)
	assert.InDelta(t, 12, panned.YMax, 1e-12)

	// Spans are preserved.
	assert.InDelta(t, v.XSpan(), panned.XSpan(), 1e-12)
	assert.InDelta(t, v.YSpan(), panned.YSpan(), 1e-12)
}

func TestViewport_Nudge(t *testing.T) {
	v := domain.DefaultViewport(400, 200)

	nudged := v.Nudge(0.1, 0)
	assert.InDelta(t, -8, nudged.XMin, 1e-12)
	assert.InDelta(t, 12, nudged.XMax, 1e-12)
	assert.InDelta(t, v.YMin, nudged.YMin, 1e-12)

	nudged = v.Nudge(0, -0.25)
	assert.InDelta(t, -15, nudged.YMin, 1e-12)
	assert.InDelta(t, 5, nudged.YMax, 1e-12)
}

func TestViewport_ZoomAt_AnchorsCursor(t *testing.T) {
	// Zooming in 2x with the cursor over x=pi/2 must keep pi/2 under the
	// same pixel column afterwards.
	v := domain.DefaultViewport(400, 200)
	anchor := math.Pi / 2
	col := v.XToColumn(anchor)
	row := 80.0
	anchorY := v.RowToY(row)

	zoomed := v.ZoomAt(col, row, 0.5)

	assert.InDelta(t, col, zoomed.XToColumn(anchor), 1e-9)
	assert.InDelta(t, row, zoomed.YToRow(anchorY), 1e-9)
	assert.InDelta(t, v.XSpan()/2, zoomed.XSpan(), 1e-9)
	assert.InDelta(t, v.YSpan()/2, zoomed.YSpan(), 1e-9)
	require.NoError(t, zoomed.Validate())
}

func TestViewport_ZoomAt_EdgeCursor(t *testing.T) {
	v := domain.DefaultViewport(400, 200)

	// Cursor on the far left column: the left bound is the anchor and must
	// not move; the range must never invert.
	zoomed := v.ZoomAt(0, 0, 0.5)
	assert.InDelta(t, v.XMin, zoomed.XMin, 1e-9)
	assert.Less(t, zoomed.XMin, zoomed.XMax)

	zoomed = v.ZoomAt(400, 200, 1.5)
	assert.InDelta(t, v.XMax, zoomed.XMax, 1e-9)
	assert.Less(t, zoomed.XMin, zoomed.XMax)
}

func TestViewport_ZoomAt_ClampsSpan(t *testing.T) {
	v := domain.DefaultViewport(400, 200)

	// Zooming in far past the minimum span clamps and stays valid.
	for range 20 {
		v = v.ZoomAbout(0.5)
	}
	assert.InDelta(t, domain.MinSpan, v.XSpan(), 1e-9)
	assert.InDelta(t, domain.MinSpan, v.YSpan(), 1e-9)
	require.NoError(t, v.Validate())

	// Zooming out far past the maximum span clamps too.
	for range 80 {
		v = v.ZoomAbout(4)
	}
	assert.InDelta(t, domain.MaxSpan, v.XSpan(), domain.MaxSpan/1e6)
	require.NoError(t, v.Validate())
}

func TestViewport_WithSizeAndReset(t *testing.T) {
	v := domain.DefaultViewport(400, 200).WithBounds(0, 4, -2, 2)

	resized := v.WithSize(160, 96)
	assert.Equal(t, 160, resized.Width)
	assert.Equal(t, 96, resized.Height)
	assert.InDelta(t, 0, resized.XMin, 1e-12)
	assert.InDelta(t, 4, resized.XMax, 1e-12)

	reset := resized.Reset()
	assert.InDelta(t, domain.DefaultXMin, reset.XMin, 1e-12)
	assert.InDelta(t, domain.DefaultYMax, reset.YMax, 1e-12)
	assert.Equal(t, 160, reset.Width)
}
