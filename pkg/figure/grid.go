package figure

import (
	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// Gutters around subplots. The horizontal gutter is a fixed fraction of the
// canvas, applied between columns only. The vertical one is 15% of a row's
// height on both edges of every row, so the top row keeps room for its
// subtitle below the figure title.
const (
	gutterX         = 0.02
	gutterYFraction = 0.15
)

// GridOptions controls axis sharing across a subplot grid.
//
// ShareX gives each column one x axis reused by every row; in a single-row
// grid all cells share one x axis. ShareY mirrors this for rows and y axes.
type GridOptions struct {
	ShareX bool
	ShareY bool
}

// ComputeGrid lays out a rows×cols grid and returns one handle per cell in
// row-major order, top row first.
//
// Axis ids are numbered per cell in row-major order unless the dimension is
// shared (see [GridOptions]). Domains are fractions of the canvas; y domains are
// stored bottom-up, so the top row has the largest values. A 1×1 grid has no
// domain.
func ComputeGrid(rows, cols int, opts GridOptions) ([]*Handle, error) {
	if rows < 1 || cols < 1 {
		return nil, errs.New(errs.ErrCodeInvalidGrid, "grid must be at least 1x1, got %dx%d", rows, cols)
	}

	gridded := rows > 1 || cols > 1
	colWidth := 1 / float64(cols)
	rowHeight := 1 / float64(rows)
	gx := gutterX
	gy := gutterYFraction * rowHeight

	handles := make([]*Handle, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cell := i*cols + j + 1
			xn, yn := cell, cell
			if opts.ShareX {
				xn = sharedIndex(j, rows)
			}
			if opts.ShareY {
				yn = sharedIndex(i, cols)
			}

			h := &Handle{
				id:      newHandleID(),
				row:     i,
				col:     j,
				xAxis:   axisID("x", xn),
				yAxis:   axisID("y", yn),
				gridded: gridded,
			}
			if gridded {
				h.xDomain = cellSpan(j, cols, colWidth, gx)
				h.yDomain = rowSpan(i, rowHeight, gy)
			}
			handles = append(handles, h)
		}
	}
	return handles, nil
}

// sharedIndex numbers a shared axis by its band k, or 1 when there is a
// single band across the other dimension.
func sharedIndex(k, across int) int {
	if across == 1 {
		return 1
	}
	return k + 1
}

// rowSpan returns row i's band, counted from the top, mirrored into
// bottom-up storage with the gutter taken from both edges.
func rowSpan(i int, size, gutter float64) Domain {
	return Domain{1 - (float64(i+1)*size - gutter), 1 - (float64(i)*size + gutter)}
}

// cellSpan returns the k-th of n equal bands with the gutter removed from
// interior edges.
func cellSpan(k, n int, size, gutter float64) Domain {
	start := float64(k) * size
	end := float64(k+1) * size
	if k > 0 {
		start += gutter
	}
	if k < n-1 {
		end -= gutter
	}
	if k == n-1 {
		end = 1
	}
	return Domain{start, end}
}
