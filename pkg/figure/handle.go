package figure

import (
	"fmt"

	"github.com/google/uuid"

	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// Axis selects the x or y axis of a handle.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Domain is a fractional [start, end] span of the figure canvas.
type Domain [2]float64

// Handle identifies one logical subplot cell. Handles are immutable; two
// handles are the same subplot only if their IDs match.
type Handle struct {
	id      string
	row     int
	col     int
	xAxis   string
	yAxis   string
	xDomain Domain
	yDomain Domain
	gridded bool
}

// ID returns the generated handle identifier.
func (h *Handle) ID() string { return h.id }

// Row returns the zero-based grid row, counted from the top.
func (h *Handle) Row() int { return h.row }

// Col returns the zero-based grid column.
func (h *Handle) Col() int { return h.col }

// XAxis returns the x-axis id traces bind to ("x", "x2", ...).
func (h *Handle) XAxis() string { return h.xAxis }

// YAxis returns the y-axis id traces bind to ("y", "y2", ...).
func (h *Handle) YAxis() string { return h.yAxis }

// XPath returns the layout key of the x axis ("xaxis", "xaxis2", ...).
func (h *Handle) XPath() string { return layoutPath(h.xAxis) }

// YPath returns the layout key of the y axis ("yaxis", "yaxis2", ...).
func (h *Handle) YPath() string { return layoutPath(h.yAxis) }

// XDomain returns the horizontal domain. ok is false for a 1×1 grid, where
// the subplot fills the canvas.
func (h *Handle) XDomain() (d Domain, ok bool) { return h.xDomain, h.gridded }

// YDomain returns the vertical domain, bottom-up. ok is false for a 1×1 grid.
func (h *Handle) YDomain() (d Domain, ok bool) { return h.yDomain, h.gridded }

// Path returns the layout key of the selected axis.
func (h *Handle) Path(a Axis) (string, error) {
	switch a {
	case AxisX:
		return h.XPath(), nil
	case AxisY:
		return h.YPath(), nil
	}
	return "", errs.New(errs.ErrCodeInvalidAxis, "unknown axis %q (must be x or y)", a)
}

// String implements fmt.Stringer.
func (h *Handle) String() string {
	return fmt.Sprintf("(%d,%d) %s/%s", h.row, h.col, h.xAxis, h.yAxis)
}

// axisID names the n-th axis of a dimension: "x", "x2", "x3", ...
func axisID(prefix string, n int) string {
	if n <= 1 {
		return prefix
	}
	return fmt.Sprintf("%s%d", prefix, n)
}

// layoutPath converts an axis id to its layout key: "x2" → "xaxis2".
func layoutPath(id string) string {
	if id == "" {
		return ""
	}
	return id[:1] + "axis" + id[1:]
}

func newHandleID() string { return uuid.NewString() }
