package plotspec

import (
	"fmt"

	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

var validScales = map[string]bool{"": true, "linear": true, "log": true}

func invalid(format string, args ...any) error {
	return errs.New(errs.ErrCodeInvalidDocument, format, args...)
}

// Validate checks grid bounds, cell references, array shapes and colour
// axis references.
func (d *Document) Validate() error {
	if d.Grid.Rows < 0 || d.Grid.Cols < 0 {
		return invalid("grid must not have negative size, got %dx%d", d.Grid.Rows, d.Grid.Cols)
	}
	cells := d.Cells()
	checkCell := func(what string, i, cell int) error {
		if cell < 0 || cell >= cells {
			return invalid("%s[%d]: cell %d outside %d-cell grid", what, i, cell, cells)
		}
		return nil
	}

	names := make(map[string]bool, len(d.ColorAxes))
	for i, ca := range d.ColorAxes {
		if ca.Name == "" {
			return invalid("coloraxes[%d]: name is required", i)
		}
		if names[ca.Name] {
			return invalid("coloraxes[%d]: duplicate name %q", i, ca.Name)
		}
		names[ca.Name] = true
		if err := checkCell("coloraxes", i, ca.Cell); err != nil {
			return err
		}
		if ca.Clim != nil && len(ca.Clim) != 2 {
			return invalid("coloraxes[%d]: clim needs 2 values, got %d", i, len(ca.Clim))
		}
	}

	for i, ax := range d.Axes {
		if err := checkCell("axes", i, ax.Cell); err != nil {
			return err
		}
		if !validScales[ax.XScale] || !validScales[ax.YScale] {
			return invalid("axes[%d]: scale must be linear or log", i)
		}
		if ax.XLim != nil && len(ax.XLim) != 2 {
			return invalid("axes[%d]: xlim needs 2 values, got %d", i, len(ax.XLim))
		}
		if ax.YLim != nil && len(ax.YLim) != 2 {
			return invalid("axes[%d]: ylim needs 2 values, got %d", i, len(ax.YLim))
		}
	}

	for i, tr := range d.Traces {
		if !ValidKinds[tr.Kind] {
			return invalid("traces[%d]: unknown kind %q", i, tr.Kind)
		}
		if err := checkCell("traces", i, tr.Cell); err != nil {
			return err
		}
		if err := tr.validateShape(); err != nil {
			return invalid("traces[%d]: %v", i, err)
		}
		if tr.ColorAxis != "" && !names[tr.ColorAxis] {
			return invalid("traces[%d]: undefined coloraxis %q", i, tr.ColorAxis)
		}
	}
	return nil
}

func (tr Trace) validateShape() error {
	switch tr.Kind {
	case KindArea:
		if len(tr.Window) != 2 {
			return fmt.Errorf("area window needs 2 values, got %d", len(tr.Window))
		}
		return nil
	case KindSurf:
		if len(tr.Z) == 0 {
			return fmt.Errorf("surf needs z")
		}
		return nil
	}

	if len(tr.Y) == 0 {
		return fmt.Errorf("%s needs y", tr.Kind)
	}
	if tr.X != nil && len(tr.X) != len(tr.Y) {
		return fmt.Errorf("x has %d values, y has %d", len(tr.X), len(tr.Y))
	}
	if tr.Kind == KindErrorBar && len(tr.Error) != len(tr.Y) {
		return fmt.Errorf("error has %d values, y has %d", len(tr.Error), len(tr.Y))
	}
	return nil
}
