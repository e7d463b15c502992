package plotspec

import (
	"github.com/neuroviz/neuroplot/pkg/figure"
)

// Apply draws the document onto fig, replacing its grid. The document must
// be valid. Color axes and axis settings are applied before traces so that
// shaded areas see the final y range.
func (d *Document) Apply(fig *figure.Figure) error {
	rows, cols := d.Grid.Size()
	handles, err := fig.Subplots(rows, cols, figure.GridOptions{ShareX: d.Grid.ShareX, ShareY: d.Grid.ShareY})
	if err != nil {
		return err
	}

	if d.Title != "" {
		fig.SetTitle(d.Title)
	}
	if len(d.Legend) > 0 {
		fig.SetLegend(figure.Props(d.Legend))
	}
	if len(d.Layout) > 0 {
		fig.SetLayoutProps(figure.Props(d.Layout))
	}

	colorAxes := make(map[string]string, len(d.ColorAxes))
	for _, ca := range d.ColorAxes {
		opts := figure.Props{}
		for k, v := range ca.Options {
			opts[k] = v
		}
		if ca.Clim != nil {
			opts["clim"] = ca.Clim
		}
		if ca.Colorscale != "" {
			opts["colorscale"] = ca.Colorscale
		}
		colorAxes[ca.Name] = fig.CreateColorAxis(opts, handles[ca.Cell])
	}

	for _, ax := range d.Axes {
		if err := ax.apply(fig, handles[ax.Cell]); err != nil {
			return err
		}
	}

	for _, tr := range d.Traces {
		tr.apply(fig, handles[tr.Cell], colorAxes)
	}
	return nil
}

func (ax Axes) apply(fig *figure.Figure, h *figure.Handle) error {
	if ax.Subtitle != "" {
		fig.SetSubtitle(ax.Subtitle, h)
	}
	if ax.XLabel != "" {
		fig.SetXlabel(ax.XLabel, h)
	}
	if ax.YLabel != "" {
		fig.SetYlabel(ax.YLabel, h)
	}

	// Scales first: limits are given in data units and stored as log10 on
	// a log axis.
	if ax.XScale != "" {
		if err := fig.SetScaleType(figure.Scale(ax.XScale), figure.AxisX, h); err != nil {
			return err
		}
	}
	if ax.YScale != "" {
		if err := fig.SetScaleType(figure.Scale(ax.YScale), figure.AxisY, h); err != nil {
			return err
		}
	}
	if len(ax.XLim) == 2 {
		if err := fig.SetXlim([2]float64{ax.XLim[0], ax.XLim[1]}, h); err != nil {
			return err
		}
	}
	if len(ax.YLim) == 2 {
		if err := fig.SetYlim([2]float64{ax.YLim[0], ax.YLim[1]}, h); err != nil {
			return err
		}
	}

	ticks := []struct {
		axis   figure.Axis
		values []float64
		labels []string
	}{
		{figure.AxisX, ax.XTicks, ax.XTickLabels},
		{figure.AxisY, ax.YTicks, ax.YTickLabels},
	}
	for _, t := range ticks {
		if t.values != nil {
			if err := fig.SetTickValue(t.values, t.axis, h); err != nil {
				return err
			}
		}
		if t.labels != nil {
			if err := fig.SetTickLabel(t.labels, t.axis, h); err != nil {
				return err
			}
		}
	}
	return nil
}

func (tr Trace) apply(fig *figure.Figure, h *figure.Handle, colorAxes map[string]string) {
	style := figure.Props{}
	for k, v := range tr.Style {
		style[k] = v
	}

	switch tr.Kind {
	case KindLine:
		fig.Plot(tr.X, tr.Y, style, h)
	case KindScatter:
		fig.Scatter(tr.X, tr.Y, style, h)
	case KindBar:
		fig.Bar(tr.X, tr.Y, style, h)
	case KindBox:
		fig.Box(tr.X, tr.Y, style, h)
	case KindSurf:
		if tr.ColorAxis != "" {
			style["coloraxis"] = colorAxes[tr.ColorAxis]
		}
		fig.Surf(tr.X, tr.Y, tr.Z, style, h)
	case KindErrorBar:
		fig.ShadedErrorBar(tr.X, tr.Y, tr.Error, figure.Props(tr.LineStyle), figure.Props(tr.BandStyle), h)
	case KindArea:
		fig.AddShadedArea([2]float64{tr.Window[0], tr.Window[1]}, style, h)
	}
}
