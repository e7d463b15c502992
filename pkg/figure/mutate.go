package figure

import (
	"math"

	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// Scale is an axis scale type.
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// axisProps returns the layout subtree of one axis of ax, creating it.
func (f *Figure) axisProps(a Axis, ax *Handle) (Props, error) {
	path, err := f.resolve(ax).Path(a)
	if err != nil {
		return nil, err
	}
	return f.layout.Sub(path), nil
}

func (f *Figure) setAxisTitle(a Axis, text string, ax *Handle) {
	props, _ := f.axisProps(a, ax)
	props.Sub("title")["text"] = text
}

// SetXlabel sets the x-axis title of ax.
func (f *Figure) SetXlabel(text string, ax *Handle) { f.setAxisTitle(AxisX, text, ax) }

// SetYlabel sets the y-axis title of ax.
func (f *Figure) SetYlabel(text string, ax *Handle) { f.setAxisTitle(AxisY, text, ax) }

// SetXlim fixes the x range of ax. On a log axis the limits are stored as
// log10 values.
func (f *Figure) SetXlim(lim [2]float64, ax *Handle) error { return f.setLim(AxisX, lim, ax) }

// SetYlim fixes the y range of ax. On a log axis the limits are stored as
// log10 values.
func (f *Figure) SetYlim(lim [2]float64, ax *Handle) error { return f.setLim(AxisY, lim, ax) }

func (f *Figure) setLim(a Axis, lim [2]float64, ax *Handle) error {
	props, err := f.axisProps(a, ax)
	if err != nil {
		return err
	}
	lo, hi := lim[0], lim[1]
	if props["type"] == string(ScaleLog) {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	if !finite(lo, hi) {
		return errs.New(errs.ErrCodeInvalidInput, "axis limits %v are not representable on a %v axis", lim, props["type"])
	}
	props["range"] = []float64{lo, hi}
	props["autorange"] = false
	return nil
}

// SetTickValue places ticks at values on the selected axis of ax.
func (f *Figure) SetTickValue(values []float64, a Axis, ax *Handle) error {
	props, err := f.axisProps(a, ax)
	if err != nil {
		return err
	}
	props["tickmode"] = "array"
	props["tickvals"] = values
	return nil
}

// SetTickLabel labels the ticks of the selected axis of ax.
func (f *Figure) SetTickLabel(labels []string, a Axis, ax *Handle) error {
	props, err := f.axisProps(a, ax)
	if err != nil {
		return err
	}
	props["tickmode"] = "array"
	props["ticktext"] = labels
	return nil
}

// SetAxisProps merges arbitrary engine properties into the selected axis.
func (f *Figure) SetAxisProps(p Props, a Axis, ax *Handle) error {
	props, err := f.axisProps(a, ax)
	if err != nil {
		return err
	}
	props.Merge(p)
	return nil
}

// SetScaleType switches the selected axis between linear and log.
//
// Switching to log rewrites an explicit range with log10. Switching back to
// linear only changes the type; the stored range keeps its log10 values.
func (f *Figure) SetScaleType(scale Scale, a Axis, ax *Handle) error {
	if scale != ScaleLinear && scale != ScaleLog {
		return errs.New(errs.ErrCodeInvalidScale, "unknown scale %q (must be linear or log)", scale)
	}
	props, err := f.axisProps(a, ax)
	if err != nil {
		return err
	}

	if scale == ScaleLog && props["type"] != string(ScaleLog) {
		if r, ok := toFloats(props["range"]); ok && len(r) == 2 {
			lo, hi := math.Log10(r[0]), math.Log10(r[1])
			if finite(lo, hi) {
				props["range"] = []float64{lo, hi}
			} else {
				f.logger.Warn("dropping non-positive range on log axis", "target", f.target, "range", r)
				delete(props, "range")
				props["autorange"] = true
			}
		}
	}
	props["type"] = string(scale)
	return nil
}

// SetTitle sets the figure title.
func (f *Figure) SetTitle(text string) {
	f.layout.Sub("title")["text"] = text
}

// SetSubtitle places a title above ax's subplot, replacing any earlier one.
func (f *Figure) SetSubtitle(text string, ax *Handle) {
	h := f.resolve(ax)
	x, y := 0.5, 1.0
	if xd, ok := h.XDomain(); ok {
		yd, _ := h.YDomain()
		x, y = (xd[0]+xd[1])/2, yd[1]
	}
	f.subtitles[h.id] = Props{
		"text":      text,
		"x":         x,
		"y":         y,
		"xref":      "paper",
		"yref":      "paper",
		"xanchor":   "center",
		"yanchor":   "bottom",
		"showarrow": false,
	}
}

// SetLegend shows the legend and merges props into its settings.
func (f *Figure) SetLegend(props Props) {
	f.layout["showlegend"] = true
	f.layout.Sub("legend").Merge(props)
}

// SetLayoutProps merges props into the layout: object values are merged
// into the existing subtree, everything else overwrites.
func (f *Figure) SetLayoutProps(props Props) {
	f.layout.Merge(props)
}
