package figure

import (
	"math"
)

// ShadedErrorBar draws y±errorY as a visible center line plus a shaded
// band. It returns three traces: the center line, the invisible lower bound
// (fill "none") and the upper bound filled back to the lower one.
//
// The band colour defaults to the line colour. Slices are not length
// checked; errorY must be at least as long as y.
func (f *Figure) ShadedErrorBar(x, y, errorY []float64, lineStyle, bandStyle Props, ax *Handle) []*Trace {
	h := f.resolve(ax)

	top := make([]float64, len(y))
	bottom := make([]float64, len(y))
	for i := range y {
		top[i] = y[i] + errorY[i]
		bottom[i] = y[i] - errorY[i]
	}

	band := Props{"color": DefaultLineColor}
	if c, ok := lineStyle["color"]; ok {
		band["color"] = c
	}
	for k, v := range bandStyle {
		band[k] = v
	}

	center := f.add(KindLine, xy(x, y), lineStyle, h)
	lowerData := xy(x, bottom)
	lowerData["fill"] = "none"
	upperData := xy(x, top)
	upperData["fill"] = "tonexty"

	lower := f.add(KindBand, lowerData, band, h)
	upper := f.add(KindBand, upperData, band, h)
	return []*Trace{center, lower, upper}
}

// AddShadedArea shades the vertical strip between x[0] and x[1] across the
// subplot's current y range, as a closed polygon.
func (f *Figure) AddShadedArea(x [2]float64, style Props, ax *Handle) *Trace {
	h := f.resolve(ax)
	lo, hi := f.yExtent(h)
	data := Props{
		"x": []float64{x[0], x[0], x[1], x[1], x[0]},
		"y": []float64{lo, hi, hi, lo, lo},
	}
	return f.add(KindArea, data, style, h)
}

// yExtent returns the y range of h in data units: the explicit axis range
// (converted back from log10 on a log axis), else the extent of y data bound
// to the axis, else [0, 1].
func (f *Figure) yExtent(h *Handle) (float64, float64) {
	if axis, ok := asProps(f.layout[h.YPath()]); ok {
		if r, ok := toFloats(axis["range"]); ok && len(r) == 2 {
			if axis["type"] == string(ScaleLog) {
				return math.Pow(10, r[0]), math.Pow(10, r[1])
			}
			return r[0], r[1]
		}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range f.traces {
		if t.yAxis != h.yAxis {
			continue
		}
		ys, ok := toFloats(t.body["y"])
		if !ok {
			continue
		}
		for _, v := range ys {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}
