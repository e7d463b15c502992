package figure

import (
	"sort"
)

// Kind is a chart primitive type.
type Kind string

const (
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
	KindBar     Kind = "bar"
	KindBox     Kind = "box"
	KindSurf    Kind = "surf"
	KindBand    Kind = "band"
	KindArea    Kind = "area"
)

// DefaultLineColor is the colour shaded bands derive from when neither the
// band nor its center line names one.
const DefaultLineColor = "#1f77b4"

// setter applies one style value to a trace body.
type setter func(body Props, v any)

// styleTable maps the stable style vocabulary onto one chart type's schema.
type styleTable struct {
	defaults func() Props
	setters  map[string]setter
	// deferred keys are applied after all others.
	deferred map[string]bool
}

func to(paths ...string) setter {
	return func(body Props, v any) {
		for _, p := range paths {
			body.Set(p, v)
		}
	}
}

func climSetter(lo, hi string) setter {
	return func(body Props, v any) {
		r, ok := toFloats(v)
		if !ok || len(r) != 2 {
			body["clim"] = v
			return
		}
		body[lo] = r[0]
		body[hi] = r[1]
	}
}

func fillColorSetter(body Props, v any) {
	s, ok := v.(string)
	if !ok {
		body["fillcolor"] = v
		return
	}
	cur, _ := body["fillcolor"].(string)
	body["fillcolor"] = withRGB(cur, s)
}

func fillAlphaSetter(body Props, v any) {
	a, ok := toFloat(v)
	cur, isStr := body["fillcolor"].(string)
	if ok && isStr {
		if c, hex := withAlpha(cur, a); hex {
			body["fillcolor"] = c
			return
		}
	}
	body["opacity"] = v
}

var (
	deferAlpha = map[string]bool{"alpha": true}

	bandSetters = map[string]setter{
		"color": fillColorSetter,
		"alpha": fillAlphaSetter,
		"label": to("name"),
	}

	styleTables = map[Kind]styleTable{
		KindLine: {
			defaults: lineDefaults,
			setters: map[string]setter{
				"color":     to("line.color"),
				"linewidth": to("line.width"),
				"linestyle": to("line.dash"),
				"size":      to("marker.size"),
				"alpha":     to("opacity"),
				"label":     to("name"),
			},
		},
		KindScatter: {
			defaults: scatterDefaults,
			setters: map[string]setter{
				"color":     to("marker.color"),
				"size":      to("marker.size"),
				"linewidth": to("marker.line.width"),
				"marker":    to("marker.symbol"),
				"alpha":     to("opacity"),
				"label":     to("name"),
			},
		},
		KindBar: {
			defaults: barDefaults,
			setters: map[string]setter{
				"color":     to("marker.color"),
				"size":      to("marker.size"),
				"linewidth": to("marker.line.width"),
				"alpha":     to("opacity"),
				"label":     to("name"),
			},
		},
		KindBox: {
			defaults: boxDefaults,
			setters: map[string]setter{
				"color":     to("marker.color", "line.color"),
				"linewidth": to("line.width"),
				"label":     to("name"),
			},
		},
		KindSurf: {
			defaults: surfDefaults,
			setters: map[string]setter{
				"clim":     climSetter("zmin", "zmax"),
				"colormap": to("colorscale"),
				"label":    to("name"),
			},
		},
		KindBand: {
			defaults: bandDefaults,
			setters:  bandSetters,
			deferred: deferAlpha,
		},
		KindArea: {
			defaults: areaDefaults,
			setters:  bandSetters,
			deferred: deferAlpha,
		},
	}
)

// apply remaps style onto body. Keys are applied in sorted order with
// deferred keys last; unknown keys are copied onto the trace root.
func (st styleTable) apply(body Props, style Props) {
	if len(style) == 0 {
		return
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := st.deferred[keys[i]], st.deferred[keys[j]]
		if di != dj {
			return dj
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		if set, ok := st.setters[k]; ok {
			set(body, style[k])
			continue
		}
		body[k] = style[k]
	}
}

// Default trace literals. Each call returns a fresh tree.

func lineDefaults() Props {
	return Props{
		"type": "scatter",
		"mode": "lines",
		"line": Props{"width": 1.5},
	}
}

func scatterDefaults() Props {
	return Props{
		"type":   "scatter",
		"mode":   "markers",
		"marker": Props{"size": 6},
	}
}

func barDefaults() Props {
	return Props{
		"type":   "bar",
		"marker": Props{},
	}
}

func boxDefaults() Props {
	return Props{
		"type":       "box",
		"boxpoints":  "outliers",
		"marker":     Props{"color": "#000000"},
		"line":       Props{"color": "#000000", "width": 1},
		"showlegend": false,
	}
}

func surfDefaults() Props {
	return Props{
		"type":       "heatmap",
		"colorscale": "Jet",
		"zsmooth":    "best",
	}
}

func bandDefaults() Props {
	return Props{
		"type":       "scatter",
		"mode":       "lines",
		"line":       Props{"width": 0},
		"fillcolor":  DefaultLineColor + "40",
		"hoverinfo":  "skip",
		"showlegend": false,
	}
}

func areaDefaults() Props {
	return Props{
		"type":       "scatter",
		"mode":       "lines",
		"fill":       "toself",
		"line":       Props{"width": 0},
		"fillcolor":  "#80808040",
		"hoverinfo":  "skip",
		"showlegend": false,
	}
}
