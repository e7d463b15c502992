package figure

// Trace is one chart primitive bound to a single subplot's axes. The binding
// is fixed at creation.
type Trace struct {
	kind  Kind
	body  Props
	xAxis string
	yAxis string
}

// Kind returns the chart primitive type.
func (t *Trace) Kind() Kind { return t.kind }

// XAxis returns the bound x-axis id.
func (t *Trace) XAxis() string { return t.xAxis }

// YAxis returns the bound y-axis id.
func (t *Trace) YAxis() string { return t.yAxis }

// Get reads a value from the trace body by dotted path.
func (t *Trace) Get(path string) (any, bool) {
	switch path {
	case "xaxis":
		return t.xAxis, true
	case "yaxis":
		return t.yAxis, true
	}
	return t.body.Get(path)
}

// Map flattens the trace into the engine record. The axis binding is
// written last so style keys cannot rebind it.
func (t *Trace) Map() map[string]any {
	m := t.body.Clone()
	m["xaxis"] = t.xAxis
	m["yaxis"] = t.yAxis
	return m
}

// add builds a trace of kind from data and style, binds it to h and appends
// it to the figure. h must already be resolved.
func (f *Figure) add(kind Kind, data Props, style Props, h *Handle) *Trace {
	st := styleTables[kind]
	body := st.defaults()
	for k, v := range data {
		body[k] = v
	}
	st.apply(body, style)

	t := &Trace{kind: kind, body: body, xAxis: h.xAxis, yAxis: h.yAxis}
	f.traces = append(f.traces, t)
	return t
}

// xy collects the x/y arrays of a trace, omitting a nil x.
func xy(x, y []float64) Props {
	data := Props{"y": y}
	if x != nil {
		data["x"] = x
	}
	return data
}

// Plot adds a line trace.
func (f *Figure) Plot(x, y []float64, style Props, ax *Handle) *Trace {
	return f.add(KindLine, xy(x, y), style, f.resolve(ax))
}

// Scatter adds a marker-only trace.
func (f *Figure) Scatter(x, y []float64, style Props, ax *Handle) *Trace {
	return f.add(KindScatter, xy(x, y), style, f.resolve(ax))
}

// Bar adds a bar trace.
func (f *Figure) Bar(x, y []float64, style Props, ax *Handle) *Trace {
	return f.add(KindBar, xy(x, y), style, f.resolve(ax))
}

// Box adds a box plot of y. A non-nil x groups the samples into boxes.
func (f *Figure) Box(x, y []float64, style Props, ax *Handle) *Trace {
	return f.add(KindBox, xy(x, y), style, f.resolve(ax))
}

// Surf adds a heatmap of z, indexed z[row][col] with rows along y.
// Pass a colour axis id under "coloraxis" to share a scale.
func (f *Figure) Surf(x, y []float64, z [][]float64, style Props, ax *Handle) *Trace {
	data := xy(x, y)
	data["z"] = z
	return f.add(KindSurf, data, style, f.resolve(ax))
}
