package figure

import (
	"testing"
)

func floatsOf(t *testing.T, tr *Trace, path string) []float64 {
	t.Helper()
	v, ok := toFloats(get(t, tr, path))
	if !ok {
		t.Fatalf("%s is not numeric: %v", path, get(t, tr, path))
	}
	return v
}

func TestShadedErrorBar(t *testing.T) {
	fig, _ := newTestFigure(t)
	traces := fig.ShadedErrorBar(
		[]float64{0, 1, 2},
		[]float64{1, 2, 3},
		[]float64{0.1, 0.1, 0.1},
		nil, nil, nil,
	)
	if len(traces) != 3 {
		t.Fatalf("got %d traces, want 3", len(traces))
	}
	if n := len(fig.Traces()); n != 3 {
		t.Fatalf("figure holds %d traces, want 3", n)
	}
	center, lower, upper := traces[0], traces[1], traces[2]

	if got := floatsOf(t, center, "y"); !nearAll(got, []float64{1, 2, 3}) {
		t.Errorf("center y = %v", got)
	}
	if got := floatsOf(t, upper, "y"); !nearAll(got, []float64{1.1, 2.1, 3.1}) {
		t.Errorf("upper y = %v, want [1.1 2.1 3.1]", got)
	}
	if got := floatsOf(t, lower, "y"); !nearAll(got, []float64{0.9, 1.9, 2.9}) {
		t.Errorf("lower y = %v, want [0.9 1.9 2.9]", got)
	}
	if got := get(t, lower, "fill"); got != "none" {
		t.Errorf("lower fill = %v, want none", got)
	}
	if got := get(t, upper, "fill"); got != "tonexty" {
		t.Errorf("upper fill = %v, want tonexty", got)
	}
	if got := get(t, lower, "line.width"); got != 0 {
		t.Errorf("lower line width = %v, want 0", got)
	}
}

func TestShadedErrorBarColors(t *testing.T) {
	tests := []struct {
		name      string
		lineStyle Props
		bandStyle Props
		want      string
	}{
		{"default", nil, nil, "#1f77b440"},
		{"from line color", Props{"color": "#FF0000"}, nil, "#ff000040"},
		{"short hex", nil, Props{"color": "#0f0"}, "#00ff0040"},
		{"alpha", nil, Props{"color": "#336699", "alpha": 0.5}, "#33669980"},
		{"alpha only", nil, Props{"alpha": 1.0}, "#1f77b4ff"},
		{"band color wins", Props{"color": "#ff0000"}, Props{"color": "#0000ff"}, "#0000ff40"},
		{"color carries alpha", nil, Props{"color": "#11223344"}, "#11223344"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig, _ := newTestFigure(t)
			traces := fig.ShadedErrorBar([]float64{0}, []float64{1}, []float64{1}, tt.lineStyle, tt.bandStyle, nil)
			for _, band := range traces[1:] {
				if got := get(t, band, "fillcolor"); got != tt.want {
					t.Errorf("fillcolor = %v, want %s", got, tt.want)
				}
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		cur    string
		alpha  float64
		want   string
		wantOK bool
	}{
		{"#AbCdEf40", 0.5, "#AbCdEf80", true},
		{"#abcdef", 0, "#abcdef00", true},
		{"#abcdef", 2, "#abcdefff", true},
		{"rgba(0,0,0,0.5)", 0.2, "rgba(0,0,0,0.5)", false},
		{"#zzzzzz", 0.2, "#zzzzzz", false},
	}
	for _, tt := range tests {
		got, ok := withAlpha(tt.cur, tt.alpha)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("withAlpha(%q, %v) = %q, %v, want %q, %v", tt.cur, tt.alpha, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBandAlphaOnNamedColor(t *testing.T) {
	fig, _ := newTestFigure(t)
	traces := fig.ShadedErrorBar(
		[]float64{0, 1}, []float64{1, 2}, []float64{0.1, 0.1},
		nil, Props{"color": "red", "alpha": 0.3}, nil,
	)
	for _, tr := range traces[1:] {
		if got, _ := tr.Get("fillcolor"); got != "red" {
			t.Errorf("fillcolor = %v, want red", got)
		}
		if got, _ := tr.Get("opacity"); got != 0.3 {
			t.Errorf("opacity = %v, want 0.3", got)
		}
	}
}

func TestAddShadedArea(t *testing.T) {
	t.Run("explicit range", func(t *testing.T) {
		fig, _ := newTestFigure(t)
		if err := fig.SetYlim([2]float64{-5, 5}, nil); err != nil {
			t.Fatalf("SetYlim: %v", err)
		}
		area := fig.AddShadedArea([2]float64{1, 2}, nil, nil)

		if got := floatsOf(t, area, "x"); !nearAll(got, []float64{1, 1, 2, 2, 1}) {
			t.Errorf("x = %v", got)
		}
		if got := floatsOf(t, area, "y"); !nearAll(got, []float64{-5, 5, 5, -5, -5}) {
			t.Errorf("y = %v", got)
		}
		if got := get(t, area, "fill"); got != "toself" {
			t.Errorf("fill = %v, want toself", got)
		}
	})

	t.Run("log range", func(t *testing.T) {
		fig, _ := newTestFigure(t)
		if err := fig.SetScaleType(ScaleLog, AxisY, nil); err != nil {
			t.Fatalf("SetScaleType: %v", err)
		}
		if err := fig.SetYlim([2]float64{1, 1000}, nil); err != nil {
			t.Fatalf("SetYlim: %v", err)
		}
		area := fig.AddShadedArea([2]float64{0, 1}, nil, nil)
		if got := floatsOf(t, area, "y"); !nearAll(got, []float64{1, 1000, 1000, 1, 1}) {
			t.Errorf("y = %v, want data units [1 1000 1000 1 1]", got)
		}
	})

	t.Run("data extent", func(t *testing.T) {
		fig, _ := newTestFigure(t)
		axes, err := fig.Subplots(1, 2, GridOptions{})
		if err != nil {
			t.Fatalf("Subplots: %v", err)
		}
		fig.Plot(nil, []float64{3, -2, 7}, nil, axes[0])
		fig.Plot(nil, []float64{100}, nil, axes[1])

		area := fig.AddShadedArea([2]float64{0, 1}, Props{"color": "#ff0000", "alpha": 0.2}, axes[0])
		if got := floatsOf(t, area, "y"); !nearAll(got, []float64{-2, 7, 7, -2, -2}) {
			t.Errorf("y = %v, want extent of first subplot", got)
		}
		if got := get(t, area, "fillcolor"); got != "#ff000033" {
			t.Errorf("fillcolor = %v, want #ff000033", got)
		}
	})

	t.Run("empty axis", func(t *testing.T) {
		fig, _ := newTestFigure(t)
		area := fig.AddShadedArea([2]float64{0, 1}, nil, nil)
		if got := floatsOf(t, area, "y"); !nearAll(got, []float64{0, 1, 1, 0, 0}) {
			t.Errorf("y = %v, want [0 1 1 0 0]", got)
		}
	})
}
