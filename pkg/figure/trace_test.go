package figure

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/neuroviz/neuroplot/pkg/backend/memory"
)

func newTestFigure(t *testing.T, opts ...Option) (*Figure, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	opts = append([]Option{WithLogger(logger)}, opts...)
	return New("test-chart", memory.New(memory.WithAutoMount()), opts...), &buf
}

func get(t *testing.T, tr *Trace, path string) any {
	t.Helper()
	v, ok := tr.Get(path)
	if !ok {
		t.Fatalf("trace has no %q", path)
	}
	return v
}

func TestStyleRemapping(t *testing.T) {
	fig, _ := newTestFigure(t)
	x, y := []float64{0, 1}, []float64{2, 3}

	tests := []struct {
		name  string
		build func(Props) *Trace
		style Props
		want  map[string]any
	}{
		{
			name:  "line",
			build: func(s Props) *Trace { return fig.Plot(x, y, s, nil) },
			style: Props{"color": "red", "linewidth": 2.0, "linestyle": "dash", "size": 4},
			want:  map[string]any{"line.color": "red", "line.width": 2.0, "line.dash": "dash", "marker.size": 4, "type": "scatter", "mode": "lines"},
		},
		{
			name:  "scatter",
			build: func(s Props) *Trace { return fig.Scatter(x, y, s, nil) },
			style: Props{"color": "blue", "size": 9, "linewidth": 1.0},
			want:  map[string]any{"marker.color": "blue", "marker.size": 9, "marker.line.width": 1.0, "mode": "markers"},
		},
		{
			name:  "bar",
			build: func(s Props) *Trace { return fig.Bar(x, y, s, nil) },
			style: Props{"color": "green", "linewidth": 0.5, "label": "power"},
			want:  map[string]any{"marker.color": "green", "marker.line.width": 0.5, "name": "power", "type": "bar"},
		},
		{
			name:  "box",
			build: func(s Props) *Trace { return fig.Box(nil, y, s, nil) },
			style: Props{"color": "#ff0000"},
			want:  map[string]any{"marker.color": "#ff0000", "line.color": "#ff0000", "type": "box"},
		},
		{
			name:  "surf",
			build: func(s Props) *Trace { return fig.Surf(x, y, [][]float64{{1, 2}, {3, 4}}, s, nil) },
			style: Props{"clim": []float64{-1, 1}, "colormap": "Viridis"},
			want:  map[string]any{"zmin": -1.0, "zmax": 1.0, "colorscale": "Viridis", "zsmooth": "best", "type": "heatmap"},
		},
		{
			name:  "unknown keys pass through",
			build: func(s Props) *Trace { return fig.Plot(x, y, s, nil) },
			style: Props{"hovertemplate": "%{y}", "legendgroup": "a"},
			want:  map[string]any{"hovertemplate": "%{y}", "legendgroup": "a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.build(tt.style)
			for path, want := range tt.want {
				if got := get(t, tr, path); got != want {
					t.Errorf("%s = %v (%T), want %v (%T)", path, got, got, want, want)
				}
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	fig, _ := newTestFigure(t)

	surf := fig.Surf(nil, nil, [][]float64{{1}}, nil, nil)
	if got := get(t, surf, "colorscale"); got != "Jet" {
		t.Errorf("surf colorscale = %v, want Jet", got)
	}
	if got := get(t, surf, "zsmooth"); got != "best" {
		t.Errorf("surf zsmooth = %v, want best", got)
	}

	box := fig.Box(nil, []float64{1, 2, 3}, nil, nil)
	if got := get(t, box, "marker.color"); got != "#000000" {
		t.Errorf("box marker.color = %v, want #000000", got)
	}
	if got := get(t, box, "line.color"); got != "#000000" {
		t.Errorf("box line.color = %v, want #000000", got)
	}
	if _, ok := box.Get("x"); ok {
		t.Error("box without x should not carry an x array")
	}
}

func TestDefaultsAreFresh(t *testing.T) {
	fig, _ := newTestFigure(t)
	a := fig.Plot(nil, []float64{1}, Props{"color": "red"}, nil)
	b := fig.Plot(nil, []float64{1}, nil, nil)

	if _, ok := b.Get("line.color"); ok {
		t.Errorf("style of trace a leaked into b: %v", b.Map())
	}
	if got := get(t, a, "line.color"); got != "red" {
		t.Errorf("a line.color = %v, want red", got)
	}
}

func TestStyleCannotRebindAxes(t *testing.T) {
	fig, _ := newTestFigure(t)
	axes, err := fig.Subplots(1, 2, GridOptions{})
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}
	tr := fig.Plot(nil, []float64{1}, Props{"xaxis": "x9", "yaxis": "y9"}, axes[1])

	m := tr.Map()
	if m["xaxis"] != "x2" || m["yaxis"] != "y2" {
		t.Errorf("binding = %v/%v, want x2/y2", m["xaxis"], m["yaxis"])
	}
}

func TestTraceBindsToHandle(t *testing.T) {
	fig, buf := newTestFigure(t)
	axes, err := fig.Subplots(2, 1, GridOptions{})
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}

	explicit := fig.Plot(nil, []float64{1}, nil, axes[1])
	if explicit.XAxis() != "x2" || explicit.YAxis() != "y2" {
		t.Errorf("explicit binding = %s/%s, want x2/y2", explicit.XAxis(), explicit.YAxis())
	}

	implicit := fig.Plot(nil, []float64{1}, nil, nil)
	if implicit.XAxis() != "x" || implicit.YAxis() != "y" {
		t.Errorf("nil handle binding = %s/%s, want x/y", implicit.XAxis(), implicit.YAxis())
	}
	if buf.Len() != 0 {
		t.Errorf("nil handle should not warn, log = %q", buf.String())
	}
}

func TestUnknownHandleWarns(t *testing.T) {
	fig, buf := newTestFigure(t)
	stale, err := fig.Subplots(1, 2, GridOptions{})
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}
	if _, err := fig.Subplots(2, 2, GridOptions{}); err != nil {
		t.Fatalf("Subplots: %v", err)
	}

	tr := fig.Plot(nil, []float64{1}, nil, stale[1])
	if tr.XAxis() != "x" || tr.YAxis() != "y" {
		t.Errorf("stale handle binding = %s/%s, want active x/y", tr.XAxis(), tr.YAxis())
	}
	if !strings.Contains(buf.String(), "unknown axis handle") {
		t.Errorf("expected warning, log = %q", buf.String())
	}

	other, _ := newTestFigure(t)
	foreign := other.Active()
	buf.Reset()
	fig.SetXlabel("time", foreign)
	if !strings.Contains(buf.String(), "unknown axis handle") {
		t.Errorf("expected warning for handle of another figure, log = %q", buf.String())
	}
}

func TestSetActive(t *testing.T) {
	fig, _ := newTestFigure(t)
	axes, err := fig.Subplots(1, 3, GridOptions{})
	if err != nil {
		t.Fatalf("Subplots: %v", err)
	}
	if fig.Active() != axes[0] {
		t.Fatal("Subplots should activate the first handle")
	}
	if err := fig.SetActive(axes[2]); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if tr := fig.Scatter(nil, []float64{1}, nil, nil); tr.XAxis() != "x3" {
		t.Errorf("binding = %s, want x3", tr.XAxis())
	}

	other, _ := newTestFigure(t)
	if err := fig.SetActive(other.Active()); err == nil {
		t.Error("SetActive with a foreign handle should fail")
	}
}

func TestClearData(t *testing.T) {
	fig, _ := newTestFigure(t)
	fig.Plot(nil, []float64{1, 2}, nil, nil)
	fig.SetTitle("kept")
	fig.ClearData()

	if n := len(fig.Traces()); n != 0 {
		t.Errorf("got %d traces after ClearData, want 0", n)
	}
	if v, _ := fig.Layout().Get("title.text"); v != "kept" {
		t.Errorf("title = %v, want kept", v)
	}
}
