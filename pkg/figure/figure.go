package figure

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/neuroviz/neuroplot/pkg/backend"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// Figure is one rendering session bound to a render target. A figure is
// driven from a single goroutine; only its render state may be touched
// concurrently (see [ResizeDebouncer]).
type Figure struct {
	target  string
	locale  string
	engine  backend.Backend
	logger  *log.Logger
	traces  []*Trace
	layout  Props
	handles []*Handle
	byID    map[string]*Handle
	active  *Handle

	colorAxes []string
	subtitles map[string]Props
	axisPaths []string

	mu    sync.Mutex
	state RenderState
}

// Option configures a Figure.
type Option func(*Figure)

// WithLanguage sets the interface language. "zh" selects Chinese number and
// date formatting; anything else selects English.
func WithLanguage(lang string) Option {
	return func(f *Figure) { f.locale = LocaleFor(lang) }
}

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(l *log.Logger) Option {
	return func(f *Figure) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates an Empty figure for target with a single full-canvas subplot.
func New(target string, engine backend.Backend, opts ...Option) *Figure {
	f := &Figure{
		target: target,
		locale: LocaleEnglish,
		engine: engine,
		logger: log.Default(),
		layout: Props{},
	}
	for _, opt := range opts {
		opt(f)
	}
	// A 1x1 grid cannot fail.
	_, _ = f.Subplots(1, 1, GridOptions{})
	return f
}

// Target returns the render target.
func (f *Figure) Target() string { return f.target }

// Locale returns the engine locale tag.
func (f *Figure) Locale() string { return f.locale }

// Subplots replaces the subplot grid and returns one handle per cell in
// row-major order. Axis entries of the previous grid and its subtitles are
// dropped, handles from earlier calls become unknown and the first handle
// becomes active. Traces are kept.
func (f *Figure) Subplots(rows, cols int, opts GridOptions) ([]*Handle, error) {
	handles, err := ComputeGrid(rows, cols, opts)
	if err != nil {
		return nil, err
	}

	for _, p := range f.axisPaths {
		delete(f.layout, p)
	}
	f.axisPaths = f.axisPaths[:0]
	f.subtitles = make(map[string]Props)
	f.byID = make(map[string]*Handle, len(handles))

	seen := make(map[string]bool, 2*len(handles))
	for _, h := range handles {
		f.byID[h.id] = h
		xp, yp := h.XPath(), h.YPath()
		x, y := f.layout.Sub(xp), f.layout.Sub(yp)
		firstY := !seen[yp]
		for _, p := range []string{xp, yp} {
			if !seen[p] {
				seen[p] = true
				f.axisPaths = append(f.axisPaths, p)
			}
		}
		if !h.gridded {
			continue
		}
		// A shared axis spans all of its cells. Shared x axes end up
		// anchored to the bottom row, shared y axes to the first column.
		x["domain"] = union(x["domain"], h.xDomain)
		x["anchor"] = h.yAxis
		y["domain"] = union(y["domain"], h.yDomain)
		if firstY {
			y["anchor"] = h.xAxis
		}
	}

	f.handles = handles
	f.active = handles[0]
	return append([]*Handle(nil), handles...), nil
}

// union widens an existing domain entry to cover d.
func union(existing any, d Domain) []float64 {
	r, ok := toFloats(existing)
	if !ok || len(r) != 2 {
		return []float64{d[0], d[1]}
	}
	return []float64{math.Min(r[0], d[0]), math.Max(r[1], d[1])}
}

// Handles returns the current grid in row-major order.
func (f *Figure) Handles() []*Handle {
	return append([]*Handle(nil), f.handles...)
}

// Active returns the handle used when none is given.
func (f *Figure) Active() *Handle { return f.active }

// SetActive makes h the active handle. h must belong to the current grid.
func (f *Figure) SetActive(h *Handle) error {
	if h == nil {
		return errs.New(errs.ErrCodeInvalidAxis, "nil axis handle")
	}
	known, ok := f.byID[h.id]
	if !ok {
		return errs.New(errs.ErrCodeInvalidAxis, "axis handle %s is not part of this figure", h.id)
	}
	f.active = known
	return nil
}

// resolve maps a caller-supplied handle to a known one. Nil selects the
// active handle silently; an unknown handle selects it with a warning.
func (f *Figure) resolve(h *Handle) *Handle {
	if h == nil {
		return f.active
	}
	if known, ok := f.byID[h.id]; ok {
		return known
	}
	f.logger.Warn("unknown axis handle, using active axis", "target", f.target, "handle", h.id, "active", f.active)
	return f.active
}

// Traces returns the accumulated traces in draw order.
func (f *Figure) Traces() []*Trace {
	return append([]*Trace(nil), f.traces...)
}

// ClearData removes all traces. Layout, handles and render state are kept.
func (f *Figure) ClearData() {
	f.traces = nil
}

// Layout returns a copy of the layout as it would be sent on render.
func (f *Figure) Layout() Props {
	return f.composeLayout()
}

func (f *Figure) composeLayout() Props {
	layout := f.layout.Clone()
	if len(f.subtitles) == 0 {
		return layout
	}
	var notes []any
	if existing, ok := layout["annotations"].([]any); ok {
		notes = existing
	}
	for _, h := range f.handles {
		if s, ok := f.subtitles[h.id]; ok {
			notes = append(notes, s.Clone())
		}
	}
	layout["annotations"] = notes
	return layout
}

// Spec builds the structure handed to the engine on render.
func (f *Figure) Spec() backend.Spec {
	data := make([]map[string]any, len(f.traces))
	for i, t := range f.traces {
		data[i] = t.Map()
	}
	return backend.Spec{
		Data:   data,
		Layout: f.composeLayout(),
		Config: backend.Config{Responsive: true, Locale: f.locale},
	}
}
