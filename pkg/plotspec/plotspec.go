// Package plotspec reads figure documents: TOML descriptions of a subplot
// grid, its traces and its axis settings that can be applied to a
// [figure.Figure].
//
// A minimal document:
//
//	title = "Local field potential"
//
//	[grid]
//	rows = 2
//	cols = 1
//	sharex = true
//
//	[[traces]]
//	kind = "line"
//	cell = 0
//	x = [0.0, 0.1, 0.2]
//	y = [1.5, 2.0, 1.2]
//	style = { color = "#1f77b4" }
//
//	[[axes]]
//	cell = 1
//	yscale = "log"
//	ylim = [1.0, 100.0]
//
// Cells are zero-based, row-major indexes into the grid.
package plotspec

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// Trace kinds.
const (
	KindLine     = "line"
	KindScatter  = "scatter"
	KindBar      = "bar"
	KindBox      = "box"
	KindSurf     = "surf"
	KindErrorBar = "errorbar"
	KindArea     = "area"
)

// ValidKinds is the set of supported trace kinds.
var ValidKinds = map[string]bool{
	KindLine:     true,
	KindScatter:  true,
	KindBar:      true,
	KindBox:      true,
	KindSurf:     true,
	KindErrorBar: true,
	KindArea:     true,
}

// Document is a decoded figure document.
type Document struct {
	Title     string         `toml:"title"`
	Language  string         `toml:"language"`
	Grid      Grid           `toml:"grid"`
	Legend    map[string]any `toml:"legend"`
	Layout    map[string]any `toml:"layout"`
	ColorAxes []ColorAxis    `toml:"coloraxes"`
	Axes      []Axes         `toml:"axes"`
	Traces    []Trace        `toml:"traces"`
}

// Grid describes the subplot grid. Zero rows or cols mean 1.
type Grid struct {
	Rows   int  `toml:"rows"`
	Cols   int  `toml:"cols"`
	ShareX bool `toml:"sharex"`
	ShareY bool `toml:"sharey"`
}

// ColorAxis declares a shared colour scale that surf traces refer to by name.
type ColorAxis struct {
	Name       string         `toml:"name"`
	Cell       int            `toml:"cell"`
	Clim       []float64      `toml:"clim"`
	Colorscale string         `toml:"colorscale"`
	Options    map[string]any `toml:"options"`
}

// Axes holds the axis settings of one cell.
type Axes struct {
	Cell        int       `toml:"cell"`
	Subtitle    string    `toml:"subtitle"`
	XLabel      string    `toml:"xlabel"`
	YLabel      string    `toml:"ylabel"`
	XScale      string    `toml:"xscale"`
	YScale      string    `toml:"yscale"`
	XLim        []float64 `toml:"xlim"`
	YLim        []float64 `toml:"ylim"`
	XTicks      []float64 `toml:"xticks"`
	YTicks      []float64 `toml:"yticks"`
	XTickLabels []string  `toml:"xticklabels"`
	YTickLabels []string  `toml:"yticklabels"`
}

// Trace is one chart primitive.
//
// Which fields apply depends on Kind: errorbar uses Error with LineStyle and
// BandStyle, surf uses Z and ColorAxis, area uses Window, the others use X,
// Y and Style.
type Trace struct {
	Kind      string         `toml:"kind"`
	Cell      int            `toml:"cell"`
	X         []float64      `toml:"x"`
	Y         []float64      `toml:"y"`
	Z         [][]float64    `toml:"z"`
	Error     []float64      `toml:"error"`
	Window    []float64      `toml:"window"`
	ColorAxis string         `toml:"coloraxis"`
	Style     map[string]any `toml:"style"`
	LineStyle map[string]any `toml:"line_style"`
	BandStyle map[string]any `toml:"band_style"`
}

// Decode reads and validates a document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidDocument, err, "parse figure document")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errs.New(errs.ErrCodeInvalidDocument, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeFile reads and validates the document at path.
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "figure document %s not found", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open figure document %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Size returns the grid dimensions with defaults applied.
func (g Grid) Size() (rows, cols int) {
	rows, cols = g.Rows, g.Cols
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}
	return rows, cols
}

// Cells returns the number of subplots in the grid.
func (d *Document) Cells() int {
	rows, cols := d.Grid.Size()
	return rows * cols
}
