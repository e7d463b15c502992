package backend

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestSpecRoundTrip(t *testing.T) {
	spec := Spec{
		Data:   []map[string]any{{"type": "scatter", "xaxis": "x", "yaxis": "y"}},
		Layout: map[string]any{"hovermode": "closest"},
		Config: Config{Responsive: true, Locale: "zh-CN"},
	}

	data, err := spec.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Config != spec.Config {
		t.Errorf("Config = %+v, want %+v", got.Config, spec.Config)
	}
	if len(got.Data) != 1 || got.Data[0]["type"] != "scatter" {
		t.Errorf("Data = %v", got.Data)
	}
	if got.Layout["hovermode"] != "closest" {
		t.Errorf("Layout = %v", got.Layout)
	}
}

type props map[string]any

func TestEncodeNonFiniteAsNull(t *testing.T) {
	spec := Spec{
		Data: []map[string]any{{
			"type": "scatter",
			"y":    []float64{1, math.NaN(), 3},
			"z":    [][]float64{{math.Inf(1), 2}},
			"line": props{"width": math.Inf(-1), "color": "#1f77b4"},
		}},
		Layout: map[string]any{"yaxis": props{"range": []float64{0, math.NaN()}}},
	}

	data, err := spec.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`"y":[1,null,3]`,
		`"z":[[null,2]]`,
		`"width":null`,
		`"color":"#1f77b4"`,
		`"range":[0,null]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded spec missing %s: %s", want, out)
		}
	}
	if y := spec.Data[0]["y"].([]float64); !math.IsNaN(y[1]) {
		t.Error("Encode modified the caller's data")
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("{")); err == nil {
		t.Error("Decode should fail on truncated JSON")
	}
}

func TestWritePage(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePage(&buf, "lfp", []byte(`{"data":[],"layout":{},"config":{}}`)); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	out := buf.String()
	for _, want := range []string{PlotlyURL, `<div id="lfp">`, `"data":[]`} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
