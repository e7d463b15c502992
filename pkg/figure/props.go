package figure

import (
	"math"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// Props is a nested configuration tree in the engine's schema.
type Props map[string]any

// asProps returns v as a Props when it is a nested object.
func asProps(v any) (Props, bool) {
	switch m := v.(type) {
	case Props:
		return m, m != nil
	case map[string]any:
		return Props(m), m != nil
	}
	return nil, false
}

// Set assigns v at a dotted path, creating intermediate objects.
func (p Props) Set(path string, v any) {
	keys := strings.Split(path, ".")
	m := p
	for _, k := range keys[:len(keys)-1] {
		m = m.Sub(k)
	}
	m[keys[len(keys)-1]] = v
}

// Get reads the value at a dotted path.
func (p Props) Get(path string) (any, bool) {
	var cur any = p
	for _, k := range strings.Split(path, ".") {
		m, ok := asProps(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Sub returns the object stored at key, creating it when missing or when a
// scalar is in the way.
func (p Props) Sub(key string) Props {
	if m, ok := asProps(p[key]); ok {
		p[key] = m
		return m
	}
	m := Props{}
	p[key] = m
	return m
}

// Merge copies src into p one level deep: object values are merged key by
// key into existing objects, everything else overwrites.
func (p Props) Merge(src Props) {
	for k, v := range src {
		if vm, ok := asProps(v); ok {
			if existing, ok := asProps(p[k]); ok {
				for kk, vv := range vm.Clone() {
					existing[kk] = vv
				}
				continue
			}
			p[k] = vm.Clone()
			continue
		}
		p[k] = v
	}
}

// Clone returns a deep copy of p.
func (p Props) Clone() Props {
	if p == nil {
		return Props{}
	}
	var out Props
	if err := deepcopy.Copy(&out, &p); err != nil || out == nil {
		out = make(Props, len(p))
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}

// toFloat converts numeric values, including those decoded from TOML or
// JSON, to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

// toFloats converts a numeric sequence to []float64.
func toFloats(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case [2]float64:
		return s[:], true
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}

// finite reports whether every value can be encoded by the engine.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
