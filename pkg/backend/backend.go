package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Backend kinds understood by the CLI and server.
const (
	KindMemory = "memory"
	KindFile   = "file"
	KindRedis  = "redis"
	KindMongo  = "mongo"
)

// ValidKinds is the set of supported backend kinds.
var ValidKinds = map[string]bool{
	KindMemory: true,
	KindFile:   true,
	KindRedis:  true,
	KindMongo:  true,
}

// Config holds the fixed engine options sent with every render.
type Config struct {
	Responsive bool   `json:"responsive"`
	Locale     string `json:"locale"`
}

// Spec is the structure handed to the plotting engine on render.
type Spec struct {
	Data   []map[string]any `json:"data"`
	Layout map[string]any   `json:"layout"`
	Config Config           `json:"config"`
}

// Encode serializes the spec to compact JSON. NaN and infinite numbers are
// written as null, which the engine draws as a gap.
func (s Spec) Encode() ([]byte, error) {
	out := Spec{
		Data:   make([]map[string]any, len(s.Data)),
		Layout: nullNonFinite(s.Layout).(map[string]any),
		Config: s.Config,
	}
	for i, d := range s.Data {
		out.Data[i], _ = nullNonFinite(d).(map[string]any)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode spec: %w", err)
	}
	return data, nil
}

// nullNonFinite returns a copy of v with every NaN or infinite float replaced
// by nil. Maps come back as map[string]any and slices of numbers as []any,
// whatever their original named type.
func nullNonFinite(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		return nullNonFinite(float64(x))
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = nullNonFinite(e)
		}
		return out
	case string, bool, int, int64:
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = nullNonFinite(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return v
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = nullNonFinite(rv.Index(i).Interface())
		}
		return out
	}
	return v
}

// Decode parses an encoded spec.
func Decode(data []byte) (Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("decode spec: %w", err)
	}
	return s, nil
}

// Backend is a declarative plotting engine keyed by render target.
type Backend interface {
	// NewPlot creates the visual for target from spec.
	NewPlot(ctx context.Context, target string, spec Spec) error

	// React replaces the existing visual's content in place.
	React(ctx context.Context, target string, spec Spec) error

	// Purge destroys the visual. Purging a target without a visual is not an error.
	Purge(ctx context.Context, target string) error

	// Resize asks the visual to recompute its own layout.
	Resize(ctx context.Context, target string) error
}

// Loader reads back the encoded spec of a stored visual.
type Loader interface {
	Load(ctx context.Context, target string) ([]byte, error)
}

// Store is a backend whose visuals can be served to a browser-side engine.
type Store interface {
	Backend
	Loader
}
