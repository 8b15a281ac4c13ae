package geojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
)

// decoder walks an untyped document and records every problem it finds.
type decoder struct {
	errs     []*FieldError
	warnings []Warning
}

func (d *decoder) fail(path Path, kind ErrorKind, format string, args ...any) {
	d.errs = append(d.errs, &FieldError{
		Path:    path,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (d *decoder) warn(path Path, format string, args ...any) {
	d.warnings = append(d.warnings, Warning{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (d *decoder) err(model string) error {
	if len(d.errs) == 0 {
		return nil
	}
	return &ValidationError{Model: model, Errors: d.errs}
}

func (d *decoder) object(path Path, v any) (map[string]any, bool) {
	m, ok := asObject(v)
	if !ok {
		d.fail(path, KindType, "expected an object, got %s", describe(v))
	}
	return m, ok
}

func (d *decoder) required(path Path, m map[string]any, key string) (any, bool) {
	v, ok := m[key]
	if !ok {
		d.fail(path.key(key), KindMissing, "field required")
	}
	return v, ok
}

// tag checks the "type" member of a concrete model against want.
func (d *decoder) tag(path Path, m map[string]any, want Type) {
	v, ok := d.required(path, m, "type")
	if !ok {
		return
	}
	if s, _ := v.(string); s != string(want) {
		d.fail(path.key("type"), KindDiscriminator, "input should be %q, got %s", want, quote(v))
	}
}

// dimension tracks the dimensionality of the first position of a geometry.
type dimension struct {
	n    int
	path Path
}

func (dm *dimension) check(d *decoder, path Path, p Position) {
	if dm == nil {
		return
	}
	if dm.n == 0 {
		dm.n, dm.path = p.Dim(), path
		return
	}
	if p.Dim() != dm.n {
		d.fail(path, KindStructural, "position has %d dimensions, %s has %d", p.Dim(), dm.path, dm.n)
	}
}

func (d *decoder) position(path Path, v any, dim *dimension) Position {
	if p, ok := v.(Position); ok {
		v = p.Slice()
	}

	seq, ok := asSeq(v)
	if !ok {
		d.fail(path, KindType, "position must be an array of numbers, got %s", describe(v))
		return Position{}
	}
	if len(seq) != 2 && len(seq) != 3 {
		d.fail(path, KindStructural, "position must have 2 or 3 values, got %d", len(seq))
		return Position{}
	}

	var vals [3]float64
	valid := true
	for i, e := range seq {
		f, isNum := asNumber(e)
		switch {
		case !isNum:
			d.fail(path.index(i), KindType, "expected a number, got %s", describe(e))
			valid = false
		case math.IsNaN(f) || math.IsInf(f, 0):
			d.fail(path.index(i), KindStructural, "expected a finite number, got %v", f)
			valid = false
		}
		vals[i] = f
	}

	p := Position{X: vals[0], Y: vals[1], Z: vals[2], HasZ: len(seq) == 3}
	if valid {
		dim.check(d, path, p)
	}
	return p
}

func (d *decoder) positions(path Path, v any, minLen int, dim *dimension) []Position {
	seq, ok := asSeq(v)
	if !ok {
		d.fail(path, KindType, "expected an array of positions, got %s", describe(v))
		return nil
	}
	if len(seq) < minLen {
		d.fail(path, KindStructural, "expected at least %d positions, got %d", minLen, len(seq))
	}

	out := make([]Position, len(seq))
	for i, e := range seq {
		out[i] = d.position(path.index(i), e, dim)
	}
	return out
}

func (d *decoder) lines(path Path, v any, dim *dimension) [][]Position {
	seq, ok := asSeq(v)
	if !ok {
		d.fail(path, KindType, "expected an array of line strings, got %s", describe(v))
		return nil
	}

	out := make([][]Position, len(seq))
	for i, e := range seq {
		out[i] = d.positions(path.index(i), e, 2, dim)
	}
	return out
}

func (d *decoder) ring(path Path, v any, dim *dimension) LinearRing {
	mark := len(d.errs)
	ring := LinearRing(d.positions(path, v, 4, dim))
	if len(d.errs) == mark && !ring.Closed() {
		d.fail(path, KindStructural, "linear ring must have the same start and end positions")
	}
	return ring
}

func (d *decoder) rings(path Path, v any, minLen int, dim *dimension) []LinearRing {
	seq, ok := asSeq(v)
	if !ok {
		d.fail(path, KindType, "expected an array of linear rings, got %s", describe(v))
		return nil
	}
	if len(seq) < minLen {
		d.fail(path, KindStructural, "expected at least %d linear rings, got %d", minLen, len(seq))
	}

	out := make([]LinearRing, len(seq))
	for i, e := range seq {
		out[i] = d.ring(path.index(i), e, dim)
	}
	return out
}

func (d *decoder) id(path Path, v any) ID {
	switch n := v.(type) {
	case nil:
		return ID{}
	case string:
		return StringID(n)
	case int:
		return IntID(int64(n))
	case int8:
		return IntID(int64(n))
	case int16:
		return IntID(int64(n))
	case int32:
		return IntID(int64(n))
	case int64:
		return IntID(n)
	case uint8:
		return IntID(int64(n))
	case uint16:
		return IntID(int64(n))
	case uint32:
		return IntID(int64(n))
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return IntID(int64(n))
		}
		return FloatID(float64(n))
	case uint64:
		if n <= math.MaxInt64 {
			return IntID(int64(n))
		}
		return FloatID(float64(n))
	case float32, float64:
		if f, _ := asNumber(n); !math.IsNaN(f) && !math.IsInf(f, 0) {
			return FloatID(f)
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return IntID(i)
		}
		if f, err := n.Float64(); err == nil && !math.IsInf(f, 0) {
			return FloatID(f)
		}
	}

	d.fail(path, KindType, "id must be a string or a number, got %s", quote(v))
	return ID{}
}

// asObject accepts string-keyed maps and values exposing a geo-interface.
func asObject(v any) (map[string]any, bool) {
	if isNilValue(v) {
		return nil, false
	}

	switch t := v.(type) {
	case map[string]any:
		return t, true
	case GeoInterfacer:
		m := t.GeoInterface()
		return m, m != nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// asSeq accepts any slice or array except strings and byte slices.
func asSeq(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil, string, []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// describe names the JSON type of v for error messages.
func describe(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := asNumber(v); ok {
		return "number"
	}

	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	}

	if _, ok := asSeq(v); ok {
		return "array"
	}
	if _, ok := asObject(v); ok {
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

// quote renders scalars verbatim and everything else by JSON type.
func quote(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case bool, json.Number:
		return fmt.Sprint(t)
	}
	if f, ok := asNumber(v); ok {
		return fmt.Sprint(f)
	}
	return describe(v)
}

// unmarshalNumbers is json.Unmarshal keeping numbers as json.Number.
func unmarshalNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// decodeJSON decodes data into an untyped tree, keeping numbers as json.Number
// so integers and decimals stay distinguishable.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("geojson: decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("geojson: decode json: unexpected data after top-level value")
	}
	return v, nil
}
