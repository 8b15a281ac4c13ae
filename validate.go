package geojson

import (
	"reflect"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// model is satisfied by pointers to every GeoJSON model in this package.
type model[T any] interface {
	*T
	decode(d *decoder, path Path, m map[string]any)
	modelName() string
}

// Validate builds a T from a mapping: a decoded JSON or YAML document, a Go
// map with string keys, or any value exposing a geo-interface. All problems
// are reported together in a *ValidationError. Warnings are logged.
//
//	p, err := geojson.Validate[geojson.Polygon](obj)
//	f, err := geojson.Validate[geojson.Feature[*geojson.Point, Props]](obj)
func Validate[T any, PT model[T]](obj any) (*T, error) {
	v, warnings, err := ValidateReport[T, PT](obj)
	if err != nil {
		return nil, err
	}
	logWarnings(warnings)
	return v, nil
}

// ValidateReport is Validate returning warnings instead of logging them.
func ValidateReport[T any, PT model[T]](obj any) (*T, []Warning, error) {
	var v T
	d := &decoder{}
	if m, ok := d.object(nil, obj); ok {
		PT(&v).decode(d, nil, m)
	}
	if err := d.err(PT(&v).modelName()); err != nil {
		return nil, d.warnings, err
	}
	return &v, d.warnings, nil
}

// ValidateJSON is Validate over an encoded document.
func ValidateJSON[T any, PT model[T]](data []byte) (*T, error) {
	obj, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Validate[T, PT](obj)
}

func unmarshalJSON[T any, PT model[T]](data []byte, dst PT) error {
	v, err := ValidateJSON[T, PT](data)
	if err != nil {
		return err
	}
	*dst = *v
	return nil
}

func unmarshalYAML[T any, PT model[T]](node *yaml.Node, dst PT) error {
	var obj any
	if err := node.Decode(&obj); err != nil {
		return err
	}

	v, err := Validate[T, PT](obj)
	if err != nil {
		return err
	}
	*dst = *v
	return nil
}

func logWarnings(warnings []Warning) {
	for _, w := range warnings {
		log.Warn().
			Str("path", w.Path.String()).
			Msg(w.Message)
	}
}

// Equal reports whether a and b have the same geo-interface mapping.
func Equal(a, b GeoInterfacer) bool {
	if isNilValue(a) || isNilValue(b) {
		return isNilValue(a) == isNilValue(b)
	}
	return reflect.DeepEqual(a.GeoInterface(), b.GeoInterface())
}
