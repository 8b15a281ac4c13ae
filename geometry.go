package geojson

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Geometry is one of *Point, *MultiPoint, *LineString, *MultiLineString,
// *Polygon, *MultiPolygon or *GeometryCollection. The set is closed.
type Geometry interface {
	// Type returns the geometry's type tag.
	Type() Type
	// HasZ reports whether any position carries an altitude.
	HasZ() bool
	// WKT returns the Well-Known Text representation.
	WKT() string
	// BoundingBox returns the optional bbox member, nil when absent.
	BoundingBox() BBox
	// GeoInterface returns the geometry as a plain mapping.
	GeoInterface() map[string]any

	json.Marshaler

	members() object
	geometry()
}

// GeoInterfacer is implemented by values that expose themselves as a
// GeoJSON-like mapping. Such values are accepted wherever a geometry mapping is.
type GeoInterfacer interface {
	GeoInterface() map[string]any
}

// variant binds a geometry tag to its pointer type and validator.
type variant struct {
	tag    Type
	ptr    reflect.Type
	decode func(d *decoder, path Path, m map[string]any) Geometry
}

type geometryModel[T any] interface {
	model[T]
	Geometry
}

func variantOf[T any, PT geometryModel[T]]() variant {
	var zero T
	return variant{
		tag: PT(&zero).Type(),
		ptr: reflect.TypeFor[PT](),
		decode: func(d *decoder, path Path, m map[string]any) Geometry {
			g := PT(new(T))
			g.decode(d, path, m)
			return g
		},
	}
}

var (
	variants    []variant
	anyGeometry geometrySet
)

func init() {
	variants = []variant{
		variantOf[Point](),
		variantOf[MultiPoint](),
		variantOf[LineString](),
		variantOf[MultiLineString](),
		variantOf[Polygon](),
		variantOf[MultiPolygon](),
		variantOf[GeometryCollection](),
	}
	anyGeometry = geometrySetFor(reflect.TypeFor[Geometry]())
}

// geometrySet is the subset of variants accepted by one geometry slot.
type geometrySet []variant

// geometrySetFor selects every variant assignable to t: the concrete pointer
// type itself, or each variant implementing the interface t.
func geometrySetFor(t reflect.Type) geometrySet {
	var set geometrySet
	for _, v := range variants {
		if v.ptr == t || (t.Kind() == reflect.Interface && v.ptr.Implements(t)) {
			set = append(set, v)
		}
	}
	return set
}

func geometrySetOf[G Geometry]() geometrySet {
	return geometrySetFor(reflect.TypeFor[G]())
}

func (s geometrySet) expected() string {
	tags := make([]string, len(s))
	for i, v := range s {
		tags[i] = fmt.Sprintf("%q", v.tag)
	}
	return strings.Join(tags, ", ")
}

// decode dispatches on the "type" member. It returns nil when no variant applies.
func (s geometrySet) decode(d *decoder, path Path, v any) Geometry {
	m, ok := d.object(path, v)
	if !ok {
		return nil
	}

	raw, ok := m["type"]
	if !ok {
		d.fail(path.key("type"), KindDiscriminator,
			"unable to extract tag using discriminator 'type', expected one of: %s", s.expected())
		return nil
	}

	tag, _ := raw.(string)
	for _, vr := range s {
		if string(vr.tag) == tag {
			return vr.decode(d, path, m)
		}
	}

	d.fail(path.key("type"), KindDiscriminator,
		"input tag %s found using 'type' does not match any of the expected tags: %s", quote(raw), s.expected())
	return nil
}

// ParseGeometry reads the "type" member of obj and validates it as the
// matching geometry. Warnings are logged.
//
// A missing tag yields ErrMissingType and an unrecognized one an
// *UnknownTypeError; problems inside a recognized geometry yield a
// *ValidationError.
func ParseGeometry(obj any) (Geometry, error) {
	g, warnings, err := ParseGeometryReport(obj)
	if err != nil {
		return nil, err
	}
	logWarnings(warnings)
	return g, nil
}

// ParseGeometryReport is ParseGeometry returning warnings instead of logging them.
func ParseGeometryReport(obj any) (Geometry, []Warning, error) {
	m, ok := asObject(obj)
	if !ok {
		return nil, nil, fmt.Errorf("geojson: geometry must be an object, got %s", describe(obj))
	}

	raw, ok := m["type"]
	if !ok {
		return nil, nil, ErrMissingType
	}

	tag, _ := raw.(string)
	for _, v := range variants {
		if string(v.tag) != tag {
			continue
		}

		d := &decoder{}
		g := v.decode(d, nil, m)
		if err := d.err(tag); err != nil {
			return nil, d.warnings, err
		}
		return g, d.warnings, nil
	}

	return nil, nil, &UnknownTypeError{Type: raw}
}

// ParseGeometryJSON is ParseGeometry over an encoded document.
func ParseGeometryJSON(data []byte) (Geometry, error) {
	obj, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return ParseGeometry(obj)
}

func geometryValue(g Geometry) any {
	if isNilValue(g) {
		return nil
	}
	return g.members().omitAbsent()
}
