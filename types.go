package geojson

import (
	"encoding/json"
	"math"
	"strconv"
)

// Type is the value of the "type" member of a GeoJSON object.
type Type string

// GeoJSON object types.
const (
	TypePoint              Type = "Point"
	TypeMultiPoint         Type = "MultiPoint"
	TypeLineString         Type = "LineString"
	TypeMultiLineString    Type = "MultiLineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
)

// GeometryTypes returns the seven geometry type names in RFC 7946 order.
func GeometryTypes() []Type {
	return []Type{
		TypePoint,
		TypeMultiPoint,
		TypeLineString,
		TypeMultiLineString,
		TypePolygon,
		TypeMultiPolygon,
		TypeGeometryCollection,
	}
}

// IsGeometryType reports whether name is one of the geometry type names.
// The comparison is case-sensitive.
func IsGeometryType(name string) bool {
	for _, t := range GeometryTypes() {
		if string(t) == name {
			return true
		}
	}
	return false
}

// Position is a single coordinate tuple: longitude, latitude and an optional
// altitude. No range checks are applied to any axis.
type Position struct {
	X, Y, Z float64
	HasZ    bool
}

// NewPosition returns a 2D position.
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// NewPositionZ returns a 3D position.
func NewPositionZ(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z, HasZ: true}
}

// Dim returns 2 or 3.
func (p Position) Dim() int {
	if p.HasZ {
		return 3
	}
	return 2
}

// Slice returns the position as a 2 or 3 element slice.
func (p Position) Slice() []float64 {
	if p.HasZ {
		return []float64{p.X, p.Y, p.Z}
	}
	return []float64{p.X, p.Y}
}

// MarshalJSON encodes the position as a JSON array.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Slice())
}

// UnmarshalJSON decodes a JSON array of 2 or 3 numbers.
func (p *Position) UnmarshalJSON(data []byte) error {
	obj, err := decodeJSON(data)
	if err != nil {
		return err
	}

	d := &decoder{}
	pos := d.position(nil, obj, nil)
	if err := d.err("Position"); err != nil {
		return err
	}

	*p = pos
	return nil
}

// LinearRing is a closed sequence of at least four positions.
type LinearRing []Position

// Closed reports whether the first and last positions are equal.
func (r LinearRing) Closed() bool {
	return len(r) > 0 && r[0] == r[len(r)-1]
}

type idKind uint8

const (
	idNone idKind = iota
	idString
	idInt
	idFloat
)

// ID is the optional identifier of a Feature: a string or a number.
// Integral JSON numbers are kept as int64.
// The zero value means the feature has no identifier.
type ID struct {
	str  string
	num  int64
	flt  float64
	kind idKind
}

// StringID returns a string identifier.
func StringID(s string) ID {
	return ID{str: s, kind: idString}
}

// IntID returns an integer identifier.
func IntID(n int64) ID {
	return ID{num: n, kind: idInt}
}

// FloatID returns a numeric identifier. Integral values are stored as
// integers so 7 and 7.0 are the same identifier.
func FloatID(f float64) ID {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return IntID(int64(f))
	}
	return ID{flt: f, kind: idFloat}
}

// IsSet reports whether the identifier is present.
func (id ID) IsSet() bool { return id.kind != idNone }

// IsNumber reports whether the identifier is numeric.
func (id ID) IsNumber() bool { return id.kind == idInt || id.kind == idFloat }

// Int returns the identifier if it is an integer.
func (id ID) Int() (int64, bool) {
	return id.num, id.kind == idInt
}

// Float returns the numeric identifier as a float64.
func (id ID) Float() (float64, bool) {
	switch id.kind {
	case idInt:
		return float64(id.num), true
	case idFloat:
		return id.flt, true
	}
	return 0, false
}

// String returns the identifier in text form, or "" when absent.
func (id ID) String() string {
	switch id.kind {
	case idString:
		return id.str
	case idInt:
		return strconv.FormatInt(id.num, 10)
	case idFloat:
		return strconv.FormatFloat(id.flt, 'f', -1, 64)
	}
	return ""
}

// value returns the identifier as a string, an int64, a float64 or an
// untyped nil.
func (id ID) value() any {
	switch id.kind {
	case idString:
		return id.str
	case idInt:
		return id.num
	case idFloat:
		return id.flt
	}
	return nil
}

// MarshalJSON encodes the identifier as a JSON string, number or null.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value())
}
