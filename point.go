package geojson

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Point is a GeoJSON Point: exactly one position.
type Point struct {
	Coordinates Position
	BBox        BBox
}

// NewPoint validates p as a Point.
func NewPoint(p Position) (*Point, error) {
	return Validate[Point](map[string]any{
		"type":        string(TypePoint),
		"coordinates": p,
	})
}

func (Point) Type() Type          { return TypePoint }
func (p Point) HasZ() bool        { return p.Coordinates.HasZ }
func (p Point) BoundingBox() BBox { return p.BBox }
func (*Point) geometry()          {}
func (*Point) modelName() string  { return string(TypePoint) }

func (p Point) WKT() string {
	return writeWKT(TypePoint, p.HasZ(), false, func(b *strings.Builder) {
		writePosition(b, p.Coordinates)
	})
}

func (p Point) members() object {
	return object{
		{"type", string(TypePoint)},
		{"coordinates", p.Coordinates.Slice()},
		{"bbox", p.BBox.value()},
	}
}

func (p Point) GeoInterface() map[string]any     { return p.members().omitAbsent().Map() }
func (p Point) MarshalJSON() ([]byte, error)     { return p.members().omitAbsent().MarshalJSON() }
func (p Point) MarshalYAML() (any, error)        { return p.members().omitAbsent().MarshalYAML() }
func (p *Point) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, p) }
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, p)
}

func (p *Point) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypePoint)
	if v, ok := d.required(path, m, "coordinates"); ok {
		p.Coordinates = d.position(path.key("coordinates"), v, nil)
	}
	p.BBox = d.bbox(path.key("bbox"), m["bbox"])
}

// MultiPoint is a GeoJSON MultiPoint. An empty coordinate list is allowed.
type MultiPoint struct {
	Coordinates []Position
	BBox        BBox
}

// NewMultiPoint validates ps as a MultiPoint.
func NewMultiPoint(ps ...Position) (*MultiPoint, error) {
	return Validate[MultiPoint](map[string]any{
		"type":        string(TypeMultiPoint),
		"coordinates": ps,
	})
}

func (MultiPoint) Type() Type           { return TypeMultiPoint }
func (mp MultiPoint) HasZ() bool        { return positionsHaveZ(mp.Coordinates) }
func (mp MultiPoint) BoundingBox() BBox { return mp.BBox }
func (*MultiPoint) geometry()           {}
func (*MultiPoint) modelName() string   { return string(TypeMultiPoint) }

// WKT renders each point in its own parentheses: MULTIPOINT ((1 2), (3 4)).
func (mp MultiPoint) WKT() string {
	return writeWKT(TypeMultiPoint, mp.HasZ(), len(mp.Coordinates) == 0, func(b *strings.Builder) {
		for i, p := range mp.Coordinates {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			writePosition(b, p)
			b.WriteByte(')')
		}
	})
}

func (mp MultiPoint) members() object {
	return object{
		{"type", string(TypeMultiPoint)},
		{"coordinates", positionsValue(mp.Coordinates)},
		{"bbox", mp.BBox.value()},
	}
}

func (mp MultiPoint) GeoInterface() map[string]any     { return mp.members().omitAbsent().Map() }
func (mp MultiPoint) MarshalJSON() ([]byte, error)     { return mp.members().omitAbsent().MarshalJSON() }
func (mp MultiPoint) MarshalYAML() (any, error)        { return mp.members().omitAbsent().MarshalYAML() }
func (mp *MultiPoint) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, mp) }
func (mp *MultiPoint) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, mp)
}

func (mp *MultiPoint) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypeMultiPoint)
	if v, ok := d.required(path, m, "coordinates"); ok {
		mp.Coordinates = d.positions(path.key("coordinates"), v, 0, &dimension{})
	}
	mp.BBox = d.bbox(path.key("bbox"), m["bbox"])
}
