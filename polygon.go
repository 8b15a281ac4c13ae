package geojson

import (
	"iter"
	"strings"

	"gopkg.in/yaml.v3"
)

// Polygon is a GeoJSON Polygon: an exterior ring followed by any number of
// holes. An empty ring list represents an empty polygon.
type Polygon struct {
	Coordinates []LinearRing
	BBox        BBox
}

// NewPolygon validates rings as a Polygon.
func NewPolygon(rings ...LinearRing) (*Polygon, error) {
	return Validate[Polygon](map[string]any{
		"type":        string(TypePolygon),
		"coordinates": rings,
	})
}

// NewPolygonFromBounds returns the rectangle (xmin, ymin)-(xmax, ymax) as a
// single closed ring wound counterclockwise.
func NewPolygonFromBounds(xmin, ymin, xmax, ymax float64) *Polygon {
	return &Polygon{
		Coordinates: []LinearRing{{
			NewPosition(xmin, ymin),
			NewPosition(xmax, ymin),
			NewPosition(xmax, ymax),
			NewPosition(xmin, ymax),
			NewPosition(xmin, ymin),
		}},
	}
}

func (Polygon) Type() Type          { return TypePolygon }
func (p Polygon) HasZ() bool        { return linesHaveZ(p.Coordinates) }
func (p Polygon) BoundingBox() BBox { return p.BBox }
func (*Polygon) geometry()          {}
func (*Polygon) modelName() string  { return string(TypePolygon) }

// Exterior returns the first ring, or nil for an empty polygon.
func (p Polygon) Exterior() LinearRing {
	if len(p.Coordinates) == 0 {
		return nil
	}
	return p.Coordinates[0]
}

// Interiors yields the holes of the polygon in order.
func (p Polygon) Interiors() iter.Seq[LinearRing] {
	return func(yield func(LinearRing) bool) {
		if len(p.Coordinates) < 2 {
			return
		}
		for _, ring := range p.Coordinates[1:] {
			if !yield(ring) {
				return
			}
		}
	}
}

func (p Polygon) WKT() string {
	return writeWKT(TypePolygon, p.HasZ(), len(p.Coordinates) == 0, func(b *strings.Builder) {
		writeLines(b, p.Coordinates)
	})
}

func (p Polygon) members() object {
	return object{
		{"type", string(TypePolygon)},
		{"coordinates", linesValue(p.Coordinates)},
		{"bbox", p.BBox.value()},
	}
}

func (p Polygon) GeoInterface() map[string]any     { return p.members().omitAbsent().Map() }
func (p Polygon) MarshalJSON() ([]byte, error)     { return p.members().omitAbsent().MarshalJSON() }
func (p Polygon) MarshalYAML() (any, error)        { return p.members().omitAbsent().MarshalYAML() }
func (p *Polygon) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, p) }
func (p *Polygon) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, p)
}

func (p *Polygon) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypePolygon)
	if v, ok := d.required(path, m, "coordinates"); ok {
		p.Coordinates = d.rings(path.key("coordinates"), v, 0, &dimension{})
	}
	p.BBox = d.bbox(path.key("bbox"), m["bbox"])
}

// MultiPolygon is a GeoJSON MultiPolygon. An empty polygon list represents an
// empty geometry; each listed polygon needs at least one ring.
type MultiPolygon struct {
	Coordinates [][]LinearRing
	BBox        BBox
}

// NewMultiPolygon validates polygons as a MultiPolygon.
func NewMultiPolygon(polygons ...[]LinearRing) (*MultiPolygon, error) {
	return Validate[MultiPolygon](map[string]any{
		"type":        string(TypeMultiPolygon),
		"coordinates": polygons,
	})
}

func (MultiPolygon) Type() Type           { return TypeMultiPolygon }
func (*MultiPolygon) geometry()           {}
func (*MultiPolygon) modelName() string   { return string(TypeMultiPolygon) }
func (mp MultiPolygon) BoundingBox() BBox { return mp.BBox }

func (mp MultiPolygon) HasZ() bool {
	for _, rings := range mp.Coordinates {
		if linesHaveZ(rings) {
			return true
		}
	}
	return false
}

// Polygons yields each member polygon.
func (mp MultiPolygon) Polygons() iter.Seq[*Polygon] {
	return func(yield func(*Polygon) bool) {
		for _, rings := range mp.Coordinates {
			if !yield(&Polygon{Coordinates: rings}) {
				return
			}
		}
	}
}

func (mp MultiPolygon) WKT() string {
	return writeWKT(TypeMultiPolygon, mp.HasZ(), len(mp.Coordinates) == 0, func(b *strings.Builder) {
		for i, rings := range mp.Coordinates {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('(')
			writeLines(b, rings)
			b.WriteByte(')')
		}
	})
}

func (mp MultiPolygon) members() object {
	return object{
		{"type", string(TypeMultiPolygon)},
		{"coordinates", polygonsValue(mp.Coordinates)},
		{"bbox", mp.BBox.value()},
	}
}

func (mp MultiPolygon) GeoInterface() map[string]any     { return mp.members().omitAbsent().Map() }
func (mp MultiPolygon) MarshalJSON() ([]byte, error)     { return mp.members().omitAbsent().MarshalJSON() }
func (mp MultiPolygon) MarshalYAML() (any, error)        { return mp.members().omitAbsent().MarshalYAML() }
func (mp *MultiPolygon) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, mp) }
func (mp *MultiPolygon) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, mp)
}

func (mp *MultiPolygon) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypeMultiPolygon)
	v, ok := d.required(path, m, "coordinates")
	if ok {
		coords := path.key("coordinates")
		seq, isSeq := asSeq(v)
		if !isSeq {
			d.fail(coords, KindType, "expected an array of polygons, got %s", describe(v))
		}

		dim := &dimension{}
		mp.Coordinates = make([][]LinearRing, len(seq))
		for i, e := range seq {
			mp.Coordinates[i] = d.rings(coords.index(i), e, 1, dim)
		}
	}
	mp.BBox = d.bbox(path.key("bbox"), m["bbox"])
}
