package geojson

import (
	"iter"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// GeometryCollection is a GeoJSON GeometryCollection.
//
// Nested collections, single members and members that all share one type are
// legal but reported as warnings. Members must agree on having Z or not.
type GeometryCollection struct {
	Geometries []Geometry
	BBox       BBox
}

// NewGeometryCollection validates geometries as a GeometryCollection.
func NewGeometryCollection(geometries ...Geometry) (*GeometryCollection, error) {
	return Validate[GeometryCollection](map[string]any{
		"type":       string(TypeGeometryCollection),
		"geometries": geometries,
	})
}

func (GeometryCollection) Type() Type           { return TypeGeometryCollection }
func (gc GeometryCollection) BoundingBox() BBox { return gc.BBox }
func (*GeometryCollection) geometry()           {}
func (*GeometryCollection) modelName() string   { return string(TypeGeometryCollection) }

// Len returns the number of member geometries.
func (gc GeometryCollection) Len() int { return len(gc.Geometries) }

// At returns the i-th member geometry.
func (gc GeometryCollection) At(i int) Geometry { return gc.Geometries[i] }

// All yields the member geometries in order.
func (gc GeometryCollection) All() iter.Seq[Geometry] {
	return slices.Values(gc.Geometries)
}

func (gc GeometryCollection) HasZ() bool {
	for _, g := range gc.Geometries {
		if g.HasZ() {
			return true
		}
	}
	return false
}

func (gc GeometryCollection) WKT() string {
	return writeWKT(TypeGeometryCollection, gc.HasZ(), len(gc.Geometries) == 0, func(b *strings.Builder) {
		for i, g := range gc.Geometries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.WKT())
		}
	})
}

// Warnings lists the conditions RFC 7946 discourages but does not forbid.
func (gc GeometryCollection) Warnings() []string {
	var warnings []string
	if len(gc.Geometries) == 1 {
		warnings = append(warnings, "GeometryCollection should not be used for single geometries")
	}

	types := make(map[Type]struct{})
	nested := false
	for _, g := range gc.Geometries {
		types[g.Type()] = struct{}{}
		if g.Type() == TypeGeometryCollection {
			nested = true
		}
	}
	if nested {
		warnings = append(warnings, "GeometryCollection should not be used for nested GeometryCollections")
	}
	if len(types) == 1 {
		warnings = append(warnings, "GeometryCollection should not be used for homogeneous collections")
	}
	return warnings
}

func (gc GeometryCollection) members() object {
	geometries := make([]any, len(gc.Geometries))
	for i, g := range gc.Geometries {
		geometries[i] = geometryValue(g)
	}
	return object{
		{"type", string(TypeGeometryCollection)},
		{"geometries", geometries},
		{"bbox", gc.BBox.value()},
	}
}

func (gc GeometryCollection) GeoInterface() map[string]any { return gc.members().omitAbsent().Map() }
func (gc GeometryCollection) MarshalJSON() ([]byte, error) {
	return gc.members().omitAbsent().MarshalJSON()
}
func (gc GeometryCollection) MarshalYAML() (any, error) {
	return gc.members().omitAbsent().MarshalYAML()
}
func (gc *GeometryCollection) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, gc) }
func (gc *GeometryCollection) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, gc)
}

func (gc *GeometryCollection) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypeGeometryCollection)
	gc.BBox = d.bbox(path.key("bbox"), m["bbox"])

	v, ok := d.required(path, m, "geometries")
	if !ok {
		return
	}

	geometries := path.key("geometries")
	seq, isSeq := asSeq(v)
	if !isSeq {
		d.fail(geometries, KindType, "expected an array of geometries, got %s", describe(v))
		return
	}

	gc.Geometries = make([]Geometry, 0, len(seq))
	for i, e := range seq {
		if g := anyGeometry.decode(d, geometries.index(i), e); g != nil {
			gc.Geometries = append(gc.Geometries, g)
		}
	}

	for _, w := range gc.Warnings() {
		d.warn(geometries, "%s", w)
	}

	withZ := 0
	for _, g := range gc.Geometries {
		if g.HasZ() {
			withZ++
		}
	}
	if withZ > 0 && withZ < len(gc.Geometries) {
		d.fail(geometries, KindStructural, "GeometryCollection cannot have mixed Z dimensionality")
	}
}
