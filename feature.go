package geojson

import (
	"encoding/json"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Feature is a GeoJSON Feature, generic over its geometry and properties.
//
// G is Geometry to accept any geometry, a concrete variant such as *Polygon,
// or an interface narrowing Geometry; every variant whose pointer type
// satisfies G is accepted. A nil Geometry is the GeoJSON null geometry.
//
// P is any type properties decode into through encoding/json. A JSON null
// leaves P at its zero value. Numbers inside untyped properties are kept as
// json.Number.
type Feature[G Geometry, P any] struct {
	Geometry   G
	Properties P
	ID         ID
	BBox       BBox
}

// AnyFeature accepts any geometry and free-form properties.
type AnyFeature = Feature[Geometry, map[string]any]

// NewFeature validates a feature without an identifier or bbox. A nil
// geometry makes the feature unlocated.
func NewFeature[G Geometry, P any](geometry G, props P) (*Feature[G, P], error) {
	obj := map[string]any{
		"type":       string(TypeFeature),
		"geometry":   nil,
		"properties": properties{props}.plain(),
	}
	if !isNilValue(geometry) {
		obj["geometry"] = geometry
	}
	return Validate[Feature[G, P]](obj)
}

func (Feature[G, P]) Type() Type          { return TypeFeature }
func (f Feature[G, P]) BoundingBox() BBox { return f.BBox }
func (*Feature[G, P]) modelName() string  { return string(TypeFeature) }
func (f Feature[G, P]) HasGeometry() bool { return !isNilValue(f.Geometry) }

func (f Feature[G, P]) members() object {
	return object{
		{"type", string(TypeFeature)},
		{"geometry", geometryValue(f.Geometry)},
		{"properties", properties{f.Properties}},
		{"id", f.ID.value()},
		{"bbox", f.BBox.value()},
	}
}

func (f Feature[G, P]) GeoInterface() map[string]any { return f.members().omitAbsent().Map() }
func (f Feature[G, P]) MarshalJSON() ([]byte, error) { return f.members().omitAbsent().MarshalJSON() }
func (f Feature[G, P]) MarshalYAML() (any, error)    { return f.members().omitAbsent().MarshalYAML() }

func (f *Feature[G, P]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, f)
}

func (f *Feature[G, P]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, f)
}

func (f *Feature[G, P]) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypeFeature)

	if v, ok := d.required(path, m, "geometry"); ok && !isNilValue(v) {
		g := geometrySetOf[G]().decode(d, path.key("geometry"), v)
		if geom, ok := g.(G); ok {
			f.Geometry = geom
		}
	}

	if v, ok := d.required(path, m, "properties"); ok && v != nil {
		f.Properties = decodeProperties[P](d, path.key("properties"), v)
	}

	f.ID = d.id(path.key("id"), m["id"])
	f.BBox = d.bbox(path.key("bbox"), m["bbox"])
}

// decodeProperties requires a mapping and converts it to P through JSON.
func decodeProperties[P any](d *decoder, path Path, v any) P {
	var p P
	m, ok := asObject(v)
	if !ok {
		d.fail(path, KindType, "properties must be an object or null, got %s", describe(v))
		return p
	}

	raw, err := json.Marshal(m)
	if err == nil {
		err = unmarshalNumbers(raw, &p)
	}
	if err != nil {
		d.fail(path, KindType, "invalid properties: %v", err)
	}
	return p
}

// FeatureCollection is a GeoJSON FeatureCollection of Feature[G, P].
type FeatureCollection[G Geometry, P any] struct {
	Features []Feature[G, P]
	BBox     BBox
}

// AnyFeatureCollection accepts features of any geometry with free-form properties.
type AnyFeatureCollection = FeatureCollection[Geometry, map[string]any]

// NewFeatureCollection validates a collection of the given features.
func NewFeatureCollection[G Geometry, P any](features ...Feature[G, P]) (*FeatureCollection[G, P], error) {
	items := make([]any, len(features))
	for i, f := range features {
		items[i] = f
	}
	return Validate[FeatureCollection[G, P]](map[string]any{
		"type":     string(TypeFeatureCollection),
		"features": items,
	})
}

func (FeatureCollection[G, P]) Type() Type           { return TypeFeatureCollection }
func (fc FeatureCollection[G, P]) BoundingBox() BBox { return fc.BBox }
func (*FeatureCollection[G, P]) modelName() string   { return string(TypeFeatureCollection) }

// Len returns the number of features.
func (fc FeatureCollection[G, P]) Len() int { return len(fc.Features) }

// At returns the i-th feature.
func (fc FeatureCollection[G, P]) At(i int) Feature[G, P] { return fc.Features[i] }

// All yields the features in order.
func (fc FeatureCollection[G, P]) All() iter.Seq[Feature[G, P]] {
	return slices.Values(fc.Features)
}

func (fc FeatureCollection[G, P]) members() object {
	features := make([]any, len(fc.Features))
	for i, f := range fc.Features {
		features[i] = f.members().omitAbsent()
	}
	return object{
		{"type", string(TypeFeatureCollection)},
		{"features", features},
		{"bbox", fc.BBox.value()},
	}
}

func (fc FeatureCollection[G, P]) GeoInterface() map[string]any {
	return fc.members().omitAbsent().Map()
}
func (fc FeatureCollection[G, P]) MarshalJSON() ([]byte, error) {
	return fc.members().omitAbsent().MarshalJSON()
}
func (fc FeatureCollection[G, P]) MarshalYAML() (any, error) {
	return fc.members().omitAbsent().MarshalYAML()
}

func (fc *FeatureCollection[G, P]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, fc)
}

func (fc *FeatureCollection[G, P]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, fc)
}

func (fc *FeatureCollection[G, P]) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypeFeatureCollection)
	fc.BBox = d.bbox(path.key("bbox"), m["bbox"])

	v, ok := d.required(path, m, "features")
	if !ok {
		return
	}

	features := path.key("features")
	seq, isSeq := asSeq(v)
	if !isSeq {
		d.fail(features, KindType, "expected an array of features, got %s", describe(v))
		return
	}

	fc.Features = make([]Feature[G, P], len(seq))
	for i, e := range seq {
		if fm, ok := d.object(features.index(i), e); ok {
			fc.Features[i].decode(d, features.index(i), fm)
		}
	}
}
