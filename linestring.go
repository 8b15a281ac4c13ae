package geojson

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// LineString is a GeoJSON LineString: two or more positions.
type LineString struct {
	Coordinates []Position
	BBox        BBox
}

// NewLineString validates ps as a LineString.
func NewLineString(ps ...Position) (*LineString, error) {
	return Validate[LineString](map[string]any{
		"type":        string(TypeLineString),
		"coordinates": ps,
	})
}

func (LineString) Type() Type           { return TypeLineString }
func (ls LineString) HasZ() bool        { return positionsHaveZ(ls.Coordinates) }
func (ls LineString) BoundingBox() BBox { return ls.BBox }
func (*LineString) geometry()           {}
func (*LineString) modelName() string   { return string(TypeLineString) }

func (ls LineString) WKT() string {
	return writeWKT(TypeLineString, ls.HasZ(), len(ls.Coordinates) == 0, func(b *strings.Builder) {
		writePositions(b, ls.Coordinates)
	})
}

func (ls LineString) members() object {
	return object{
		{"type", string(TypeLineString)},
		{"coordinates", positionsValue(ls.Coordinates)},
		{"bbox", ls.BBox.value()},
	}
}

func (ls LineString) GeoInterface() map[string]any     { return ls.members().omitAbsent().Map() }
func (ls LineString) MarshalJSON() ([]byte, error)     { return ls.members().omitAbsent().MarshalJSON() }
func (ls LineString) MarshalYAML() (any, error)        { return ls.members().omitAbsent().MarshalYAML() }
func (ls *LineString) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, ls) }
func (ls *LineString) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, ls)
}

func (ls *LineString) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypeLineString)
	if v, ok := d.required(path, m, "coordinates"); ok {
		ls.Coordinates = d.positions(path.key("coordinates"), v, 2, &dimension{})
	}
	ls.BBox = d.bbox(path.key("bbox"), m["bbox"])
}

// MultiLineString is a GeoJSON MultiLineString. An empty line list is allowed.
type MultiLineString struct {
	Coordinates [][]Position
	BBox        BBox
}

// NewMultiLineString validates lines as a MultiLineString.
func NewMultiLineString(lines ...[]Position) (*MultiLineString, error) {
	return Validate[MultiLineString](map[string]any{
		"type":        string(TypeMultiLineString),
		"coordinates": lines,
	})
}

func (MultiLineString) Type() Type            { return TypeMultiLineString }
func (mls MultiLineString) HasZ() bool        { return linesHaveZ(mls.Coordinates) }
func (mls MultiLineString) BoundingBox() BBox { return mls.BBox }
func (*MultiLineString) geometry()            {}
func (*MultiLineString) modelName() string    { return string(TypeMultiLineString) }

func (mls MultiLineString) WKT() string {
	return writeWKT(TypeMultiLineString, mls.HasZ(), len(mls.Coordinates) == 0, func(b *strings.Builder) {
		writeLines(b, mls.Coordinates)
	})
}

func (mls MultiLineString) members() object {
	return object{
		{"type", string(TypeMultiLineString)},
		{"coordinates", linesValue(mls.Coordinates)},
		{"bbox", mls.BBox.value()},
	}
}

func (mls MultiLineString) GeoInterface() map[string]any { return mls.members().omitAbsent().Map() }
func (mls MultiLineString) MarshalJSON() ([]byte, error) {
	return mls.members().omitAbsent().MarshalJSON()
}
func (mls MultiLineString) MarshalYAML() (any, error) {
	return mls.members().omitAbsent().MarshalYAML()
}
func (mls *MultiLineString) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, mls) }
func (mls *MultiLineString) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(node, mls)
}

func (mls *MultiLineString) decode(d *decoder, path Path, m map[string]any) {
	d.tag(path, m, TypeMultiLineString)
	if v, ok := d.required(path, m, "coordinates"); ok {
		mls.Coordinates = d.lines(path.key("coordinates"), v, &dimension{})
	}
	mls.BBox = d.bbox(path.key("bbox"), m["bbox"])
}
