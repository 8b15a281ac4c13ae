package geojson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want Type
	}{
		{"point", map[string]any{"type": "Point", "coordinates": []any{1.0, 2.0}}, TypePoint},
		{"multipoint", map[string]any{"type": "MultiPoint", "coordinates": []any{}}, TypeMultiPoint},
		{"linestring", map[string]any{"type": "LineString", "coordinates": []any{[]any{0.0, 0.0}, []any{1.0, 1.0}}}, TypeLineString},
		{"multilinestring", map[string]any{"type": "MultiLineString", "coordinates": []any{}}, TypeMultiLineString},
		{"polygon", map[string]any{"type": "Polygon", "coordinates": []any{square(0, 0, 1)}}, TypePolygon},
		{"multipolygon", map[string]any{"type": "MultiPolygon", "coordinates": []any{[]any{square(0, 0, 1)}}}, TypeMultiPolygon},
		{"collection", map[string]any{"type": "GeometryCollection", "geometries": []any{}}, TypeGeometryCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGeometry(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Type())
		})
	}
}

func TestParseGeometryUnknownType(t *testing.T) {
	_, err := ParseGeometry(map[string]any{"type": "NotAType", "coordinates": []any{0.0, 0.0}})

	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NotAType", unknown.Type)
	assert.EqualError(t, err, "geojson: unknown type: NotAType")

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestParseGeometryMissingType(t *testing.T) {
	_, err := ParseGeometry(map[string]any{"coordinates": []any{0.0, 0.0}})
	assert.ErrorIs(t, err, ErrMissingType)

	_, err = ParseGeometry([]any{1.0, 2.0})
	assert.Error(t, err)
}

func TestValidateWrongTag(t *testing.T) {
	_, err := Validate[Point](map[string]any{"type": "NotAType", "coordinates": []any{0.0, 0.0}})
	errs := fieldErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, KindDiscriminator, errs[0].Kind)
	assert.Equal(t, "type", errs[0].Path.String())
	assert.Contains(t, errs[0].Message, `"Point"`)

	var unknown *UnknownTypeError
	assert.False(t, errors.As(err, &unknown))
}

func TestValidateMissingMembers(t *testing.T) {
	_, err := Validate[LineString](map[string]any{})
	errs := fieldErrors(t, err)
	require.Len(t, errs, 2)
	for _, fe := range errs {
		assert.Equal(t, KindMissing, fe.Kind)
	}
	assert.Equal(t, "type", errs[0].Path.String())
	assert.Equal(t, "coordinates", errs[1].Path.String())
}

func TestPointArity(t *testing.T) {
	_, err := Validate[Point](map[string]any{
		"type":        "Point",
		"coordinates": []any{[]any{0.0, 0.0}},
	})
	errs := fieldErrors(t, err)
	assert.Equal(t, "coordinates", errs[0].Path.String())
}

func TestLineStringMinimum(t *testing.T) {
	_, err := NewLineString(NewPosition(0, 0))
	errs := fieldErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, KindStructural, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "at least 2")
}

func TestMultiLineStringMembers(t *testing.T) {
	mls, err := NewMultiLineString(
		[]Position{NewPosition(0, 0), NewPosition(1, 1)},
		[]Position{NewPosition(2, 2), NewPosition(3, 3)},
	)
	require.NoError(t, err)
	assert.Len(t, mls.Coordinates, 2)

	_, err = NewMultiLineString([]Position{NewPosition(0, 0)})
	errs := fieldErrors(t, err)
	assert.Equal(t, "coordinates[0]", errs[0].Path.String())
}

func TestMixedDimensionsRejected(t *testing.T) {
	_, err := Validate[LineString](map[string]any{
		"type":        "LineString",
		"coordinates": []any{[]any{0.0, 0.0}, []any{1.0, 1.0, 1.0}},
	})
	errs := fieldErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, KindStructural, errs[0].Kind)
	assert.Equal(t, "coordinates[1]", errs[0].Path.String())

	_, err = NewMultiPoint(NewPositionZ(0, 0, 0), NewPosition(1, 1))
	assert.Error(t, err)
}

func TestPolygonRings(t *testing.T) {
	p, err := Validate[Polygon](map[string]any{
		"type":        "Polygon",
		"coordinates": []any{square(0, 0, 10), square(1, 1, 2), square(4, 4, 2)},
	})
	require.NoError(t, err)
	assert.Len(t, p.Exterior(), 5)

	holes := 0
	for ring := range p.Interiors() {
		assert.True(t, ring.Closed())
		holes++
	}
	assert.Equal(t, 2, holes)
}

func TestPolygonRingNotClosed(t *testing.T) {
	_, err := Validate[Polygon](map[string]any{
		"type": "Polygon",
		"coordinates": []any{[]any{
			[]any{0.0, 0.0}, []any{1.0, 0.0}, []any{1.0, 1.0}, []any{0.0, 1.0},
		}},
	})
	errs := fieldErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "coordinates[0]", errs[0].Path.String())
	assert.Contains(t, errs[0].Message, "same start and end")
}

func TestPolygonRingTooShort(t *testing.T) {
	_, err := NewPolygon(LinearRing{NewPosition(0, 0), NewPosition(1, 0), NewPosition(0, 0)})
	errs := fieldErrors(t, err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "at least 4")
}

func TestPolygonEmpty(t *testing.T) {
	p, err := NewPolygon()
	require.NoError(t, err)
	assert.Nil(t, p.Exterior())
	assert.Equal(t, "POLYGON EMPTY", p.WKT())

	for range p.Interiors() {
		t.Fatal("empty polygon has no interiors")
	}
}

func TestPolygonFromBounds(t *testing.T) {
	p := NewPolygonFromBounds(-1, -2, 3, 4)
	ring := p.Exterior()
	require.Len(t, ring, 5)
	assert.True(t, ring.Closed())

	// Shoelace sum is positive for a counterclockwise ring.
	var area float64
	for i := range len(ring) - 1 {
		area += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	assert.Positive(t, area)

	_, err := Validate[Polygon](p.GeoInterface())
	require.NoError(t, err)
}

func TestMultiPolygon(t *testing.T) {
	mp, err := Validate[MultiPolygon](map[string]any{
		"type":        "MultiPolygon",
		"coordinates": []any{[]any{square(0, 0, 1)}, []any{square(5, 5, 1)}},
	})
	require.NoError(t, err)

	n := 0
	for p := range mp.Polygons() {
		assert.Len(t, p.Exterior(), 5)
		n++
	}
	assert.Equal(t, 2, n)

	_, err = Validate[MultiPolygon](map[string]any{
		"type":        "MultiPolygon",
		"coordinates": []any{[]any{}},
	})
	errs := fieldErrors(t, err)
	assert.Equal(t, "coordinates[0]", errs[0].Path.String())
}

func TestAllErrorsCollected(t *testing.T) {
	_, err := Validate[MultiPolygon](map[string]any{
		"type": "MultiPolygon",
		"coordinates": []any{
			[]any{[]any{[]any{0.0, 0.0}, []any{1.0, 0.0}, []any{1.0, 1.0}, []any{0.0, 1.0}}},
			[]any{square(0, 0, 1)},
		},
		"bbox": []any{0.0, 1.0, 1.0, 0.0},
	})
	errs := fieldErrors(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "coordinates[0][0]", errs[0].Path.String())
	assert.Equal(t, KindBBox, errs[1].Kind)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(KindBBox))
	assert.False(t, verr.Has(KindMissing))
	assert.Contains(t, err.Error(), "2 validation errors for MultiPolygon")

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindStructural, fe.Kind)
}

func TestGeometryJSON(t *testing.T) {
	p, err := NewPoint(NewPosition(0, 0))
	require.NoError(t, err)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Point","coordinates":[0,0]}`, string(out))

	p.BBox = NewBBox(0, 0, 0, 0)
	out, err = json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Point","coordinates":[0,0],"bbox":[0,0,0,0]}`, string(out))
}

func TestGeometryUnmarshalJSON(t *testing.T) {
	var ls LineString
	require.NoError(t, json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[0,0],[1,2]]}`), &ls))
	assert.Equal(t, []Position{NewPosition(0, 0), NewPosition(1, 2)}, ls.Coordinates)

	err := json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[0,0]]}`), &ls)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestParseGeometryJSON(t *testing.T) {
	g, err := ParseGeometryJSON([]byte(`{"type":"MultiPoint","coordinates":[[1,2,3]]}`))
	require.NoError(t, err)
	assert.True(t, g.HasZ())

	_, err = ParseGeometryJSON([]byte(`{"type":"Point"} trailing`))
	assert.Error(t, err)
}

func TestGeometryRoundTrip(t *testing.T) {
	docs := []string{
		`{"type":"Point","coordinates":[1.5,-2.25,10]}`,
		`{"type":"MultiPoint","coordinates":[[1,2],[3,4]],"bbox":[1,2,3,4]}`,
		`{"type":"LineString","coordinates":[[0,0],[1,1],[2,0]]}`,
		`{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}`,
		`{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,4],[0,0]],[[1,1],[2,1],[2,2],[1,1]]]}`,
		`{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]]]}`,
		`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[0,0]},{"type":"LineString","coordinates":[[0,0],[1,1]]}]}`,
	}

	for _, doc := range docs {
		g, err := ParseGeometryJSON([]byte(doc))
		require.NoError(t, err, doc)

		out, err := json.Marshal(g)
		require.NoError(t, err)
		assert.JSONEq(t, doc, string(out))

		again, err := ParseGeometry(g.GeoInterface())
		require.NoError(t, err)
		assert.True(t, Equal(g, again), doc)
	}
}

func TestGeoInterface(t *testing.T) {
	p, err := NewPoint(NewPosition(1, 2))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":        "Point",
		"coordinates": []float64{1, 2},
	}, p.GeoInterface())

	// Values exposing a geo-interface are accepted as input.
	q, err := Validate[Point](p)
	require.NoError(t, err)
	assert.Equal(t, p, q)
}

func TestEqual(t *testing.T) {
	a, err := NewPoint(NewPosition(1, 2))
	require.NoError(t, err)
	b, err := NewPoint(NewPosition(1, 2))
	require.NoError(t, err)
	c, err := NewPoint(NewPosition(1, 3))
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))
}
