package geojson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWKT(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{`{"type":"Point","coordinates":[1.5,2]}`, "POINT (1.5 2)"},
		{`{"type":"Point","coordinates":[1,2,3]}`, "POINT Z (1 2 3)"},
		{`{"type":"MultiPoint","coordinates":[[1,2,3]]}`, "MULTIPOINT Z ((1 2 3))"},
		{`{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}`, "MULTIPOINT ((1 2), (3 4))"},
		{`{"type":"MultiPoint","coordinates":[]}`, "MULTIPOINT EMPTY"},
		{`{"type":"LineString","coordinates":[[0,0],[1,1]]}`, "LINESTRING (0 0, 1 1)"},
		{`{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}`, "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))"},
		{`{"type":"MultiLineString","coordinates":[]}`, "MULTILINESTRING EMPTY"},
		{`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`, "POLYGON ((0 0, 1 0, 1 1, 0 0))"},
		{`{"type":"Polygon","coordinates":[]}`, "POLYGON EMPTY"},
		{`{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]]]}`, "MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)))"},
		{`{"type":"MultiPolygon","coordinates":[]}`, "MULTIPOLYGON EMPTY"},
		{`{"type":"GeometryCollection","geometries":[]}`, "GEOMETRYCOLLECTION EMPTY"},
		{
			`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]},{"type":"LineString","coordinates":[[0,0],[1,1]]}]}`,
			"GEOMETRYCOLLECTION (POINT (1 2), LINESTRING (0 0, 1 1))",
		},
		{
			`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2,3]},{"type":"LineString","coordinates":[[0,0,0],[1,1,1]]}]}`,
			"GEOMETRYCOLLECTION Z (POINT Z (1 2 3), LINESTRING Z (0 0 0, 1 1 1))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			g, err := ParseGeometryJSON([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.WKT())
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1", formatNumber(1))
	assert.Equal(t, "-0.5", formatNumber(-0.5))
	assert.Equal(t, "123456789", formatNumber(123456789))
	assert.Equal(t, "0.000001", formatNumber(1e-6))
}
