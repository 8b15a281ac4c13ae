package lint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featureCollection = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "id": 1, "properties": {"name": "a"},
		 "geometry": {"type": "Point", "coordinates": [1.23456789, 2.98123]}},
		{"type": "Feature", "properties": null, "geometry": null},
		{"type": "Feature", "properties": {},
		 "geometry": {"type": "GeometryCollection", "geometries": [
			{"type": "Point", "coordinates": [0, 0]},
			{"type": "LineString", "coordinates": [[0, 0], [1, 1]]}
		 ]}}
	]
}`

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("b.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("b.geojson"))
	assert.Equal(t, FormatJSON, FormatFromPath("-"))
}

func TestParse(t *testing.T) {
	obj, err := Decode([]byte(featureCollection), FormatJSON)
	require.NoError(t, err)

	doc, err := Parse(obj)
	require.NoError(t, err)
	assert.Equal(t, geojson.TypeFeatureCollection, doc.Type)
	assert.Equal(t, []geojson.Type{
		geojson.TypeFeatureCollection,
		geojson.TypeFeature, geojson.TypePoint,
		geojson.TypeFeature,
		geojson.TypeFeature, geojson.TypeGeometryCollection, geojson.TypePoint, geojson.TypeLineString,
	}, doc.Types())
	assert.Equal(t, []string{
		"POINT (1.23456789 2.98123)",
		"GEOMETRYCOLLECTION (POINT (0 0), LINESTRING (0 0, 1 1))",
	}, doc.WKT())
}

func TestParseYAMLGeometry(t *testing.T) {
	obj, err := Decode([]byte("type: LineString\ncoordinates: [[0, 0], [3, 4]]\n"), FormatYAML)
	require.NoError(t, err)

	doc, err := Parse(obj)
	require.NoError(t, err)
	assert.Equal(t, geojson.TypeLineString, doc.Type)
	assert.Equal(t, []string{"LINESTRING (0 0, 3 4)"}, doc.WKT())
}

func TestInspect(t *testing.T) {
	rep := Inspect([]byte(featureCollection), FormatJSON, nil)
	assert.True(t, rep.Valid)
	assert.Equal(t, "FeatureCollection", rep.Type)
	assert.Empty(t, rep.Errors)
	assert.Empty(t, rep.Warnings)
	assert.NotNil(t, rep.Document)
	assert.Contains(t, rep.WKT, "POINT (1.23456789 2.98123)")
}

func TestInspectErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind string
		path string
	}{
		{"syntax", `{"type":`, "syntax", ""},
		{"unknown type", `{"type":"NotAType"}`, "discriminator", "type"},
		{"missing type", `{"coordinates":[0,0]}`, "missing", "type"},
		{"not an object", `[1,2]`, "type", ""},
		{"structural", `{"type":"LineString","coordinates":[[0,0]]}`, "structural", "coordinates"},
		{"feature id", `{"type":"Feature","geometry":null,"properties":null,"id":true}`, "type", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Inspect([]byte(tt.in), FormatJSON, config.Default())
			assert.False(t, rep.Valid)
			require.Len(t, rep.Errors, 1)
			assert.Equal(t, tt.kind, rep.Errors[0].Kind)
			assert.Equal(t, tt.path, rep.Errors[0].Path)
			assert.Nil(t, rep.Document)
			assert.Empty(t, rep.WKT)
		})
	}
}

func TestInspectPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.AllowedTypes = []string{"FeatureCollection", "Feature", "Point", "LineString"}

	rep := Inspect([]byte(featureCollection), FormatJSON, cfg)
	assert.False(t, rep.Valid)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "policy", rep.Errors[0].Kind)
	assert.Contains(t, rep.Errors[0].Message, "GeometryCollection")
}

func TestInspectStrict(t *testing.T) {
	doc := []byte(`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[0,0]}]}`)

	rep := Inspect(doc, FormatJSON, config.Default())
	assert.True(t, rep.Valid)
	assert.Len(t, rep.Warnings, 2)

	cfg := config.Default()
	cfg.Strict = true
	rep = Inspect(doc, FormatJSON, cfg)
	assert.False(t, rep.Valid)
	assert.Len(t, rep.Warnings, 2)
	require.Len(t, rep.Errors, 1)
	assert.Contains(t, rep.Errors[0].Message, "strict")
}

func TestLintFiles(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.geojson")
	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(featureCollection), 0o600))
	require.NoError(t, os.WriteFile(invalid, []byte("type: Polygon\ncoordinates: [[[0, 0], [1, 0], [1, 1], [0, 1]]]\n"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/point.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"type":"Point","coordinates":[30,10]}`))
	}))
	defer srv.Close()

	sources := []string{
		valid,
		invalid,
		filepath.Join(dir, "missing.json"),
		srv.URL + "/point.json",
		srv.URL + "/gone.json",
	}

	cfg := config.Default()
	cfg.Concurrency = 3
	reports := LintFiles(context.Background(), srv.Client(), sources, cfg)
	require.Len(t, reports, len(sources))

	for i, rep := range reports {
		assert.Equal(t, sources[i], rep.Source)
	}

	assert.True(t, reports[0].Valid)
	assert.False(t, reports[1].Valid)
	assert.Equal(t, "coordinates[0]", reports[1].Errors[0].Path)
	assert.Equal(t, "io", reports[2].Errors[0].Kind)
	assert.True(t, reports[3].Valid)
	assert.Equal(t, "POINT (30 10)", reports[3].WKT)
	assert.Contains(t, reports[4].Errors[0].Message, "status 404")
}

func TestLintFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports := LintFiles(ctx, http.DefaultClient, []string{"a.json", "b.json"}, config.Default())
	require.Len(t, reports, 2)
	for _, rep := range reports {
		assert.False(t, rep.Valid)
		assert.Equal(t, "io", rep.Errors[0].Kind)
	}
}
