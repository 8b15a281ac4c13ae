// Package lint detects, validates and renders GeoJSON documents for the
// command line tools and the HTTP service.
package lint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/woozymasta/geojson"

	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

// Supported formats. WKT is output only.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatWKT  Format = "wkt"
)

// FormatFromPath guesses the input format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses data into an untyped document. JSON numbers are kept as
// json.Number so integer identifiers stay exact.
func Decode(data []byte, format Format) (any, error) {
	var obj any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}

	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&obj); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("decode json: unexpected data after top-level value")
		}

	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}

	return obj, nil
}

// Model is any validated GeoJSON value. Every model also implements
// yaml.Marshaler.
type Model interface {
	geojson.GeoInterfacer
	json.Marshaler
}

// Document is a validated top-level GeoJSON object.
type Document struct {
	Type     geojson.Type
	Value    Model
	Warnings []geojson.Warning
}

// Parse dispatches on the "type" member and validates obj as a Feature,
// FeatureCollection or any geometry.
func Parse(obj any) (*Document, error) {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil, errors.New("document must be an object")
	}

	switch m["type"] {
	case string(geojson.TypeFeature):
		f, warnings, err := geojson.ValidateReport[geojson.AnyFeature](m)
		if err != nil {
			return nil, err
		}
		return &Document{Type: geojson.TypeFeature, Value: f, Warnings: warnings}, nil

	case string(geojson.TypeFeatureCollection):
		fc, warnings, err := geojson.ValidateReport[geojson.AnyFeatureCollection](m)
		if err != nil {
			return nil, err
		}
		return &Document{Type: geojson.TypeFeatureCollection, Value: fc, Warnings: warnings}, nil
	}

	g, warnings, err := geojson.ParseGeometryReport(m)
	if err != nil {
		return nil, err
	}
	return &Document{Type: g.Type(), Value: g, Warnings: warnings}, nil
}

// Types lists every object type found in the document, depth first.
func (d *Document) Types() []geojson.Type {
	var types []geojson.Type
	switch v := d.Value.(type) {
	case *geojson.AnyFeatureCollection:
		types = append(types, geojson.TypeFeatureCollection)
		for f := range v.All() {
			types = append(types, geojson.TypeFeature)
			types = appendGeometryTypes(types, f.Geometry)
		}

	case *geojson.AnyFeature:
		types = append(types, geojson.TypeFeature)
		types = appendGeometryTypes(types, v.Geometry)

	case geojson.Geometry:
		types = appendGeometryTypes(types, v)
	}
	return types
}

func appendGeometryTypes(types []geojson.Type, g geojson.Geometry) []geojson.Type {
	if g == nil {
		return types
	}

	types = append(types, g.Type())
	if gc, ok := g.(*geojson.GeometryCollection); ok {
		for member := range gc.All() {
			types = appendGeometryTypes(types, member)
		}
	}
	return types
}

// WKT renders each located geometry of the document on its own line.
// Unlocated features are skipped.
func (d *Document) WKT() []string {
	var lines []string
	switch v := d.Value.(type) {
	case *geojson.AnyFeatureCollection:
		for f := range v.All() {
			if f.HasGeometry() {
				lines = append(lines, f.Geometry.WKT())
			}
		}

	case *geojson.AnyFeature:
		if v.HasGeometry() {
			lines = append(lines, v.Geometry.WKT())
		}

	case geojson.Geometry:
		lines = append(lines, v.WKT())
	}
	return lines
}
