// Package geojson implements typed, validated models for RFC 7946 GeoJSON.
//
// Every model is built in one pass from an untyped mapping (a decoded JSON or
// YAML document, or a Go map) and is rejected with a *ValidationError that
// lists all problems found. Valid values render back to the canonical wire
// form, to a plain geo-interface mapping and, for geometries, to WKT.
//
// For the GeoJSON RFC specification see:
//
//	https://tools.ietf.org/html/rfc7946
package geojson
