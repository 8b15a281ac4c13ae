package geojson

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// member is one key/value pair of an encoded GeoJSON object.
type member struct {
	key   string
	value any
}

// object is an ordered GeoJSON object. All models encode through it so JSON,
// YAML and the geo-interface mapping share one member list.
type object []member

// optionalMembers may be absent but are never emitted as null.
var optionalMembers = map[string]bool{
	"bbox": true,
	"id":   true,
}

// omitAbsent strips optional members whose value is nil.
func (o object) omitAbsent() object {
	out := make(object, 0, len(o))
	for _, m := range o {
		if m.value == nil && optionalMembers[m.key] {
			continue
		}
		out = append(out, m)
	}
	return out
}

// MarshalJSON writes the members in order.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML builds an ordered mapping node. Coordinate arrays use flow style.
func (o object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, m := range o {
		val := &yaml.Node{}
		if err := val.Encode(m.value); err != nil {
			return nil, err
		}
		if m.key == "coordinates" || m.key == "bbox" {
			val.Style = yaml.FlowStyle
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.key},
			val,
		)
	}
	return node, nil
}

// Map converts the object into plain maps, slices and scalars.
func (o object) Map() map[string]any {
	out := make(map[string]any, len(o))
	for _, m := range o {
		out[m.key] = plain(m.value)
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case object:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	case properties:
		return t.plain()
	}
	return v
}

// properties wraps a Feature's caller-typed properties value.
type properties struct {
	v any
}

func (p properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.v)
}

func (p properties) MarshalYAML() (any, error) {
	return p.plain(), nil
}

// plain converts the properties to their JSON data model.
func (p properties) plain() any {
	raw, err := json.Marshal(p.v)
	if err != nil {
		return p.v
	}

	var out any
	if err := unmarshalNumbers(raw, &out); err != nil {
		return p.v
	}
	return out
}

func positionsValue(ps []Position) [][]float64 {
	out := make([][]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Slice()
	}
	return out
}

func linesValue[L ~[]Position](lines []L) [][][]float64 {
	out := make([][][]float64, len(lines))
	for i, l := range lines {
		out[i] = positionsValue(l)
	}
	return out
}

func polygonsValue(polygons [][]LinearRing) [][][][]float64 {
	out := make([][][][]float64, len(polygons))
	for i, p := range polygons {
		out[i] = linesValue(p)
	}
	return out
}
