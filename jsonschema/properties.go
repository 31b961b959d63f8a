package jsonschema

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// Properties is an insertion-ordered map of property schemas. Output keys keep
// declaration order so generated documents are reproducible byte for byte.
type Properties struct {
	keys   []string
	values map[string]*Schema
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{values: map[string]*Schema{}}
}

// Set adds or replaces a property. Replacing keeps the original position.
func (p *Properties) Set(name string, s *Schema) {
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = s
}

// Get returns the schema of a property.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.values[name]
	return s, ok
}

// Keys returns property names in order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// MarshalJSON writes the properties as a JSON object in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	if p != nil {
		for i, k := range p.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			kb, err := j.MarshalNoEscape(k)
			if err != nil {
				return nil, err
			}
			b.Write(kb)
			b.WriteByte(':')
			vb, err := j.MarshalNoEscape(p.values[k])
			if err != nil {
				return nil, err
			}
			b.Write(vb)
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
