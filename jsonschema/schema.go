package jsonschema

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// Draft07 is the $schema URI written into every document.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Schema is a Draft-7 schema fragment plus the two editor extensions
// markdownDescription and errorMessage. Field order is the output key order.
type Schema struct {
	// Core
	Type  string `json:"type,omitempty"`
	Const *Value `json:"const,omitempty"`
	Enum  []any  `json:"enum,omitempty"`

	// String
	Format    string `json:"format,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	// Object
	Properties           *Properties `json:"properties,omitempty"`
	Required             []string    `json:"required,omitempty"`
	AdditionalProperties any         `json:"additionalProperties,omitempty"` // bool or *Schema

	// Array
	Items    any  `json:"items,omitempty"` // *Schema, or []*Schema for tuples
	MinItems *int `json:"minItems,omitempty"`
	MaxItems *int `json:"maxItems,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Annotations
	Default             *Value            `json:"default,omitempty"`
	Description         string            `json:"description,omitempty"`
	MarkdownDescription string            `json:"markdownDescription,omitempty"`
	ErrorMessage        map[string]string `json:"errorMessage,omitempty"`
}

// Value is a JSON value that is written even when it is null. A nil *Value
// leaves the keyword out.
type Value struct {
	V any
}

// ValueOf wraps v.
func ValueOf(v any) *Value { return &Value{V: v} }

// MarshalJSON writes the wrapped value.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return j.MarshalNoEscape(v.V)
}

// MarshalJSON writes the fields in declaration order, except that a tuple's
// positional items follow its minItems and maxItems.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type plain Schema
	if s == nil {
		return []byte("null"), nil
	}
	items, ok := s.Items.([]*Schema)
	if !ok {
		return j.MarshalNoEscape((*plain)(s))
	}
	head := plain(*s)
	head.Items = nil
	tail := plain{
		AnyOf:               head.AnyOf,
		Default:             head.Default,
		Description:         head.Description,
		MarkdownDescription: head.MarkdownDescription,
		ErrorMessage:        head.ErrorMessage,
	}
	head.AnyOf, head.Default, head.ErrorMessage = nil, nil, nil
	head.Description, head.MarkdownDescription = "", ""

	hb, err := j.MarshalNoEscape(&head)
	if err != nil {
		return nil, err
	}
	ib, err := j.MarshalNoEscape(items)
	if err != nil {
		return nil, err
	}
	tb, err := j.MarshalNoEscape(&tail)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.Write(hb[:len(hb)-1])
	if len(hb) > 2 {
		b.WriteByte(',')
	}
	b.WriteString(`"items":`)
	b.Write(ib)
	if len(tb) > 2 {
		b.WriteByte(',')
		b.Write(tb[1:])
	} else {
		b.WriteByte('}')
	}
	return b.Bytes(), nil
}

// Object returns an empty closed object schema.
func Object() *Schema {
	return &Schema{Type: "object", Properties: NewProperties(), AdditionalProperties: false}
}

// IsObject reports whether s declares properties of its own.
func (s *Schema) IsObject() bool {
	return s != nil && s.Type == "object" && s.Properties != nil
}

// HasKeyword reports whether the JSON key kw is set on s.
func (s *Schema) HasKeyword(kw string) bool {
	switch kw {
	case "type":
		return s.Type != ""
	case "const":
		return s.Const != nil
	case "enum":
		return len(s.Enum) > 0
	case "format":
		return s.Format != ""
	case "pattern":
		return s.Pattern != ""
	case "minLength":
		return s.MinLength != nil
	case "maxLength":
		return s.MaxLength != nil
	case "minimum":
		return s.Minimum != nil
	case "exclusiveMinimum":
		return s.ExclusiveMinimum != nil
	case "maximum":
		return s.Maximum != nil
	case "exclusiveMaximum":
		return s.ExclusiveMaximum != nil
	case "multipleOf":
		return s.MultipleOf != nil
	case "properties":
		return s.Properties != nil
	case "required":
		return len(s.Required) > 0
	case "additionalProperties":
		return s.AdditionalProperties != nil
	case "items":
		return s.Items != nil
	case "minItems":
		return s.MinItems != nil
	case "maxItems":
		return s.MaxItems != nil
	case "anyOf":
		return len(s.AnyOf) > 0
	}
	return false
}
