package jsonschema

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// Document is the top-level file written for one collection:
//
//	{"$ref":"#/definitions/C","definitions":{"C":...},"$schema":"http://json-schema.org/draft-07/schema#"}
type Document struct {
	Ref         string             `json:"$ref"`
	Definitions map[string]*Schema `json:"definitions"`
	Schema      string             `json:"$schema"`
}

// NewDocument wraps body as the single definition named name.
func NewDocument(name string, body *Schema) *Document {
	return &Document{
		Ref:         "#/definitions/" + name,
		Definitions: map[string]*Schema{name: body},
		Schema:      Draft07,
	}
}

// Encode writes v as indented JSON followed by a newline. HTML characters in
// descriptions are written as-is.
func Encode(w io.Writer, v any, indent string) error {
	enc := j.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}

// Marshal returns the encoded form of v as produced by Encode.
func Marshal(v any, indent string) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, v, indent); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
