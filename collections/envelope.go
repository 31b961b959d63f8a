package collections

import (
	contentschema "github.com/reoring/contentschema"
	js "github.com/reoring/contentschema/jsonschema"
)

// Envelope is the top-level document shape of a collection.
type Envelope int

const (
	// Uniform collections validate one entry per file.
	Uniform Envelope = iota
	// Keyed collections hold many entries in one file, addressed by key.
	Keyed
)

func (e Envelope) String() string {
	if e == Keyed {
		return "keyed"
	}
	return "uniform"
}

// EnvelopeFor decides the envelope from the loader kind.
func EnvelopeFor(loader contentschema.LoaderKind) Envelope {
	if loader == contentschema.LoaderFile {
		return Keyed
	}
	return Uniform
}

const schemaProp = "$schema"

func schemaPropSchema() *js.Schema { return &js.Schema{Type: "string"} }

// Wrap builds the document for collection name around a lowered entry schema.
// It reports false when a uniform entry has no object to carry the $schema
// property.
func Wrap(name string, env Envelope, entry *js.Schema) (*js.Document, bool) {
	if env == Keyed {
		body := &js.Schema{Type: "object", Properties: js.NewProperties(), AdditionalProperties: entry}
		body.Properties.Set(schemaProp, schemaPropSchema())
		return js.NewDocument(name, body), true
	}
	if !injectSchemaProp(entry) {
		return nil, false
	}
	return js.NewDocument(name, entry), true
}

// injectSchemaProp appends the optional $schema property to s, or to every
// object branch when s is an anyOf.
func injectSchemaProp(s *js.Schema) bool {
	if s.IsObject() {
		if _, exists := s.Properties.Get(schemaProp); !exists {
			s.Properties.Set(schemaProp, schemaPropSchema())
		}
		return true
	}
	if s.Type != "" || len(s.AnyOf) == 0 {
		return false
	}
	found := false
	for _, b := range s.AnyOf {
		if injectSchemaProp(b) {
			found = true
		}
	}
	return found
}
