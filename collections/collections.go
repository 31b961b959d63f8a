// Package collections turns collection definitions into Draft-7 documents.
//
// Generate runs the whole pipeline for one collection: it resolves the entry
// schema against a scope, lowers it and wraps it in the envelope chosen by the
// collection's loader kind. GenerateAll does the same for many collections in
// parallel.
package collections

import (
	contentschema "github.com/reoring/contentschema"
	"github.com/reoring/contentschema/dsl"
	"github.com/reoring/contentschema/dsl/irconv"
	"github.com/reoring/contentschema/i18n"
	ir "github.com/reoring/contentschema/internal/ir"
	"github.com/reoring/contentschema/internal/lower"
	js "github.com/reoring/contentschema/jsonschema"
)

// Definition declares one content collection.
type Definition struct {
	Name   string
	Loader contentschema.LoaderKind
	// Module is the scope unqualified identifiers in Schema resolve in.
	Module string
	Schema dsl.Node
}

// Envelope returns the envelope the definition is wrapped in.
func (d Definition) Envelope() Envelope { return EnvelopeFor(d.Loader) }

// Generate resolves, lowers and wraps one collection. Failures are returned as
// contentschema.Issues tagged with the collection name; nothing is emitted for
// a collection with any resolution failure.
func Generate(def Definition, scope irconv.Scope) (*js.Document, error) {
	doc, _, err := generate(def, scope)
	return doc, err
}

func generate(def Definition, scope irconv.Scope) (*js.Document, []string, error) {
	slot, err := irconv.Resolve(def.Schema, def.Module, scope)
	if err != nil {
		if iss, ok := contentschema.AsIssues(err); ok {
			return nil, nil, iss.WithCollection(def.Name)
		}
		return nil, nil, err
	}
	entry := lower.Slot(slot)
	doc, ok := Wrap(def.Name, def.Envelope(), entry)
	if !ok {
		return nil, nil, contentschema.Issues{{
			Path:       "/",
			Code:       contentschema.CodeInvalidRoot,
			Message:    i18n.T(contentschema.CodeInvalidRoot, map[string]string{"collection": def.Name}),
			Hint:       "entry schema must be an object or a union of objects",
			Collection: def.Name,
		}}
	}
	return doc, ir.References(slot.Schema), nil
}
