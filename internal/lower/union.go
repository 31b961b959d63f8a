package lower

import (
	ir "github.com/reoring/contentschema/internal/ir"
	js "github.com/reoring/contentschema/jsonschema"
)

// union collapses a union of same-typed bare literals into an enum; anything
// else becomes anyOf.
func union(u *ir.Union) *js.Schema {
	if typ, vals, ok := literalEnum(u.Variants); ok {
		return &js.Schema{Type: typ, Enum: vals}
	}
	out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(u.Variants))}
	for _, v := range u.Variants {
		out.AnyOf = append(out.AnyOf, Slot(v))
	}
	return out
}

// literalEnum reports whether every variant is a literal of one primitive type
// with no modifiers (a described variant would lose its text inside an enum).
func literalEnum(vs []ir.Slot) (string, []any, bool) {
	if len(vs) == 0 {
		return "", nil, false
	}
	typ := ""
	vals := make([]any, 0, len(vs))
	for _, v := range vs {
		lit, ok := v.Schema.(*ir.Literal)
		if !ok || !modsEmpty(v.Mods) {
			return "", nil, false
		}
		t := literalType(lit.Value)
		if t == "" || t == "null" || (typ != "" && t != typ) {
			return "", nil, false
		}
		typ = t
		vals = append(vals, lit.Value)
	}
	return typ, vals, true
}

func modsEmpty(m ir.Modifiers) bool {
	return !m.HasDefault && m.Description == "" && len(m.ErrorMessages) == 0
}
