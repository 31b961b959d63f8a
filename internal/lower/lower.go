// Package lower turns resolved IR into JSON Schema Draft-7 fragments.
//
// Lower is pure: it never mutates its input and allocates a new output tree on
// every call, so lowering the same subtree twice yields two independent but
// equal fragments.
package lower

import (
	ir "github.com/reoring/contentschema/internal/ir"
	js "github.com/reoring/contentschema/jsonschema"
)

// formats maps DSL string format names to JSON Schema formats. Names missing
// here are dropped.
var formats = map[string]string{
	"email":    "email",
	"url":      "uri",
	"uuid":     "uuid",
	"datetime": "date-time",
	"date":     "date",
	"time":     "time",
	"ipv4":     "ipv4",
	"ipv6":     "ipv6",
}

// Slot lowers a schema together with its modifiers.
func Slot(s ir.Slot) *js.Schema { return Lower(s.Schema, s.Mods) }

// Lower lowers s and applies m to the resulting fragment.
func Lower(s ir.Schema, m ir.Modifiers) *js.Schema {
	out := variant(s)
	applyModifiers(out, m)
	return out
}

func variant(s ir.Schema) *js.Schema {
	switch t := s.(type) {
	case *ir.String:
		out := &js.Schema{Type: "string", MinLength: cloneInt(t.MinLength), MaxLength: cloneInt(t.MaxLength), Pattern: t.Pattern}
		out.Format = formats[t.Format]
		return out
	case *ir.Number:
		out := &js.Schema{Type: "number"}
		if t.Integer {
			out.Type = "integer"
		}
		out.Minimum = cloneFloat(t.Minimum)
		out.Maximum = cloneFloat(t.Maximum)
		out.ExclusiveMinimum = cloneFloat(t.ExclusiveMinimum)
		out.ExclusiveMaximum = cloneFloat(t.ExclusiveMaximum)
		out.MultipleOf = cloneFloat(t.MultipleOf)
		return out
	case *ir.Boolean:
		return &js.Schema{Type: "boolean"}
	case *ir.Date:
		return dateSchema()
	case *ir.Literal:
		return &js.Schema{Type: literalType(t.Value), Const: js.ValueOf(t.Value)}
	case *ir.Enum:
		vals := make([]any, len(t.Values))
		for i, v := range t.Values {
			vals[i] = v
		}
		return &js.Schema{Type: "string", Enum: vals}
	case *ir.Array:
		return &js.Schema{Type: "array", Items: Slot(t.Item), MinItems: cloneInt(t.MinItems), MaxItems: cloneInt(t.MaxItems)}
	case *ir.Tuple:
		n := len(t.Items)
		items := make([]*js.Schema, 0, n)
		for _, it := range t.Items {
			items = append(items, Slot(it))
		}
		minN, maxN := n, n
		return &js.Schema{Type: "array", MinItems: &minN, MaxItems: &maxN, Items: items}
	case *ir.Object:
		return object(t)
	case *ir.Record:
		return &js.Schema{Type: "object", AdditionalProperties: Slot(t.Value)}
	case *ir.Union:
		return union(t)
	case *ir.DiscriminatedUnion:
		out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(t.Variants))}
		for _, v := range t.Variants {
			out.AnyOf = append(out.AnyOf, Slot(v))
		}
		return out
	case *ir.Reference:
		return referenceSchema()
	case *ir.Image:
		return &js.Schema{Type: "string"}
	}
	return &js.Schema{}
}

// dateSchema accepts ISO date-times, ISO dates and unix timestamps.
func dateSchema() *js.Schema {
	return &js.Schema{AnyOf: []*js.Schema{
		{Type: "string", Format: "date-time"},
		{Type: "string", Format: "date"},
		{Type: "integer", Format: "unix-time"},
	}}
}

// referenceSchema accepts a bare id or an {id|slug, collection} pair.
func referenceSchema() *js.Schema {
	pair := func(key string) *js.Schema {
		o := js.Object()
		o.Properties.Set(key, &js.Schema{Type: "string"})
		o.Properties.Set("collection", &js.Schema{Type: "string"})
		o.Required = []string{key, "collection"}
		return o
	}
	return &js.Schema{AnyOf: []*js.Schema{
		{Type: "string"},
		pair("id"),
		pair("slug"),
	}}
}

func object(o *ir.Object) *js.Schema {
	out := js.Object()
	acc := newAccumulator(len(o.Fields))
	for _, f := range o.Fields {
		out.Properties.Set(f.Name, Slot(f.Slot))
		acc.add(f.Name, f.Mods)
	}
	out.Required = acc.Required()
	return out
}

func literalType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case nil:
		return "null"
	case float64, float32, int, int64, int32:
		return "number"
	}
	return ""
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
