package irconv

import (
	"strconv"

	contentschema "github.com/reoring/contentschema"
	"github.com/reoring/contentschema/dsl"
	"github.com/reoring/contentschema/i18n"
	ir "github.com/reoring/contentschema/internal/ir"
)

// schema converts a concrete node. It also returns the constraint messages
// declared on the node so they can travel with the slot's modifiers.
func (r *resolver) schema(n dsl.Node, module, path string) (ir.Schema, map[string]string, bool) {
	switch t := n.(type) {
	case *dsl.StringSchema:
		return &ir.String{
			MinLength: cloneInt(t.MinLength),
			MaxLength: cloneInt(t.MaxLength),
			Format:    t.Format,
			Pattern:   t.Pattern,
		}, copyStrings(t.ErrorMessages), true
	case *dsl.NumberSchema:
		return &ir.Number{
			Integer:          t.Integer,
			Minimum:          cloneFloat(t.Minimum),
			Maximum:          cloneFloat(t.Maximum),
			ExclusiveMinimum: cloneFloat(t.ExclusiveMinimum),
			ExclusiveMaximum: cloneFloat(t.ExclusiveMaximum),
			MultipleOf:       cloneFloat(t.MultipleOf),
		}, copyStrings(t.ErrorMessages), true
	case *dsl.BooleanSchema:
		return &ir.Boolean{}, nil, true
	case *dsl.DateSchema:
		return &ir.Date{}, nil, true
	case *dsl.ImageSchema:
		return &ir.Image{}, nil, true
	case *dsl.ReferenceSchema:
		return &ir.Reference{Collection: t.Collection}, nil, true
	case *dsl.LiteralSchema:
		v, ok := r.value(t.Value, module, path)
		if !ok {
			return nil, nil, false
		}
		return &ir.Literal{Value: v}, nil, true
	case *dsl.EnumSchema:
		vals, ok := r.enumValues(t, module, path)
		if !ok {
			return nil, nil, false
		}
		return &ir.Enum{Values: vals}, nil, true
	case *dsl.ArraySchema:
		item, ok := r.node(t.Elem, module, join(path, "*"))
		if !ok {
			return nil, nil, false
		}
		return &ir.Array{Item: item, MinItems: cloneInt(t.MinItems), MaxItems: cloneInt(t.MaxItems)}, copyStrings(t.ErrorMessages), true
	case *dsl.TupleSchema:
		out := &ir.Tuple{Items: make([]ir.Slot, 0, len(t.Items))}
		ok := true
		for i, it := range t.Items {
			s, iok := r.node(it, module, join(path, strconv.Itoa(i)))
			ok = ok && iok
			out.Items = append(out.Items, s)
		}
		return out, nil, ok
	case *dsl.ObjectSchema:
		o, ok := r.object(t, module, path)
		return o, nil, ok
	case *dsl.RecordSchema:
		v, ok := r.node(t.Value, module, join(path, "*"))
		if !ok {
			return nil, nil, false
		}
		return &ir.Record{Value: v}, nil, true
	case *dsl.UnionSchema:
		out := &ir.Union{Variants: make([]ir.Slot, 0, len(t.Variants))}
		ok := true
		for i, v := range t.Variants {
			s, vok := r.node(v, module, join(path, strconv.Itoa(i)))
			ok = ok && vok
			out.Variants = append(out.Variants, s)
		}
		return out, nil, ok
	case *dsl.DiscriminatedUnionSchema:
		out := &ir.DiscriminatedUnion{Discriminator: t.Discriminator}
		ok := true
		for i, v := range t.Variants {
			vp := join(path, strconv.Itoa(i))
			s, vok := r.node(v, module, vp)
			if !vok {
				ok = false
				continue
			}
			if _, isObj := s.Schema.(*ir.Object); !isObj {
				r.iss = contentschema.AppendIssues(r.iss, contentschema.Issue{
					Path:    vp,
					Code:    contentschema.CodeInvalidVariant,
					Message: i18n.T(contentschema.CodeInvalidVariant, nil),
					Hint:    "variant resolved to " + kindName(s.Schema),
				})
				ok = false
				continue
			}
			out.Variants = append(out.Variants, s)
		}
		return out, nil, ok
	}
	r.iss = contentschema.AppendIssues(r.iss, contentschema.Issue{
		Path:    pathOrRoot(path),
		Code:    contentschema.CodeInvalidFragment,
		Message: i18n.T(contentschema.CodeInvalidFragment, map[string]string{"identifier": "node"}),
		Hint:    "unsupported node " + n.Kind().String(),
	})
	return nil, nil, false
}

func (r *resolver) object(o *dsl.ObjectSchema, module, path string) (*ir.Object, bool) {
	out := &ir.Object{Fields: make([]ir.Field, 0, len(o.Fields))}
	ok := true
	for _, f := range o.Fields {
		fp := join(path, f.Name)
		s, sok := r.node(f.Node, module, fp)
		m, mok := r.mods(f.Mods, module, fp)
		if !sok || !mok {
			ok = false
			continue
		}
		s.Mods = mergeMods(s.Mods, m)
		out.Fields = append(out.Fields, ir.Field{Name: f.Name, Slot: s})
	}
	return out, ok
}

func (r *resolver) enumValues(e *dsl.EnumSchema, module, path string) ([]string, bool) {
	if e.Source != nil {
		v, ok := r.value(*e.Source, module, path)
		if !ok {
			return nil, false
		}
		vals, ok := stringList(v)
		if !ok {
			r.fail(path, contentschema.CodeInvalidEnumSource, e.Source.String(), nil)
			return nil, false
		}
		return vals, true
	}
	out := make([]string, 0, len(e.Values))
	ok := true
	for i, raw := range e.Values {
		v, vok := r.value(raw, module, path)
		if !vok {
			ok = false
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			name := "enum[" + strconv.Itoa(i) + "]"
			if id, isID := raw.(dsl.Identifier); isID {
				name = id.String()
			}
			r.fail(path, contentschema.CodeInvalidEnumSource, name, nil)
			ok = false
			continue
		}
		out = append(out, s)
	}
	return out, ok
}

func stringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...), true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func kindName(s ir.Schema) string {
	switch s.(type) {
	case *ir.String:
		return "string"
	case *ir.Number:
		return "number"
	case *ir.Boolean:
		return "boolean"
	case *ir.Date:
		return "date"
	case *ir.Literal:
		return "literal"
	case *ir.Enum:
		return "enum"
	case *ir.Array:
		return "array"
	case *ir.Tuple:
		return "tuple"
	case *ir.Record:
		return "record"
	case *ir.Union:
		return "union"
	case *ir.DiscriminatedUnion:
		return "discriminatedUnion"
	case *ir.Reference:
		return "reference"
	case *ir.Image:
		return "image"
	}
	return "object"
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
