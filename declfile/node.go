package declfile

import (
	"context"
	"fmt"

	"github.com/reoring/contentschema/dsl"
)

// modifierKeys are accepted on every schema node.
var modifierKeys = []string{"optional", "default", "description", "errorMessages", "refine", "transform"}

// typeKeys lists the keys each node type accepts besides type and modifiers.
var typeKeys = map[string][]string{
	"string":             {"min", "max", "length", "format", "regex"},
	"number":             {"int", "min", "max", "gt", "lt", "positive", "nonnegative", "negative", "nonpositive", "multipleOf"},
	"integer":            {"min", "max", "gt", "lt", "positive", "nonnegative", "negative", "nonpositive", "multipleOf"},
	"boolean":            nil,
	"date":               {"coerce"},
	"literal":            {"value"},
	"enum":               {"values", "source"},
	"array":              {"items", "min", "max", "length"},
	"tuple":              {"items"},
	"object":             {"fields"},
	"record":             {"values"},
	"union":              {"variants"},
	"discriminatedUnion": {"discriminator", "variants"},
	"reference":          {"collection"},
	"image":              nil,
}

// node parses a schema node. It returns nil after recording an issue.
func (p *parser) node(v any, path string) dsl.Node {
	switch t := v.(type) {
	case string:
		if _, ok := typeKeys[t]; !ok {
			p.fail(path, "unknown schema type %q", t)
			return nil
		}
		return p.typed(t, newObject(0), path)
	case *object:
		var base dsl.Node
		switch {
		case t.has("ident"):
			p.checkKeys(t, path, append([]string{"ident", "module"}, modifierKeys...))
			base = p.ident(t, path)
		case t.has("expr"):
			p.checkKeys(t, path, append([]string{"expr"}, modifierKeys...))
			base = dsl.Computed(p.str(t.vals["expr"], join(path, "expr")))
		case t.has("type"):
			typ := p.str(t.vals["type"], join(path, "type"))
			keys, ok := typeKeys[typ]
			if !ok {
				if _, isStr := t.vals["type"].(string); isStr {
					p.fail(join(path, "type"), "unknown schema type %q", typ)
				}
				return nil
			}
			allowed := append(append([]string{"type"}, keys...), modifierKeys...)
			p.checkKeys(t, path, allowed)
			base = p.typed(typ, t, path)
		default:
			p.fail(path, "schema node needs a type, ident or expr key")
			return nil
		}
		if base == nil {
			return nil
		}
		return p.wrap(base, t, path)
	}
	p.fail(path, "expected a schema, got %s", describe(v))
	return nil
}

// wrap applies effects and modifiers declared next to a node.
func (p *parser) wrap(n dsl.Node, o *object, path string) dsl.Node {
	for _, e := range []string{"refine", "transform"} {
		v, ok := o.get(e)
		if !ok {
			continue
		}
		for _, name := range p.names(v, join(path, e)) {
			if e == "refine" {
				n = dsl.Refine(n, name, func(context.Context, any) error { return nil })
			} else {
				n = dsl.Transform(n, name, func(_ context.Context, v any) (any, error) { return v, nil })
			}
		}
	}
	var mods dsl.Modifiers
	if v, ok := o.get("optional"); ok {
		mods.Optional = p.boolean(v, join(path, "optional"))
	}
	if v, ok := o.get("default"); ok {
		mods.Default, mods.HasDefault = p.value(v, join(path, "default")), true
	}
	if v, ok := o.get("description"); ok {
		mods.Description = p.str(v, join(path, "description"))
	}
	if v, ok := o.get("errorMessages"); ok {
		mp := join(path, "errorMessages")
		if mo := p.obj(v, mp); mo != nil {
			mods.ErrorMessages = make(map[string]string, len(mo.keys))
			for _, k := range mo.keys {
				mods.ErrorMessages[k] = p.str(mo.vals[k], join(mp, k))
			}
		}
	}
	if mods.IsZero() {
		return n
	}
	return &dsl.ModifiedSchema{Inner: n, Mods: mods}
}

// names accepts a single effect name or a list of them.
func (p *parser) names(v any, path string) []string {
	if s, ok := v.(string); ok {
		return []string{s}
	}
	var out []string
	for i, e := range p.list(v, path) {
		out = append(out, p.str(e, join(path, fmt.Sprint(i))))
	}
	return out
}

func (p *parser) ident(o *object, path string) dsl.Node {
	id := p.identifier(o, path)
	if id.Name == "" {
		return nil
	}
	return id
}

// identifier reads {ident: NAME} or {ident: NAME, module: M}. NAME may be
// written module-qualified as M.NAME.
func (p *parser) identifier(o *object, path string) dsl.Identifier {
	name := p.str(o.vals["ident"], join(path, "ident"))
	if name == "" {
		p.fail(join(path, "ident"), "identifier must not be empty")
		return dsl.Identifier{}
	}
	if m, ok := o.get("module"); ok {
		return dsl.IdentIn(p.str(m, join(path, "module")), name)
	}
	return dsl.ParseIdent(name)
}

func (p *parser) typed(typ string, o *object, path string) dsl.Node {
	switch typ {
	case "string":
		return p.stringNode(o, path)
	case "number", "integer":
		return p.numberNode(typ == "integer", o, path)
	case "boolean":
		return dsl.Boolean()
	case "date":
		d := dsl.Date()
		if v, ok := o.get("coerce"); ok && p.boolean(v, join(path, "coerce")) {
			d.Coerce()
		}
		return d
	case "image":
		return dsl.Image()
	case "literal":
		v, ok := o.get("value")
		if !ok {
			p.fail(path, "literal needs a value")
			return nil
		}
		return dsl.Literal(p.value(v, join(path, "value")))
	case "enum":
		return p.enumNode(o, path)
	case "array":
		return p.arrayNode(o, path)
	case "tuple":
		items := p.nodes(o, "items", path)
		if items == nil {
			return nil
		}
		return dsl.Tuple(items...)
	case "object":
		return p.objectNode(o, path)
	case "record":
		v, ok := o.get("values")
		if !ok {
			p.fail(path, "record needs values")
			return nil
		}
		inner := p.node(v, join(path, "values"))
		if inner == nil {
			return nil
		}
		return dsl.Record(inner)
	case "union":
		vs := p.nodes(o, "variants", path)
		if vs == nil {
			return nil
		}
		return dsl.Union(vs...)
	case "discriminatedUnion":
		key := p.str(o.vals["discriminator"], join(path, "discriminator"))
		if o.has("discriminator") && key == "" {
			p.fail(join(path, "discriminator"), "discriminated union needs a discriminator key")
		}
		vs := p.nodes(o, "variants", path)
		if vs == nil || key == "" {
			return nil
		}
		return dsl.DiscriminatedUnion(key, vs...)
	case "reference":
		c := p.str(o.vals["collection"], join(path, "collection"))
		if c == "" {
			if o.has("collection") {
				p.fail(join(path, "collection"), "reference needs a collection name")
			}
			return nil
		}
		return dsl.Reference(c)
	}
	return nil
}

func (p *parser) stringNode(o *object, path string) dsl.Node {
	s := dsl.String()
	if v, ok := o.get("length"); ok {
		s.Length(p.count(v, join(path, "length")))
	}
	if v, ok := o.get("min"); ok {
		s.Min(p.count(v, join(path, "min")))
	}
	if v, ok := o.get("max"); ok {
		s.Max(p.count(v, join(path, "max")))
	}
	if v, ok := o.get("format"); ok {
		s.WithFormat(p.str(v, join(path, "format")))
	}
	if v, ok := o.get("regex"); ok {
		s.Regex(p.str(v, join(path, "regex")))
	}
	return s
}

func (p *parser) numberNode(integer bool, o *object, path string) dsl.Node {
	n := dsl.Number()
	if v, ok := o.get("int"); ok && p.boolean(v, join(path, "int")) {
		integer = true
	}
	if integer {
		n.Int()
	}
	bounds := []struct {
		key string
		set func(float64, ...string) *dsl.NumberSchema
	}{
		{"min", n.Min},
		{"max", n.Max},
		{"gt", n.Gt},
		{"lt", n.Lt},
		{"multipleOf", n.Step},
	}
	for _, b := range bounds {
		if v, ok := o.get(b.key); ok {
			b.set(p.num(v, join(path, b.key)))
		}
	}
	flags := []struct {
		key string
		set func(...string) *dsl.NumberSchema
	}{
		{"positive", n.Positive},
		{"nonnegative", n.Nonnegative},
		{"negative", n.Negative},
		{"nonpositive", n.Nonpositive},
	}
	for _, f := range flags {
		if v, ok := o.get(f.key); ok && p.boolean(v, join(path, f.key)) {
			f.set()
		}
	}
	return n
}

func (p *parser) enumNode(o *object, path string) dsl.Node {
	if v, ok := o.get("source"); ok {
		sp := join(path, "source")
		if o.has("values") {
			p.fail(path, "enum takes values or source, not both")
			return nil
		}
		switch t := v.(type) {
		case string:
			return dsl.EnumOf(dsl.ParseIdent(t))
		case *object:
			p.checkKeys(t, sp, []string{"ident", "module"})
			id := p.identifier(t, sp)
			if id.Name == "" {
				return nil
			}
			return dsl.EnumOf(id)
		}
		p.fail(sp, "enum source must name a constant, got %s", describe(v))
		return nil
	}
	v, ok := o.get("values")
	if !ok {
		p.fail(path, "enum needs values or source")
		return nil
	}
	list := p.list(v, join(path, "values"))
	vals := make([]any, 0, len(list))
	for i, e := range list {
		vals = append(vals, p.value(e, join(join(path, "values"), fmt.Sprint(i))))
	}
	return dsl.EnumValues(vals...)
}

func (p *parser) arrayNode(o *object, path string) dsl.Node {
	v, ok := o.get("items")
	if !ok {
		p.fail(path, "array needs items")
		return nil
	}
	elem := p.node(v, join(path, "items"))
	if elem == nil {
		return nil
	}
	a := dsl.Array(elem)
	if v, ok := o.get("length"); ok {
		a.Length(p.count(v, join(path, "length")))
	}
	if v, ok := o.get("min"); ok {
		a.Min(p.count(v, join(path, "min")))
	}
	if v, ok := o.get("max"); ok {
		a.Max(p.count(v, join(path, "max")))
	}
	return a
}

func (p *parser) objectNode(o *object, path string) dsl.Node {
	obj := dsl.Object()
	v, ok := o.get("fields")
	if !ok {
		return obj
	}
	fp := join(path, "fields")
	fields := p.obj(v, fp)
	if fields == nil {
		return nil
	}
	okAll := true
	for _, name := range fields.keys {
		n := p.node(fields.vals[name], join(fp, name))
		if n == nil {
			okAll = false
			continue
		}
		obj.Field(name, n)
	}
	if !okAll {
		return nil
	}
	return obj
}

// nodes parses a list of schema nodes stored under key.
func (p *parser) nodes(o *object, key, path string) []dsl.Node {
	v, ok := o.get(key)
	if !ok {
		p.fail(path, "missing %s", key)
		return nil
	}
	lp := join(path, key)
	list := p.list(v, lp)
	if list == nil {
		return nil
	}
	out := make([]dsl.Node, 0, len(list))
	ok = true
	for i, e := range list {
		n := p.node(e, join(lp, fmt.Sprint(i)))
		if n == nil {
			ok = false
			continue
		}
		out = append(out, n)
	}
	if !ok {
		return nil
	}
	return out
}
