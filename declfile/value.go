package declfile

import (
	"strconv"

	"github.com/reoring/contentschema/dsl"
)

// value converts decoded data into a constant value. {ident: ...} becomes a
// dsl.Identifier and {expr: ...} a dsl.Expr; other mappings become
// map[string]any.
func (p *parser) value(v any, path string) any {
	switch t := v.(type) {
	case *object:
		if t.has("ident") {
			p.checkKeys(t, path, []string{"ident", "module"})
			return p.identifier(t, path)
		}
		if t.has("expr") && len(t.keys) == 1 {
			return dsl.Computed(p.str(t.vals["expr"], join(path, "expr")))
		}
		out := make(map[string]any, len(t.keys))
		for _, k := range t.keys {
			out[k] = p.value(t.vals[k], join(path, k))
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for i, e := range t {
			out = append(out, p.value(e, join(path, strconv.Itoa(i))))
		}
		return out
	}
	return v
}
