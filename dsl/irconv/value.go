package irconv

import (
	"sort"

	contentschema "github.com/reoring/contentschema"
	"github.com/reoring/contentschema/dsl"
)

// value resolves a constant to plain data. Containers are rebuilt so that each
// use site owns its copy.
func (r *resolver) value(v any, module, path string) (any, bool) {
	switch t := v.(type) {
	case dsl.Identifier:
		return r.identValue(t, module, path)
	case *dsl.Identifier:
		return r.identValue(*t, module, path)
	case dsl.Expr:
		r.fail(path, contentschema.CodeNonConstant, t.Source, nil)
		return nil, false
	case []any:
		out := make([]any, 0, len(t))
		ok := true
		for _, e := range t {
			ev, eok := r.value(e, module, path)
			ok = ok && eok
			out = append(out, ev)
		}
		return out, ok
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		// sorted so issues are reported in a stable order
		sort.Strings(keys)
		out := make(map[string]any, len(t))
		ok := true
		for _, k := range keys {
			ev, eok := r.value(t[k], module, path)
			ok = ok && eok
			out[k] = ev
		}
		return out, ok
	case dsl.Node:
		r.fail(path, contentschema.CodeInvalidValue, t.Kind().String(), nil)
		return nil, false
	}
	return normalizeScalar(v), true
}

func (r *resolver) identValue(id dsl.Identifier, module, path string) (any, bool) {
	res, release, ok := r.lookup(id, module, path)
	if !ok {
		return nil, false
	}
	defer release()
	if res.IsFragment() {
		r.fail(path, contentschema.CodeInvalidValue, res.Ident().String(), nil)
		return nil, false
	}
	if _, isExpr := res.Value.(dsl.Expr); isExpr {
		// report the constant's name rather than its source text
		r.fail(path, contentschema.CodeNonConstant, res.Ident().String(), nil)
		return nil, false
	}
	return r.value(res.Value, res.Module, path)
}

// normalizeScalar widens Go integer and float kinds to float64 so literal
// comparisons and JSON output do not depend on the declaring type.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	}
	return v
}
