package declfile

import (
	"fmt"
	"math"
	"slices"
	"strings"

	contentschema "github.com/reoring/contentschema"
	"github.com/reoring/contentschema/collections"
	"github.com/reoring/contentschema/i18n"
)

type parser struct {
	iss contentschema.Issues
}

func (p *parser) fail(path, format string, args ...any) {
	p.iss = contentschema.AppendIssues(p.iss, contentschema.Issue{
		Path:    pathOrRoot(path),
		Code:    contentschema.CodeInvalidDeclaration,
		Message: i18n.T(contentschema.CodeInvalidDeclaration, nil),
		Hint:    fmt.Sprintf(format, args...),
	})
}

var topKeys = []string{"module", "imports", "constants", "fragments", "collections"}

func (p *parser) file(tree any) *File {
	f := &File{}
	root, ok := tree.(*object)
	if !ok {
		p.fail("", "top level must be a mapping, got %s", describe(tree))
		return f
	}
	p.checkKeys(root, "", topKeys)
	if v, ok := root.get("module"); ok {
		f.Module = p.str(v, "/module")
	}
	if v, ok := root.get("imports"); ok {
		f.Imports = p.imports(v, "/imports")
	}
	if v, ok := root.get("constants"); ok {
		if o := p.obj(v, "/constants"); o != nil {
			for _, k := range o.keys {
				f.Constants = append(f.Constants, Constant{Name: k, Value: p.value(o.vals[k], join("/constants", k))})
			}
		}
	}
	if v, ok := root.get("fragments"); ok {
		if o := p.obj(v, "/fragments"); o != nil {
			for _, k := range o.keys {
				f.Fragments = append(f.Fragments, Fragment{Name: k, Node: p.node(o.vals[k], join("/fragments", k))})
			}
		}
	}
	if v, ok := root.get("collections"); ok {
		if o := p.obj(v, "/collections"); o != nil {
			for _, k := range o.keys {
				if def, ok := p.collection(k, o.vals[k], join("/collections", k)); ok {
					f.Collections = append(f.Collections, def)
				}
			}
		}
	}
	return f
}

func (p *parser) imports(v any, path string) []Import {
	list, ok := v.([]any)
	if !ok {
		p.fail(path, "imports must be a list, got %s", describe(v))
		return nil
	}
	var out []Import
	for i, e := range list {
		ep := join(path, fmt.Sprint(i))
		o := p.obj(e, ep)
		if o == nil {
			continue
		}
		p.checkKeys(o, ep, []string{"from", "names", "as"})
		from := p.str(o.vals["from"], join(ep, "from"))
		if n, ok := o.get("names"); ok {
			for j, name := range p.list(n, join(ep, "names")) {
				s := p.str(name, join(join(ep, "names"), fmt.Sprint(j)))
				out = append(out, Import{Local: s, From: from, Name: s})
			}
		}
		if a, ok := o.get("as"); ok {
			if ao := p.obj(a, join(ep, "as")); ao != nil {
				for _, local := range ao.keys {
					out = append(out, Import{Local: local, From: from, Name: p.str(ao.vals[local], join(join(ep, "as"), local))})
				}
			}
		}
		if !o.has("names") && !o.has("as") {
			p.fail(ep, "import needs names or as")
		}
	}
	return out
}

func (p *parser) collection(name string, v any, path string) (collections.Definition, bool) {
	def := collections.Definition{Name: name}
	o := p.obj(v, path)
	if o == nil {
		return def, false
	}
	p.checkKeys(o, path, []string{"loader", "schema"})
	if l, ok := o.get("loader"); ok {
		kind, err := contentschema.ParseLoaderKind(p.str(l, join(path, "loader")))
		if err != nil {
			p.fail(join(path, "loader"), "%v", err)
		}
		def.Loader = kind
	}
	s, ok := o.get("schema")
	if !ok {
		p.fail(path, "collection %s has no schema", name)
		return def, false
	}
	before := len(p.iss)
	def.Schema = p.node(s, join(path, "schema"))
	if def.Schema == nil && len(p.iss) == before {
		p.fail(join(path, "schema"), "collection %s has an unusable schema", name)
	}
	return def, def.Schema != nil
}

func (p *parser) checkKeys(o *object, path string, allowed []string) {
	for _, k := range o.keys {
		if !slices.Contains(allowed, k) {
			p.fail(join(path, k), "unknown key %q (allowed: %s)", k, strings.Join(allowed, ", "))
		}
	}
}

func (p *parser) obj(v any, path string) *object {
	o, ok := v.(*object)
	if !ok {
		p.fail(path, "expected a mapping, got %s", describe(v))
		return nil
	}
	return o
}

func (p *parser) list(v any, path string) []any {
	l, ok := v.([]any)
	if !ok {
		p.fail(path, "expected a list, got %s", describe(v))
		return nil
	}
	return l
}

func (p *parser) str(v any, path string) string {
	s, ok := v.(string)
	if !ok {
		p.fail(path, "expected a string, got %s", describe(v))
		return ""
	}
	return s
}

func (p *parser) boolean(v any, path string) bool {
	b, ok := v.(bool)
	if !ok {
		p.fail(path, "expected a boolean, got %s", describe(v))
	}
	return b
}

func (p *parser) num(v any, path string) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	p.fail(path, "expected a number, got %s", describe(v))
	return 0
}

func (p *parser) count(v any, path string) int {
	f := p.num(v, path)
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		p.fail(path, "expected a non-negative integer, got %v", v)
		return 0
	}
	return int(f)
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *object:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func join(path, seg string) string {
	seg = strings.ReplaceAll(seg, "~", "~0")
	seg = strings.ReplaceAll(seg, "/", "~1")
	return path + "/" + seg
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
