// Package irconv resolves DSL trees into IR.
//
// Every identifier is replaced by its concrete value, and every fragment
// identifier is expanded into a fresh subtree at each use site, so the
// resulting IR never refers to anything outside itself. Refine and transform
// effects are unwrapped and discarded.
package irconv

import (
	"errors"
	"strings"

	contentschema "github.com/reoring/contentschema"
	"github.com/reoring/contentschema/dsl"
	"github.com/reoring/contentschema/i18n"
	ir "github.com/reoring/contentschema/internal/ir"
	"github.com/reoring/contentschema/modules"
)

// Scope answers identifier lookups. *modules.Table implements it.
type Scope interface {
	Lookup(module, name string) (modules.Resolved, error)
}

// Resolve converts n into IR. Unqualified identifiers are looked up in module.
// A nil scope resolves no identifiers. All failures found in the tree are
// returned together as contentschema.Issues.
func Resolve(n dsl.Node, module string, scope Scope) (ir.Slot, error) {
	r := &resolver{scope: scope}
	slot, ok := r.node(n, module, "")
	if len(r.iss) > 0 {
		return ir.Slot{}, r.iss
	}
	if !ok {
		// a failed node always records an issue
		return ir.Slot{}, contentschema.Issues{{Path: "/", Code: contentschema.CodeInvalidRoot, Message: i18n.T(contentschema.CodeInvalidRoot, nil)}}
	}
	return slot, nil
}

// ResolveValue resolves a constant value (for example a default) on its own.
func ResolveValue(v any, module string, scope Scope) (any, error) {
	r := &resolver{scope: scope}
	out, _ := r.value(v, module, "")
	if len(r.iss) > 0 {
		return nil, r.iss
	}
	return out, nil
}

type resolver struct {
	scope Scope
	// stack holds the identifiers currently being expanded, innermost last.
	stack []string
	iss   contentschema.Issues
}

func (r *resolver) fail(path, code string, id string, cause error) {
	data := map[string]string{"identifier": id}
	if code == contentschema.CodeUnknownModule {
		data["module"] = moduleOf(id)
	}
	r.iss = contentschema.AppendIssues(r.iss, contentschema.Issue{
		Path:       pathOrRoot(path),
		Code:       code,
		Identifier: id,
		Message:    i18n.T(code, data),
		Cause:      cause,
	})
}

// lookup finds id from module and guards against self-referencing expansions.
// The returned release func must be called once the binding has been expanded.
func (r *resolver) lookup(id dsl.Identifier, module, path string) (modules.Resolved, func(), bool) {
	if id.Module == "" {
		id.Module = module
	}
	if r.scope == nil {
		r.fail(path, contentschema.CodeUnresolvedIdentifier, id.String(), nil)
		return modules.Resolved{}, nil, false
	}
	res, err := r.scope.Lookup(id.Module, id.Name)
	if err != nil {
		code := contentschema.CodeUnresolvedIdentifier
		switch {
		case errors.Is(err, modules.ErrUnknownModule):
			code = contentschema.CodeUnknownModule
		case errors.Is(err, modules.ErrImportCycle):
			code = contentschema.CodeImportCycle
		}
		r.fail(path, code, id.String(), err)
		return modules.Resolved{}, nil, false
	}
	key := res.Ident().String()
	for _, k := range r.stack {
		if k == key {
			r.fail(path, contentschema.CodeIdentifierCycle, key, nil)
			return modules.Resolved{}, nil, false
		}
	}
	r.stack = append(r.stack, key)
	return res, func() { r.stack = r.stack[:len(r.stack)-1] }, true
}

// node resolves a schema position. ok=false means an issue was recorded.
func (r *resolver) node(n dsl.Node, module, path string) (ir.Slot, bool) {
	switch t := n.(type) {
	case nil:
		r.fail(path, contentschema.CodeInvalidFragment, "", nil)
		return ir.Slot{}, false
	case *dsl.ModifiedSchema:
		inner, ok := r.node(t.Inner, module, path)
		mods, mok := r.mods(t.Mods, module, path)
		if !ok || !mok {
			return ir.Slot{}, false
		}
		inner.Mods = mergeMods(inner.Mods, mods)
		return inner, true
	case *dsl.EffectSchema:
		// Effects have no exported form.
		return r.node(t.Inner, module, path)
	case dsl.Identifier:
		return r.fragment(t, module, path)
	case *dsl.Identifier:
		return r.fragment(*t, module, path)
	case dsl.Expr:
		r.fail(path, contentschema.CodeNonConstant, t.Source, nil)
		return ir.Slot{}, false
	case *dsl.FieldStep:
		return r.node(t.Object(), module, path)
	}
	s, msgs, ok := r.schema(n, module, path)
	if !ok {
		return ir.Slot{}, false
	}
	return ir.Slot{Schema: s, Mods: ir.Modifiers{ErrorMessages: msgs}}, true
}

// fragment expands a fragment identifier into a fresh subtree.
func (r *resolver) fragment(id dsl.Identifier, module, path string) (ir.Slot, bool) {
	res, release, ok := r.lookup(id, module, path)
	if !ok {
		return ir.Slot{}, false
	}
	defer release()
	if res.IsFragment() {
		return r.node(res.Fragment, res.Module, path)
	}
	switch v := res.Value.(type) {
	case dsl.Identifier:
		// const alias = otherFragment
		return r.fragment(v, res.Module, path)
	case dsl.Expr:
		r.fail(path, contentschema.CodeNonConstant, res.Ident().String(), nil)
	default:
		r.fail(path, contentschema.CodeInvalidFragment, res.Ident().String(), nil)
	}
	return ir.Slot{}, false
}

func (r *resolver) mods(m dsl.Modifiers, module, path string) (ir.Modifiers, bool) {
	out := ir.Modifiers{
		Optional:      m.Optional,
		Description:   m.Description,
		ErrorMessages: copyStrings(m.ErrorMessages),
	}
	if m.HasDefault {
		v, ok := r.value(m.Default, module, path)
		if !ok {
			return ir.Modifiers{}, false
		}
		out.Default, out.HasDefault = v, true
	}
	return out, true
}

// mergeMods overlays outer on inner the same way dsl.Modifiers.Merge does.
func mergeMods(inner, outer ir.Modifiers) ir.Modifiers {
	out := inner
	out.Optional = inner.Optional || outer.Optional
	if outer.HasDefault {
		out.Default, out.HasDefault = outer.Default, true
	}
	if outer.Description != "" {
		out.Description = outer.Description
	}
	if len(outer.ErrorMessages) > 0 {
		msgs := copyStrings(inner.ErrorMessages)
		if msgs == nil {
			msgs = map[string]string{}
		}
		for k, v := range outer.ErrorMessages {
			msgs[k] = v
		}
		out.ErrorMessages = msgs
	}
	return out
}

func copyStrings(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
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

func moduleOf(id string) string {
	if i := strings.LastIndexByte(id, '.'); i > 0 {
		return id[:i]
	}
	return id
}
