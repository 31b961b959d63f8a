// Package modules holds the closed identifier table consulted by the resolver.
//
// A Table maps module names to their declarations: constants (values, possibly
// aliases of other identifiers), reusable schema fragments, and imports of names
// from other modules. Lookups follow imports transitively, so a name imported
// through several modules resolves to the same binding as if declared locally.
package modules

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/contentschema/dsl"
)

var (
	// ErrUnknownModule reports a lookup in a module that was never declared.
	ErrUnknownModule = errors.New("modules: unknown module")
	// ErrUndefined reports a name with no declaration or import in its module.
	ErrUndefined = errors.New("modules: undefined identifier")
	// ErrImportCycle reports imports that lead back to themselves.
	ErrImportCycle = errors.New("modules: import cycle")
)

// Binding is what a name is declared as: either a constant value or a schema
// fragment.
type Binding struct {
	Value    any      // constant; may be a dsl.Identifier alias or dsl.Expr
	Fragment dsl.Node // reusable schema
}

// IsFragment reports whether the binding is a schema fragment.
func (b Binding) IsFragment() bool { return b.Fragment != nil }

// Resolved is the result of a lookup: the binding and where it was declared.
// Identifiers inside a binding resolve relative to Module.
type Resolved struct {
	Module string
	Name   string
	Binding
}

// Ident returns the canonical identifier of the declaration.
func (r Resolved) Ident() dsl.Identifier { return dsl.IdentIn(r.Module, r.Name) }

type importRef struct {
	from string
	name string
}

// Module is one namespace in a Table.
type Module struct {
	name     string
	bindings map[string]Binding
	imports  map[string]importRef
	order    []string
}

// Table is a set of modules. Populate it before resolving; it is safe for
// concurrent lookups once no more declarations are added.
type Table struct {
	modules map[string]*Module
}

// New returns an empty table.
func New() *Table {
	return &Table{modules: map[string]*Module{}}
}

// Module returns the named module, creating it when needed.
func (t *Table) Module(name string) *Module {
	if m, ok := t.modules[name]; ok {
		return m
	}
	m := &Module{name: name, bindings: map[string]Binding{}, imports: map[string]importRef{}}
	t.modules[name] = m
	return m
}

// Has reports whether a module was declared.
func (t *Table) Has(name string) bool {
	_, ok := t.modules[name]
	return ok
}

// Names returns the declared module names, sorted.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.modules))
	for k := range t.modules {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Const declares a constant. v may be a literal, a []any of literals, a
// map[string]any, a dsl.Identifier (alias) or a dsl.Expr.
func (m *Module) Const(name string, v any) *Module {
	m.declare(name, Binding{Value: v})
	return m
}

// Fragment declares a reusable schema.
func (m *Module) Fragment(name string, n dsl.Node) *Module {
	m.declare(name, Binding{Fragment: n})
	return m
}

// Import makes from.name visible in m as local.
func (m *Module) Import(local, from, name string) *Module {
	if _, ok := m.imports[local]; !ok {
		if _, declared := m.bindings[local]; !declared {
			m.order = append(m.order, local)
		}
	}
	delete(m.bindings, local)
	m.imports[local] = importRef{from: from, name: name}
	return m
}

// Declared returns local names (declarations and imports) in declaration order.
func (m *Module) Declared() []string { return append([]string(nil), m.order...) }

func (m *Module) declare(name string, b Binding) {
	_, isBinding := m.bindings[name]
	_, isImport := m.imports[name]
	if !isBinding && !isImport {
		m.order = append(m.order, name)
	}
	delete(m.imports, name)
	m.bindings[name] = b
}

// Lookup finds name as seen from module, following imports across modules.
func (t *Table) Lookup(module, name string) (Resolved, error) {
	var chain []string
	seen := map[string]bool{}
	for {
		key := module + "." + name
		chain = append(chain, key)
		if seen[key] {
			return Resolved{}, fmt.Errorf("%w: %s", ErrImportCycle, strings.Join(chain, " -> "))
		}
		seen[key] = true

		m, ok := t.modules[module]
		if !ok {
			return Resolved{}, fmt.Errorf("%w: %q", ErrUnknownModule, module)
		}
		if b, ok := m.bindings[name]; ok {
			return Resolved{Module: module, Name: name, Binding: b}, nil
		}
		ref, ok := m.imports[name]
		if !ok {
			return Resolved{}, fmt.Errorf("%w: %s", ErrUndefined, key)
		}
		module, name = ref.from, ref.name
	}
}
