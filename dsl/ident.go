package dsl

import "strings"

// Identifier refers to a named constant or reusable fragment. An empty Module
// means the module the enclosing definition was declared in.
//
// Used as a Node it expands to the fragment it names; used as a default or an
// enum source it resolves to the constant's value.
type Identifier struct {
	Module string
	Name   string
}

// Ident refers to a name visible in the current module (declared or imported).
func Ident(name string) Identifier { return Identifier{Name: name} }

// IdentIn refers to a name exported by another module.
func IdentIn(module, name string) Identifier { return Identifier{Module: module, Name: name} }

func (Identifier) Kind() Kind { return KindIdent }

// String renders module.name, or name when unqualified.
func (id Identifier) String() string {
	if id.Module == "" {
		return id.Name
	}
	return id.Module + "." + id.Name
}

// ParseIdent splits "module.name" into an Identifier. A name without a dot is
// unqualified.
func ParseIdent(s string) Identifier {
	if i := strings.LastIndexByte(s, '.'); i > 0 && i < len(s)-1 {
		return Identifier{Module: s[:i], Name: s[i+1:]}
	}
	return Identifier{Name: s}
}

// Expr is a runtime-computed expression with no constant value (for example
// a call to new Date()). It can appear wherever a value is expected and always
// fails resolution.
type Expr struct {
	Source string
}

// Computed wraps an expression source text.
func Computed(src string) Expr { return Expr{Source: src} }

func (Expr) Kind() Kind { return KindExpr }
