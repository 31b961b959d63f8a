package dsl

import "context"

// ModifiedSchema attaches modifiers to a node outside of an object field, for
// example to an array element or a union variant.
type ModifiedSchema struct {
	Inner Node
	Mods  Modifiers
}

func (*ModifiedSchema) Kind() Kind { return KindModified }

func modify(n Node, fn func(*Modifiers)) *ModifiedSchema {
	if m, ok := n.(*ModifiedSchema); ok {
		out := &ModifiedSchema{Inner: m.Inner, Mods: m.Mods.Merge(Modifiers{})}
		fn(&out.Mods)
		return out
	}
	out := &ModifiedSchema{Inner: n}
	fn(&out.Mods)
	return out
}

// Optional marks n as optional.
func Optional(n Node) *ModifiedSchema {
	return modify(n, func(m *Modifiers) { m.Optional = true })
}

// Default attaches a default value (or an Identifier naming one) to n.
func Default(n Node, v any) *ModifiedSchema {
	return modify(n, func(m *Modifiers) { m.Default, m.HasDefault = v, true })
}

// Describe attaches a description to n.
func Describe(n Node, text string) *ModifiedSchema {
	return modify(n, func(m *Modifiers) { m.Description = text })
}

// EffectKind distinguishes refinements from transforms.
type EffectKind int

const (
	EffectRefine EffectKind = iota
	EffectTransform
)

// EffectSchema wraps a node with executable logic. Effects have no JSON Schema
// form; only Inner is exported.
type EffectSchema struct {
	Inner  Node
	Effect EffectKind
	Name   string
	Refine func(ctx context.Context, v any) error
	Apply  func(ctx context.Context, v any) (any, error)
}

func (*EffectSchema) Kind() Kind { return KindEffect }

// Refine attaches a predicate to n.
func Refine(n Node, name string, fn func(ctx context.Context, v any) error) *EffectSchema {
	return &EffectSchema{Inner: n, Effect: EffectRefine, Name: name, Refine: fn}
}

// Transform attaches a value transform to n.
func Transform(n Node, name string, fn func(ctx context.Context, v any) (any, error)) *EffectSchema {
	return &EffectSchema{Inner: n, Effect: EffectTransform, Name: name, Apply: fn}
}
