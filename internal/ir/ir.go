package ir

// Package ir defines the fully-resolved node model consumed by the lowering
// engine. There is no identifier variant: a tree of these nodes never refers to
// anything outside itself. This package is internal and not part of the public API.

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodeString NodeKind = iota
	NodeNumber
	NodeBoolean
	NodeDate
	NodeLiteral
	NodeEnum
	NodeArray
	NodeTuple
	NodeObject
	NodeRecord
	NodeUnion
	NodeDiscriminatedUnion
	NodeReference
	NodeImage
)

// Schema is the root IR node interface.
type Schema interface {
	Kind() NodeKind
}

// Modifiers are the resolved field modifiers of a slot.
type Modifiers struct {
	Optional      bool
	Default       any // concrete value
	HasDefault    bool
	Description   string
	ErrorMessages map[string]string // JSON Schema keyword -> message
}

// Slot is a schema in a position that can carry modifiers.
type Slot struct {
	Schema Schema
	Mods   Modifiers
}

// String is a string with optional length bounds, format and pattern.
type String struct {
	MinLength *int
	MaxLength *int
	Format    string // DSL format name (email, url, ...)
	Pattern   string
}

func (*String) Kind() NodeKind { return NodeString }

// Number is a number or integer with optional bounds.
type Number struct {
	Integer          bool
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
}

func (*Number) Kind() NodeKind { return NodeNumber }

// Boolean is a boolean.
type Boolean struct{}

func (*Boolean) Kind() NodeKind { return NodeBoolean }

// Date is a date; strict and coercing declarations resolve to the same node.
type Date struct{}

func (*Date) Kind() NodeKind { return NodeDate }

// Literal matches exactly Value (string, float64, bool or nil).
type Literal struct {
	Value any
}

func (*Literal) Kind() NodeKind { return NodeLiteral }

// Enum matches one of Values.
type Enum struct {
	Values []string
}

func (*Enum) Kind() NodeKind { return NodeEnum }

// Array represents an array of items.
type Array struct {
	Item     Slot
	MinItems *int
	MaxItems *int
}

func (*Array) Kind() NodeKind { return NodeArray }

// Tuple is a fixed-length array with positional items.
type Tuple struct {
	Items []Slot
}

func (*Tuple) Kind() NodeKind { return NodeTuple }

// Object represents a closed object with fields in declaration order.
type Object struct {
	Fields []Field
}

func (*Object) Kind() NodeKind { return NodeObject }

// Field maps a JSON name to a Schema and its modifiers.
type Field struct {
	Name string
	Slot
}

// Record is an open object whose values follow Value.
type Record struct {
	Value Slot
}

func (*Record) Kind() NodeKind { return NodeRecord }

// Union matches any of Variants.
type Union struct {
	Variants []Slot
}

func (*Union) Kind() NodeKind { return NodeUnion }

// DiscriminatedUnion represents a union of objects keyed by Discriminator.
// Every variant slot holds an *Object.
type DiscriminatedUnion struct {
	Discriminator string
	Variants      []Slot
}

func (*DiscriminatedUnion) Kind() NodeKind { return NodeDiscriminatedUnion }

// Reference points at an entry of Collection.
type Reference struct {
	Collection string
}

func (*Reference) Kind() NodeKind { return NodeReference }

// Image is an image path.
type Image struct{}

func (*Image) Kind() NodeKind { return NodeImage }
