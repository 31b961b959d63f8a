package dsl

// Kind identifies a DSL node variant.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindDate
	KindLiteral
	KindEnum
	KindArray
	KindTuple
	KindObject
	KindRecord
	KindUnion
	KindDiscriminatedUnion
	KindReference
	KindImage

	// Pre-resolution only. The resolver removes these.
	KindIdent
	KindExpr
	KindModified
	KindEffect
)

var kindNames = [...]string{
	KindString:             "string",
	KindNumber:             "number",
	KindBoolean:            "boolean",
	KindDate:               "date",
	KindLiteral:            "literal",
	KindEnum:               "enum",
	KindArray:              "array",
	KindTuple:              "tuple",
	KindObject:             "object",
	KindRecord:             "record",
	KindUnion:              "union",
	KindDiscriminatedUnion: "discriminatedUnion",
	KindReference:          "reference",
	KindImage:              "image",
	KindIdent:              "ident",
	KindExpr:               "expr",
	KindModified:           "modified",
	KindEffect:             "effect",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a schema definition node. Trees are built once with the builders in
// this package and treated as immutable afterwards.
type Node interface {
	Kind() Kind
}

// Modifiers are attached to a node where it is used as an object field, an
// array element, a tuple member or a union variant.
type Modifiers struct {
	Optional    bool
	Default     any // may be an Identifier; resolved before lowering
	HasDefault  bool
	Description string
	// ErrorMessages maps a JSON Schema keyword (minItems, minLength, ...) to a
	// custom message.
	ErrorMessages map[string]string
}

// IsZero reports whether no modifier is set.
func (m Modifiers) IsZero() bool {
	return !m.Optional && !m.HasDefault && m.Description == "" && len(m.ErrorMessages) == 0
}

// Merge overlays outer on m: outer description/default win, optional is sticky,
// error messages are merged with outer taking precedence.
func (m Modifiers) Merge(outer Modifiers) Modifiers {
	out := m
	out.Optional = m.Optional || outer.Optional
	if outer.HasDefault {
		out.Default = outer.Default
		out.HasDefault = true
	}
	if outer.Description != "" {
		out.Description = outer.Description
	}
	if len(m.ErrorMessages) > 0 || len(outer.ErrorMessages) > 0 {
		msgs := make(map[string]string, len(m.ErrorMessages)+len(outer.ErrorMessages))
		for k, v := range m.ErrorMessages {
			msgs[k] = v
		}
		for k, v := range outer.ErrorMessages {
			msgs[k] = v
		}
		out.ErrorMessages = msgs
	}
	return out
}

// setMessage records a custom message for keyword when one was supplied.
func setMessage(dst *map[string]string, keyword string, msg []string) {
	if len(msg) == 0 || msg[0] == "" {
		return
	}
	if *dst == nil {
		*dst = map[string]string{}
	}
	(*dst)[keyword] = msg[0]
}
