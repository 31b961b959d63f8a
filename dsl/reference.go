package dsl

// ReferenceSchema points at an entry of another collection. The target is kept
// for diagnostics only; the exported shape does not depend on it.
type ReferenceSchema struct {
	Collection string
}

// Reference builds a reference to entries of the named collection.
func Reference(collection string) *ReferenceSchema {
	return &ReferenceSchema{Collection: collection}
}

func (*ReferenceSchema) Kind() Kind { return KindReference }
