package dsl

// UnionSchema matches any of its variants.
type UnionSchema struct {
	Variants []Node
}

// Union builds a union.
func Union(variants ...Node) *UnionSchema {
	return &UnionSchema{Variants: append([]Node(nil), variants...)}
}

func (*UnionSchema) Kind() Kind { return KindUnion }

// DiscriminatedUnionSchema is a union of objects told apart by one key. Every
// variant must resolve to an object.
type DiscriminatedUnionSchema struct {
	Discriminator string
	Variants      []Node
}

// DiscriminatedUnion builds a discriminated union over object variants.
func DiscriminatedUnion(key string, variants ...Node) *DiscriminatedUnionSchema {
	return &DiscriminatedUnionSchema{Discriminator: key, Variants: append([]Node(nil), variants...)}
}

func (*DiscriminatedUnionSchema) Kind() Kind { return KindDiscriminatedUnion }
