package dsl

// ArraySchema describes a list of elements sharing one schema.
type ArraySchema struct {
	Elem     Node
	MinItems *int
	MaxItems *int

	ErrorMessages map[string]string
}

// Array builds an array schema from an element schema.
func Array(elem Node) *ArraySchema { return &ArraySchema{Elem: elem} }

func (*ArraySchema) Kind() Kind { return KindArray }

// Min sets the minimum number of elements. An optional message is exported as
// errorMessage.minItems.
func (a *ArraySchema) Min(n int, msg ...string) *ArraySchema {
	a.MinItems = &n
	setMessage(&a.ErrorMessages, "minItems", msg)
	return a
}

// Max sets the maximum number of elements.
func (a *ArraySchema) Max(n int, msg ...string) *ArraySchema {
	a.MaxItems = &n
	setMessage(&a.ErrorMessages, "maxItems", msg)
	return a
}

// Length fixes the number of elements.
func (a *ArraySchema) Length(n int, msg ...string) *ArraySchema {
	return a.Min(n, msg...).Max(n, msg...)
}

// Nonempty is Min(1).
func (a *ArraySchema) Nonempty(msg ...string) *ArraySchema { return a.Min(1, msg...) }

// TupleSchema describes a fixed-length list with positional element schemas.
type TupleSchema struct {
	Items []Node
}

// Tuple builds a tuple schema.
func Tuple(items ...Node) *TupleSchema {
	return &TupleSchema{Items: append([]Node(nil), items...)}
}

func (*TupleSchema) Kind() Kind { return KindTuple }
