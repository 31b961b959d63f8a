package dsl

// RecordSchema describes an object with arbitrary keys whose values all follow
// one schema.
type RecordSchema struct {
	Value Node
}

// Record builds a record schema from a value schema.
func Record(value Node) *RecordSchema { return &RecordSchema{Value: value} }

func (*RecordSchema) Kind() Kind { return KindRecord }
