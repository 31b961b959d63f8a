package declfile

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// decodeCUE evaluates a CUE file and converts the result into an ordered
// tree. The file must evaluate to concrete data; CUE's own references and
// unification may be used to build that data.
func decodeCUE(name string, data []byte) (any, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("CUE compilation failed: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE value is not concrete: %w", err)
	}
	return fromCUE(v)
}

func fromCUE(v cue.Value) (any, error) {
	switch v.Kind() {
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		o := newObject(0)
		for iter.Next() {
			ev, err := fromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			o.set(iter.Selector().Unquoted(), ev)
		}
		return o, nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, err
		}
		var out []any
		for iter.Next() {
			ev, err := fromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		if out == nil {
			out = []any{}
		}
		return out, nil
	case cue.NullKind:
		return nil, nil
	case cue.BoolKind:
		return v.Bool()
	case cue.IntKind:
		return v.Int64()
	case cue.FloatKind:
		return v.Float64()
	case cue.StringKind:
		return v.String()
	}
	return nil, fmt.Errorf("unsupported CUE value of kind %s at %s", v.Kind(), v.Path())
}
