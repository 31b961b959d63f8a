package lower

import ir "github.com/reoring/contentschema/internal/ir"

// accumulator collects the required fields of one object in declaration
// order.
type accumulator struct {
	required []string
}

func newAccumulator(n int) *accumulator {
	return &accumulator{required: make([]string, 0, n)}
}

// add records a field. A field is required iff it is not optional and has no
// default.
func (a *accumulator) add(name string, m ir.Modifiers) {
	if m.Optional || m.HasDefault {
		return
	}
	a.required = append(a.required, name)
}

// Required returns the required field names in declaration order, or nil.
func (a *accumulator) Required() []string {
	if len(a.required) == 0 {
		return nil
	}
	return a.required
}
