package declfile

import "sort"

// object is a decoded mapping that remembers key order. Every front end
// (YAML, TOML, CUE) produces trees of *object, []any and scalars.
type object struct {
	keys []string
	vals map[string]any
}

func newObject(n int) *object {
	return &object{keys: make([]string, 0, n), vals: make(map[string]any, n)}
}

func (o *object) set(k string, v any) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *object) get(k string) (any, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *object) has(k string) bool {
	_, ok := o.vals[k]
	return ok
}

// fromMap builds an object from a plain map. Keys are ordered by rank, then
// alphabetically for keys rank does not know.
func fromMap(m map[string]any, rank func(k string) int) *object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	o := newObject(len(keys))
	for _, k := range keys {
		o.set(k, m[k])
	}
	return o
}
