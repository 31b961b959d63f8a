package ir

// Walk calls fn for s and every schema below it in pre-order. Returning false
// from fn skips the children of that node.
func Walk(s Schema, fn func(Schema) bool) {
	if s == nil || !fn(s) {
		return
	}
	switch t := s.(type) {
	case *Array:
		Walk(t.Item.Schema, fn)
	case *Tuple:
		for _, it := range t.Items {
			Walk(it.Schema, fn)
		}
	case *Object:
		for _, f := range t.Fields {
			Walk(f.Schema, fn)
		}
	case *Record:
		Walk(t.Value.Schema, fn)
	case *Union:
		for _, v := range t.Variants {
			Walk(v.Schema, fn)
		}
	case *DiscriminatedUnion:
		for _, v := range t.Variants {
			Walk(v.Schema, fn)
		}
	}
}

// References returns the target collections of all references under s, in
// first-seen order without duplicates.
func References(s Schema) []string {
	var out []string
	seen := map[string]bool{}
	Walk(s, func(n Schema) bool {
		if r, ok := n.(*Reference); ok && !seen[r.Collection] {
			seen[r.Collection] = true
			out = append(out, r.Collection)
		}
		return true
	})
	return out
}
