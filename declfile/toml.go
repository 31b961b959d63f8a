package declfile

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// decodeTOML decodes a TOML document into an ordered tree. TOML maps carry
// no order, so keys are ranked by their first appearance in the document as
// reported by the decoder's metadata.
func decodeTOML(data []byte) (any, error) {
	var m map[string]any
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, err
	}
	order := map[string]int{}
	for i, k := range md.Keys() {
		p := strings.Join(k, "\x00")
		if _, ok := order[p]; !ok {
			order[p] = i
		}
	}
	return fromTOML(m, nil, order), nil
}

func fromTOML(v any, path []string, order map[string]int) any {
	switch t := v.(type) {
	case map[string]any:
		prefix := strings.Join(path, "\x00")
		rank := func(k string) int {
			p := k
			if prefix != "" {
				p = prefix + "\x00" + k
			}
			if i, ok := order[p]; ok {
				return i
			}
			return len(order)
		}
		o := fromMap(t, rank)
		for _, k := range o.keys {
			o.vals[k] = fromTOML(o.vals[k], append(path[:len(path):len(path)], k), order)
		}
		return o
	case []map[string]any:
		// array of tables: elements share the table's key path
		out := make([]any, 0, len(t))
		for _, e := range t {
			out = append(out, fromTOML(e, path, order))
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			out = append(out, fromTOML(e, path, order))
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	}
	return v
}
