package lower

import (
	ir "github.com/reoring/contentschema/internal/ir"
	js "github.com/reoring/contentschema/jsonschema"
)

// applyModifiers adds annotations after the variant rule. Optional only
// affects the parent's required list and leaves no trace here.
func applyModifiers(s *js.Schema, m ir.Modifiers) {
	if m.Description != "" {
		s.Description = m.Description
		s.MarkdownDescription = m.Description
	}
	if m.HasDefault {
		s.Default = js.ValueOf(m.Default)
	}
	if msgs := errorMessages(s, m.ErrorMessages); len(msgs) > 0 {
		s.ErrorMessage = msgs
	}
}

// errorMessages keeps the messages whose keyword made it into s.
func errorMessages(s *js.Schema, in map[string]string) map[string]string {
	var out map[string]string
	for kw, msg := range in {
		if msg == "" || !s.HasKeyword(kw) {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(in))
		}
		out[kw] = msg
	}
	return out
}
