package jsonschema

import (
	"bytes"
	"strings"
	"testing"
)

func TestProperties_OrderAndReplace(t *testing.T) {
	p := NewProperties()
	p.Set("b", &Schema{Type: "string"})
	p.Set("a", &Schema{Type: "number"})
	p.Set("b", &Schema{Type: "boolean"})

	if got := strings.Join(p.Keys(), ","); got != "b,a" {
		t.Fatalf("keys = %s", got)
	}
	b, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"b":{"type":"boolean"},"a":{"type":"number"}}` {
		t.Fatalf("json = %s", b)
	}
	var nilProps *Properties
	if nilProps.Len() != 0 || nilProps.Keys() != nil {
		t.Fatalf("nil properties should be empty")
	}
}

func TestDocument_Envelope(t *testing.T) {
	doc := NewDocument("blog", Object())
	got, err := Marshal(doc, "")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"$ref":"#/definitions/blog","definitions":{"blog":{"type":"object","properties":{},"additionalProperties":false}},"$schema":"http://json-schema.org/draft-07/schema#"}` + "\n"
	if string(got) != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestEncode_IndentAndNoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	s := &Schema{Type: "string", Description: "<b>bold</b> & more"}
	if err := Encode(&buf, s, "  "); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := "{\n  \"type\": \"string\",\n  \"description\": \"<b>bold</b> & more\"\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestSchema_HasKeyword(t *testing.T) {
	n := 1
	s := &Schema{Type: "array", MinItems: &n, AdditionalProperties: false}
	for _, kw := range []string{"type", "minItems", "additionalProperties"} {
		if !s.HasKeyword(kw) {
			t.Errorf("%s should be present", kw)
		}
	}
	for _, kw := range []string{"maxItems", "enum", "pattern", "bogus"} {
		if s.HasKeyword(kw) {
			t.Errorf("%s should be absent", kw)
		}
	}
	if !Object().IsObject() || (&Schema{Type: "object"}).IsObject() {
		t.Fatalf("IsObject mismatch")
	}
}

func TestSchema_NullValuesAreWritten(t *testing.T) {
	b, err := Marshal(&Schema{Type: "null", Const: ValueOf(nil), Default: ValueOf(nil)}, "")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := strings.TrimSpace(string(b)); got != `{"type":"null","const":null,"default":null}` {
		t.Fatalf("json = %s", got)
	}
}

func TestSchema_TupleItemsFollowBounds(t *testing.T) {
	n := 1
	tuple := &Schema{Items: []*Schema{{Type: "string"}}}
	b, err := Marshal(tuple, "")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := strings.TrimSpace(string(b)); got != `{"items":[{"type":"string"}]}` {
		t.Fatalf("bare tuple = %s", got)
	}

	tuple.Type, tuple.MinItems, tuple.MaxItems = "array", &n, &n
	tuple.ErrorMessage = map[string]string{"minItems": "one"}
	b, err = Marshal(tuple, "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{
  "type": "array",
  "minItems": 1,
  "maxItems": 1,
  "items": [
    {
      "type": "string"
    }
  ],
  "errorMessage": {
    "minItems": "one"
  }
}
`
	if string(b) != want {
		t.Fatalf("indented tuple:\n%s", b)
	}
}
