package dsl_test

import (
	"reflect"
	"testing"

	g "github.com/reoring/contentschema/dsl"
)

func TestObject_FieldChain(t *testing.T) {
	o := g.Object().
		Field("title", g.String()).Describe("Title").
		Field("draft", g.Boolean()).Default(false).
		Field("tags", g.Array(g.String())).Optional().ErrorMessage("minItems", "need one").
		Object()

	if len(o.Fields) != 3 {
		t.Fatalf("fields = %d", len(o.Fields))
	}
	title, _ := o.Lookup("title")
	if title.Mods.Description != "Title" || title.Mods.Optional {
		t.Fatalf("title mods = %+v", title.Mods)
	}
	draft, _ := o.Lookup("draft")
	if !draft.Mods.HasDefault || draft.Mods.Default != false {
		t.Fatalf("draft mods = %+v", draft.Mods)
	}
	tags, _ := o.Lookup("tags")
	if !tags.Mods.Optional || tags.Mods.ErrorMessages["minItems"] != "need one" {
		t.Fatalf("tags mods = %+v", tags.Mods)
	}
}

func TestObject_RedeclareKeepsPosition(t *testing.T) {
	o := g.Object().
		Field("a", g.String()).Optional().
		Field("b", g.Number()).
		Field("a", g.Boolean()).
		Object()
	if o.Fields[0].Name != "a" || o.Fields[1].Name != "b" || len(o.Fields) != 2 {
		t.Fatalf("fields = %+v", o.Fields)
	}
	if o.Fields[0].Node.Kind() != g.KindBoolean || o.Fields[0].Mods.Optional {
		t.Fatalf("redeclared field should replace node and modifiers: %+v", o.Fields[0])
	}
}

func TestObject_ExtendLeavesInputsAlone(t *testing.T) {
	base := g.Object().Field("id", g.String()).Object()
	more := g.Object().Field("n", g.Number()).Optional().Object()
	ext := base.Extend(more)

	if len(base.Fields) != 1 || len(more.Fields) != 1 {
		t.Fatalf("inputs modified")
	}
	var names []string
	for _, f := range ext.Fields {
		names = append(names, f.Name)
	}
	if !reflect.DeepEqual(names, []string{"id", "n"}) {
		t.Fatalf("names = %v", names)
	}
	if n, _ := ext.Lookup("n"); !n.Mods.Optional {
		t.Fatalf("modifiers not carried over")
	}
}

func TestModifiers_WrappersCollapse(t *testing.T) {
	m := g.Describe(g.Optional(g.String()), "x")
	if _, nested := m.Inner.(*g.ModifiedSchema); nested {
		t.Fatalf("wrappers should collapse")
	}
	if !m.Mods.Optional || m.Mods.Description != "x" {
		t.Fatalf("mods = %+v", m.Mods)
	}
}

func TestModifiers_Merge(t *testing.T) {
	inner := g.Modifiers{Description: "inner", ErrorMessages: map[string]string{"minLength": "a"}}
	outer := g.Modifiers{Optional: true, Default: 1, HasDefault: true, ErrorMessages: map[string]string{"minLength": "b", "maxLength": "c"}}
	got := inner.Merge(outer)
	if !got.Optional || got.Default != 1 || got.Description != "inner" {
		t.Fatalf("merged = %+v", got)
	}
	if !reflect.DeepEqual(got.ErrorMessages, map[string]string{"minLength": "b", "maxLength": "c"}) {
		t.Fatalf("messages = %v", got.ErrorMessages)
	}
	if inner.ErrorMessages["minLength"] != "a" {
		t.Fatalf("merge mutated its receiver")
	}
	if !(g.Modifiers{}).IsZero() || got.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestPrimitives_Messages(t *testing.T) {
	s := g.String().Min(3, "too short").Max(10).Email("bad email")
	if *s.MinLength != 3 || *s.MaxLength != 10 || s.Format != g.FormatEmail {
		t.Fatalf("string = %+v", s)
	}
	want := map[string]string{"minLength": "too short", "format": "bad email"}
	if !reflect.DeepEqual(s.ErrorMessages, want) {
		t.Fatalf("messages = %v", s.ErrorMessages)
	}

	n := g.Number().Int().Positive()
	if !n.Integer || n.ExclusiveMinimum == nil || *n.ExclusiveMinimum != 0 || n.Minimum != nil {
		t.Fatalf("number = %+v", n)
	}

	a := g.Array(g.String()).Nonempty("need one")
	if *a.MinItems != 1 || a.ErrorMessages["minItems"] != "need one" {
		t.Fatalf("array = %+v", a)
	}
}

func TestParseIdent(t *testing.T) {
	cases := map[string]g.Identifier{
		"consts.TAGS": {Module: "consts", Name: "TAGS"},
		"TAGS":        {Name: "TAGS"},
		"a.b.C":       {Module: "a.b", Name: "C"},
		".hidden":     {Name: ".hidden"},
		"trailing.":   {Name: "trailing."},
	}
	for in, want := range cases {
		if got := g.ParseIdent(in); got != want {
			t.Errorf("ParseIdent(%q) = %+v, want %+v", in, got, want)
		}
	}
	if g.IdentIn("m", "n").String() != "m.n" || g.Ident("n").String() != "n" {
		t.Fatalf("String mismatch")
	}
}

func TestKind_String(t *testing.T) {
	if g.KindDiscriminatedUnion.String() != "discriminatedUnion" || g.Kind(-1).String() != "unknown" {
		t.Fatalf("kind names")
	}
	if g.CoerceDate().Kind() != g.Date().Kind() {
		t.Fatalf("coerced date kind")
	}
}
