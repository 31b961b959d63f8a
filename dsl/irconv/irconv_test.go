package irconv

import (
	"context"
	"errors"
	"reflect"
	"testing"

	contentschema "github.com/reoring/contentschema"
	d "github.com/reoring/contentschema/dsl"
	ir "github.com/reoring/contentschema/internal/ir"
	"github.com/reoring/contentschema/modules"
)

func table() *modules.Table {
	tbl := modules.New()
	tbl.Module("consts").
		Const("TAGS", []string{"a", "b"}).
		Const("LIMIT", 5).
		Const("NOW", d.Computed("Date.now()")).
		Const("MIXED", []any{"a", 1}).
		Const("ALIAS", d.Ident("TAGS"))
	tbl.Module("frags").
		Fragment("seo", d.Object().Field("title", d.String()).Object()).
		Fragment("tagged", d.Object().Field("tag", d.EnumOf(d.Ident("TAGS"))).Object()).
		Import("TAGS", "consts", "TAGS").
		Fragment("loop", d.Array(d.Ident("loop")))
	tbl.Module("main").
		Import("TAGS", "consts", "TAGS").
		Import("seo", "frags", "seo").
		Import("tagged", "frags", "tagged").
		Const("seoAlias", d.Ident("seo"))
	tbl.Module("cyc1").Import("x", "cyc2", "x")
	tbl.Module("cyc2").Import("x", "cyc1", "x")
	return tbl
}

func issuesOf(t *testing.T, err error) contentschema.Issues {
	t.Helper()
	iss, ok := contentschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	return iss
}

func TestResolve_EnumFromImportedConstant(t *testing.T) {
	slot, err := Resolve(d.EnumOf(d.Ident("TAGS")), "main", table())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	e, ok := slot.Schema.(*ir.Enum)
	if !ok {
		t.Fatalf("expected *ir.Enum, got %T", slot.Schema)
	}
	if !reflect.DeepEqual(e.Values, []string{"a", "b"}) {
		t.Fatalf("values = %v", e.Values)
	}

	local, err := Resolve(d.EnumOf(d.IdentIn("consts", "TAGS")), "", table())
	if err != nil {
		t.Fatalf("resolve qualified: %v", err)
	}
	if !reflect.DeepEqual(local.Schema, slot.Schema) {
		t.Fatalf("local and imported enums differ")
	}
}

func TestResolve_InlineEnumMembersMayBeIdentifiers(t *testing.T) {
	tbl := table()
	tbl.Module("main").Const("DRAFT", "draft")
	slot, err := Resolve(d.EnumValues(d.Ident("DRAFT"), "published"), "main", tbl)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := slot.Schema.(*ir.Enum).Values; !reflect.DeepEqual(got, []string{"draft", "published"}) {
		t.Fatalf("values = %v", got)
	}
}

func TestResolve_AliasConstant(t *testing.T) {
	slot, err := Resolve(d.EnumOf(d.Ident("ALIAS")), "consts", table())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := slot.Schema.(*ir.Enum).Values; !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("values = %v", got)
	}
}

func TestResolve_DefaultFromConstant(t *testing.T) {
	obj := d.Object().Field("n", d.Number()).Default(d.IdentIn("consts", "LIMIT")).Object()
	slot, err := Resolve(obj, "main", table())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	f := slot.Schema.(*ir.Object).Fields[0]
	if !f.Mods.HasDefault || f.Mods.Default != float64(5) {
		t.Fatalf("default = %#v", f.Mods.Default)
	}
}

func TestResolve_FragmentExpandedFreshPerUse(t *testing.T) {
	obj := d.Object().
		Field("a", d.Ident("seo")).
		Field("b", d.Ident("seoAlias")).Optional().
		Object()
	slot, err := Resolve(obj, "main", table())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	fields := slot.Schema.(*ir.Object).Fields
	a, b := fields[0].Schema.(*ir.Object), fields[1].Schema.(*ir.Object)
	if a == b {
		t.Fatalf("fragment subtree shared between use sites")
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expansions differ: %#v vs %#v", a, b)
	}
	if !fields[1].Mods.Optional || fields[0].Mods.Optional {
		t.Fatalf("use-site modifiers leaked: %+v / %+v", fields[0].Mods, fields[1].Mods)
	}
}

func TestResolve_FragmentIdentifiersUseDefiningModule(t *testing.T) {
	tbl := table()
	// "other" has no TAGS of its own; the fragment must still see frags.TAGS
	tbl.Module("other").Import("tagged", "frags", "tagged")
	slot, err := Resolve(d.Ident("tagged"), "other", tbl)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	tag := slot.Schema.(*ir.Object).Fields[0].Schema.(*ir.Enum)
	if !reflect.DeepEqual(tag.Values, []string{"a", "b"}) {
		t.Fatalf("values = %v", tag.Values)
	}
}

func TestResolve_EffectsDropped(t *testing.T) {
	n := d.Transform(d.Refine(d.String().Min(2), "nonblank", func(context.Context, any) error { return nil }),
		"trim", func(_ context.Context, v any) (any, error) { return v, nil })
	slot, err := Resolve(n, "", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	s, ok := slot.Schema.(*ir.String)
	if !ok || s.MinLength == nil || *s.MinLength != 2 {
		t.Fatalf("structural bound lost: %#v", slot.Schema)
	}
}

func TestResolve_ModifiedWrapperMerges(t *testing.T) {
	n := d.Describe(d.Optional(d.Default(d.Boolean(), false)), "Draft flag")
	slot, err := Resolve(n, "", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	m := slot.Mods
	if !m.Optional || !m.HasDefault || m.Default != false || m.Description != "Draft flag" {
		t.Fatalf("mods = %+v", m)
	}
}

func TestResolve_DiscriminatedVariantKeepsModifiers(t *testing.T) {
	n := d.DiscriminatedUnion("kind",
		d.Describe(d.Object().Field("kind", d.Literal("a")).Object(), "Variant A"),
		d.Ident("seo"),
	)
	slot, err := Resolve(n, "main", table())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	du, ok := slot.Schema.(*ir.DiscriminatedUnion)
	if !ok || len(du.Variants) != 2 {
		t.Fatalf("expected two variants, got %#v", slot.Schema)
	}
	if got := du.Variants[0].Mods.Description; got != "Variant A" {
		t.Fatalf("description = %q", got)
	}
	if _, ok := du.Variants[1].Schema.(*ir.Object); !ok {
		t.Fatalf("fragment variant = %T", du.Variants[1].Schema)
	}
}

func TestResolve_Failures(t *testing.T) {
	cases := []struct {
		name  string
		node  d.Node
		code  string
		path  string
		ident string
	}{
		{"undefined", d.Object().Field("x", d.EnumOf(d.Ident("NOPE"))).Object(), contentschema.CodeUnresolvedIdentifier, "/x", "main.NOPE"},
		{"unknown module", d.Object().Field("x", d.IdentIn("ghost", "seo")).Object(), contentschema.CodeUnknownModule, "/x", "ghost.seo"},
		{"non constant", d.Object().Field("x", d.Number()).Default(d.IdentIn("consts", "NOW")).Object(), contentschema.CodeNonConstant, "/x", "consts.NOW"},
		{"expr node", d.Array(d.Computed("makeSchema()")), contentschema.CodeNonConstant, "/*", "makeSchema()"},
		{"enum source shape", d.EnumOf(d.IdentIn("consts", "MIXED")), contentschema.CodeInvalidEnumSource, "/", "consts.MIXED"},
		{"value as fragment", d.Object().Field("x", d.IdentIn("consts", "LIMIT")).Object(), contentschema.CodeInvalidFragment, "/x", "consts.LIMIT"},
		{"fragment as value", d.Literal(d.Ident("seo")), contentschema.CodeInvalidValue, "/", "frags.seo"},
		{"self reference", d.IdentIn("frags", "loop"), contentschema.CodeIdentifierCycle, "/*", "frags.loop"},
		{"import cycle", d.IdentIn("cyc1", "x"), contentschema.CodeImportCycle, "/", "cyc1.x"},
		{"variant not object", d.DiscriminatedUnion("k", d.String()), contentschema.CodeInvalidVariant, "/0", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.node, "main", table())
			if err == nil {
				t.Fatalf("expected error")
			}
			iss := issuesOf(t, err)
			if iss[0].Code != tc.code || iss[0].Path != tc.path || iss[0].Identifier != tc.ident {
				t.Fatalf("got %+v", iss[0])
			}
			if iss[0].Message == "" {
				t.Fatalf("missing message")
			}
		})
	}
}

func TestResolve_CollectsAllIssues(t *testing.T) {
	obj := d.Object().
		Field("a", d.EnumOf(d.Ident("X"))).
		Field("b", d.Ident("Y")).
		Object()
	_, err := Resolve(obj, "main", table())
	iss := issuesOf(t, err)
	if len(iss) != 2 || iss[0].Path != "/a" || iss[1].Path != "/b" {
		t.Fatalf("issues = %+v", iss)
	}
	if !errors.Is(err, modules.ErrUndefined) {
		t.Fatalf("sentinel not reachable through Issues")
	}
}

func TestResolve_PathEscaping(t *testing.T) {
	obj := d.Object().Field("a/b~c", d.Ident("Z")).Object()
	_, err := Resolve(obj, "main", table())
	if got := issuesOf(t, err)[0].Path; got != "/a~1b~0c" {
		t.Fatalf("path = %s", got)
	}
}

func TestResolveValue_DeepCopies(t *testing.T) {
	src := map[string]any{"tags": []any{"x", d.IdentIn("consts", "LIMIT")}}
	v, err := ResolveValue(src, "", table())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := map[string]any{"tags": []any{"x", float64(5)}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("value = %#v", v)
	}
	v.(map[string]any)["tags"].([]any)[0] = "changed"
	if src["tags"].([]any)[0] != "x" {
		t.Fatalf("input mutated")
	}
}

func TestResolve_NilScopeRejectsIdentifiers(t *testing.T) {
	_, err := Resolve(d.Ident("seo"), "main", nil)
	if !contentschema.HasCode(err, contentschema.CodeUnresolvedIdentifier) {
		t.Fatalf("err = %v", err)
	}
}
