// Package dsl provides a Zod-like schema DSL for content collections.
//
// Overview
//   - Primitives: String()/Number()/Boolean()/Date()/Literal(v)/Enum(...)/Image().
//   - Composites: Array(elem)/Tuple(...)/Object()/Record(value)/Union(...)/DiscriminatedUnion(key, ...).
//   - Reference(collection) points at entries of another collection.
//   - Identifiers: Ident(name)/IdentIn(module, name) name constants and reusable fragments;
//     Computed(src) marks a value that has no constant form.
//   - Modifiers: Field(...).Optional()/Default(v)/Describe(text)/ErrorMessage(keyword, msg),
//     or Optional(n)/Default(n, v)/Describe(n, text) outside of objects.
//   - Effects: Refine(n, ...)/Transform(n, ...) run code and are not exported.
//
// Constraint builders mirror Zod: String().Min(1).Email(), Number().Int().Positive(),
// Array(String()).Min(1, "add at least one tag"). A message passed to a constraint is
// exported as errorMessage.<keyword>.
//
// Nodes are plain values; the resolver (dsl/irconv) reads them and never
// modifies them, so one fragment can be used in many places.
//
// Example
//
//	seo := g.Object().
//	    Field("title", g.String().Max(60)).
//	    Field("description", g.String()).Optional().
//	    Object()
//
//	post := g.Object().
//	    Field("title", g.String().Min(1)).Describe("Post title").
//	    Field("pubDate", g.CoerceDate()).
//	    Field("tags", g.Array(g.String()).Min(1, "add at least one tag")).
//	    Field("category", g.EnumOf(g.IdentIn("consts", "CATEGORIES"))).
//	    Field("author", g.Reference("authors")).
//	    Field("seo", seo).Optional().
//	    Field("draft", g.Boolean()).Default(false).
//	    Object()
package dsl
