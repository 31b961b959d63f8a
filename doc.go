package contentschema

// Package contentschema provides:
//
// - A Zod-like schema DSL for content collections (dsl/)
// - Identifier resolution over a closed module table (modules/, dsl/irconv)
// - Lowering of resolved schemas into JSON Schema Draft-7 (internal/lower, jsonschema/)
// - The per-collection document envelope and parallel generation (collections/)
// - Declaration files in YAML/JSON/TOML/CUE and a CLI (declfile/, cmd/contentschema)
//
// Design policy:
// - Keep only shared contracts (loader kinds, the Issues error model) in the root package.
// - Lowering is pure: every call builds a new output tree, fragments are never shared.
// - Refine/transform effects have no JSON Schema form and are dropped without diagnostics.
//
// Typical usage:
//
//  tbl := modules.New()
//  tbl.Module("config").Const("CATEGORIES", []any{"news", "guide"})
//  blog := collections.Definition{
//      Name:   "blog",
//      Loader: contentschema.LoaderGlob,
//      Module: "config",
//      Schema: g.Object().
//          Field("title", g.String().Min(1)).
//          Field("category", g.EnumOf(g.Ident("CATEGORIES"))).
//          Field("draft", g.Boolean()).Default(false).
//          Object(),
//  }
//  doc, err := collections.Generate(blog, tbl)
//
