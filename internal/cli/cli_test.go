package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const constsYAML = `module: consts
constants:
  TAGS: [astro, go]
`

const siteYAML = `module: site
imports:
  - from: consts
    names: [TAGS]
collections:
  blog:
    schema:
      type: object
      fields:
        title: {type: string, min: 1}
        tags: {type: array, items: {type: enum, source: TAGS}, optional: true}
        author: {type: reference, collection: authors}
  broken:
    schema:
      type: object
      fields:
        x: {ident: MISSING}
  settings:
    loader: file
    schema:
      type: object
      fields:
        theme: {type: enum, values: [light, dark], default: light}
`

type harness struct {
	fs  afero.Fs
	out bytes.Buffer
	err bytes.Buffer
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()
	h := &harness{fs: afero.NewMemMapFs()}
	for path, body := range files {
		require.NoError(t, afero.WriteFile(h.fs, path, []byte(body), 0o644))
	}
	return h
}

func (h *harness) run(args ...string) error {
	h.out.Reset()
	h.err.Reset()
	app := &App{Fs: h.fs, Out: &h.out, Err: &h.err}
	return app.Run(context.Background(), append([]string{"--no-color"}, args...))
}

func (h *harness) readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := afero.ReadFile(h.fs, path)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func siteFiles() map[string]string {
	return map[string]string{"/site/consts.yaml": constsYAML, "/site/config.yaml": siteYAML}
}

func TestGenerate_WritesAndReportsFailures(t *testing.T) {
	h := newHarness(t, siteFiles())

	err := h.run("generate", "/site/*.yaml", "--out", "/out")
	require.Error(t, err)
	assert.Equal(t, "1 of 3 collections failed", err.Error())

	assert.Contains(t, h.out.String(), "✓ blog → /out/blog.schema.json")
	assert.Contains(t, h.out.String(), "✓ settings → /out/settings.schema.json")
	assert.Contains(t, h.err.String(), "[broken]")
	assert.Contains(t, h.err.String(), "[unresolved_identifier]")
	assert.Contains(t, h.err.String(), "/x")
	assert.Contains(t, h.err.String(), "blog references undefined collection authors")
	assert.Contains(t, h.err.String(), "✗ 1 of 3 collections failed")

	exists, err := afero.Exists(h.fs, "/out/broken.schema.json")
	require.NoError(t, err)
	assert.False(t, exists)

	blog := h.readJSON(t, "/out/blog.schema.json")
	assert.Equal(t, "#/definitions/blog", blog["$ref"])
	body := blog["definitions"].(map[string]any)["blog"].(map[string]any)
	assert.Equal(t, []any{"title", "author"}, body["required"])
	assert.Contains(t, body["properties"], "$schema")

	settings := h.readJSON(t, "/out/settings.schema.json")
	sbody := settings["definitions"].(map[string]any)["settings"].(map[string]any)
	entry := sbody["additionalProperties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string", "enum": []any{"light", "dark"}, "default": "light"},
		entry["properties"].(map[string]any)["theme"])
	assert.NotContains(t, entry, "required")
}

func TestGenerate_UnchangedOnSecondRun(t *testing.T) {
	h := newHarness(t, siteFiles())
	_ = h.run("generate", "/site/*.yaml", "--out", "/out", "--collection", "settings")
	require.NoError(t, h.run("generate", "/site/*.yaml", "--out", "/out", "--collection", "settings"))
	assert.Contains(t, h.out.String(), "settings unchanged")
	assert.NotContains(t, h.out.String(), "blog")
}

func TestGenerate_ConfigFile(t *testing.T) {
	files := siteFiles()
	files["/site/contentschema.yaml"] = `sources: [/site/consts.yaml, /site/config.yaml]
out_dir: /gen
collections: [blog]
indent: 4
`
	h := newHarness(t, files)
	require.NoError(t, h.run("--config", "/site/contentschema.yaml", "generate"))

	data, err := afero.ReadFile(h.fs, "/gen/blog.schema.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"$ref\"")
	exists, _ := afero.Exists(h.fs, "/gen/settings.schema.json")
	assert.False(t, exists)
}

func TestGenerate_UnknownCollection(t *testing.T) {
	h := newHarness(t, siteFiles())
	err := h.run("generate", "/site/*.yaml", "--collection", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown collection "nope"`)
}

func TestGenerate_NoSources(t *testing.T) {
	h := newHarness(t, nil)
	err := h.run("generate")
	assert.ErrorIs(t, err, errNoSources)
}

func TestGenerate_InvalidDeclaration(t *testing.T) {
	h := newHarness(t, map[string]string{"/bad.yaml": "collections:\n  c:\n    schema: {type: strng}\n"})
	err := h.run("generate", "/bad.yaml")
	require.Error(t, err)
	assert.Contains(t, h.err.String(), "[invalid_declaration]")
	assert.Contains(t, h.err.String(), "/collections/c/schema/type")
	assert.Contains(t, h.err.String(), "✗ /bad.yaml")
}

func TestInspect(t *testing.T) {
	h := newHarness(t, siteFiles())
	require.NoError(t, h.run("inspect", "/site/consts.yaml", "/site/config.yaml", "--collection", "blog"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &doc))
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", doc["$schema"])

	err := h.run("inspect", "/site/consts.yaml", "/site/config.yaml", "-c", "broken")
	require.Error(t, err)
	assert.Contains(t, h.err.String(), "[unresolved_identifier]")

	err = h.run("inspect", "/site/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collection")
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersion("dev", "unknown", "unknown") })
	h := newHarness(t, nil)
	require.NoError(t, h.run("version"))
	assert.Equal(t, "contentschema 1.2.3 (commit: abc, built: today)\n", h.out.String())
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t, map[string]string{"/c.yaml": "language: fr\n"})
	err := h.run("--config", "/c.yaml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "language")
}

func TestFlatten(t *testing.T) {
	assert.Nil(t, flatten(nil))
}
