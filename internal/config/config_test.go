package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	used, err := Read(v, afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Empty(t, used)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutDir, c.OutDir)
	assert.Equal(t, 2, c.Indent)
	assert.Equal(t, "  ", c.IndentString())
	assert.Equal(t, "en", c.Language)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Empty(t, c.Sources)
	assert.True(t, c.Wants("anything"))
}

func TestLoad_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/contentschema.yaml", []byte(`
sources: [content/*.yaml, content/*.cue]
out_dir: schemas
collections: [blog]
concurrency: 4
indent: 4
language: ja
log:
  level: debug
  format: json
  file: /tmp/cs.log
  max_size_mb: 5
`), 0o644))

	v := viper.New()
	used, err := Read(v, fs, "/site/contentschema.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/site/contentschema.yaml", used)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"content/*.yaml", "content/*.cue"}, c.Sources)
	assert.Equal(t, "schemas", c.OutDir)
	assert.True(t, c.Wants("blog"))
	assert.False(t, c.Wants("docs"))
	assert.Equal(t, 4, c.Concurrency)
	assert.Equal(t, "    ", c.IndentString())
	assert.Equal(t, "ja", c.Language)
	assert.Equal(t, Log{Level: "debug", Format: "json", File: "/tmp/cs.log", MaxSizeMB: 5, MaxBackups: 3}, c.Log)

	opts := c.Log.Options(true)
	assert.Equal(t, "debug", opts.Level)
	assert.True(t, opts.NoColor)
}

func TestLoad_TOMLFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.toml", []byte("out_dir = \"gen\"\n[log]\nformat = \"json\"\n"), 0o644))
	v := viper.New()
	_, err := Read(v, fs, "/cfg.toml")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "gen", c.OutDir)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CONTENTSCHEMA_OUT_DIR", "from-env")
	t.Setenv("CONTENTSCHEMA_LOG_LEVEL", "warn")
	v := viper.New()
	_, err := Read(v, afero.NewMemMapFs(), "")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.OutDir)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestRead_MissingExplicitFile(t *testing.T) {
	_, err := Read(viper.New(), afero.NewMemMapFs(), "/nope.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Config{OutDir: "", Concurrency: -1, Indent: 9, Language: "fr", Log: Log{Format: "xml"}}
	err := c.Validate()
	require.Error(t, err)
	for _, key := range []string{KeyOutDir, KeyConcurrency, KeyIndent, KeyLanguage, KeyLogFormat} {
		assert.Contains(t, err.Error(), key)
	}
}
