package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(&buf, Options{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer closer.Close()

	log.Debug().Str("collection", "blog").Msg("generated")
	log.Trace().Msg("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "blog", line["collection"])
	assert.Equal(t, "generated", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(&buf, Options{Format: "json"})
	require.NoError(t, err)
	log.Debug().Msg("quiet")
	assert.Empty(t, buf.String())
	log.Info().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(&buf, Options{NoColor: true})
	require.NoError(t, err)
	log.Warn().Str("collection", "docs").Msg("slow")
	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "slow")
	assert.Contains(t, out, "collection=docs")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "contentschema.log")
	var buf bytes.Buffer
	log, closer, err := New(&buf, Options{Format: "json", File: path, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	log.Info().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNew_Invalid(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)
	_, _, err = New(&bytes.Buffer{}, Options{Format: "xml"})
	assert.Error(t, err)
}
