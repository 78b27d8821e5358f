package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCarriesRunID(t *testing.T) {
	var b bytes.Buffer
	log, err := New(Options{Level: "info", Encoding: "json"}, &b)
	require.NoError(t, err)

	log.Info("part solved")
	log.Debug("hidden")
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "part solved", rec["msg"])
	assert.Equal(t, "info", rec["level"])
	_, err = uuid.Parse(rec["run_id"].(string))
	assert.NoError(t, err)
}

func TestVerboseForcesDebug(t *testing.T) {
	var b bytes.Buffer
	log, err := New(Options{Level: "error", Verbose: true}, &b)
	require.NoError(t, err)
	log.Debug("chunk scheduled")
	assert.Contains(t, b.String(), "DEBUG")
	assert.Contains(t, b.String(), "chunk scheduled")
}

func TestDefaultLevelIsWarn(t *testing.T) {
	var b bytes.Buffer
	log, err := New(Options{}, &b)
	require.NoError(t, err)
	log.Info("quiet")
	assert.Empty(t, b.String())
	log.Warn("loud")
	assert.Contains(t, b.String(), "loud")
}

func TestRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "chatty"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "chatty")
	_, err = New(Options{Encoding: "logfmt"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "logfmt")
}
