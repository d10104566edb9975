package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf, Component: "variant"})
	require.NoError(t, err)

	log.WithFields(map[string]any{"axis": "size", "option": "huge"}).Debug("unknown option")
	log.Warn(errors.New("read-only filesystem"), "theme preference not persisted")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "variant", entries[0]["component"])
	assert.Equal(t, "size", entries[0]["axis"])
	assert.Equal(t, "huge", entries[0]["option"])

	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, "read-only filesystem", entries[1]["error"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Debug("x")
		log.Info("x")
		log.Warn(nil, "x")
		log.Error(errors.New("boom"), "x")
		assert.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
	assert.NotPanics(t, func() { Nop().Info("dropped") })
}
