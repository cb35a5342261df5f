package eventlog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogRecorder_Record(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	recorder := NewSlogRecorder(logger)

	recorder.Record("envelope open failed: authentication failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "envelope open failed: authentication failed", entry["msg"])

	id, err := uuid.Parse(entry["event_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestSlogRecorder_DistinctEventIDs(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewSlogRecorder(slog.New(slog.NewJSONHandler(&buf, nil)))

	recorder.Record("first")
	recorder.Record("second")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.NotEqual(t, first["event_id"], second["event_id"])
}

func TestNopRecorder_Record(t *testing.T) {
	recorder := NewNopRecorder()
	assert.NotPanics(t, func() { recorder.Record("ignored") })
}
