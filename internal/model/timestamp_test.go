package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTimestamp(t *testing.T, raw string) Timestamp {
	t.Helper()
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(raw), &ts))
	return ts
}

func TestTimestampEpochSeconds(t *testing.T) {
	ts := decodeTimestamp(t, `1700000000`)
	got, ok := ts.Time()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), got)
}

func TestTimestampEpochMillis(t *testing.T) {
	ts := decodeTimestamp(t, `1700000000000`)
	got, ok := ts.Time()
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), got)
}

func TestTimestampDateString(t *testing.T) {
	ts := decodeTimestamp(t, `"2024-01-15T10:30:00Z"`)
	got, ok := ts.Time()
	require.True(t, ok)
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 10, got.Hour())
}

func TestTimestampNumericString(t *testing.T) {
	ts := decodeTimestamp(t, `"1700000000"`)
	got, ok := ts.Time()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), got)
}

func TestTimestampUnparseable(t *testing.T) {
	for _, raw := range []string{`null`, `"not a date"`, `{"nested":true}`, `true`} {
		ts := decodeTimestamp(t, raw)
		assert.False(t, ts.Known(), "input %s must decode to unknown", raw)
		assert.EqualValues(t, 0, ts.UnixMilli())
	}
}

func TestRawInteractionBestTime(t *testing.T) {
	var rec RawInteraction
	require.NoError(t, json.Unmarshal([]byte(`{"from":"A","timestamp":1700000000}`), &rec))
	assert.True(t, rec.BestTime().Known(), "falls back to the logged timestamp")

	require.NoError(t, json.Unmarshal([]byte(`{"from":"A","tempo":1700003600,"timestamp":1700000000}`), &rec))
	got, _ := rec.BestTime().Time()
	assert.Equal(t, time.Unix(1700003600, 0).UTC(), got, "tempo wins over timestamp")
}
