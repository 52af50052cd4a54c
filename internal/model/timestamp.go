package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// millisCutoff separates epoch seconds from epoch milliseconds. Numeric
// values below 10^12 are read as seconds.
const millisCutoff = int64(1e12)

// stringLayouts are tried in order when a timestamp arrives as text.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a point in time that may be absent or unparseable. The
// webhook emits timestamps as epoch seconds, epoch milliseconds or date
// strings, and frequently omits them; decoding never fails, it only
// degrades to the unknown state.
type Timestamp struct {
	t     time.Time
	known bool
}

// NewTimestamp wraps a concrete instant.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t, known: true}
}

// Known reports whether the timestamp carries a usable instant.
func (ts Timestamp) Known() bool {
	return ts.known
}

// Time returns the instant and whether it is known.
func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.known
}

// UnixMilli returns the instant as epoch milliseconds, or 0 when unknown.
// Unknowns therefore order as the epoch origin in any millisecond sort.
func (ts Timestamp) UnixMilli() int64 {
	if !ts.known {
		return 0
	}
	return ts.t.UnixMilli()
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	*ts = Timestamp{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*ts = fromNumber(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Unexpected JSON shape, treat as unknown.
		return nil
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts = NewTimestamp(t)
			return nil
		}
	}
	// Some sources send epoch values as quoted strings.
	*ts = fromNumber(json.Number(s))
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.known {
		return []byte("null"), nil
	}
	return json.Marshal(ts.t.Format(time.RFC3339))
}

func fromNumber(n json.Number) Timestamp {
	f, err := n.Float64()
	if err != nil {
		return Timestamp{}
	}
	v := int64(f)
	if v < millisCutoff {
		v *= 1000
	}
	return NewTimestamp(time.UnixMilli(v).UTC())
}
