package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout is how the backend writes datetimes: no zone offset
const naiveLayout = "2006-01-02T15:04:05.999999999"

// naiveLayouts are tried in order after RFC 3339.
// The backend emits naive ISO-8601 datetimes (no zone offset).
var naiveLayouts = []string{
	naiveLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// naive marks times decoded without an offset so they encode back without one
var naive = time.FixedZone("", 0)

// Timestamp is a time.Time that accepts ISO-8601 strings with or without offset
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses an ISO-8601 datetime string
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{Time: t}, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, naive); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.Location() == naive {
		return json.Marshal(t.Format(naiveLayout))
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// DateString formats the timestamp as a day (placeholder when unset)
func (t Timestamp) DateString() string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
