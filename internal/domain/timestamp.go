package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a point in time persisted and served as Unix epoch milliseconds.
type Timestamp int64

// Now returns the current time truncated to millisecond precision.
func Now() Timestamp {
	return Timestamp(time.Now().UnixMilli())
}

// Time converts the timestamp back to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(t), 10), nil
}

// UnmarshalJSON accepts integral millisecond values. Fractional values written
// by other tooling are truncated.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = 0
		return nil
	}
	if v, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*t = Timestamp(v)
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("timestamp %s: %w", data, err)
	}
	*t = Timestamp(int64(f))
	return nil
}
