package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a time of day expressed as minutes from midnight. The value
// EndOfDay (24:00) is a sentinel meaning midnight of the following day,
// distinct from 00:00 wraparound.
type ClockTime int

// EndOfDay is the 24:00 sentinel.
const EndOfDay ClockTime = 24 * 60

// ParseClockTime parses an "HH:MM" string. "24:00" is accepted as the
// end-of-day sentinel; anything past it is rejected.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h == 24 && m == 0 {
		return EndOfDay, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return ClockTime(h*60 + m), nil
}

// Valid reports whether the value lies within [00:00, 24:00].
func (c ClockTime) Valid() bool {
	return c >= 0 && c <= EndOfDay
}

// String renders "HH:MM"; the sentinel renders as "24:00".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// OnDate projects the clock time onto a concrete date in loc as a wall
// clock reading, so a 09:00 opening stays 09:00 local across DST
// transitions. The sentinel lands exactly on the next day's midnight.
func (c ClockTime) OnDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, int(c)/60, int(c)%60, 0, 0, loc)
}

// MarshalJSON renders the wire form, "HH:MM".
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts "HH:MM" (including the "24:00" sentinel) or a bare
// minutes-from-midnight number.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseClockTime(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("clock time must be \"HH:MM\" or minutes")
	}
	*c = ClockTime(n)
	return nil
}
